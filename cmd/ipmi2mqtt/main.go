// ipmi2mqtt - IPMI sensor telemetry to Home Assistant MQTT discovery bridge
//
// This is the main entry point for the ipmi2mqtt service. It polls a BMC
// via an external `ipmitool sensor`-style command and republishes the
// readings over MQTT using Home Assistant's discovery convention, so the
// sensors appear in Home Assistant with no manual configuration.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/ipmi2mqtt/internal/bridge"
	"github.com/nerrad567/ipmi2mqtt/internal/hass"
	"github.com/nerrad567/ipmi2mqtt/internal/infrastructure/config"
	"github.com/nerrad567/ipmi2mqtt/internal/infrastructure/logging"
	"github.com/nerrad567/ipmi2mqtt/internal/infrastructure/mqtt"
	"github.com/nerrad567/ipmi2mqtt/internal/ipmi"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the application
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Startup failures (bad config, unreachable broker) are fatal; once the poll
// loop is running, nothing short of a signal stops the service.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing a startup failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting ipmi2mqtt",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Build the sensor runner
	runner, err := ipmi.NewRunner(cfg.Poller.Command, cfg.GetTimeout())
	if err != nil {
		return fmt.Errorf("building sensor runner: %w", err)
	}

	// Topic layout for this node
	topics := hass.Topics{
		Prefix: cfg.Discovery.Prefix,
		NodeID: cfg.Discovery.NodeID,
	}

	// Connect to MQTT broker
	mqttClient, err := mqtt.Connect(cfg.MQTT, topics.BridgeStatus())
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := mqttClient.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)

	// Set up MQTT logging callbacks
	mqttClient.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	mqttClient.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	// Create the bridge
	b, err := bridge.New(bridge.Options{
		Source:    runner,
		Publisher: mqttClient,
		Topics:    topics,
		QoS:       byte(cfg.MQTT.QoS),
		Interval:  cfg.GetInterval(),
		Logger:    log.With("component", "bridge"),
	})
	if err != nil {
		return fmt.Errorf("creating bridge: %w", err)
	}

	log.Info("initialisation complete, polling",
		"command", cfg.Poller.Command,
		"interval", cfg.GetInterval().String(),
	)

	// Run the poll loop until a shutdown signal arrives
	if err := b.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("poll loop: %w", err)
	}

	log.Info("shutdown signal received, cleaning up")
	log.Info("ipmi2mqtt stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses IPMI2MQTT_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("IPMI2MQTT_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
