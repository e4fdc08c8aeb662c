package bridge

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/nerrad567/ipmi2mqtt/internal/hass"
	"github.com/nerrad567/ipmi2mqtt/internal/ipmi"
)

// Publisher is the interface for outbound MQTT operations.
// This allows mocking in tests and flexibility in implementation.
type Publisher interface {
	// Publish sends a message to a topic.
	Publish(topic string, payload []byte, qos byte, retained bool) error

	// IsConnected returns true if connected to the broker.
	IsConnected() bool
}

// SensorSource produces raw sensor output for one poll cycle.
// Satisfied by *ipmi.Runner.
type SensorSource interface {
	Run(ctx context.Context) (string, error)
}

// Logger defines the logging interface for the bridge.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Bridge orchestrates the poll cycle: query sensors, parse readings, and
// publish Home Assistant discovery and state messages.
//
// It exclusively owns the discovery state - the set of sensor slugs that
// have already been announced. The set grows monotonically for the process
// lifetime and is never persisted; a restart republishes every discovery
// config, which is harmless because the messages are retained and carry
// stable identities.
//
// Thread Safety: Run drives everything from a single goroutine; the
// announced set is single-writer by construction and needs no locking.
type Bridge struct {
	source   SensorSource
	mqtt     Publisher
	topics   hass.Topics
	qos      byte
	interval time.Duration
	logger   Logger

	// announced holds slugs whose discovery config has been published.
	// Insertion-only; a sensor that vanishes from later tool output stays
	// known forever, its state simply stops refreshing.
	announced map[string]struct{}
}

// Options holds configuration for creating a Bridge.
type Options struct {
	// Source produces raw sensor output each cycle.
	Source SensorSource

	// Publisher is the MQTT client implementation.
	Publisher Publisher

	// Topics carries the discovery prefix and node ID.
	Topics hass.Topics

	// QoS is the Quality of Service level for all publishes.
	QoS byte

	// Interval is the delay between poll cycles.
	Interval time.Duration

	// Logger is optional; a no-op logger is used if nil.
	Logger Logger
}

// New creates a Bridge from options.
//
// Returns:
//   - *Bridge: Ready to Run
//   - error: If a required collaborator is missing
func New(opts Options) (*Bridge, error) {
	if opts.Source == nil {
		return nil, errors.New("bridge: sensor source is required")
	}
	if opts.Publisher == nil {
		return nil, errors.New("bridge: publisher is required")
	}
	if opts.Interval <= 0 {
		return nil, errors.New("bridge: poll interval must be positive")
	}

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	return &Bridge{
		source:    opts.Source,
		mqtt:      opts.Publisher,
		topics:    opts.Topics,
		qos:       opts.QoS,
		interval:  opts.Interval,
		logger:    logger,
		announced: make(map[string]struct{}),
	}, nil
}

// Run executes the poll loop until ctx is cancelled.
//
// Each cycle: invoke the sensor source, parse its output, publish discovery
// configs for newly seen sensors and state updates for every reading, then
// sleep for the configured interval. A failed cycle - tool error, publish
// error, even a panic - is logged and abandoned; the loop always continues.
// The service never exits because of a single bad cycle.
//
// Parameters:
//   - ctx: Cancelling this context is the only way the loop terminates
//
// Returns:
//   - error: Always ctx.Err() once the context is cancelled
func (b *Bridge) Run(ctx context.Context) error {
	b.logger.Info("poll loop started",
		"interval", b.interval.String(),
		"node_id", b.topics.NodeID,
	)

	for {
		b.cycle(ctx)

		select {
		case <-ctx.Done():
			b.logger.Info("poll loop stopped")
			return ctx.Err()
		case <-time.After(b.interval):
		}
	}
}

// cycle performs a single poll cycle, recovering from any panic so that one
// bad cycle can never take the service down.
func (b *Bridge) cycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("cycle abandoned after panic", "panic", r)
		}
	}()

	output, err := b.source.Run(ctx)
	if err != nil {
		b.logger.Error("sensor query failed, skipping cycle", "error", err)
		return
	}

	readings := ipmi.Parse(output)
	discoveries, states := b.publishCycle(readings)

	b.logger.Debug("cycle complete",
		"readings", len(readings),
		"discoveries", discoveries,
		"states", states,
	)
}

// publishCycle publishes one batch of readings.
//
// For every reading whose slug has not been announced, a retained discovery
// config is published first and the slug recorded; duplicates within one
// batch announce once. Every reading then gets a retained state update,
// announced or not. Input order is preserved, so a sensor's discovery
// always precedes its first state message.
//
// A failed discovery publish leaves the slug unannounced and suppresses
// that reading's state update for the cycle; the next cycle retries both.
// This keeps the discovery-before-state ordering intact per sensor. A
// failed state publish is logged and the rest of the batch continues.
//
// Returns the number of discovery and state messages published.
func (b *Bridge) publishCycle(readings []ipmi.Reading) (discoveries, states int) {
	for _, reading := range readings {
		slug := reading.Slug()

		if _, seen := b.announced[slug]; !seen {
			if err := b.publishDiscovery(reading, slug); err != nil {
				b.logger.Warn("discovery publish failed",
					"sensor", reading.Name,
					"slug", slug,
					"error", err,
				)
				continue
			}
			b.announced[slug] = struct{}{}
			discoveries++
		}

		if err := b.publishState(reading, slug); err != nil {
			b.logger.Warn("state publish failed",
				"sensor", reading.Name,
				"slug", slug,
				"error", err,
			)
			continue
		}
		states++
	}

	return discoveries, states
}

// publishDiscovery publishes the retained discovery config for one sensor.
func (b *Bridge) publishDiscovery(reading ipmi.Reading, slug string) error {
	cfg := hass.NewDiscoveryConfig(reading.Name, reading.Unit, slug, b.topics)

	payload, err := cfg.Marshal()
	if err != nil {
		return err
	}

	return b.mqtt.Publish(b.topics.Config(slug), payload, b.qos, true)
}

// publishState publishes the retained state update for one sensor.
// The payload is the bare numeric value, not JSON-wrapped.
func (b *Bridge) publishState(reading ipmi.Reading, slug string) error {
	payload := strconv.FormatFloat(reading.Value, 'f', -1, 64)
	return b.mqtt.Publish(b.topics.State(slug), []byte(payload), b.qos, true)
}

// AnnouncedCount returns the number of sensors announced so far.
// Exposed for logging and tests.
func (b *Bridge) AnnouncedCount() int {
	return len(b.announced)
}
