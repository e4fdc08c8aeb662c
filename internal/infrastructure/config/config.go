package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for ipmi2mqtt.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	MQTT      MQTTConfig      `yaml:"mqtt"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Poller    PollerConfig    `yaml:"poller"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// DiscoveryConfig contains Home Assistant MQTT discovery settings.
//
// Prefix is the discovery topic prefix Home Assistant listens on
// (almost always "homeassistant"). NodeID identifies this BMC within
// the discovery topic tree and is embedded in every entity's object ID,
// so it must be topic-safe (lowercase alphanumerics and underscores).
type DiscoveryConfig struct {
	Prefix string `yaml:"prefix"`
	NodeID string `yaml:"node_id"`
}

// PollerConfig contains sensor polling settings.
type PollerConfig struct {
	// Command is the full command line used to query sensor data.
	// Example: "ipmitool -I lanplus -H 10.0.0.2 -U admin -P secret sensor"
	Command string `yaml:"command"`

	// Interval is the delay between poll cycles, in seconds.
	Interval int `yaml:"interval"`

	// Timeout bounds a single command invocation, in seconds.
	Timeout int `yaml:"timeout"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: IPMI2MQTT_SECTION_KEY
// For example: IPMI2MQTT_MQTT_HOST, IPMI2MQTT_POLLER_COMMAND
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "ipmi2mqtt",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		Discovery: DiscoveryConfig{
			Prefix: "homeassistant",
			NodeID: "ipmi",
		},
		Poller: PollerConfig{
			Command:  "ipmitool sensor",
			Interval: 30,
			Timeout:  20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: IPMI2MQTT_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// MQTT
	if v := os.Getenv("IPMI2MQTT_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("IPMI2MQTT_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("IPMI2MQTT_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// Discovery
	if v := os.Getenv("IPMI2MQTT_DISCOVERY_PREFIX"); v != "" {
		cfg.Discovery.Prefix = v
	}
	if v := os.Getenv("IPMI2MQTT_DISCOVERY_NODE_ID"); v != "" {
		cfg.Discovery.NodeID = v
	}

	// Poller - the command may carry BMC credentials, so the env override is
	// the recommended way to keep them out of the config file
	if v := os.Getenv("IPMI2MQTT_POLLER_COMMAND"); v != "" {
		cfg.Poller.Command = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// MQTT validation
	if c.MQTT.Broker.Host == "" {
		errs = append(errs, "mqtt.broker.host is required")
	}
	if c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535 {
		errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}

	// Discovery validation - node_id is embedded in topics and object IDs,
	// so it must already satisfy the topic-safe character set
	if c.Discovery.Prefix == "" {
		errs = append(errs, "discovery.prefix is required")
	}
	if c.Discovery.NodeID == "" {
		errs = append(errs, "discovery.node_id is required")
	} else if !isTopicSafe(c.Discovery.NodeID) {
		errs = append(errs, "discovery.node_id must contain only lowercase letters, digits and underscores")
	}

	// Poller validation
	if strings.TrimSpace(c.Poller.Command) == "" {
		errs = append(errs, "poller.command is required")
	}
	if c.Poller.Interval < 1 {
		errs = append(errs, "poller.interval must be at least 1 second")
	}
	if c.Poller.Timeout < 1 {
		errs = append(errs, "poller.timeout must be at least 1 second")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// isTopicSafe reports whether s consists solely of [a-z0-9_].
func isTopicSafe(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

// GetInterval returns the poll interval as a Duration.
func (c *Config) GetInterval() time.Duration {
	return time.Duration(c.Poller.Interval) * time.Second
}

// GetTimeout returns the per-invocation command timeout as a Duration.
func (c *Config) GetTimeout() time.Duration {
	return time.Duration(c.Poller.Timeout) * time.Second
}
