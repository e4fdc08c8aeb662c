package mqtt

import (
	"errors"
	"strings"
	"testing"

	"github.com/nerrad567/ipmi2mqtt/internal/infrastructure/config"
)

// testConfig returns a valid MQTT configuration for testing.
func testConfig() config.MQTTConfig {
	return config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "127.0.0.1",
			Port:     1883,
			ClientID: "ipmi2mqtt-test",
			TLS:      false,
		},
		QoS: 1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     5,
		},
	}
}

// =============================================================================
// Option Building Tests
// =============================================================================

func TestBuildClientOptions(t *testing.T) {
	cfg := testConfig()

	opts := buildClientOptions(cfg)

	if len(opts.Servers) != 1 {
		t.Fatalf("expected 1 broker URL, got %d", len(opts.Servers))
	}

	got := opts.Servers[0].String()
	if got != "tcp://127.0.0.1:1883" {
		t.Errorf("broker URL = %q, want %q", got, "tcp://127.0.0.1:1883")
	}

	if opts.ClientID != "ipmi2mqtt-test" {
		t.Errorf("ClientID = %q, want %q", opts.ClientID, "ipmi2mqtt-test")
	}

	if !opts.AutoReconnect {
		t.Error("expected AutoReconnect to be enabled")
	}
}

func TestBuildClientOptions_TLS(t *testing.T) {
	cfg := testConfig()
	cfg.Broker.TLS = true

	opts := buildClientOptions(cfg)

	got := opts.Servers[0].String()
	if !strings.HasPrefix(got, "ssl://") {
		t.Errorf("broker URL = %q, want ssl:// scheme", got)
	}

	if opts.TLSConfig == nil {
		t.Fatal("expected TLS config to be set")
	}
}

func TestBuildClientOptions_Auth(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Username = "bridge"
	cfg.Auth.Password = "secret"

	opts := buildClientOptions(cfg)

	if opts.Username != "bridge" {
		t.Errorf("Username = %q, want %q", opts.Username, "bridge")
	}

	if opts.Password != "secret" {
		t.Errorf("Password = %q, want %q", opts.Password, "secret")
	}
}

func TestConfigureLWT(t *testing.T) {
	opts := buildClientOptions(testConfig())
	configureLWT(opts, "homeassistant/sensor/ipmi/bridge/status")

	if !opts.WillEnabled {
		t.Fatal("expected will to be enabled")
	}

	if opts.WillTopic != "homeassistant/sensor/ipmi/bridge/status" {
		t.Errorf("WillTopic = %q, want status topic", opts.WillTopic)
	}

	if string(opts.WillPayload) != payloadOffline {
		t.Errorf("WillPayload = %q, want %q", opts.WillPayload, payloadOffline)
	}

	if !opts.WillRetained {
		t.Error("expected will to be retained")
	}
}

// =============================================================================
// Publish Validation Tests
// =============================================================================

// Publish input validation runs before any network I/O, so these tests use a
// zero-value client and never touch a broker.

func TestPublish_EmptyTopic(t *testing.T) {
	c := &Client{}

	err := c.Publish("", []byte("x"), 1, false)
	if !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("Publish() error = %v, want ErrInvalidTopic", err)
	}
}

func TestPublish_InvalidQoS(t *testing.T) {
	c := &Client{}

	err := c.Publish("topic", []byte("x"), 3, false)
	if !errors.Is(err, ErrInvalidQoS) {
		t.Errorf("Publish() error = %v, want ErrInvalidQoS", err)
	}
}

func TestPublish_OversizedPayload(t *testing.T) {
	c := &Client{}

	err := c.Publish("topic", make([]byte, maxPayloadSize+1), 1, false)
	if !errors.Is(err, ErrPublishFailed) {
		t.Errorf("Publish() error = %v, want ErrPublishFailed", err)
	}
}

func TestPublish_NotConnected(t *testing.T) {
	c := &Client{}

	err := c.Publish("topic", []byte("x"), 1, false)
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Publish() error = %v, want ErrNotConnected", err)
	}
}

func TestCloseNil(t *testing.T) {
	client := &Client{}
	err := client.Close()
	if err != nil {
		t.Errorf("Close() on unconnected client error = %v, want nil", err)
	}
}
