package hass

import "testing"

func TestTopics(t *testing.T) {
	topics := Topics{Prefix: "homeassistant", NodeID: "ipmi"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"object id", topics.ObjectID("cpu_temp"), "ipmi_cpu_temp"},
		{"config topic", topics.Config("cpu_temp"), "homeassistant/sensor/ipmi/ipmi_cpu_temp/config"},
		{"state topic", topics.State("cpu_temp"), "homeassistant/sensor/ipmi/ipmi_cpu_temp/state"},
		{"bridge status", topics.BridgeStatus(), "homeassistant/sensor/ipmi/bridge/status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestTopics_CustomPrefixAndNode(t *testing.T) {
	topics := Topics{Prefix: "ha", NodeID: "rack01"}

	if got := topics.Config("fan1"); got != "ha/sensor/rack01/rack01_fan1/config" {
		t.Errorf("Config() = %q, want %q", got, "ha/sensor/rack01/rack01_fan1/config")
	}

	if got := topics.State("fan1"); got != "ha/sensor/rack01/rack01_fan1/state" {
		t.Errorf("State() = %q, want %q", got, "ha/sensor/rack01/rack01_fan1/state")
	}
}
