package hass

import (
	"encoding/json"
	"fmt"
)

// Device is the discovery device block grouping all of one BMC's sensors
// under a single Home Assistant device entry. Keys use Home Assistant's
// abbreviated discovery vocabulary.
type Device struct {
	Identifiers  []string `json:"ids"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"mf"`
	Model        string   `json:"mdl"`
}

// DiscoveryConfig is the JSON payload published to a sensor's config topic.
//
// One retained config message per sensor teaches Home Assistant the entity's
// identity, where to find its state, and how to display it. UnitMetadata is
// flattened into the top-level object alongside the identity fields.
type DiscoveryConfig struct {
	Name       string `json:"name"`
	UniqueID   string `json:"uniq_id"`
	StateTopic string `json:"stat_t"`
	Device     Device `json:"dev"`
	UnitMetadata
}

// NewDiscoveryConfig builds the discovery payload for one sensor.
//
// Parameters:
//   - sensorName: The sensor's name as reported by the BMC (e.g., "CPU1 Temp")
//   - unit: The sensor's free-text unit, classified into display metadata
//   - slug: The sensor's topic-safe identifier
//   - topics: Topic builder carrying the discovery prefix and node ID
//
// Returns:
//   - DiscoveryConfig: Ready to marshal and publish to topics.Config(slug)
func NewDiscoveryConfig(sensorName, unit, slug string, topics Topics) DiscoveryConfig {
	return DiscoveryConfig{
		Name:       fmt.Sprintf("IPMI %s", sensorName),
		UniqueID:   topics.ObjectID(slug),
		StateTopic: topics.State(slug),
		Device: Device{
			Identifiers:  []string{topics.NodeID},
			Name:         fmt.Sprintf("IPMI %s", topics.NodeID),
			Manufacturer: "IPMI",
			Model:        "BMC",
		},
		UnitMetadata: Classify(unit),
	}
}

// Marshal renders the discovery payload as JSON.
func (c DiscoveryConfig) Marshal() ([]byte, error) {
	return json.Marshal(c)
}
