package hass

import "fmt"

// Topics builds Home Assistant MQTT discovery topics for one node.
//
// All topics live under the configured discovery prefix (almost always
// "homeassistant") and the node identifier naming this BMC:
//
//	{prefix}/sensor/{node_id}/{node_id}_{slug}/config   retained, once per sensor
//	{prefix}/sensor/{node_id}/{node_id}_{slug}/state    retained, every cycle
//	{prefix}/sensor/{node_id}/bridge/status             retained, availability
//
// Using these helpers ensures consistent topic naming across the codebase.
type Topics struct {
	Prefix string
	NodeID string
}

// ObjectID returns the unique entity identifier for a sensor slug.
//
// Example: ObjectID("cpu_temp") = "ipmi_cpu_temp"
func (t Topics) ObjectID(slug string) string {
	return fmt.Sprintf("%s_%s", t.NodeID, slug)
}

// Config returns the discovery config topic for a sensor slug.
//
// Example: homeassistant/sensor/ipmi/ipmi_cpu_temp/config
func (t Topics) Config(slug string) string {
	return fmt.Sprintf("%s/sensor/%s/%s/config", t.Prefix, t.NodeID, t.ObjectID(slug))
}

// State returns the state topic for a sensor slug.
//
// Example: homeassistant/sensor/ipmi/ipmi_cpu_temp/state
func (t Topics) State(slug string) string {
	return fmt.Sprintf("%s/sensor/%s/%s/state", t.Prefix, t.NodeID, t.ObjectID(slug))
}

// BridgeStatus returns the availability topic for the bridge itself.
//
// Example: homeassistant/sensor/ipmi/bridge/status
func (t Topics) BridgeStatus() string {
	return fmt.Sprintf("%s/sensor/%s/bridge/status", t.Prefix, t.NodeID)
}
