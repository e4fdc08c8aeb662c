package hass

import "strings"

// StateClassMeasurement is the only state class this bridge emits: every
// IPMI sensor is a point-in-time measurement.
const StateClassMeasurement = "measurement"

// UnitMetadata describes how Home Assistant should display a sensor.
//
// It is recomputed from the reading's free-text unit every cycle and merged
// into the discovery payload. UnitOfMeasurement and DeviceClass are omitted
// from the JSON entirely when empty; StateClass is always present.
type UnitMetadata struct {
	UnitOfMeasurement string `json:"unit_of_measurement,omitempty"`
	DeviceClass       string `json:"device_class,omitempty"`
	StateClass        string `json:"state_class"`
}

// unitRule maps a unit-text predicate to its metadata. Rules are evaluated
// top to bottom, first match wins.
type unitRule struct {
	match func(lower string) bool
	meta  UnitMetadata
}

// containsOrIs matches when the lowercased unit contains the fragment or
// equals the single-symbol alternate exactly. Single letters must match
// exactly, never as substrings: a unit that merely contains "a" is not an
// ampere reading.
func containsOrIs(fragment, symbol string) func(string) bool {
	return func(lower string) bool {
		return strings.Contains(lower, fragment) || lower == symbol
	}
}

// unitRules is the ordered classification table for free-text units as
// reported by ipmitool. Word fragments are substring-matched to tolerate
// verbose tool output variants ("degrees C", "Degrees C (ambient)").
var unitRules = []unitRule{
	{
		match: containsOrIs("degrees c", "c"),
		meta:  UnitMetadata{UnitOfMeasurement: "°C", DeviceClass: "temperature", StateClass: StateClassMeasurement},
	},
	{
		match: containsOrIs("volts", "v"),
		meta:  UnitMetadata{UnitOfMeasurement: "V", DeviceClass: "voltage", StateClass: StateClassMeasurement},
	},
	{
		match: containsOrIs("amps", "a"),
		meta:  UnitMetadata{UnitOfMeasurement: "A", DeviceClass: "current", StateClass: StateClassMeasurement},
	},
	{
		match: containsOrIs("watts", "w"),
		meta:  UnitMetadata{UnitOfMeasurement: "W", DeviceClass: "power", StateClass: StateClassMeasurement},
	},
	{
		// Fan speeds have no Home Assistant device class.
		match: func(lower string) bool { return strings.Contains(lower, "rpm") },
		meta:  UnitMetadata{UnitOfMeasurement: "RPM", StateClass: StateClassMeasurement},
	},
	{
		match: containsOrIs("percent", "%"),
		meta:  UnitMetadata{UnitOfMeasurement: "%", StateClass: StateClassMeasurement},
	},
}

// Classify maps a free-text unit string to display metadata.
//
// Matching is case-insensitive with first-match-wins semantics over the
// rule table above. Units that match no rule pass through with their
// original casing as the unit of measurement; an empty unit yields only the
// state class. Classify is a pure function.
func Classify(unit string) UnitMetadata {
	lower := strings.ToLower(unit)

	for _, rule := range unitRules {
		if rule.match(lower) {
			return rule.meta
		}
	}

	return UnitMetadata{
		UnitOfMeasurement: unit,
		StateClass:        StateClassMeasurement,
	}
}
