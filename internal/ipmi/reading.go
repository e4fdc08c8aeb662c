package ipmi

import (
	"regexp"
	"strings"
)

// Reading is a single validated sensor measurement reported by the BMC.
//
// Readings are immutable values produced fresh each poll cycle; nothing in
// the bridge mutates or caches them between cycles.
type Reading struct {
	// Name is the sensor name exactly as reported (e.g., "CPU1 Temp").
	Name string

	// Value is the parsed numeric measurement.
	Value float64

	// Unit is the free-text unit trailing the value, possibly empty
	// (e.g., "degrees C", "RPM", "Volts").
	Unit string
}

// slugRE matches each maximal run of characters outside the topic-safe set.
var slugRE = regexp.MustCompile(`[^a-z0-9_]+`)

// Slug derives a stable, topic-safe identifier from a sensor name.
//
// The name is lowercased, every run of characters outside [a-z0-9_] is
// collapsed to a single underscore, and leading/trailing underscores are
// stripped. The function is pure and total: the same name always yields the
// same slug and no input can fail.
//
// Known limitation: two distinct names can collide on the same slug
// (e.g., "Fan 1" and "Fan#1"). When that happens the first sensor to be
// announced owns the discovery config and the last state write per cycle
// wins. This mirrors the behaviour of repeated retained publishes and is
// deliberately not resolved here.
//
// Examples:
//
//	Slug("CPU1 Temp") == "cpu1_temp"
//	Slug("+12V")      == "12v"
func Slug(name string) string {
	s := slugRE.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(s, "_")
}

// Slug returns the topic-safe identifier for this reading's sensor.
func (r Reading) Slug() string {
	return Slug(r.Name)
}
