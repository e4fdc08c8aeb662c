// Package hass implements the Home Assistant MQTT discovery convention.
//
// This package manages:
//   - Classifying free-text IPMI units into display metadata (Classify)
//   - Building discovery config payloads (NewDiscoveryConfig)
//   - Building the discovery topic hierarchy (Topics)
//
// Discovery works by publishing a retained JSON config message describing
// each entity under a well-known topic prefix; Home Assistant subscribes to
// that prefix and creates the entity automatically. State then flows over a
// plain retained topic named in the config.
//
// See https://www.home-assistant.io/integrations/mqtt/#mqtt-discovery
package hass
