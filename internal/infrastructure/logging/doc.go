// Package logging provides structured logging for ipmi2mqtt.
//
// This package wraps the standard library's log/slog with:
//   - Configuration-driven format selection (JSON or text)
//   - Level-based filtering (debug, info, warn, error)
//   - Default fields attached to every record (service, version)
//
// All cycle-level failures (tool invocation errors, publish errors) are
// reported through this package; individual malformed sensor lines are
// dropped silently by the parser and never logged.
//
// Usage:
//
//	log := logging.New(cfg.Logging, version)
//	log.Info("MQTT connected", "broker", "localhost:1883")
package logging
