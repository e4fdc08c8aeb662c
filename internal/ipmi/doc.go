// Package ipmi reads and parses BMC sensor telemetry.
//
// This package manages:
//   - Invoking the external `ipmitool sensor` command (Runner)
//   - Parsing its pipe-delimited tabular output into typed readings (Parse)
//   - Deriving stable, topic-safe sensor identifiers (Slug)
//
// # Input format
//
// One sensor per line, pipe-delimited, whitespace-insensitive. The first
// three fields are name, value with optional trailing unit, and status;
// anything after that is ignored:
//
//	CPU1 Temp  | 45 degrees C | ok |
//	FAN1       | 3200 RPM     | ok |
//	PS2 Status | na           | ns |
//
// # Failure philosophy
//
// Parsing never fails. Lines that are not well-formed data (banners,
// headers, absent readings, unknown status codes) are dropped silently;
// only whole-command failures (non-zero exit, timeout) surface as errors.
package ipmi
