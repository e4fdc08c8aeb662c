package ipmi

import (
	"regexp"
	"strconv"
	"strings"
)

// minFields is the minimum number of pipe-delimited fields a data line must
// carry: name, value+unit, status. ipmitool emits more, but only the first
// three matter here.
const minFields = 3

// valueRE matches a numeric value with an optional trailing unit:
// optional sign, digits, optional decimal fraction, then free text.
var valueRE = regexp.MustCompile(`^\s*([-+]?\d+(?:\.\d+)?)\s*(.*?)\s*$`)

// noDataSentinels are value-field strings (lowercased) that mean the sensor
// currently has nothing to report.
var noDataSentinels = map[string]struct{}{
	"na":         {},
	"no reading": {},
	"disabled":   {},
}

// healthyStatusCodes are the BMC status codes (lowercased) for which a value
// is considered meaningful. Everything else is treated as absent data.
//
//	ok = OK, ns = not specified, nr = not readable,
//	nc = non-critical, cr = critical
var healthyStatusCodes = map[string]struct{}{
	"ok": {},
	"ns": {},
	"nr": {},
	"nc": {},
	"cr": {},
}

// Parse converts raw `ipmitool sensor` output into validated readings.
//
// Each line has the shape:
//
//	NAME | VALUE[ UNIT] | STATUS | ...(ignored)...
//
// Lines are skipped, never reported, when they are not data: no pipe
// delimiter, fewer than three fields, empty name, a no-data value sentinel
// (na / no reading / disabled), an unrecognised status code, or a value that
// does not start with a number. Input order is preserved and duplicate
// sensor names are kept; identity collisions are the publisher's concern.
//
// Parse never fails: malformed individual lines are dropped silently and the
// remainder of the batch is unaffected.
func Parse(text string) []Reading {
	var readings []Reading

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < minFields {
			continue
		}

		name := strings.TrimSpace(parts[0])
		rawValue := strings.TrimSpace(parts[1])
		status := strings.ToLower(strings.TrimSpace(parts[2]))

		if name == "" {
			continue
		}
		if _, isSentinel := noDataSentinels[strings.ToLower(rawValue)]; isSentinel {
			continue
		}
		if _, isHealthy := healthyStatusCodes[status]; !isHealthy {
			continue
		}

		match := valueRE.FindStringSubmatch(rawValue)
		if match == nil {
			continue
		}

		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}

		readings = append(readings, Reading{
			Name:  name,
			Value: value,
			Unit:  match[2],
		})
	}

	return readings
}
