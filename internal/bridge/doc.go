// Package bridge drives the poll-publish cycle of ipmi2mqtt.
//
// The Bridge owns the process's discovery state: the monotonically growing
// set of sensor slugs that have already had a retained Home Assistant
// discovery config published. Per cycle it publishes:
//
//   - one discovery config for each sensor not yet announced
//   - one state update for every reading, unconditionally
//
// The bridge performs no network I/O itself; publishing is delegated to a
// Publisher (the infrastructure MQTT client in production, a fake in tests).
// All failures inside a cycle are logged and contained - the loop never
// stops until its context is cancelled.
package bridge
