// Package mqtt provides MQTT client connectivity for the ipmi2mqtt bridge.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for bridge availability
//   - Connection health monitoring
//
// # Architecture
//
// The bridge is a pure publisher: it announces sensor entities via Home
// Assistant's MQTT discovery convention and pushes state updates every poll
// cycle. It never subscribes to anything, so the subscription half of the
// paho API is deliberately not wrapped here.
//
//	ipmitool → ipmi2mqtt → MQTT Broker → Home Assistant
//
// # Security Considerations
//
//   - TLS is recommended when the broker is not on the local host
//   - Credentials are validated against broker ACL
//   - Message payloads are not encrypted beyond TLS transport
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT, statusTopic)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.PublishRetained("homeassistant/sensor/ipmi/ipmi_cpu_temp/state", []byte("45"))
package mqtt
