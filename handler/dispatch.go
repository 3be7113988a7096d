package handler

import (
	"bytes"

	"github.com/vweist/robomaster-can/message"
	"github.com/vweist/robomaster-can/protocol"
)

// dispatchRow is one entry of the telemetry dispatch filter: a message only
// reaches the state callback if its device id, type, and (when present)
// payload prefix all match one row.
type dispatchRow struct {
	deviceID uint32
	typ      uint16
	prefix   []byte
}

// reassemblyDeviceIDs lists every source device id the receiver maintains a
// per-device reassembly buffer for.
var reassemblyDeviceIDs = []uint32{
	protocol.DeviceIDMotionController,
	protocol.DeviceIDGimbal,
	protocol.DeviceIDHitDetector1,
	protocol.DeviceIDHitDetector2,
	protocol.DeviceIDHitDetector3,
	protocol.DeviceIDHitDetector4,
}

var dispatchTable = []dispatchRow{
	{protocol.DeviceIDMotionController, protocol.TelemetryTypeMotion, []byte{0x20, 0x48, 0x08, 0x00}},
	{protocol.DeviceIDGimbal, protocol.TelemetryTypeGimbal, []byte{0x00, 0x3f, 0x76}},
	{protocol.DeviceIDHitDetector1, protocol.TelemetryTypeDetector1, nil},
	{protocol.DeviceIDHitDetector2, protocol.TelemetryTypeDetector2, nil},
	{protocol.DeviceIDHitDetector3, protocol.TelemetryTypeDetector3, nil},
	{protocol.DeviceIDHitDetector4, protocol.TelemetryTypeDetector4, nil},
}

// accepts reports whether msg matches one of the dispatch table rows and
// should be forwarded to the state callback.
func accepts(msg message.Message) bool {
	for _, row := range dispatchTable {
		if msg.DeviceID() != row.deviceID || msg.Type() != row.typ {
			continue
		}
		if len(row.prefix) == 0 {
			return true
		}
		payload := msg.Payload()
		if len(payload) >= len(row.prefix) && bytes.Equal(payload[:len(row.prefix)], row.prefix) {
			return true
		}
	}
	return false
}
