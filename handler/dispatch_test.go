package handler

import (
	"testing"

	"github.com/vweist/robomaster-can/message"
	"github.com/vweist/robomaster-can/protocol"
)

func TestAcceptsMotionTelemetryRequiresPrefix(t *testing.T) {
	good := message.New(protocol.DeviceIDMotionController, protocol.TelemetryTypeMotion, 0, append([]byte{0x20, 0x48, 0x08, 0x00}, make([]byte, 4)...))
	if !accepts(good) {
		t.Fatalf("accepts() = false for valid motion telemetry prefix")
	}

	bad := message.New(protocol.DeviceIDMotionController, protocol.TelemetryTypeMotion, 0, append([]byte{0x00, 0x00, 0x00, 0x00}, make([]byte, 4)...))
	if accepts(bad) {
		t.Fatalf("accepts() = true for mismatched motion telemetry prefix")
	}
}

func TestAcceptsGimbalTelemetryRequiresPrefix(t *testing.T) {
	good := message.New(protocol.DeviceIDGimbal, protocol.TelemetryTypeGimbal, 0, []byte{0x00, 0x3f, 0x76, 0x00})
	if !accepts(good) {
		t.Fatalf("accepts() = false for valid gimbal telemetry prefix")
	}
	bad := message.New(protocol.DeviceIDGimbal, protocol.TelemetryTypeGimbal, 0, []byte{0x01, 0x3f, 0x76, 0x00})
	if accepts(bad) {
		t.Fatalf("accepts() = true for mismatched gimbal telemetry prefix")
	}
}

func TestAcceptsHitDetectorsNoPrefixRequired(t *testing.T) {
	cases := []struct {
		id  uint32
		typ uint16
	}{
		{protocol.DeviceIDHitDetector1, protocol.TelemetryTypeDetector1},
		{protocol.DeviceIDHitDetector2, protocol.TelemetryTypeDetector2},
		{protocol.DeviceIDHitDetector3, protocol.TelemetryTypeDetector3},
		{protocol.DeviceIDHitDetector4, protocol.TelemetryTypeDetector4},
	}
	for _, tc := range cases {
		msg := message.New(tc.id, tc.typ, 0, []byte{0x00, 0x00, 0x00, 0x00})
		if !accepts(msg) {
			t.Fatalf("accepts() = false for hit detector device %#x type %#x", tc.id, tc.typ)
		}
	}
}

func TestAcceptsRejectsUnknownDeviceOrType(t *testing.T) {
	msg := message.New(protocol.DeviceIDMotionController, 0x1234, 0, []byte{0x20, 0x48, 0x08, 0x00})
	if accepts(msg) {
		t.Fatalf("accepts() = true for unrecognized type")
	}
}
