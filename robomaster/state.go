package robomaster

import (
	"sync/atomic"

	"github.com/vweist/robomaster-can/message"
	"github.com/vweist/robomaster-can/protocol"
	"github.com/vweist/robomaster-can/telemetry"
)

// stateStore publishes the aggregated telemetry snapshot to readers without
// locking: each update copies the current snapshot, mutates only the
// subfields its source message produced, and atomically swaps in the copy,
// so a concurrent snapshot() never observes a torn record and stale fields
// from devices that have gone silent are preserved.
type stateStore struct {
	ptr atomic.Pointer[telemetry.State]
}

func newStateStore() *stateStore {
	s := &stateStore{}
	s.ptr.Store(&telemetry.State{})
	return s
}

func (s *stateStore) snapshot() telemetry.State {
	return *s.ptr.Load()
}

func (s *stateStore) mutate(fn func(*telemetry.State)) {
	cur := *s.ptr.Load()
	fn(&cur)
	cur.Active = true
	s.ptr.Store(&cur)
}

// applyMotion updates every subfield carried by a motion-controller
// telemetry frame.
func (s *stateStore) applyMotion(msg message.Message) {
	s.mutate(func(st *telemetry.State) {
		st.Velocity = telemetry.DecodeVelocity(telemetry.OffsetVelocity, msg)
		st.Battery = telemetry.DecodeBattery(telemetry.OffsetBattery, msg)
		st.ESC = telemetry.DecodeESC(telemetry.OffsetESC, msg)
		st.IMU = telemetry.DecodeIMU(telemetry.OffsetIMU, msg)
		st.Attitude = telemetry.DecodeAttitude(telemetry.OffsetAttitude, msg)
		st.Position = telemetry.DecodePosition(telemetry.OffsetPosition, msg)
	})
}

// applyGimbal updates the gimbal attitude subfield from a gimbal telemetry
// frame.
func (s *stateStore) applyGimbal(msg message.Message) {
	s.mutate(func(st *telemetry.State) {
		st.Gimbal = telemetry.DecodeGimbal(telemetry.OffsetGimbal, msg)
	})
}

// applyDetector updates exactly one of the four hit-detector subfields,
// selected by the source device id, leaving the other three untouched.
func (s *stateStore) applyDetector(msg message.Message) {
	idx, ok := detectorIndex(msg.DeviceID())
	if !ok {
		return
	}
	s.mutate(func(st *telemetry.State) {
		st.Detector[idx] = telemetry.DecodeDetector(telemetry.OffsetDetector, msg)
	})
}

func detectorIndex(deviceID uint32) (int, bool) {
	switch deviceID {
	case protocol.DeviceIDHitDetector1:
		return 0, true
	case protocol.DeviceIDHitDetector2:
		return 1, true
	case protocol.DeviceIDHitDetector3:
		return 2, true
	case protocol.DeviceIDHitDetector4:
		return 3, true
	default:
		return 0, false
	}
}
