// Package robomaster is the user-facing facade: it owns the message
// handler, runs the fixed boot sequence, and exposes typed command setters
// plus a telemetry snapshot.
package robomaster

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/vweist/robomaster-can/handler"
	"github.com/vweist/robomaster-can/message"
	"github.com/vweist/robomaster-can/protocol"
	"github.com/vweist/robomaster-can/telemetry"
	"github.com/vweist/robomaster-can/transport"
)

// RoboMaster drives one robot over one CAN bus connection.
type RoboMaster struct {
	handler  *handler.Handler
	state    *stateStore
	sequence atomic.Uint32
}

// Open opens a SocketCAN interface and brings a RoboMaster driver up on it,
// running the boot sequence before returning.
func Open(iface string, logger *slog.Logger) (*RoboMaster, error) {
	bus, err := transport.OpenSocketCAN(iface)
	if err != nil {
		return nil, fmt.Errorf("robomaster: open %s: %w", iface, err)
	}
	return newWithBus(bus, logger), nil
}

// New wraps an already-open Bus (typically a transport.LoopbackBus endpoint
// in tests or simulation), running the boot sequence before returning.
func New(bus transport.Bus, logger *slog.Logger) *RoboMaster {
	return newWithBus(bus, logger)
}

func newWithBus(bus transport.Bus, logger *slog.Logger) *RoboMaster {
	r := &RoboMaster{
		handler: handler.New(bus, logger),
		state:   newStateStore(),
	}
	r.handler.SetCallback(r.onMessage)
	r.handler.Start()
	r.bootSequence()
	return r
}

// onMessage routes a dispatched telemetry message to the subfield-
// preserving state update for its source device.
func (r *RoboMaster) onMessage(msg message.Message) {
	switch msg.DeviceID() {
	case protocol.DeviceIDMotionController:
		r.state.applyMotion(msg)
	case protocol.DeviceIDGimbal:
		r.state.applyGimbal(msg)
	case protocol.DeviceIDHitDetector1, protocol.DeviceIDHitDetector2, protocol.DeviceIDHitDetector3, protocol.DeviceIDHitDetector4:
		r.state.applyDetector(msg)
	}
}

// bootSequence enqueues the five fixed configuration frames the controller
// expects immediately after the bus opens, in order and with sequence
// numbers 0 through 4: chassis, chassis, chassis, gimbal, LED.
func (r *RoboMaster) bootSequence() {
	r.handler.PushMessage(message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeChassis, 0x00, protocol.BootChassisPrimary()))
	r.handler.PushMessage(message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeChassis, 0x01, protocol.BootChassisSecondary()))
	r.handler.PushMessage(message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeChassis, 0x02, protocol.BootChassisSub()))
	r.handler.PushMessage(message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeGimbal, 0x03, protocol.BootGimbalSub()))
	r.handler.PushMessage(message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeLED, 0x04, protocol.BootLEDReset()))
}

// IsRunning reports whether the message pipeline is still active.
func (r *RoboMaster) IsRunning() bool {
	return r.handler.IsRunning()
}

// State returns the latest aggregated telemetry snapshot.
func (r *RoboMaster) State() telemetry.State {
	return r.state.snapshot()
}

// Close stops the message pipeline and releases the underlying bus.
func (r *RoboMaster) Close() error {
	return r.handler.Close()
}
