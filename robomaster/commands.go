package robomaster

import (
	"github.com/vweist/robomaster-can/internal/clampx"
	"github.com/vweist/robomaster-can/message"
	"github.com/vweist/robomaster-can/protocol"
)

// nextSequence returns the next outbound sequence number from a single
// counter shared by every command family. SetChassisMode, SetGimbalMode and
// SetGimbalHibernate do not use it; they always send sequence 0.
func (r *RoboMaster) nextSequence() uint16 {
	return uint16(r.sequence.Add(1) - 1)
}

func (r *RoboMaster) push(typ uint16, sequence uint16, payload []byte) {
	r.handler.PushMessage(message.New(protocol.DeviceIDIntelliController, typ, sequence, payload))
}

// SetChassisMode enables or disables chassis movement.
func (r *RoboMaster) SetChassisMode(mode protocol.ChassisMode) {
	payload := protocol.ChassisModeTemplate()
	payload[3] = uint8(mode)
	r.push(protocol.DeviceTypeChassis, 0x00, payload)
}

// SetChassisRPM drives each wheel directly in RPM, clamped to [-1000, 1000].
// frontLeft and rearLeft are sign-flipped on the wire to match the
// controller's own motor orientation.
func (r *RoboMaster) SetChassisRPM(frontRight, frontLeft, rearLeft, rearRight int16) {
	fr := clampx.Clamp(frontRight, -1000, 1000)
	fl := clampx.Clamp(frontLeft, -1000, 1000)
	rl := clampx.Clamp(rearLeft, -1000, 1000)
	rr := clampx.Clamp(rearRight, -1000, 1000)

	payload := protocol.ChassisRPMTemplate()
	msg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeChassis, r.nextSequence(), payload)
	msg.SetInt16(3, fr)
	msg.SetInt16(5, -fl)
	msg.SetInt16(7, -rl)
	msg.SetInt16(9, rr)
	r.handler.PushMessage(msg)
}

// SetChassisVelocity drives the chassis by linear/angular velocity: linearX
// and linearY in [-3.5, 3.5] m/s, angularZ in [-600, 600] deg/s.
func (r *RoboMaster) SetChassisVelocity(linearX, linearY, angularZ float32) {
	lx := clampx.Clamp(linearX, -3.5, 3.5)
	ly := clampx.Clamp(linearY, -3.5, 3.5)
	az := clampx.Clamp(angularZ, -600.0, 600.0)

	payload := protocol.ChassisVelocityTemplate()
	msg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeChassis, r.nextSequence(), payload)
	msg.SetFloat32(3, lx)
	msg.SetFloat32(7, ly)
	msg.SetFloat32(11, az)
	r.handler.PushMessage(msg)
}

// SetChassisPosition moves the chassis to an absolute position: linearX and
// linearY in [-500, 500] (cm), angularZ in [-18000, 18000] (degrees*100).
func (r *RoboMaster) SetChassisPosition(linearX, linearY, angularZ int16) {
	lx := clampx.Clamp(linearX, -500, 500)
	ly := clampx.Clamp(linearY, -500, 500)
	az := clampx.Clamp(angularZ, -18000, 18000)

	payload := protocol.ChassisPositionTemplate()
	msg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeChassis, r.nextSequence(), payload)
	msg.SetInt16(7, lx)
	msg.SetInt16(9, ly)
	msg.SetInt16(11, az)
	msg.SetInt16(14, 0x12c)
	r.handler.PushMessage(msg)
}

// SetGimbalMode selects free or chassis-follow gimbal yaw tracking.
func (r *RoboMaster) SetGimbalMode(mode protocol.GimbalMode) {
	payload := protocol.GimbalModeTemplate()
	payload[3] = uint8(mode)
	r.push(protocol.DeviceTypeGimbal, 0x00, payload)
}

// SetGimbalHibernate suspends or resumes gimbal motor power.
func (r *RoboMaster) SetGimbalHibernate(state protocol.GimbalHibernate) {
	msg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeGimbal, 0x00, protocol.GimbalHibernateTemplate())
	msg.SetUint16(3, uint16(state))
	r.handler.PushMessage(msg)
}

// SetGimbalMotion moves the gimbal by rate, pitch and yaw clamped to
// [-1000, 1000].
func (r *RoboMaster) SetGimbalMotion(pitch, yaw int16) {
	p := clampx.Clamp(pitch, -1000, 1000)
	y := clampx.Clamp(yaw, -1000, 1000)

	payload := protocol.GimbalDegreeTemplate()
	msg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeGimbal, r.nextSequence(), payload)
	msg.SetInt16(5, p)
	msg.SetInt16(7, y)
	r.handler.PushMessage(msg)
}

// SetGimbalVelocity moves the gimbal by velocity, pitch and yaw clamped to
// [-1000, 1000].
func (r *RoboMaster) SetGimbalVelocity(pitch, yaw int16) {
	p := clampx.Clamp(pitch, -1000, 1000)
	y := clampx.Clamp(yaw, -1000, 1000)

	payload := protocol.GimbalVelocityTemplate()
	msg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeGimbal, r.nextSequence(), payload)
	msg.SetInt16(3, y)
	msg.SetInt16(7, p)
	r.handler.PushMessage(msg)
}

// SetGimbalPosition moves the gimbal to an absolute position. pitch is
// clamped to [-500, 500], yaw to [-2500, 2500], both accelerations to
// [10, 500]. 150 is a reasonable acceleration for both axes when the
// caller has no preference.
func (r *RoboMaster) SetGimbalPosition(pitch, yaw int16, pitchAcceleration, yawAcceleration uint16) {
	p := clampx.Clamp(pitch, -500, 500)
	y := clampx.Clamp(yaw, -2500, 2500)
	pa := clampx.Clamp(pitchAcceleration, 10, 500)
	ya := clampx.Clamp(yawAcceleration, 10, 500)

	payload := protocol.GimbalPositionTemplate()
	msg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeGimbal, r.nextSequence(), payload)
	msg.SetInt16(6, y)
	msg.SetInt16(10, p)
	msg.SetUint16(14, ya)
	msg.SetUint16(18, pa)
	r.handler.PushMessage(msg)
}

// SetGimbalRecenter returns the gimbal to center at the given pitch/yaw
// rates, each clamped to [10, 500].
func (r *RoboMaster) SetGimbalRecenter(pitch, yaw int16) {
	p := clampx.Clamp(pitch, 10, 500)
	y := clampx.Clamp(yaw, 10, 500)

	payload := protocol.GimbalRecenterTemplate()
	msg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeGimbal, r.nextSequence(), payload)
	msg.SetInt16(6, y)
	msg.SetInt16(10, p)
	r.handler.PushMessage(msg)
}

// SetBlasterMode fires the blaster in the given mode, count clamped to
// [1, 8]. The command is a fixed two-message burst: a mode/count frame
// followed by an LED-sync frame whose timing fields scale with count.
func (r *RoboMaster) SetBlasterMode(mode protocol.BlasterMode, count uint8) {
	c := clampx.Clamp(count, 1, 8)

	modeMsg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeBlaster, r.nextSequence(), protocol.BlasterModeTemplate())
	modeMsg.SetUint8(3, uint8(mode)<<4|c&0x0f)

	ledMsg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeBlaster, r.nextSequence(), protocol.BlasterLEDTemplate())
	timing := uint16(c) * 100
	ledMsg.SetUint16(8, timing)
	ledMsg.SetUint16(10, timing)

	r.handler.PushMessage(modeMsg)
	r.handler.PushMessage(ledMsg)
}

// SetLEDMode configures LED color and timing for the selected mask. upTime
// and downTime are clamped to [0, 60000] ms and forced to zero in static
// mode, which has no rise/fall phase.
func (r *RoboMaster) SetLEDMode(mode protocol.LEDMode, mask protocol.LEDMask, red, green, blue uint8, upTime, downTime uint16) {
	up := clampx.Clamp(upTime, 0, 60000)
	down := clampx.Clamp(downTime, 0, 60000)
	if mode == protocol.LEDModeStatic {
		up, down = 0, 0
	}

	payload := protocol.LEDModeTemplate()
	msg := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeLED, r.nextSequence(), payload)
	msg.SetUint8(3, uint8(mode))
	msg.SetUint8(6, red)
	msg.SetUint8(7, green)
	msg.SetUint8(8, blue)
	msg.SetUint16(10, up)
	msg.SetUint16(12, down)
	msg.SetUint16(14, uint16(mask))
	r.handler.PushMessage(msg)
}
