package telemetry

import (
	"time"

	"github.com/vweist/robomaster-can/message"
)

// Motion-controller, gimbal and hit-detector payload offsets, fixed by the
// protocol.
const (
	OffsetVelocity = 27
	OffsetBattery  = 51
	OffsetESC      = 61
	OffsetIMU      = 97
	OffsetAttitude = 121
	OffsetPosition = 133

	OffsetGimbal   = 5
	OffsetDetector = 4
)

// DecodeGimbal decodes a gimbal attitude record at offset from a gimbal
// telemetry frame. It returns the zero value if the payload is too short.
func DecodeGimbal(offset int, m message.Message) Gimbal {
	var g Gimbal
	if offset+4 > m.PayloadLen() {
		return g
	}
	g.Pitch = m.Int16(offset)
	g.Yaw = m.Int16(offset + 2)
	return g
}

// DecodeESC decodes the four-wheel ESC record at offset from a motion
// controller telemetry frame.
func DecodeESC(offset int, m message.Message) ESC {
	var e ESC
	if offset+36 > m.PayloadLen() {
		return e
	}
	for i := 0; i < 4; i++ {
		e.Speed[i] = m.Int16(offset + i*2)
		e.Angle[i] = m.Int16(offset + 8 + i*2)
		e.Timestamp[i] = m.Uint32(offset + 16 + i*4)
		e.State[i] = m.Uint8(offset + 32 + i)
	}
	return e
}

// DecodeIMU decodes the IMU record at offset from a motion controller
// telemetry frame.
func DecodeIMU(offset int, m message.Message) IMU {
	var v IMU
	if offset+24 > m.PayloadLen() {
		return v
	}
	v.AccX = m.Float32(offset)
	v.AccY = m.Float32(offset + 4)
	v.AccZ = m.Float32(offset + 8)
	v.GyroX = m.Float32(offset + 12)
	v.GyroY = m.Float32(offset + 16)
	v.GyroZ = m.Float32(offset + 20)
	return v
}

// DecodeAttitude decodes the attitude record at offset from a motion
// controller telemetry frame. The wire order is yaw, pitch, roll even
// though the record's fields are declared roll, pitch, yaw.
func DecodeAttitude(offset int, m message.Message) Attitude {
	var a Attitude
	if offset+12 > m.PayloadLen() {
		return a
	}
	a.Yaw = m.Float32(offset)
	a.Pitch = m.Float32(offset + 4)
	a.Roll = m.Float32(offset + 8)
	return a
}

// DecodeBattery decodes the battery record at offset from a motion
// controller telemetry frame.
func DecodeBattery(offset int, m message.Message) Battery {
	var b Battery
	if offset+10 > m.PayloadLen() {
		return b
	}
	b.ADCMilliVolt = m.Uint16(offset)
	b.TemperatureDeci = m.Uint16(offset + 2)
	b.CurrentMilliAmp = m.Int32(offset + 4)
	b.Percent = m.Uint8(offset + 8)
	b.Reserved = m.Uint8(offset + 9)
	return b
}

// DecodeVelocity decodes the velocity record at offset from a motion
// controller telemetry frame.
func DecodeVelocity(offset int, m message.Message) Velocity {
	var v Velocity
	if offset+24 > m.PayloadLen() {
		return v
	}
	v.VgX = m.Float32(offset)
	v.VgY = m.Float32(offset + 4)
	v.VgZ = m.Float32(offset + 8)
	v.VbX = m.Float32(offset + 12)
	v.VbY = m.Float32(offset + 16)
	v.VbZ = m.Float32(offset + 20)
	return v
}

// DecodePosition decodes the position record at offset from a motion
// controller telemetry frame.
func DecodePosition(offset int, m message.Message) Position {
	var p Position
	if offset+12 > m.PayloadLen() {
		return p
	}
	p.X = m.Float32(offset)
	p.Y = m.Float32(offset + 4)
	p.Z = m.Float32(offset + 8)
	return p
}

// DecodeDetector decodes a hit-detector record at offset from a hit
// detector telemetry frame. HitTime is stamped at decode time.
func DecodeDetector(offset int, m message.Message) Detector {
	var d Detector
	if offset+4 > m.PayloadLen() {
		return d
	}
	d.Intensity = m.Uint16(offset)
	d.HitTime = time.Now()
	return d
}
