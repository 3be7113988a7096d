// Package telemetry decodes periodic state frames from the motion
// controller, gimbal, and hit detectors into typed records.
package telemetry

import "time"

// Gimbal is the gimbal's reported pitch/yaw, in degrees*10.
type Gimbal struct {
	Pitch int16
	Yaw   int16
}

// ESC reports the four wheel drive speed controllers, ordered front-right,
// front-left, rear-left, rear-right.
type ESC struct {
	Speed     [4]int16
	Angle     [4]int16
	Timestamp [4]uint32
	State     [4]uint8
}

// IMU is raw accelerometer (g) and gyroscope (rad/s) readings.
type IMU struct {
	AccX, AccY, AccZ   float32
	GyroX, GyroY, GyroZ float32
}

// Attitude is the chassis orientation in degrees.
type Attitude struct {
	Roll  float32
	Pitch float32
	Yaw   float32
}

// Battery is the chassis battery state.
type Battery struct {
	ADCMilliVolt     uint16
	TemperatureDeci  uint16
	CurrentMilliAmp  int32
	Percent          uint8
	Reserved         uint8
}

// Velocity is the chassis velocity in both world and body frames, in m/s.
type Velocity struct {
	VgX, VgY, VgZ float32
	VbX, VbY, VbZ float32
}

// Position is the chassis position relative to its power-on origin.
type Position struct {
	X, Y, Z float32
}

// Detector is one hit-detector pad reading. HitTime is stamped locally at
// decode time since the wire frame carries no timestamp of its own.
type Detector struct {
	HitTime   time.Time
	Intensity uint16
}

// State is the aggregated snapshot the robomaster facade publishes from the
// telemetry the Handler dispatches. Active becomes
// true on the first valid telemetry frame and stays true thereafter; each
// field is only overwritten by the telemetry kind that produces it, so a
// device that has gone silent leaves its last known values in place.
type State struct {
	Active   bool
	Gimbal   Gimbal
	Battery  Battery
	ESC      ESC
	IMU      IMU
	Velocity Velocity
	Position Position
	Attitude Attitude
	Detector [4]Detector
}
