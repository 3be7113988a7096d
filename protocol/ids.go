// Package protocol holds the wire-level constants of the proprietary
// RoboMaster command protocol: device identifiers, frame type tags, mode
// enumerations and the literal command/boot payload templates. Nothing in
// this package depends on the transport, message framing, or handler
// machinery built on top of it.
package protocol

// Device identifiers are the 11-bit CAN ids. A message's device id is also
// the arbitration id of every CAN frame it travels in; commands and
// heartbeats carry the intelligent controller's id.
const (
	DeviceIDIntelliController uint32 = 0x201
	DeviceIDMotionController  uint32 = 0x202
	DeviceIDGimbal            uint32 = 0x203
	DeviceIDHitDetector1      uint32 = 0x211
	DeviceIDHitDetector2      uint32 = 0x212
	DeviceIDHitDetector3      uint32 = 0x213
	DeviceIDHitDetector4      uint32 = 0x214
)

// Device types distinguish the subsystem a command message targets.
const (
	DeviceTypeChassis uint16 = 0xc3c9
	DeviceTypeGimbal  uint16 = 0x04c9
	DeviceTypeBlaster uint16 = 0x17c9
	DeviceTypeLED     uint16 = 0x18c9
)

// Telemetry types tag the periodic state frames emitted by the motion
// controller, gimbal, and hit detectors.
const (
	TelemetryTypeMotion     uint16 = 0x0903
	TelemetryTypeGimbal     uint16 = 0x0904
	TelemetryTypeDetector1  uint16 = 0x0938
	TelemetryTypeDetector2  uint16 = 0x0958
	TelemetryTypeDetector3  uint16 = 0x0978
	TelemetryTypeDetector4  uint16 = 0x0998
)

// BlasterMode selects the projectile type fired.
type BlasterMode uint8

const (
	BlasterModeGel BlasterMode = 0x00
	BlasterModeIR  BlasterMode = 0x01
)

// ChassisMode enables or disables chassis movement.
type ChassisMode uint8

const (
	ChassisModeDisable ChassisMode = 0x00
	ChassisModeEnable  ChassisMode = 0x01
)

// GimbalMode selects whether the gimbal follows the chassis yaw.
type GimbalMode uint8

const (
	GimbalModeFree   GimbalMode = 0x00
	GimbalModeFollow GimbalMode = 0x02
)

// GimbalHibernate suspends or resumes gimbal motor power.
type GimbalHibernate uint16

const (
	GimbalStateSuspend GimbalHibernate = 0x2ab5
	GimbalStateResume  GimbalHibernate = 0x7ef2
)

// LEDMode selects the lighting pattern.
type LEDMode uint8

const (
	LEDModeStatic  LEDMode = 0x71
	LEDModeBreathe LEDMode = 0x72
	LEDModeFlash   LEDMode = 0x73
)

// LEDMask selects which LED segments a command applies to.
type LEDMask uint8

const (
	LEDMaskAll          LEDMask = 0x3f
	LEDMaskBottomAll    LEDMask = 0x0f
	LEDMaskBottomBack   LEDMask = 0x01
	LEDMaskBottomFront  LEDMask = 0x02
	LEDMaskBottomLeft   LEDMask = 0x04
	LEDMaskBottomRight  LEDMask = 0x08
	LEDMaskTopLeft      LEDMask = 0x10
	LEDMaskTopRight     LEDMask = 0x20
	LEDMaskTopAll       LEDMask = 0x30
)
