package protocol

// Fixed payload templates for boot and command messages. Each getter returns
// a fresh copy so callers can safely mutate individual fields in place
// before handing the result to Message.New.

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

var bootChassisPrimary = []byte{0x40, 0x48, 0x04, 0x00, 0x09, 0x00}
var bootChassisSecondary = []byte{0x40, 0x48, 0x01, 0x09, 0x00, 0x00, 0x00, 0x03}
var bootChassisSub = []byte{
	0x40, 0x48, 0x03, 0x09, 0x01, 0x03, 0x00, 0x07, 0xa7, 0x02, 0x29, 0x88,
	0x03, 0x00, 0x02, 0x00, 0x66, 0x3e, 0x3e, 0x4c, 0x03, 0x00, 0x02, 0x00,
	0xfb, 0xdc, 0xf5, 0xd7, 0x03, 0x00, 0x02, 0x00, 0x09, 0xa3, 0x26, 0xe2,
	0x03, 0x00, 0x02, 0x00, 0xf4, 0x1d, 0x1c, 0xdc, 0x03, 0x00, 0x02, 0x00,
	0x42, 0xee, 0x13, 0x1d, 0x03, 0x00, 0x02, 0x00, 0xb3, 0xf7, 0xe6, 0x47,
	0x03, 0x00, 0x02, 0x00, 0x32, 0x00,
}
var bootLEDReset = []byte{0x00, 0x3f, 0x32, 0x01, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
var bootGimbalSub = []byte{0x40, 0x04, 0x1e, 0x05, 0xff}

var chassisModeTemplate = []byte{0x40, 0x3f, 0x19, 0x00}
var chassisRPMTemplate = []byte{0x40, 0x3f, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
var chassisVelocityTemplate = []byte{0x00, 0x3f, 0x21, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
var chassisPositionTemplate = []byte{0x00, 0x3f, 0x25, 0x02, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x32, 0x00, 0x00}

var gimbalModeTemplate = []byte{0x40, 0x04, 0x4c, 0x00}
var gimbalHibernateTemplate = []byte{0x20, 0x04, 0x0d, 0x00, 0x00}
var gimbalDegreeTemplate = []byte{0x00, 0x04, 0x69, 0x08, 0x05, 0x00, 0x00, 0x00, 0x00}
var gimbalVelocityTemplate = []byte{0x00, 0x04, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xcd}
var gimbalPositionTemplate = []byte{0x00, 0x3f, 0xb0, 0x03, 0x08, 0x25, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
var gimbalRecenterTemplate = []byte{0x00, 0x3f, 0xb2, 0x01, 0x08, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

var blasterModeTemplate = []byte{0x00, 0x3f, 0x51, 0x00}
var blasterLEDTemplate = []byte{0x00, 0x3f, 0x55, 0x73, 0xff, 0xff, 0xff, 0x01, 0x00, 0x00, 0x00, 0x00}
var ledModeTemplate = []byte{0x00, 0x3f, 0x32, 0x00, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

var heartbeatPayload = []byte{0x00, 0x3f, 0x60, 0x00, 0x04, 0x20, 0x00, 0x01, 0x00, 0x40, 0x00, 0x02, 0x10, 0x00, 0x03, 0x00, 0x00}

// BootChassisPrimary returns the first boot-sequence chassis payload.
func BootChassisPrimary() []byte { return cloneBytes(bootChassisPrimary) }

// BootChassisSecondary returns the second boot-sequence chassis payload.
func BootChassisSecondary() []byte { return cloneBytes(bootChassisSecondary) }

// BootChassisSub returns the third boot-sequence chassis payload.
func BootChassisSub() []byte { return cloneBytes(bootChassisSub) }

// BootLEDReset returns the boot-sequence LED reset payload.
func BootLEDReset() []byte { return cloneBytes(bootLEDReset) }

// BootGimbalSub returns the boot-sequence gimbal payload.
func BootGimbalSub() []byte { return cloneBytes(bootGimbalSub) }

// ChassisModeTemplate returns the set_chassis_mode command payload template.
func ChassisModeTemplate() []byte { return cloneBytes(chassisModeTemplate) }

// ChassisRPMTemplate returns the set_chassis_rpm command payload template.
func ChassisRPMTemplate() []byte { return cloneBytes(chassisRPMTemplate) }

// ChassisVelocityTemplate returns the set_chassis_velocity command payload template.
func ChassisVelocityTemplate() []byte { return cloneBytes(chassisVelocityTemplate) }

// ChassisPositionTemplate returns the set_chassis_position command payload template.
func ChassisPositionTemplate() []byte { return cloneBytes(chassisPositionTemplate) }

// GimbalModeTemplate returns the set_gimbal_mode command payload template.
func GimbalModeTemplate() []byte { return cloneBytes(gimbalModeTemplate) }

// GimbalHibernateTemplate returns the set_gimbal_state (hibernate) command payload template.
func GimbalHibernateTemplate() []byte { return cloneBytes(gimbalHibernateTemplate) }

// GimbalDegreeTemplate returns the set_gimbal_degree command payload template.
func GimbalDegreeTemplate() []byte { return cloneBytes(gimbalDegreeTemplate) }

// GimbalVelocityTemplate returns the set_gimbal_velocity command payload template.
func GimbalVelocityTemplate() []byte { return cloneBytes(gimbalVelocityTemplate) }

// GimbalPositionTemplate returns the set_gimbal_position command payload template.
func GimbalPositionTemplate() []byte { return cloneBytes(gimbalPositionTemplate) }

// GimbalRecenterTemplate returns the set_gimbal_recenter command payload template.
func GimbalRecenterTemplate() []byte { return cloneBytes(gimbalRecenterTemplate) }

// BlasterModeTemplate returns the first set_blaster command payload template.
func BlasterModeTemplate() []byte { return cloneBytes(blasterModeTemplate) }

// BlasterLEDTemplate returns the second set_blaster command payload template.
func BlasterLEDTemplate() []byte { return cloneBytes(blasterLEDTemplate) }

// LEDModeTemplate returns the set_led command payload template.
func LEDModeTemplate() []byte { return cloneBytes(ledModeTemplate) }

// HeartbeatPayload returns the fixed 10ms keep-alive payload.
func HeartbeatPayload() []byte { return cloneBytes(heartbeatPayload) }
