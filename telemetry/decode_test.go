package telemetry

import (
	"math"
	"testing"

	"github.com/vweist/robomaster-can/message"
)

func le16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
func leFloat(f float32) []byte { return le32(math.Float32bits(f)) }

func TestDecodeGimbal(t *testing.T) {
	payload := make([]byte, OffsetGimbal+4)
	pitchRaw := int16(-450)
	copy(payload[OffsetGimbal:], le16(uint16(pitchRaw)))
	copy(payload[OffsetGimbal+2:], le16(uint16(int16(900))))
	msg := message.New(0x203, 0x0904, 0, payload)

	got := DecodeGimbal(OffsetGimbal, msg)
	if got.Pitch != -450 || got.Yaw != 900 {
		t.Fatalf("DecodeGimbal() = %+v", got)
	}
}

func TestDecodeGimbalTooShort(t *testing.T) {
	msg := message.New(0x203, 0x0904, 0, make([]byte, OffsetGimbal+2))
	if got := DecodeGimbal(OffsetGimbal, msg); got != (Gimbal{}) {
		t.Fatalf("DecodeGimbal() on short payload = %+v, want zero value", got)
	}
}

func TestDecodeAttitudeWireOrder(t *testing.T) {
	payload := make([]byte, OffsetAttitude+12)
	copy(payload[OffsetAttitude:], leFloat(10))
	copy(payload[OffsetAttitude+4:], leFloat(20))
	copy(payload[OffsetAttitude+8:], leFloat(30))
	msg := message.New(0x202, 0x0903, 0, payload)

	got := DecodeAttitude(OffsetAttitude, msg)
	want := Attitude{Yaw: 10, Pitch: 20, Roll: 30}
	if got != want {
		t.Fatalf("DecodeAttitude() = %+v, want %+v", got, want)
	}
}

func TestDecodeESC(t *testing.T) {
	payload := make([]byte, OffsetESC+36)
	for i := 0; i < 4; i++ {
		copy(payload[OffsetESC+i*2:], le16(uint16(int16(100+i))))
		copy(payload[OffsetESC+8+i*2:], le16(uint16(int16(200+i))))
		copy(payload[OffsetESC+16+i*4:], le32(uint32(1000+i)))
		payload[OffsetESC+32+i] = byte(i)
	}
	msg := message.New(0x202, 0x0903, 0, payload)

	got := DecodeESC(OffsetESC, msg)
	for i := 0; i < 4; i++ {
		if got.Speed[i] != int16(100+i) || got.Angle[i] != int16(200+i) {
			t.Fatalf("DecodeESC() wheel %d = %+v", i, got)
		}
		if got.Timestamp[i] != uint32(1000+i) || got.State[i] != byte(i) {
			t.Fatalf("DecodeESC() wheel %d = %+v", i, got)
		}
	}
}

func TestDecodeBattery(t *testing.T) {
	payload := make([]byte, OffsetBattery+10)
	copy(payload[OffsetBattery:], le16(16800))
	copy(payload[OffsetBattery+2:], le16(250))
	current := int32(-1500)
	copy(payload[OffsetBattery+4:], le32(uint32(current)))
	payload[OffsetBattery+8] = 87
	payload[OffsetBattery+9] = 0xff

	msg := message.New(0x202, 0x0903, 0, payload)
	got := DecodeBattery(OffsetBattery, msg)
	want := Battery{ADCMilliVolt: 16800, TemperatureDeci: 250, CurrentMilliAmp: -1500, Percent: 87, Reserved: 0xff}
	if got != want {
		t.Fatalf("DecodeBattery() = %+v, want %+v", got, want)
	}
}

func TestDecodeDetectorStampsTime(t *testing.T) {
	payload := make([]byte, OffsetDetector+4)
	copy(payload[OffsetDetector:], le16(1234))
	msg := message.New(0x213, 0x0978, 0, payload)

	got := DecodeDetector(OffsetDetector, msg)
	if got.Intensity != 1234 {
		t.Fatalf("DecodeDetector().Intensity = %d, want 1234", got.Intensity)
	}
	if got.HitTime.IsZero() {
		t.Fatalf("DecodeDetector().HitTime not stamped")
	}
}

func TestDecodeVelocityAndPosition(t *testing.T) {
	vp := make([]byte, OffsetVelocity+24)
	copy(vp[OffsetVelocity:], leFloat(1))
	copy(vp[OffsetVelocity+4:], leFloat(2))
	copy(vp[OffsetVelocity+8:], leFloat(3))
	copy(vp[OffsetVelocity+12:], leFloat(4))
	copy(vp[OffsetVelocity+16:], leFloat(5))
	copy(vp[OffsetVelocity+20:], leFloat(6))
	msg := message.New(0x202, 0x0903, 0, vp)
	gotV := DecodeVelocity(OffsetVelocity, msg)
	wantV := Velocity{VgX: 1, VgY: 2, VgZ: 3, VbX: 4, VbY: 5, VbZ: 6}
	if gotV != wantV {
		t.Fatalf("DecodeVelocity() = %+v, want %+v", gotV, wantV)
	}

	pp := make([]byte, OffsetPosition+12)
	copy(pp[OffsetPosition:], leFloat(7))
	copy(pp[OffsetPosition+4:], leFloat(8))
	copy(pp[OffsetPosition+8:], leFloat(9))
	msg2 := message.New(0x202, 0x0903, 0, pp)
	gotP := DecodePosition(OffsetPosition, msg2)
	wantP := Position{X: 7, Y: 8, Z: 9}
	if gotP != wantP {
		t.Fatalf("DecodePosition() = %+v, want %+v", gotP, wantP)
	}
}

func TestDecodeIMU(t *testing.T) {
	payload := make([]byte, OffsetIMU+24)
	vals := []float32{0.1, 0.2, 0.3, 1.1, 1.2, 1.3}
	for i, v := range vals {
		copy(payload[OffsetIMU+i*4:], leFloat(v))
	}
	msg := message.New(0x202, 0x0903, 0, payload)
	got := DecodeIMU(OffsetIMU, msg)
	want := IMU{AccX: 0.1, AccY: 0.2, AccZ: 0.3, GyroX: 1.1, GyroY: 1.2, GyroZ: 1.3}
	if got != want {
		t.Fatalf("DecodeIMU() = %+v, want %+v", got, want)
	}
}
