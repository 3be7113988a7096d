package codec

import "testing"

func TestCRC8DeterministicAndSensitive(t *testing.T) {
	a := CRC8([]byte{0x55, 0x0e, 0x04})
	b := CRC8([]byte{0x55, 0x0e, 0x04})
	if a != b {
		t.Fatalf("CRC8 not deterministic: %x != %x", a, b)
	}
	if c := CRC8([]byte{0x55, 0x0f, 0x04}); c == a {
		t.Fatalf("CRC8 insensitive to length byte change")
	}
}

func TestCRC16Deterministic(t *testing.T) {
	data := []byte{0x55, 0x0e, 0x04, 0x00, 0xc9, 0xc3, 0x00, 0x00, 0x40, 0x3f, 0x19, 0x01}
	a := CRC16(data)
	b := CRC16(data)
	if a != b {
		t.Fatalf("CRC16 not deterministic: %x != %x", a, b)
	}
	mutated := append([]byte(nil), data...)
	mutated[len(mutated)-1] ^= 0x01
	if CRC16(mutated) == a {
		t.Fatalf("CRC16 insensitive to single-bit payload flip")
	}
}

func TestUint16RoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, 0xff, 0x100, 0xdead, 0xffff} {
		lo, hi := SplitUint16(v)
		if got := Uint16(lo, hi); got != v {
			t.Fatalf("Uint16(SplitUint16(%#x)) = %#x", v, got)
		}
	}
}

func TestFloat32BitsRoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 3.14159, -600, 3.5} {
		if got := BitsToFloat32(Float32ToBits(f)); got != f {
			t.Fatalf("float round-trip mismatch: %v != %v", got, f)
		}
	}
}
