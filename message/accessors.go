package message

import "github.com/vweist/robomaster-can/codec"

// Out-of-range offsets are a programming error: they panic, the same way an
// out-of-bounds slice index does, rather than silently returning zero.

// Uint8 reads a u8 at the given payload offset.
func (m Message) Uint8(offset int) uint8 { return m.payload[offset] }

// Int8 reads an i8 at the given payload offset.
func (m Message) Int8(offset int) int8 { return int8(m.payload[offset]) }

// Uint16 reads a little-endian u16 at the given payload offset.
func (m Message) Uint16(offset int) uint16 {
	return codec.Uint16(m.payload[offset], m.payload[offset+1])
}

// Int16 reads a little-endian i16 at the given payload offset.
func (m Message) Int16(offset int) int16 {
	return int16(codec.Uint16(m.payload[offset], m.payload[offset+1]))
}

// Uint32 reads a little-endian u32 at the given payload offset.
func (m Message) Uint32(offset int) uint32 {
	b := m.payload
	return uint32(b[offset]) | uint32(b[offset+1])<<8 | uint32(b[offset+2])<<16 | uint32(b[offset+3])<<24
}

// Int32 reads a little-endian i32 at the given payload offset.
func (m Message) Int32(offset int) int32 { return int32(m.Uint32(offset)) }

// Float32 reads a little-endian IEEE-754 f32 at the given payload offset.
func (m Message) Float32(offset int) float32 { return codec.BitsToFloat32(m.Uint32(offset)) }

// SetUint8 writes a u8 at the given payload offset.
func (m *Message) SetUint8(offset int, v uint8) { m.payload[offset] = v }

// SetInt8 writes an i8 at the given payload offset.
func (m *Message) SetInt8(offset int, v int8) { m.payload[offset] = uint8(v) }

// SetUint16 writes a little-endian u16 at the given payload offset.
func (m *Message) SetUint16(offset int, v uint16) {
	m.payload[offset], m.payload[offset+1] = codec.SplitUint16(v)
}

// SetInt16 writes a little-endian i16 at the given payload offset.
func (m *Message) SetInt16(offset int, v int16) { m.SetUint16(offset, uint16(v)) }

// SetUint32 writes a little-endian u32 at the given payload offset.
func (m *Message) SetUint32(offset int, v uint32) {
	b := m.payload
	b[offset] = uint8(v)
	b[offset+1] = uint8(v >> 8)
	b[offset+2] = uint8(v >> 16)
	b[offset+3] = uint8(v >> 24)
}

// SetInt32 writes a little-endian i32 at the given payload offset.
func (m *Message) SetInt32(offset int, v int32) { m.SetUint32(offset, uint32(v)) }

// SetFloat32 writes a little-endian IEEE-754 f32 at the given payload offset.
func (m *Message) SetFloat32(offset int, v float32) { m.SetUint32(offset, codec.Float32ToBits(v)) }
