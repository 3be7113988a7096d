// Package message implements the RoboMaster protocol data unit: a typed,
// length-prefixed frame with a header CRC-8 and a trailing CRC-16, carried
// over one or more CAN frames.
package message

import "github.com/vweist/robomaster-can/codec"

const (
	startByte       = 0x55
	protocolVersion = 0x04
	headerLen       = 4 // start, length, version, crc8
	prefixLen       = 8 // header + type + sequence
	trailerLen      = 2 // crc16
	minFrameLen     = prefixLen + trailerLen + 1 // spec: valid only if length > 10
)

// Message is a RoboMaster protocol data unit: a device id, a command/
// telemetry type, a per-family sequence number and an opaque payload.
//
// A Message built via Parse is valid only if the wire bytes had a correct
// start byte, header CRC-8 and trailing CRC-16. A Message built via New is
// always valid. An invalid Message serializes to an empty byte slice.
type Message struct {
	deviceID uint32
	typ      uint16
	sequence uint16
	payload  []byte
	valid    bool
}

// New constructs a Message from explicit fields. It is always valid.
func New(deviceID uint32, typ uint16, sequence uint16, payload []byte) Message {
	buf := make([]byte, len(payload))
	copy(buf, payload)
	return Message{deviceID: deviceID, typ: typ, sequence: sequence, payload: buf, valid: true}
}

// Parse reconstructs a Message from raw wire bytes received for deviceID.
// The returned Message is valid only if data is long enough and its start
// byte, header CRC-8 and trailing CRC-16 all check out.
func Parse(deviceID uint32, data []byte) Message {
	if len(data) <= headerLen {
		return Message{}
	}
	if data[0] != startByte {
		return Message{}
	}
	total := int(data[1])
	if total <= minFrameLen-1 || total > len(data) {
		return Message{}
	}
	data = data[:total]
	if data[3] != codec.CRC8(data[:3]) {
		return Message{}
	}
	gotCRC16 := codec.Uint16(data[total-2], data[total-1])
	if gotCRC16 != codec.CRC16(data[:total-2]) {
		return Message{}
	}
	typ := codec.Uint16(data[4], data[5])
	sequence := codec.Uint16(data[6], data[7])
	payload := make([]byte, total-prefixLen-trailerLen)
	copy(payload, data[prefixLen:total-trailerLen])
	return Message{deviceID: deviceID, typ: typ, sequence: sequence, payload: payload, valid: true}
}

// Invalid returns the sentinel invalid Message used by the bounded queue
// when popping from an empty queue.
func Invalid() Message {
	return Message{}
}

// Valid reports whether the message passed construction checks.
func (m Message) Valid() bool { return m.valid }

// DeviceID returns the 11-bit CAN device identifier.
func (m Message) DeviceID() uint32 { return m.deviceID }

// Type returns the 16-bit command/telemetry discriminator.
func (m Message) Type() uint16 { return m.typ }

// Sequence returns the per-family sequence number.
func (m Message) Sequence() uint16 { return m.sequence }

// Payload returns a copy of the message payload.
func (m Message) Payload() []byte {
	p := make([]byte, len(m.payload))
	copy(p, m.payload)
	return p
}

// PayloadLen returns the number of payload bytes, without copying.
func (m Message) PayloadLen() int { return len(m.payload) }

// Len returns the total wire length (header + payload + trailer) this
// message would serialize to, or 0 if invalid.
func (m Message) Len() int {
	if !m.valid {
		return 0
	}
	return prefixLen + len(m.payload) + trailerLen
}

// WithSequence returns a copy of m with its sequence number replaced.
func (m Message) WithSequence(sequence uint16) Message {
	m.sequence = sequence
	return m
}

// Bytes serializes the message to wire bytes, computing and writing both
// CRCs. An invalid message serializes to nil.
func (m Message) Bytes() []byte {
	if !m.valid {
		return nil
	}
	total := prefixLen + len(m.payload) + trailerLen
	out := make([]byte, total)
	out[0] = startByte
	out[1] = uint8(total)
	out[2] = protocolVersion
	out[3] = codec.CRC8(out[:3])
	out[4], out[5] = codec.SplitUint16(m.typ)
	out[6], out[7] = codec.SplitUint16(m.sequence)
	copy(out[prefixLen:], m.payload)
	crc16 := codec.CRC16(out[:total-trailerLen])
	out[total-2], out[total-1] = codec.SplitUint16(crc16)
	return out
}
