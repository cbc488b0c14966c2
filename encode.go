package mpack

import (
	"math"
	"math/bits"
	"unsafe"
)

// WriteMarker emits the single tag byte for marker.
func (m *MessagePack) WriteMarker(marker Marker) *MessagePack {
	m.wr.WriteU8(uint8(marker))
	return m
}

/*
 * Size-class dispatch. writeRawValue, writeBlob and writeFixExt are
 * one conceptual unit: every marker promotion and size threshold lives
 * here and nowhere else.
 */

// writeRawValue emits marker + payload for every statically sized
// family: fixints, nil, booleans and the fixed-width integers. Payload
// integers are normalized to big-endian on the wire.
func (m *MessagePack) writeRawValue(data uint64, kind Marker) *MessagePack {
	switch kind {
	case MarkerNegFixInt:
		m.wr.WriteU8(0xe0 | uint8(data)&0x1f)

	case MarkerPosFixInt:
		m.wr.WriteU8(uint8(data) & 0x7f)

	case MarkerNil, MarkerFalse, MarkerTrue:
		// The marker is the value.
		m.WriteMarker(kind)

	case MarkerUint8, MarkerInt8:
		m.WriteMarker(kind)
		m.wr.WriteU8(uint8(data))

	case MarkerUint16, MarkerInt16:
		m.WriteMarker(kind)
		m.wr.WriteU16(bits.ReverseBytes16(uint16(data)))

	case MarkerUint32, MarkerInt32:
		m.WriteMarker(kind)
		m.wr.WriteU32(bits.ReverseBytes32(uint32(data)))

	case MarkerUint64, MarkerInt64:
		m.WriteMarker(kind)
		m.wr.WriteU64(bits.ReverseBytes64(data))
	}

	return m
}

// writeBlob emits a string or binary value. The requested kind selects
// the family only: the wire marker is always the smallest length
// variant that fits, promoting 8 -> 16 -> 32 at the 255 and 65535
// thresholds. A FixStr request bypasses promotion and packs the length
// into the marker byte.
func (m *MessagePack) writeBlob(b []byte, kind Marker) *MessagePack {
	if kind == MarkerFixStr {
		length := uint8(len(b)) & 0x1f

		m.wr.WriteU8(uint8(MarkerFixStr) | length)
		m.wr.Write(uint32(length), b)

		return m
	}

	str := IsStr(kind)
	length := uint32(len(b))

	switch {
	case len(b) <= math.MaxUint8:
		if str {
			m.WriteMarker(MarkerStr8)
		} else {
			m.WriteMarker(MarkerBin8)
		}
		m.wr.WriteU8(uint8(length))

	case len(b) <= math.MaxUint16:
		if str {
			m.WriteMarker(MarkerStr16)
		} else {
			m.WriteMarker(MarkerBin16)
		}
		m.wr.WriteU16(bits.ReverseBytes16(uint16(length)))

	default:
		if str {
			m.WriteMarker(MarkerStr32)
		} else {
			m.WriteMarker(MarkerBin32)
		}
		m.wr.WriteU32(bits.ReverseBytes32(length))
	}

	m.wr.Write(length, b)

	return m
}

// writeFixExt emits marker + the verbatim 1+N byte record (tag byte
// plus N data bytes). A short record leaves the payload unwritten.
func (m *MessagePack) writeFixExt(b []byte, kind Marker, count uint32) *MessagePack {
	m.WriteMarker(kind)
	m.wr.Write(count, b)
	return m
}

// WritePosFixInt packs value into a single positive fixint byte. The
// value is truncated to 7 bits.
func (m *MessagePack) WritePosFixInt(value uint8) *MessagePack {
	return m.writeRawValue(uint64(value), MarkerPosFixInt)
}

// WriteNegFixInt packs value into a single negative fixint byte. Only
// the low 5 bits are kept: values below -32 truncate, they do not
// fail.
func (m *MessagePack) WriteNegFixInt(value int8) *MessagePack {
	return m.writeRawValue(uint64(uint8(value)), MarkerNegFixInt)
}

// WriteFixInt dispatches to WritePosFixInt or WriteNegFixInt on the
// sign of value.
func (m *MessagePack) WriteFixInt(value int8) *MessagePack {
	if value >= 0 {
		return m.WritePosFixInt(uint8(value))
	}
	return m.WriteNegFixInt(value)
}

// WriteU8 writes the Uint8 marker plus value. Never narrows.
func (m *MessagePack) WriteU8(value uint8) *MessagePack {
	return m.writeRawValue(uint64(value), MarkerUint8)
}

// WriteU16 writes the Uint16 marker plus the big-endian value. Never
// narrows.
func (m *MessagePack) WriteU16(value uint16) *MessagePack {
	return m.writeRawValue(uint64(value), MarkerUint16)
}

// WriteU32 writes the Uint32 marker plus the big-endian value. Never
// narrows.
func (m *MessagePack) WriteU32(value uint32) *MessagePack {
	return m.writeRawValue(uint64(value), MarkerUint32)
}

// WriteU64 writes the Uint64 marker plus the big-endian value. Never
// narrows.
func (m *MessagePack) WriteU64(value uint64) *MessagePack {
	return m.writeRawValue(value, MarkerUint64)
}

// WriteI8 writes the Int8 marker plus value. Never narrows.
func (m *MessagePack) WriteI8(value int8) *MessagePack {
	return m.writeRawValue(uint64(uint8(value)), MarkerInt8)
}

// WriteI16 writes the Int16 marker plus the big-endian value. Never
// narrows.
func (m *MessagePack) WriteI16(value int16) *MessagePack {
	return m.writeRawValue(uint64(uint16(value)), MarkerInt16)
}

// WriteI32 writes the Int32 marker plus the big-endian value. Never
// narrows.
func (m *MessagePack) WriteI32(value int32) *MessagePack {
	return m.writeRawValue(uint64(uint32(value)), MarkerInt32)
}

// WriteI64 writes the Int64 marker plus the big-endian value. Never
// narrows.
func (m *MessagePack) WriteI64(value int64) *MessagePack {
	return m.writeRawValue(uint64(value), MarkerInt64)
}

// WriteUint writes value using the smallest sufficient representation:
// positive fixint, then Uint8, Uint16, Uint32, Uint64.
func (m *MessagePack) WriteUint(value uint64) *MessagePack {
	switch {
	case value <= PosFixIntMax:
		return m.WritePosFixInt(uint8(value) & 0x7f)
	case value <= math.MaxUint8:
		return m.WriteU8(uint8(value))
	case value <= math.MaxUint16:
		return m.WriteU16(uint16(value))
	case value <= math.MaxUint32:
		return m.WriteU32(uint32(value))
	}
	return m.WriteU64(value)
}

// WriteInt writes value using the smallest sufficient representation.
// Non-negative values take the WriteUint ladder; negative values pick
// negative fixint down to -32, then Int8, Int16, Int32, Int64. -33 is
// the first value wide enough to need Int8.
func (m *MessagePack) WriteInt(value int64) *MessagePack {
	if value >= 0 {
		return m.WriteUint(uint64(value))
	}

	switch {
	case value >= NegFixIntMin:
		return m.WriteNegFixInt(int8(value))
	case value >= math.MinInt8:
		return m.WriteI8(int8(value))
	case value >= math.MinInt16:
		return m.WriteI16(int16(value))
	case value >= math.MinInt32:
		return m.WriteI32(int32(value))
	}
	return m.WriteI64(value)
}

// WriteString writes s as a Str8/Str16/Str32 value, whichever is the
// smallest that fits its length. The string bytes are passed to the
// copy capability without an intermediate copy.
func (m *MessagePack) WriteString(s string) *MessagePack {
	if len(s) == 0 {
		return m.writeBlob(nil, MarkerStr8)
	}
	return m.writeBlob(unsafe.Slice(unsafe.StringData(s), len(s)), MarkerStr8)
}

// WriteBytes writes b as a Bin8/Bin16/Bin32 value, whichever is the
// smallest that fits its length.
func (m *MessagePack) WriteBytes(b []byte) *MessagePack {
	return m.writeBlob(b, MarkerBin8)
}

// WriteFixStr packs s into a fixstr: length in the low 5 bits of the
// marker byte, bytes inline. Strings longer than 31 bytes truncate to
// the masked length.
func (m *MessagePack) WriteFixStr(s string) *MessagePack {
	if len(s) == 0 {
		return m.writeBlob(nil, MarkerFixStr)
	}
	return m.writeBlob(unsafe.Slice(unsafe.StringData(s), len(s)), MarkerFixStr)
}

// WriteTrue writes the True marker.
func (m *MessagePack) WriteTrue() *MessagePack {
	return m.writeRawValue(0, MarkerTrue)
}

// WriteFalse writes the False marker.
func (m *MessagePack) WriteFalse() *MessagePack {
	return m.writeRawValue(0, MarkerFalse)
}

// WriteBoolean writes the True or False marker depending on value.
func (m *MessagePack) WriteBoolean(value bool) *MessagePack {
	if value {
		return m.WriteTrue()
	}
	return m.WriteFalse()
}

// WriteNil writes the Nil marker.
func (m *MessagePack) WriteNil() *MessagePack {
	return m.writeRawValue(0, MarkerNil)
}

// WriteFixExt1 writes a fixext 1 record: byteArray holds the tag byte
// plus 1 data byte.
func (m *MessagePack) WriteFixExt1(byteArray []byte) *MessagePack {
	return m.writeFixExt(byteArray, MarkerFixExt1, 2)
}

// WriteFixExt2 writes a fixext 2 record: byteArray holds the tag byte
// plus 2 data bytes.
func (m *MessagePack) WriteFixExt2(byteArray []byte) *MessagePack {
	return m.writeFixExt(byteArray, MarkerFixExt2, 3)
}

// WriteFixExt4 writes a fixext 4 record: byteArray holds the tag byte
// plus 4 data bytes.
func (m *MessagePack) WriteFixExt4(byteArray []byte) *MessagePack {
	return m.writeFixExt(byteArray, MarkerFixExt4, 5)
}

// WriteFixExt8 writes a fixext 8 record: byteArray holds the tag byte
// plus 8 data bytes.
func (m *MessagePack) WriteFixExt8(byteArray []byte) *MessagePack {
	return m.writeFixExt(byteArray, MarkerFixExt8, 9)
}

// WriteFixExt16 writes a fixext 16 record: byteArray holds the tag
// byte plus 16 data bytes.
func (m *MessagePack) WriteFixExt16(byteArray []byte) *MessagePack {
	return m.writeFixExt(byteArray, MarkerFixExt16, 17)
}

// StartArray emits the length prefix for an array of numElem elements.
// The elements themselves must follow through numElem independent
// writes; no validation enforces that they do.
func (m *MessagePack) StartArray(numElem uint64) *MessagePack {
	switch {
	case numElem <= FixArrayMax:
		m.wr.WriteU8(uint8(MarkerFixArray) | uint8(numElem)&0xf)
	case numElem <= Array16Max:
		m.WriteMarker(MarkerArray16)
		m.wr.WriteU16(bits.ReverseBytes16(uint16(numElem)))
	default:
		m.WriteMarker(MarkerArray32)
		m.wr.WriteU32(bits.ReverseBytes32(uint32(numElem)))
	}

	return m
}

// StartMap emits the length prefix for a map of numPairs key-value
// pairs. The 2*numPairs entries must follow through independent
// writes; no validation enforces that they do.
func (m *MessagePack) StartMap(numPairs uint64) *MessagePack {
	switch {
	case numPairs <= FixMapMax:
		m.wr.WriteU8(uint8(MarkerFixMap) | uint8(numPairs)&0xf)
	case numPairs <= Map16Max:
		m.WriteMarker(MarkerMap16)
		m.wr.WriteU16(bits.ReverseBytes16(uint16(numPairs)))
	default:
		m.WriteMarker(MarkerMap32)
		m.wr.WriteU32(bits.ReverseBytes32(uint32(numPairs)))
	}

	return m
}
