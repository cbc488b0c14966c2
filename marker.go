// Package mpack is a MessagePack codec over a fixed-size, caller-owned
// byte region. It never allocates, never returns errors and never owns
// the buffer it operates on: out-of-bounds and malformed input degrade
// to silent no-ops and zero-valued results instead of failures.
//
// The codec is flat by design. One call encodes or decodes exactly one
// value; arrays, maps and str/bin/ext payloads are composed by the
// caller through repeated calls.
package mpack

// Marker is a MessagePack tag byte. For the fix families the marker
// byte also carries part of the value; the constants below name the
// base byte of each range.
type Marker uint8

const (
	MarkerPosFixInt Marker = 0x00 // 0x00 - 0x7f
	MarkerFixMap    Marker = 0x80 // 0x80 - 0x8f
	MarkerFixArray  Marker = 0x90 // 0x90 - 0x9f
	MarkerFixStr    Marker = 0xa0 // 0xa0 - 0xbf
	MarkerNil       Marker = 0xc0
	MarkerUnused    Marker = 0xc1 // sentinel: no value decoded
	MarkerFalse     Marker = 0xc2
	MarkerTrue      Marker = 0xc3
	MarkerBin8      Marker = 0xc4
	MarkerBin16     Marker = 0xc5
	MarkerBin32     Marker = 0xc6
	MarkerExt8      Marker = 0xc7
	MarkerExt16     Marker = 0xc8
	MarkerExt32     Marker = 0xc9
	MarkerFloat32   Marker = 0xca // unsupported
	MarkerFloat64   Marker = 0xcb // unsupported
	MarkerUint8     Marker = 0xcc
	MarkerUint16    Marker = 0xcd
	MarkerUint32    Marker = 0xce
	MarkerUint64    Marker = 0xcf
	MarkerInt8      Marker = 0xd0
	MarkerInt16     Marker = 0xd1
	MarkerInt32     Marker = 0xd2
	MarkerInt64     Marker = 0xd3
	MarkerFixExt1   Marker = 0xd4
	MarkerFixExt2   Marker = 0xd5
	MarkerFixExt4   Marker = 0xd6
	MarkerFixExt8   Marker = 0xd7
	MarkerFixExt16  Marker = 0xd8
	MarkerStr8      Marker = 0xd9
	MarkerStr16     Marker = 0xda
	MarkerStr32     Marker = 0xdb
	MarkerArray16   Marker = 0xdc
	MarkerArray32   Marker = 0xdd
	MarkerMap16     Marker = 0xde
	MarkerMap32     Marker = 0xdf
	MarkerNegFixInt Marker = 0xe0 // 0xe0 - 0xff
)

// IsInteger reports whether m denotes any integer type, fixints
// included.
func IsInteger(m Marker) bool {
	return m == MarkerPosFixInt ||
		m == MarkerNegFixInt ||
		m == MarkerUint8 ||
		m == MarkerInt8 ||
		m == MarkerUint16 ||
		m == MarkerInt16 ||
		m == MarkerUint32 ||
		m == MarkerInt32 ||
		m == MarkerUint64 ||
		m == MarkerInt64
}

// IsStr reports whether m denotes any string type.
func IsStr(m Marker) bool {
	return m == MarkerFixStr ||
		m == MarkerStr8 ||
		m == MarkerStr16 ||
		m == MarkerStr32
}

// IsBin reports whether m denotes any binary type.
func IsBin(m Marker) bool {
	return m == MarkerBin8 ||
		m == MarkerBin16 ||
		m == MarkerBin32
}

// IsArray reports whether m denotes the start of an array.
func IsArray(m Marker) bool {
	return m == MarkerFixArray ||
		m == MarkerArray16 ||
		m == MarkerArray32
}

// IsMap reports whether m denotes the start of a map.
func IsMap(m Marker) bool {
	return m == MarkerFixMap ||
		m == MarkerMap16 ||
		m == MarkerMap32
}

// IsFixExt reports whether m denotes a fixed-size extension type.
func IsFixExt(m Marker) bool {
	return m == MarkerFixExt1 ||
		m == MarkerFixExt2 ||
		m == MarkerFixExt4 ||
		m == MarkerFixExt8 ||
		m == MarkerFixExt16
}

// IsExt reports whether m denotes a non-fixed extension type.
func IsExt(m Marker) bool {
	return m == MarkerExt8 ||
		m == MarkerExt16 ||
		m == MarkerExt32
}

// IsBool reports whether m denotes a boolean.
func IsBool(m Marker) bool {
	return m == MarkerTrue || m == MarkerFalse
}

// IsNil reports whether m denotes Nil.
func IsNil(m Marker) bool {
	return m == MarkerNil
}

// ClassifyByte maps an arbitrary tag byte to its marker family. Fix
// family bytes collapse to the base marker of their range; 0xc1 maps
// to MarkerUnused.
func ClassifyByte(b uint8) Marker {
	switch {
	case b&0x80 == 0:
		return MarkerPosFixInt
	case b >= 0xe0:
		return MarkerNegFixInt
	case b&0xe0 == 0xa0:
		return MarkerFixStr
	case b&0xf0 == 0x90:
		return MarkerFixArray
	case b&0xf0 == 0x80:
		return MarkerFixMap
	}
	return Marker(b)
}
