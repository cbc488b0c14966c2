package mpack

// Fixed-size extension records: one application-defined tag byte plus a
// statically known payload.
type FixExt1 struct {
	Type uint8
	Data uint8
}

type FixExt2 struct {
	Type uint8
	Data [2]uint8
}

type FixExt4 struct {
	Type uint8
	Data [4]uint8
}

type FixExt8 struct {
	Type uint8
	Data [8]uint8
}

type FixExt16 struct {
	Type uint8
	Data [16]uint8
}

// DecodeResult is the tagged record returned by DecodeSingle. Size
// means: byte width for fixed-width scalars, payload length + 1 tag
// byte for fixext types, and the declared element/byte count for the
// str/bin/ext/array/map families (whose payloads are not consumed,
// fixstr excepted).
//
// Exactly one accessor is valid per Marker; consumers must check
// Marker, directly or through the classification predicates, before
// interpreting the payload.
type DecodeResult struct {
	Marker Marker
	Size   uint32

	scalar uint64   // booleans and fixed-width integers, low bytes significant
	ext    [17]byte // fixext tag byte + up to 16 data bytes
	str    [31]byte // inline fixstr payload
}

// Valid reports whether a value was decoded at all.
func (d DecodeResult) Valid() bool {
	return d.Marker != MarkerUnused
}

// Bool returns the decoded boolean. Valid for True and False.
func (d DecodeResult) Bool() bool {
	return d.scalar != 0
}

// U8 returns the decoded value as an unsigned byte.
func (d DecodeResult) U8() uint8 {
	return uint8(d.scalar)
}

// I8 returns the decoded value as a signed byte.
func (d DecodeResult) I8() int8 {
	return int8(d.scalar)
}

// U16 returns the decoded value as an unsigned 2 byte integer.
func (d DecodeResult) U16() uint16 {
	return uint16(d.scalar)
}

// I16 returns the decoded value as a signed 2 byte integer.
func (d DecodeResult) I16() int16 {
	return int16(d.scalar)
}

// U32 returns the decoded value as an unsigned 4 byte integer.
func (d DecodeResult) U32() uint32 {
	return uint32(d.scalar)
}

// I32 returns the decoded value as a signed 4 byte integer.
func (d DecodeResult) I32() int32 {
	return int32(d.scalar)
}

// U64 returns the decoded value as an unsigned 8 byte integer.
func (d DecodeResult) U64() uint64 {
	return d.scalar
}

// I64 returns the decoded value as a signed 8 byte integer.
func (d DecodeResult) I64() int64 {
	return int64(d.scalar)
}

// FixExt1 returns the decoded fixext 1 record.
func (d DecodeResult) FixExt1() FixExt1 {
	return FixExt1{Type: d.ext[0], Data: d.ext[1]}
}

// FixExt2 returns the decoded fixext 2 record.
func (d DecodeResult) FixExt2() FixExt2 {
	return FixExt2{Type: d.ext[0], Data: [2]uint8(d.ext[1:3])}
}

// FixExt4 returns the decoded fixext 4 record.
func (d DecodeResult) FixExt4() FixExt4 {
	return FixExt4{Type: d.ext[0], Data: [4]uint8(d.ext[1:5])}
}

// FixExt8 returns the decoded fixext 8 record.
func (d DecodeResult) FixExt8() FixExt8 {
	return FixExt8{Type: d.ext[0], Data: [8]uint8(d.ext[1:9])}
}

// FixExt16 returns the decoded fixext 16 record.
func (d DecodeResult) FixExt16() FixExt16 {
	return FixExt16{Type: d.ext[0], Data: [16]uint8(d.ext[1:17])}
}

// FixStr returns the inline fixstr payload. Valid only when Marker is
// MarkerFixStr; Size is the string length.
func (d DecodeResult) FixStr() []byte {
	return d.str[:d.Size]
}

// IsFixExt reports whether this result's marker denotes a fixext type.
func (d DecodeResult) IsFixExt() bool {
	return IsFixExt(d.Marker)
}

// IsArray reports whether this result's marker denotes the start of an
// array.
func (d DecodeResult) IsArray() bool {
	return IsArray(d.Marker)
}

// IsMap reports whether this result's marker denotes the start of a
// map.
func (d DecodeResult) IsMap() bool {
	return IsMap(d.Marker)
}

// IsInteger reports whether this result's marker denotes any integer
// type.
func (d DecodeResult) IsInteger() bool {
	return IsInteger(d.Marker)
}

// IsStr reports whether this result's marker denotes any string type.
func (d DecodeResult) IsStr() bool {
	return IsStr(d.Marker)
}

// IsBin reports whether this result's marker denotes any binary type.
func (d DecodeResult) IsBin() bool {
	return IsBin(d.Marker)
}

// IsExt reports whether this result's marker denotes a non-fixed
// extension type.
func (d DecodeResult) IsExt() bool {
	return IsExt(d.Marker)
}

// IsBool reports whether this result's marker denotes a boolean.
func (d DecodeResult) IsBool() bool {
	return IsBool(d.Marker)
}

// IsNil reports whether this result's marker denotes Nil.
func (d DecodeResult) IsNil() bool {
	return IsNil(d.Marker)
}
