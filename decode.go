package mpack

// DecodeSingle reads exactly one marker byte, advances the read cursor
// past it and returns the decoded record. Fixed-width scalars and
// fixext records are read inline; for the str/bin/ext families only
// the length prefix is consumed, and for arrays and maps only the
// element count. The caller drives the follow-up reads: Size raw bytes
// for str/bin, Size decode calls for arrays, 2*Size for maps. Fixstr
// is the one dynamically sized type read eagerly, into the inline
// 31 byte buffer.
//
// An exhausted stream or a byte that denotes no MessagePack value
// yields MarkerUnused with Size 0.
func (m *MessagePack) DecodeSingle() DecodeResult {
	start := m.sr.Position()
	raw := m.ReadU8()

	dr := DecodeResult{Marker: Marker(raw)}

	if m.sr.Position() == start {
		// Nothing was consumed: unarmed cursor or end of region.
		dr.Marker = MarkerUnused
		return dr
	}

	switch dr.Marker {
	case MarkerNil, MarkerFalse:
		dr.Size = 1
		dr.scalar = 0

	case MarkerTrue:
		dr.Size = 1
		dr.scalar = 1

	case MarkerUnused:
		return dr

	case MarkerStr8, MarkerBin8, MarkerExt8:
		dr.Size = uint32(m.ReadU8())

	case MarkerStr16, MarkerBin16, MarkerExt16:
		dr.Size = uint32(m.ReadU16())

	case MarkerStr32, MarkerBin32, MarkerExt32:
		dr.Size = m.ReadU32()

	case MarkerFloat32, MarkerFloat64:
		// Unsupported: no payload is read, Size stays 0.

	case MarkerUint8:
		dr.Size = 1
		dr.scalar = uint64(m.ReadU8())

	case MarkerUint16:
		dr.Size = 2
		dr.scalar = uint64(m.ReadU16())

	case MarkerUint32:
		dr.Size = 4
		dr.scalar = uint64(m.ReadU32())

	case MarkerUint64:
		dr.Size = 8
		dr.scalar = m.ReadU64()

	case MarkerInt8:
		dr.Size = 1
		dr.scalar = uint64(uint8(m.ReadI8()))

	case MarkerInt16:
		dr.Size = 2
		dr.scalar = uint64(uint16(m.ReadI16()))

	case MarkerInt32:
		dr.Size = 4
		dr.scalar = uint64(uint32(m.ReadI32()))

	case MarkerInt64:
		dr.Size = 8
		dr.scalar = uint64(m.ReadI64())

	case MarkerFixExt1:
		// tag byte + 1 data byte
		dr.Size = 2
		dr.ext[0] = m.ReadU8()
		dr.ext[1] = m.ReadU8()

	case MarkerFixExt2:
		dr.Size = 3
		dr.ext[0] = m.ReadU8()
		m.sr.Read(2, dr.ext[1:])

	case MarkerFixExt4:
		dr.Size = 5
		dr.ext[0] = m.ReadU8()
		m.sr.Read(4, dr.ext[1:])

	case MarkerFixExt8:
		dr.Size = 9
		dr.ext[0] = m.ReadU8()
		m.sr.Read(8, dr.ext[1:])

	case MarkerFixExt16:
		dr.Size = 17
		dr.ext[0] = m.ReadU8()
		m.sr.Read(16, dr.ext[1:])

	case MarkerArray16, MarkerMap16:
		dr.Size = uint32(m.ReadU16())

	case MarkerArray32, MarkerMap32:
		dr.Size = m.ReadU32()

	default:
		// Fix families overlay each other's bit patterns, so they
		// resolve most-specific-first.
		switch {
		case raw&0x80 == 0:
			dr.Marker = MarkerPosFixInt
			dr.Size = 1
			dr.scalar = uint64(raw & 0x7f)

		case raw&0xe0 == 0xe0:
			dr.Marker = MarkerNegFixInt
			dr.Size = 1
			dr.scalar = uint64(uint8(int8(raw&0x1f) - 0x20))

		case raw&0xa0 == 0xa0:
			dr.Marker = MarkerFixStr
			dr.Size = uint32(raw & 0x1f)
			m.sr.Read(dr.Size, dr.str[:])

		case raw&0x90 == 0x90:
			dr.Marker = MarkerFixArray
			dr.Size = uint32(raw & 0xf)

		case raw&0x80 == 0x80:
			dr.Marker = MarkerFixMap
			dr.Size = uint32(raw & 0xf)

		default:
			dr.Marker = MarkerUnused
		}
	}

	return dr
}
