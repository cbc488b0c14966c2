package mpack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wire returns the bytes emitted so far.
func wire(m *MessagePack) []byte {
	return m.StreamBuffer()[:m.WriteCursor()]
}

func TestWriteUintSelection(t *testing.T) {
	m := newSession(t, 0x200)

	cases := []struct {
		value uint64
		wire  []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0xcc, 0x80}},
		{255, []byte{0xcc, 0xff}},
		{256, []byte{0xcd, 0x01, 0x00}},
		{65535, []byte{0xcd, 0xff, 0xff}},
		{65536, []byte{0xce, 0x00, 0x01, 0x00, 0x00}},
		{4294967295, []byte{0xce, 0xff, 0xff, 0xff, 0xff}},
		{4294967296, []byte{0xcf, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, tc := range cases {
		m.ResetAndClear()
		m.WriteUint(tc.value)
		assert.Equal(t, tc.wire, wire(m), "value %d", tc.value)
	}
}

func TestWriteIntSelection(t *testing.T) {
	m := newSession(t, 0x200)

	cases := []struct {
		value int64
		wire  []byte
	}{
		{127, []byte{0x7f}},
		{-1, []byte{0xff}},
		{-20, []byte{0xec}},
		{-32, []byte{0xe0}},
		// NegFixInt stops at -32; -33 needs Int8
		{-33, []byte{0xd0, 0xdf}},
		{-128, []byte{0xd0, 0x80}},
		{-129, []byte{0xd1, 0xff, 0x7f}},
		{-32768, []byte{0xd1, 0x80, 0x00}},
		{-32769, []byte{0xd2, 0xff, 0xff, 0x7f, 0xff}},
		{-2147483649, []byte{0xd3, 0xff, 0xff, 0xff, 0xff, 0x7f, 0xff, 0xff, 0xff}},
	}

	for _, tc := range cases {
		m.ResetAndClear()
		m.WriteInt(tc.value)
		assert.Equal(t, tc.wire, wire(m), "value %d", tc.value)
	}
}

func TestFixedWidthWritersNeverNarrow(t *testing.T) {
	m := newSession(t, 0x200)

	// 1 fits a fixint but WriteU32 must still emit marker + 4 bytes
	m.WriteU32(1)
	assert.Equal(t, []byte{0xce, 0x00, 0x00, 0x00, 0x01}, wire(m))

	m.ResetAndClear()
	m.WriteI16(-1)
	assert.Equal(t, []byte{0xd1, 0xff, 0xff}, wire(m))
}

func TestFixIntBoundaryMarkers(t *testing.T) {
	m := newSession(t, 0x200)

	m.WriteFixInt(127)
	assert.Equal(t, []byte{0x7f}, wire(m))

	m.ResetAndClear()
	m.WriteFixInt(-32)
	assert.Equal(t, []byte{0xe0}, wire(m))

	m.ResetAndClear()
	m.WriteFixInt(-1)
	assert.Equal(t, []byte{0xff}, wire(m))
}

func TestStartArrayThresholds(t *testing.T) {
	m := newSession(t, 0x200)

	m.StartArray(0)
	assert.Equal(t, []byte{0x90}, wire(m))

	m.ResetAndClear()
	m.StartArray(15)
	assert.Equal(t, []byte{0x9f}, wire(m))

	m.ResetAndClear()
	m.StartArray(16)
	assert.Equal(t, []byte{0xdc, 0x00, 0x10}, wire(m))

	m.ResetAndClear()
	m.StartArray(65535)
	assert.Equal(t, []byte{0xdc, 0xff, 0xff}, wire(m))

	m.ResetAndClear()
	m.StartArray(65536)
	assert.Equal(t, []byte{0xdd, 0x00, 0x01, 0x00, 0x00}, wire(m))
}

func TestStartMapThresholds(t *testing.T) {
	m := newSession(t, 0x200)

	m.StartMap(0)
	assert.Equal(t, []byte{0x80}, wire(m))

	m.ResetAndClear()
	m.StartMap(15)
	assert.Equal(t, []byte{0x8f}, wire(m))

	m.ResetAndClear()
	m.StartMap(16)
	assert.Equal(t, []byte{0xde, 0x00, 0x10}, wire(m))

	m.ResetAndClear()
	m.StartMap(65535)
	assert.Equal(t, []byte{0xde, 0xff, 0xff}, wire(m))

	m.ResetAndClear()
	m.StartMap(65536)
	assert.Equal(t, []byte{0xdf, 0x00, 0x01, 0x00, 0x00}, wire(m))
}

func TestStringPromotion(t *testing.T) {
	m := newSession(t, 0x200)

	m.WriteString("abc")
	assert.Equal(t, []byte{0xd9, 0x03, 'a', 'b', 'c'}, wire(m))

	m.ResetAndClear()
	m.WriteString(strings.Repeat("x", 255))
	assert.Equal(t, []byte{0xd9, 0xff}, wire(m)[:2])

	m.ResetAndClear()
	m.WriteString(strings.Repeat("x", 256))
	assert.Equal(t, []byte{0xda, 0x01, 0x00}, wire(m)[:3])
	assert.EqualValues(t, 3+256, m.WriteCursor())
}

func TestStringPromotion32(t *testing.T) {
	m := newSession(t, 0x20000)

	m.WriteString(strings.Repeat("x", 65535))
	assert.Equal(t, []byte{0xda, 0xff, 0xff}, wire(m)[:3])

	m.ResetAndClear()
	m.WriteString(strings.Repeat("x", 65536))
	assert.Equal(t, []byte{0xdb, 0x00, 0x01, 0x00, 0x00}, wire(m)[:5])
	assert.EqualValues(t, 5+65536, m.WriteCursor())
}

func TestBytesPromotion(t *testing.T) {
	m := newSession(t, 0x200)

	m.WriteBytes([]byte{1, 2, 3})
	assert.Equal(t, []byte{0xc4, 0x03, 1, 2, 3}, wire(m))

	m.ResetAndClear()
	m.WriteBytes(make([]byte, 256))
	assert.Equal(t, []byte{0xc5, 0x01, 0x00}, wire(m)[:3])
}

func TestEmptyBlobs(t *testing.T) {
	m := newSession(t, 0x200)

	m.WriteString("")
	assert.Equal(t, []byte{0xd9, 0x00}, wire(m))

	m.ResetAndClear()
	m.WriteBytes(nil)
	assert.Equal(t, []byte{0xc4, 0x00}, wire(m))

	m.ResetAndClear()
	m.WriteFixStr("")
	assert.Equal(t, []byte{0xa0}, wire(m))
}

func TestWriteFixStr(t *testing.T) {
	m := newSession(t, 0x200)

	m.WriteFixStr("hello")
	assert.Equal(t, []byte{0xa5, 'h', 'e', 'l', 'l', 'o'}, wire(m))
}

func TestWriteMarkerRaw(t *testing.T) {
	m := newSession(t, 0x200)

	m.WriteMarker(MarkerNil)
	m.WriteMarker(MarkerTrue)
	assert.Equal(t, []byte{0xc0, 0xc3}, wire(m))
}

func TestChaining(t *testing.T) {
	m := newSession(t, 0x200)

	m.StartArray(3).WriteUint(1).WriteString("a").WriteBoolean(false)

	require.EqualValues(t, 3, m.DecodeSingle().Size)
	require.EqualValues(t, 1, m.DecodeSingle().U8())
	dr := m.DecodeSingle()
	require.True(t, dr.IsStr())
	require.EqualValues(t, 1, dr.Size)
	var b [1]byte
	m.Reader().Read(1, b[:])
	require.EqualValues(t, 'a', b[0])
	require.False(t, m.DecodeSingle().Bool())
}

func TestEncodeOverflowStopsAtCapacity(t *testing.T) {
	m := newSession(t, 16)

	// 3 full values (5 bytes each) land; the 4th fits only its marker
	// byte before the payload is refused at the region end
	for i := 0; i < 64; i++ {
		m.WriteU32(0xbadf00d)
	}
	assert.Equal(t, m.StreamSize(), m.WriteCursor())

	// further writes are no-ops
	m.WriteU64(1)
	m.WriteTrue()
	assert.Equal(t, m.StreamSize(), m.WriteCursor())
}
