package mpack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// Wire compatibility against an independent implementation, both
// directions.

func TestInteropEncodeArray(t *testing.T) {
	m := newSession(t, 0x200)

	m.StartArray(4).
		WriteUint(7).
		WriteInt(-33).
		WriteString("hello").
		WriteBoolean(true)

	var out []any
	require.NoError(t, msgpack.Unmarshal(wire(m), &out))
	require.Len(t, out, 4)
	assert.EqualValues(t, 7, out[0])
	assert.EqualValues(t, -33, out[1])
	assert.EqualValues(t, "hello", out[2])
	assert.Equal(t, true, out[3])
}

func TestInteropEncodeMap(t *testing.T) {
	m := newSession(t, 0x200)

	m.StartMap(2)
	m.WriteFixStr("id").WriteUint(42)
	m.WriteFixStr("neg").WriteInt(-70000)

	var out map[string]any
	require.NoError(t, msgpack.Unmarshal(wire(m), &out))
	require.Len(t, out, 2)
	assert.EqualValues(t, 42, out["id"])
	assert.EqualValues(t, -70000, out["neg"])
}

func TestInteropEncodeNil(t *testing.T) {
	m := newSession(t, 0x200)

	m.WriteNil()

	var out any
	require.NoError(t, msgpack.Unmarshal(wire(m), &out))
	assert.Nil(t, out)
}

func TestInteropEncodeLargeString(t *testing.T) {
	m := newSession(t, 0x200)

	s := strings.Repeat("q", 100)
	m.WriteString(s)

	var out string
	require.NoError(t, msgpack.Unmarshal(wire(m), &out))
	assert.Equal(t, s, out)
}

func TestInteropEncodeBin(t *testing.T) {
	m := newSession(t, 0x200)

	m.WriteBytes([]byte{0xde, 0xad, 0xbe, 0xef})

	var out []byte
	require.NoError(t, msgpack.Unmarshal(wire(m), &out))
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, out)
}

func TestInteropDecodeScalars(t *testing.T) {
	enc := func(v any) []byte {
		b, err := msgpack.Marshal(v)
		require.NoError(t, err)
		return b
	}

	m := rawSession(t, enc(int(100)))
	dr := m.DecodeSingle()
	assert.Equal(t, MarkerPosFixInt, dr.Marker)
	assert.EqualValues(t, 100, dr.U8())

	m = rawSession(t, enc(int(-33)))
	dr = m.DecodeSingle()
	assert.Equal(t, MarkerInt8, dr.Marker)
	assert.EqualValues(t, -33, dr.I8())

	m = rawSession(t, enc(int(-1000)))
	dr = m.DecodeSingle()
	assert.Equal(t, MarkerInt16, dr.Marker)
	assert.EqualValues(t, -1000, dr.I16())

	m = rawSession(t, enc(uint64(1<<40)))
	dr = m.DecodeSingle()
	assert.Equal(t, MarkerUint64, dr.Marker)
	assert.EqualValues(t, uint64(1<<40), dr.U64())

	m = rawSession(t, enc(true))
	dr = m.DecodeSingle()
	assert.Equal(t, MarkerTrue, dr.Marker)
	assert.True(t, dr.Bool())

	m = rawSession(t, enc(nil))
	dr = m.DecodeSingle()
	assert.Equal(t, MarkerNil, dr.Marker)
	assert.True(t, dr.IsNil())
}

func TestInteropDecodeStrings(t *testing.T) {
	b, err := msgpack.Marshal("hi")
	require.NoError(t, err)

	m := rawSession(t, b)
	dr := m.DecodeSingle()
	assert.Equal(t, MarkerFixStr, dr.Marker)
	assert.EqualValues(t, 2, dr.Size)
	assert.Equal(t, []byte("hi"), dr.FixStr())

	long := strings.Repeat("z", 40)
	b, err = msgpack.Marshal(long)
	require.NoError(t, err)

	m = rawSession(t, b)
	dr = m.DecodeSingle()
	assert.Equal(t, MarkerStr8, dr.Marker)
	assert.EqualValues(t, 40, dr.Size)

	payload := make([]byte, dr.Size)
	m.Reader().Read(dr.Size, payload)
	assert.Equal(t, long, string(payload))
}

func TestInteropDecodeArray(t *testing.T) {
	b, err := msgpack.Marshal([]int{1, 2, 3})
	require.NoError(t, err)

	m := rawSession(t, b)
	dr := m.DecodeSingle()
	require.Equal(t, MarkerFixArray, dr.Marker)
	require.EqualValues(t, 3, dr.Size)

	for want := 1; want <= 3; want++ {
		el := m.DecodeSingle()
		require.Equal(t, MarkerPosFixInt, el.Marker)
		assert.EqualValues(t, want, el.U8())
	}
}

func TestInteropDecodeMap(t *testing.T) {
	b, err := msgpack.Marshal(map[string]int{"k": 9})
	require.NoError(t, err)

	m := rawSession(t, b)
	dr := m.DecodeSingle()
	require.Equal(t, MarkerFixMap, dr.Marker)
	require.EqualValues(t, 1, dr.Size)

	key := m.DecodeSingle()
	require.Equal(t, MarkerFixStr, key.Marker)
	assert.Equal(t, []byte("k"), key.FixStr())

	val := m.DecodeSingle()
	assert.EqualValues(t, 9, val.U8())
}
