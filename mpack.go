package mpack

import (
	"math/bits"

	"github.com/rawbytedev/mpack/stream"
)

// MessagePack composes a read cursor and a write cursor over one
// shared, caller-owned buffer. The two cursors are independent state
// machines: a caller may write a full message and then reset only the
// read cursor to re-parse it. Nothing here is safe for concurrent use;
// callers serialize access themselves.
type MessagePack struct {
	sr stream.Reader
	wr stream.Writer

	// Buffer shared by both cursors. Call ResetAll before releasing
	// this memory.
	buf []byte
}

// InitializeStreams arms both cursors with buffer of size bytes at
// cursor position. The reader and writer capabilities are the raw
// memory-copy functions used for all stream access; stream.Memcopy is
// the plain local copy.
func (m *MessagePack) InitializeStreams(position, size uint32, buffer []byte, reader, writer stream.CopyFunc) {
	m.sr.Arm(position, size, buffer, reader)
	m.wr.Arm(position, size, buffer, writer)

	m.buf = buffer
}

// StreamBuffer returns the underlying buffer.
func (m *MessagePack) StreamBuffer() []byte {
	return m.buf
}

// StreamSize returns the previously set region size in bytes.
func (m *MessagePack) StreamSize() uint32 {
	return m.sr.Capacity()
}

// ReadCursor returns the position of the read cursor.
func (m *MessagePack) ReadCursor() uint32 {
	return m.sr.Position()
}

// WriteCursor returns the position of the write cursor.
func (m *MessagePack) WriteCursor() uint32 {
	return m.wr.Position()
}

// Reader exposes the read cursor, e.g. for the follow-up raw read of a
// str/bin/ext payload after DecodeSingle.
func (m *MessagePack) Reader() *stream.Reader {
	return &m.sr
}

// Writer exposes the write cursor.
func (m *MessagePack) Writer() *stream.Writer {
	return &m.wr
}

// IsArmed reports whether both cursors are armed.
func (m *MessagePack) IsArmed() bool {
	return m.sr.IsArmed() && m.wr.IsArmed()
}

// ResetAll zeroes the region and fully resets both cursors. Required
// before releasing the underlying memory.
func (m *MessagePack) ResetAll() {
	m.wr.Clear()
	m.sr.Reset()
	m.wr.Reset()
	m.buf = nil
}

// ResetKeepCapability zeroes the region and detaches the buffer while
// keeping both copy capabilities, for reuse with a new buffer via
// InitializeStreams or the cursors' ArmKeepCapability.
func (m *MessagePack) ResetKeepCapability() {
	m.wr.Clear()
	m.sr.ResetKeepCapability()
	m.wr.ResetKeepCapability()
	m.buf = nil
}

// ResetCursors moves both cursors back to the start of the region.
func (m *MessagePack) ResetCursors() {
	m.sr.ResetCursor()
	m.wr.ResetCursor()
}

// ResetAndClear zeroes the region and moves both cursors back to the
// start.
func (m *MessagePack) ResetAndClear() {
	m.wr.Clear()
	m.ResetCursors()
}

// PeekMarker reads one byte from the stream without advancing the read
// cursor and classifies it. Returns MarkerUnused when the byte does
// not denote a MessagePack value.
func (m *MessagePack) PeekMarker() Marker {
	return ClassifyByte(m.sr.PeekU8())
}

/*
 * Wire-order reads. MessagePack integers are big-endian on the wire;
 * the cursor layer reads memory order, so every multi-byte read goes
 * through a byte swap.
 */

// ReadU8 reads an unsigned byte and advances the read cursor by 1.
func (m *MessagePack) ReadU8() uint8 {
	return m.sr.ReadU8()
}

// ReadU16 reads a big-endian unsigned 2 byte value and advances the
// read cursor by 2.
func (m *MessagePack) ReadU16() uint16 {
	return bits.ReverseBytes16(m.sr.ReadU16())
}

// ReadU32 reads a big-endian unsigned 4 byte value and advances the
// read cursor by 4.
func (m *MessagePack) ReadU32() uint32 {
	return bits.ReverseBytes32(m.sr.ReadU32())
}

// ReadU64 reads a big-endian unsigned 8 byte value and advances the
// read cursor by 8.
func (m *MessagePack) ReadU64() uint64 {
	return bits.ReverseBytes64(m.sr.ReadU64())
}

// ReadI8 reads a signed byte and advances the read cursor by 1.
func (m *MessagePack) ReadI8() int8 {
	return m.sr.ReadI8()
}

// ReadI16 reads a big-endian signed 2 byte value and advances the read
// cursor by 2.
func (m *MessagePack) ReadI16() int16 {
	return int16(m.ReadU16())
}

// ReadI32 reads a big-endian signed 4 byte value and advances the read
// cursor by 4.
func (m *MessagePack) ReadI32() int32 {
	return int32(m.ReadU32())
}

// ReadI64 reads a big-endian signed 8 byte value and advances the read
// cursor by 8.
func (m *MessagePack) ReadI64() int64 {
	return int64(m.ReadU64())
}
