package stream

import "encoding/binary"

// Writer is the write cursor. Typed writes store values in memory
// order (little-endian); wire-order normalization belongs to the layer
// above.
type Writer struct {
	cursor
	write CopyFunc
}

// IsArmed reports whether both a buffer and a copy capability have
// been set. Unarmed writes are dropped.
func (w *Writer) IsArmed() bool {
	return w.write != nil && w.buf != nil
}

// Arm (re)initializes all fields, implicitly resetting prior state.
// The buffer must hold at least size bytes.
func (w *Writer) Arm(position, size uint32, buffer []byte, write CopyFunc) *Writer {
	w.Reset()

	w.pos = position
	w.size = size
	w.buf = buffer
	w.write = write

	return w
}

// ArmKeepCapability rebinds the cursor to a new buffer without touching
// the previously registered copy capability.
func (w *Writer) ArmKeepCapability(position, size uint32, buffer []byte) *Writer {
	w.ResetKeepCapability()

	w.pos = position
	w.size = size
	w.buf = buffer

	return w
}

// Reset fully clears the cursor, including the copy capability,
// returning it to the unarmed state.
func (w *Writer) Reset() {
	w.pos = 0
	w.size = 0
	w.buf = nil
	w.write = nil
}

// ResetKeepCapability clears position, size and buffer but retains the
// copy capability for reuse with a new buffer.
func (w *Writer) ResetKeepCapability() {
	w.pos = 0
	w.size = 0
	w.buf = nil
}

// Clear zero-fills the entire region and moves the cursor back to the
// start.
func (w *Writer) Clear() {
	if w.buf != nil && int64(w.size) <= int64(len(w.buf)) {
		clear(w.buf[:w.size])
	}
	w.ResetCursor()
}

// writeAndAdvance is the core of the writer: it copies count bytes
// from src into the region via the injected capability and advances
// the cursor. Invalid requests are silent no-ops: no partial copy, no
// advance.
func (w *Writer) writeAndAdvance(count uint32, src []byte) {
	if !w.IsArmed() || !w.inBounds(count, len(src)) {
		return
	}

	w.write(w.buf[w.pos:w.pos+count], src, count)

	w.pos += count
}

func (w *Writer) writePod(b []byte) {
	w.writeAndAdvance(uint32(len(b)), b)
}

// WriteU8 writes an unsigned byte and advances the cursor by 1 if the
// region has room.
func (w *Writer) WriteU8(value uint8) *Writer {
	b := [1]byte{value}
	w.writePod(b[:])
	return w
}

// WriteI8 writes a signed byte and advances the cursor by 1 if the
// region has room.
func (w *Writer) WriteI8(value int8) *Writer {
	return w.WriteU8(uint8(value))
}

// WriteU16 writes an unsigned 2 byte value and advances the cursor by
// 2 if the region has room.
func (w *Writer) WriteU16(value uint16) *Writer {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	w.writePod(b[:])
	return w
}

// WriteI16 writes a signed 2 byte value and advances the cursor by 2
// if the region has room.
func (w *Writer) WriteI16(value int16) *Writer {
	return w.WriteU16(uint16(value))
}

// WriteU32 writes an unsigned 4 byte value and advances the cursor by
// 4 if the region has room.
func (w *Writer) WriteU32(value uint32) *Writer {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	w.writePod(b[:])
	return w
}

// WriteI32 writes a signed 4 byte value and advances the cursor by 4
// if the region has room.
func (w *Writer) WriteI32(value int32) *Writer {
	return w.WriteU32(uint32(value))
}

// WriteU64 writes an unsigned 8 byte value and advances the cursor by
// 8 if the region has room.
func (w *Writer) WriteU64(value uint64) *Writer {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	w.writePod(b[:])
	return w
}

// WriteI64 writes a signed 8 byte value and advances the cursor by 8
// if the region has room.
func (w *Writer) WriteI64(value int64) *Writer {
	return w.WriteU64(uint64(value))
}

// Write copies count bytes from src into the region and advances the
// cursor by the same amount. src must hold at least count bytes.
func (w *Writer) Write(count uint32, src []byte) *Writer {
	w.writeAndAdvance(count, src)
	return w
}
