package stream

import "encoding/binary"

// Reader is the read cursor. Typed reads interpret the buffer bytes in
// memory order (little-endian); wire-order normalization belongs to the
// layer above.
type Reader struct {
	cursor
	read CopyFunc
}

// IsArmed reports whether both a buffer and a copy capability have
// been set. Callers must check this before trusting read results.
func (r *Reader) IsArmed() bool {
	return r.read != nil && r.buf != nil
}

// Arm (re)initializes all fields, implicitly resetting prior state.
// The buffer must hold at least size bytes.
func (r *Reader) Arm(position, size uint32, buffer []byte, read CopyFunc) *Reader {
	r.Reset()

	r.pos = position
	r.size = size
	r.buf = buffer
	r.read = read

	return r
}

// ArmKeepCapability rebinds the cursor to a new buffer without touching
// the previously registered copy capability.
func (r *Reader) ArmKeepCapability(position, size uint32, buffer []byte) *Reader {
	r.ResetKeepCapability()

	r.pos = position
	r.size = size
	r.buf = buffer

	return r
}

// Reset fully clears the cursor, including the copy capability,
// returning it to the unarmed state.
func (r *Reader) Reset() {
	r.pos = 0
	r.size = 0
	r.buf = nil
	r.read = nil
}

// ResetKeepCapability clears position, size and buffer but retains the
// copy capability for reuse with a new buffer.
func (r *Reader) ResetKeepCapability() {
	r.pos = 0
	r.size = 0
	r.buf = nil
}

// readAndAdvance is the core of the reader: it copies count bytes from
// the region into dst via the injected capability, then advances the
// cursor unless peeking. Invalid requests are silent no-ops.
func (r *Reader) readAndAdvance(count uint32, dst []byte, peek bool) {
	if !r.IsArmed() || !r.inBounds(count, len(dst)) {
		return
	}

	r.read(dst, r.buf[r.pos:r.pos+count], count)

	if !peek {
		r.pos += count
	}
}

func (r *Reader) readPod(b []byte, peek bool) {
	r.readAndAdvance(uint32(len(b)), b, peek)
}

// ReadU8 reads an unsigned byte and advances the cursor by 1.
func (r *Reader) ReadU8() uint8 {
	var b [1]byte
	r.readPod(b[:], false)
	return b[0]
}

// ReadI8 reads a signed byte and advances the cursor by 1.
func (r *Reader) ReadI8() int8 {
	return int8(r.ReadU8())
}

// ReadU16 reads an unsigned 2 byte value and advances the cursor by 2.
func (r *Reader) ReadU16() uint16 {
	var b [2]byte
	r.readPod(b[:], false)
	return binary.LittleEndian.Uint16(b[:])
}

// ReadI16 reads a signed 2 byte value and advances the cursor by 2.
func (r *Reader) ReadI16() int16 {
	return int16(r.ReadU16())
}

// ReadU32 reads an unsigned 4 byte value and advances the cursor by 4.
func (r *Reader) ReadU32() uint32 {
	var b [4]byte
	r.readPod(b[:], false)
	return binary.LittleEndian.Uint32(b[:])
}

// ReadI32 reads a signed 4 byte value and advances the cursor by 4.
func (r *Reader) ReadI32() int32 {
	return int32(r.ReadU32())
}

// ReadU64 reads an unsigned 8 byte value and advances the cursor by 8.
func (r *Reader) ReadU64() uint64 {
	var b [8]byte
	r.readPod(b[:], false)
	return binary.LittleEndian.Uint64(b[:])
}

// ReadI64 reads a signed 8 byte value and advances the cursor by 8.
func (r *Reader) ReadI64() int64 {
	return int64(r.ReadU64())
}

// PeekU8 reads an unsigned byte without advancing the cursor.
func (r *Reader) PeekU8() uint8 {
	var b [1]byte
	r.readPod(b[:], true)
	return b[0]
}

// PeekI8 reads a signed byte without advancing the cursor.
func (r *Reader) PeekI8() int8 {
	return int8(r.PeekU8())
}

// PeekU16 reads an unsigned 2 byte value without advancing the cursor.
func (r *Reader) PeekU16() uint16 {
	var b [2]byte
	r.readPod(b[:], true)
	return binary.LittleEndian.Uint16(b[:])
}

// PeekI16 reads a signed 2 byte value without advancing the cursor.
func (r *Reader) PeekI16() int16 {
	return int16(r.PeekU16())
}

// PeekU32 reads an unsigned 4 byte value without advancing the cursor.
func (r *Reader) PeekU32() uint32 {
	var b [4]byte
	r.readPod(b[:], true)
	return binary.LittleEndian.Uint32(b[:])
}

// PeekI32 reads a signed 4 byte value without advancing the cursor.
func (r *Reader) PeekI32() int32 {
	return int32(r.PeekU32())
}

// PeekU64 reads an unsigned 8 byte value without advancing the cursor.
func (r *Reader) PeekU64() uint64 {
	var b [8]byte
	r.readPod(b[:], true)
	return binary.LittleEndian.Uint64(b[:])
}

// PeekI64 reads a signed 8 byte value without advancing the cursor.
func (r *Reader) PeekI64() int64 {
	return int64(r.PeekU64())
}

// Read copies count bytes from the region into dst and advances the
// cursor by the same amount. dst must hold at least count bytes.
func (r *Reader) Read(count uint32, dst []byte) *Reader {
	r.readAndAdvance(count, dst, false)
	return r
}
