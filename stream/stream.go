// Package stream implements bounds-checked sequential cursors over a
// fixed-size, caller-owned byte region. Cursors never allocate, never
// take ownership of the region and fail silently: an out-of-bounds or
// unarmed access is a no-op for writes and a zero-valued result for
// reads.
//
// Lifecycle: a cursor starts unarmed, is armed with a buffer, a region
// size and a copy capability, is used for a sequence of operations and
// must be explicitly reset before the caller releases the buffer.
package stream

// CopyFunc is the raw memory-copy capability injected at arm time.
// Both slices are guaranteed to hold at least n bytes when called.
type CopyFunc func(dst, src []byte, n uint32)

// Memcopy is the plain local copy. Embedders can substitute their own
// mechanism, e.g. copying through an indirection layer.
func Memcopy(dst, src []byte, n uint32) {
	copy(dst[:n], src[:n])
}

// cursor is the state shared by Reader and Writer: a position, the
// region size and the backing buffer. Invariant: 0 <= pos <= size.
type cursor struct {
	pos  uint32
	size uint32
	buf  []byte
}

// Position returns the current cursor position in bytes from the start
// of the region.
func (c *cursor) Position() uint32 {
	return c.pos
}

// Capacity returns the total size of the region. It does not take the
// current cursor position into account.
func (c *cursor) Capacity() uint32 {
	return c.size
}

// Start returns the backing buffer. The caller owns this memory and
// must Reset the cursor before releasing it.
func (c *cursor) Start() []byte {
	return c.buf
}

// ResetCursor moves the cursor back to the start of the region.
func (c *cursor) ResetCursor() {
	c.pos = 0
}

// inBounds reports whether a request of count bytes against a peer
// buffer of peerLen bytes may proceed. Rejections: zero count, short or
// nil peer buffer, count covering the whole region or more, and a
// request crossing the end of the region. count >= size intentionally
// refuses a request exactly filling the region; downstream callers may
// depend on that rejection.
func (c *cursor) inBounds(count uint32, peerLen int) bool {
	if count == 0 || int64(peerLen) < int64(count) {
		return false
	}
	if count >= c.size {
		return false
	}
	if uint64(c.pos)+uint64(count) > uint64(c.size) {
		return false
	}
	return true
}
