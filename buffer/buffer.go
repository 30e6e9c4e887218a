package buffer

// Buffer is the editable byte sequence the editor operates on. Offsets are
// logical positions, independent of the physical storage layout. Mutating
// operations silently ignore out-of-range positions; commands at a boundary
// are no-ops, not errors.
type Buffer interface {
	// Len returns the number of logical bytes stored.
	Len() int

	// ByteAt returns the byte at a logical offset.
	// Callers must guarantee 0 <= pos < Len().
	ByteAt(pos int) byte

	// Insert writes one byte at pos, shifting the remainder right.
	Insert(pos int, c byte)

	// Delete removes n bytes starting at pos. The range is clamped to the
	// logical end of the buffer.
	Delete(pos, n int)

	// SearchForward returns the offset of the first occurrence of c at or
	// after pos, or Len() when there is none.
	SearchForward(pos int, c byte) int

	// SearchBackward returns the offset of the last occurrence of c at or
	// before pos, or -1 when there is none.
	SearchBackward(pos int, c byte) int

	// Slice returns a copy of the logical range [start, end), clamped to
	// the buffer bounds.
	Slice(start, end int) []byte

	// String returns the full logical content.
	String() string
}
