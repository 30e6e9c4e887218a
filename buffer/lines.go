package buffer

// Line index helpers translate between absolute buffer offsets and
// line-relative positions by scanning for newline bytes.

// LineStart returns the offset of the first byte of the line containing pos.
// Given pos == Len() it returns the start of the (possibly empty) final line.
func LineStart(b Buffer, pos int) int {
	return b.SearchBackward(pos-1, '\n') + 1
}

// LineEnd returns the offset of the newline terminating the line containing
// pos, or Len() for an unterminated final line. A pos sitting on a newline is
// its own line end.
func LineEnd(b Buffer, pos int) int {
	return b.SearchForward(pos, '\n')
}

// NextLineStart returns the offset just past the newline terminating the
// line containing pos, or Len() when no line follows.
func NextLineStart(b Buffer, pos int) int {
	end := b.SearchForward(pos, '\n')
	if end >= b.Len() {
		return b.Len()
	}
	return end + 1
}

// Count returns the number of occurrences of c in [start, end).
func Count(b Buffer, start, end int, c byte) int {
	if end > b.Len() {
		end = b.Len()
	}
	n := 0
	for i := b.SearchForward(start, c); i < end; i = b.SearchForward(i+1, c) {
		n++
	}
	return n
}
