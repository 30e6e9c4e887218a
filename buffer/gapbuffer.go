package buffer

import "bytes"

// growthChunk is the fixed amount of gap space added whenever the gap runs
// out. Growth is always by whole chunks, never proportional.
const growthChunk = 1024

// GapBuffer stores the logical byte sequence as two contiguous spans around
// a movable gap: data[0:gapStart) and data[gapEnd:len(data)). The logical
// length is len(data) minus the gap width. A logical offset p < gapStart maps
// to data[p]; p >= gapStart maps to data[p+gap]. Edits at the gap boundary
// are O(1), so repeated same-direction edits (typing) cost O(1) amortized.
type GapBuffer struct {
	data     []byte
	gapStart int
	gapEnd   int
}

var _ Buffer = (*GapBuffer)(nil)

// New returns an empty buffer with a full chunk of gap ready for inserts.
func New() *GapBuffer {
	return &GapBuffer{
		data:   make([]byte, growthChunk),
		gapEnd: growthChunk,
	}
}

// NewString returns a buffer holding s.
func NewString(s string) *GapBuffer {
	b := New()
	for i := 0; i < len(s); i++ {
		b.Insert(b.Len(), s[i])
	}
	return b
}

func (b *GapBuffer) gap() int { return b.gapEnd - b.gapStart }

func (b *GapBuffer) Len() int { return len(b.data) - b.gap() }

func (b *GapBuffer) ByteAt(pos int) byte {
	if pos < b.gapStart {
		return b.data[pos]
	}
	return b.data[pos+b.gap()]
}

// moveGap relocates the gap boundary to pos. Only the span between the old
// and new boundary is copied, so the cost is O(distance moved) and logical
// offsets outside that span keep their physical bytes untouched.
func (b *GapBuffer) moveGap(pos int) {
	if pos < b.gapStart {
		delta := b.gapStart - pos
		copy(b.data[b.gapEnd-delta:b.gapEnd], b.data[pos:b.gapStart])
		b.gapStart -= delta
		b.gapEnd -= delta
	} else if pos > b.gapStart {
		delta := pos - b.gapStart
		copy(b.data[b.gapStart:b.gapStart+delta], b.data[b.gapEnd:b.gapEnd+delta])
		b.gapStart += delta
		b.gapEnd += delta
	}
}

// grow reallocates with one more chunk of gap. It is only called when the
// gap is empty, so the logical content is contiguous: it lands at the front
// of the new storage and the gap collapses to the end.
func (b *GapBuffer) grow() {
	size := b.Len()
	nd := make([]byte, size+growthChunk)
	copy(nd, b.data[:b.gapStart])
	copy(nd[b.gapStart:], b.data[b.gapEnd:])
	b.data = nd
	b.gapStart = size
	b.gapEnd = len(nd)
}

// Insert writes c at logical offset pos. Positions outside [0, Len()] are
// ignored.
func (b *GapBuffer) Insert(pos int, c byte) {
	if pos < 0 || pos > b.Len() {
		return
	}
	if b.gapStart == b.gapEnd {
		b.grow()
	}
	b.moveGap(pos)
	b.data[b.gapStart] = c
	b.gapStart++
}

// Delete removes n bytes starting at pos, clamped to the logical end.
func (b *GapBuffer) Delete(pos, n int) {
	if pos < 0 || pos >= b.Len() || n <= 0 {
		return
	}
	if pos+n > b.Len() {
		n = b.Len() - pos
	}
	b.moveGap(pos)
	b.gapEnd += n
}

// SearchForward scans the two spans for c starting at pos and returns the
// first matching logical offset, or Len() when there is none.
func (b *GapBuffer) SearchForward(pos int, c byte) int {
	if pos < 0 {
		pos = 0
	}
	if pos < b.gapStart {
		if i := bytes.IndexByte(b.data[pos:b.gapStart], c); i >= 0 {
			return pos + i
		}
		pos = b.gapStart
	}
	phys := pos + b.gap()
	if phys < len(b.data) {
		if i := bytes.IndexByte(b.data[phys:], c); i >= 0 {
			return phys + i - b.gap()
		}
	}
	return b.Len()
}

// SearchBackward scans for c from pos down to offset 0 and returns the last
// matching logical offset, or -1 when there is none.
func (b *GapBuffer) SearchBackward(pos int, c byte) int {
	if pos >= b.Len() {
		pos = b.Len() - 1
	}
	if pos < 0 {
		return -1
	}
	if pos >= b.gapStart {
		phys := pos + b.gap()
		if i := bytes.LastIndexByte(b.data[b.gapEnd:phys+1], c); i >= 0 {
			return b.gapStart + i
		}
		pos = b.gapStart - 1
		if pos < 0 {
			return -1
		}
	}
	return bytes.LastIndexByte(b.data[:pos+1], c)
}

// Slice returns a copy of the logical range [start, end), clamped to the
// buffer bounds.
func (b *GapBuffer) Slice(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > b.Len() {
		end = b.Len()
	}
	if start >= end {
		return nil
	}
	out := make([]byte, 0, end-start)
	if start < b.gapStart {
		stop := min(end, b.gapStart)
		out = append(out, b.data[start:stop]...)
		start = stop
	}
	if start < end {
		out = append(out, b.data[start+b.gap():end+b.gap()]...)
	}
	return out
}

func (b *GapBuffer) String() string {
	return string(b.Slice(0, b.Len()))
}
