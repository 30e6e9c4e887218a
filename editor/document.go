package editor

import (
	"ged/buffer"
)

// Document owns the text buffer together with the cursor, the optional
// selection anchor, and the modified flag. It never touches the terminal:
// every method is a pure state mutation, and the Editor observes a Document
// before and after a command to decide what to repaint.
type Document struct {
	buf       buffer.Buffer
	pos       int
	line      int
	selectPos int
	modified  bool
}

func NewDocument() *Document {
	return &Document{
		buf:       buffer.New(),
		selectPos: -1,
	}
}

func (d *Document) Pos() int  { return d.pos }
func (d *Document) Line() int { return d.line }
func (d *Document) Len() int  { return d.buf.Len() }

func (d *Document) Modified() bool     { return d.modified }
func (d *Document) SetModified(m bool) { d.modified = m }

func (d *Document) ByteAt(pos int) byte         { return d.buf.ByteAt(pos) }
func (d *Document) Slice(start, end int) []byte { return d.buf.Slice(start, end) }
func (d *Document) String() string              { return d.buf.String() }

// Column returns the zero-based column of the cursor within its line.
func (d *Document) Column() int {
	return d.pos - buffer.LineStart(d.buf, d.pos)
}

// ---------- Movement ----------

// Left moves the cursor one byte back. At offset zero it is a no-op.
func (d *Document) Left() {
	if d.pos == 0 {
		return
	}
	d.pos--
	if d.buf.ByteAt(d.pos) == '\n' {
		d.line--
	}
}

// Right moves the cursor one byte forward. At the end of the buffer it is a
// no-op.
func (d *Document) Right() {
	if d.pos >= d.buf.Len() {
		return
	}
	if d.buf.ByteAt(d.pos) == '\n' {
		d.line++
	}
	d.pos++
}

// Up moves to the previous line, aiming for the wish column but stopping at
// that line's end. On the first line it is a no-op.
func (d *Document) Up(wish int) {
	start := buffer.LineStart(d.buf, d.pos)
	if start == 0 {
		return
	}
	prev := buffer.LineStart(d.buf, start-1)
	d.pos = min(prev+wish, start-1)
	d.line--
}

// Down moves to the next line, aiming for the wish column but stopping at
// that line's end. On the last line it is a no-op.
func (d *Document) Down(wish int) {
	end := buffer.LineEnd(d.buf, d.pos)
	if end >= d.buf.Len() {
		return
	}
	next := end + 1
	d.pos = min(next+wish, buffer.LineEnd(d.buf, next))
	d.line++
}

func (d *Document) Home() {
	d.pos = buffer.LineStart(d.buf, d.pos)
}

func (d *Document) End() {
	d.pos = buffer.LineEnd(d.buf, d.pos)
}

// MoveTo places the cursor at an absolute offset, recomputing the line
// number from scratch.
func (d *Document) MoveTo(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > d.buf.Len() {
		pos = d.buf.Len()
	}
	d.pos = pos
	d.line = buffer.Count(d.buf, 0, pos, '\n')
}

// GotoLine steps the cursor one line at a time toward the zero-based target
// and lands on the first byte of the line it stops on. A target past the last
// line stops there, so the walk always terminates.
func (d *Document) GotoLine(target int) {
	if target < 0 {
		target = 0
	}
	for d.line < target {
		before := d.pos
		d.Down(0)
		if d.pos == before {
			break
		}
	}
	for d.line > target {
		d.Up(0)
	}
	d.Home()
}

// ---------- Mutation ----------

// Insert writes one byte at the cursor and advances past it.
func (d *Document) Insert(c byte) {
	d.buf.Insert(d.pos, c)
	if c == '\n' {
		d.line++
	}
	d.pos++
	d.modified = true
}

// DeleteAt removes the byte under the cursor. The cursor and line number do
// not move. At the end of the buffer it is a no-op.
func (d *Document) DeleteAt() {
	if d.pos >= d.buf.Len() {
		return
	}
	d.buf.Delete(d.pos, 1)
	d.modified = true
}

// DeleteSpan removes [start, end) in a single buffer call. A cursor at or
// past the end of the span keeps its byte; a cursor inside the span is left
// at the start.
func (d *Document) DeleteSpan(start, end int) {
	if start < 0 || end > d.buf.Len() || start >= end {
		return
	}
	switch {
	case d.pos >= end:
		d.line -= buffer.Count(d.buf, start, end, '\n')
		d.pos -= end - start
	case d.pos > start:
		d.line -= buffer.Count(d.buf, start, d.pos, '\n')
		d.pos = start
	}
	d.buf.Delete(start, end-start)
	d.modified = true
}

// ---------- Selection ----------

func (d *Document) Selecting() bool { return d.selectPos >= 0 }

// StartSelection anchors a selection at the cursor.
func (d *Document) StartSelection() { d.selectPos = d.pos }

func (d *Document) ClearSelection() { d.selectPos = -1 }

// Region returns the selected span ordered low to high. ok is false when no
// selection is active or the region is empty.
func (d *Document) Region() (lo, hi int, ok bool) {
	if d.selectPos < 0 {
		return 0, 0, false
	}
	lo, hi = d.selectPos, d.pos
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi > d.buf.Len() {
		hi = d.buf.Len()
	}
	if lo == hi {
		return 0, 0, false
	}
	return lo, hi, true
}
