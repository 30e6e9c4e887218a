package editor

import (
	"fmt"
	"strings"
	"time"

	"ged/buffer"
	"ged/version"
)

// statusTimeout is how long a transient status message stays visible.
const statusTimeout = 5 * time.Second

// ---------- Window bookkeeping ----------

// calculateWindowEnd walks lineCount newlines forward from start and returns
// the offset just past the last one, or the buffer length when the text runs
// out first. Every window shift funnels through here so windowEnd stays
// aligned to a line boundary.
func (e *Editor) calculateWindowEnd(start, lineCount int) int {
	pos := start
	for i := 0; i < lineCount; i++ {
		end := buffer.LineEnd(e.doc.buf, pos)
		if end >= e.doc.Len() {
			return e.doc.Len()
		}
		pos = end + 1
	}
	return pos
}

// rowStart returns the buffer offset of the first byte shown on a screen row.
func (e *Editor) rowStart(row int) int {
	return e.calculateWindowEnd(e.windowStart, row-1)
}

// cursorRow returns the 1-based screen row the cursor line occupies, counted
// from the top of the window. Rows past editRows mean the cursor has left
// the window.
func (e *Editor) cursorRow() int {
	return 1 + buffer.Count(e.doc.buf, e.windowStart, e.doc.Pos(), '\n')
}

// ---------- Scrolling ----------

// scrollUp shifts the window down one line in the buffer: the screen content
// moves up and the next line appears on the bottom edit row.
func (e *Editor) scrollUp() {
	end := buffer.LineEnd(e.doc.buf, e.windowStart)
	if end >= e.doc.Len() {
		return
	}
	e.windowStart = end + 1
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	e.out.WriteString(ansiScrollUp)
	e.paintRow(e.editRows, e.rowStart(e.editRows))
}

// scrollDown shifts the window up one line in the buffer: an insert-line at
// the top pushes the screen content down and the preceding line appears on
// row one.
func (e *Editor) scrollDown() {
	if e.windowStart == 0 {
		return
	}
	e.windowStart = buffer.LineStart(e.doc.buf, e.windowStart-1)
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	e.moveTo(1, 1)
	e.out.WriteString(ansiInsertLine)
	e.paintRow(1, e.windowStart)
}

// scrollToCursor scrolls one line at a time until the cursor line is inside
// the window again.
func (e *Editor) scrollToCursor() {
	for e.doc.Pos() < e.windowStart {
		e.scrollDown()
	}
	for e.cursorRow() > e.editRows {
		e.scrollUp()
	}
}

// ---------- Painting ----------

func (e *Editor) moveTo(row, col int) {
	fmt.Fprintf(e.out, "\x1b[%d;%dH", row, col)
}

func (e *Editor) setScrollRegion() {
	fmt.Fprintf(e.out, "\x1b[1;%dr", e.editRows)
}

// paintRow draws the line starting at offset start across a whole screen row.
func (e *Editor) paintRow(row, start int) {
	e.paintTail(row, 1, start)
}

// paintTail redraws a line from offset start onward, beginning at screen
// column col and clipped to the terminal width. The rest of the row is
// cleared when the text stops short of the right edge, which also reveals
// bytes sliding in from beyond the edge after a deletion.
func (e *Editor) paintTail(row, col, start int) {
	if col > e.termWidth {
		return
	}
	e.moveTo(row, col)
	end := buffer.LineEnd(e.doc.buf, start)
	width := e.termWidth - col + 1
	if end-start > width {
		end = start + width
	}
	if end > start {
		e.out.Write(e.doc.buf.Slice(start, end))
	}
	if end-start < width {
		e.out.WriteString(ansiClearLine)
	}
}

// redrawAll repaints every edit row from windowStart and forces the next
// status bar draw.
func (e *Editor) redrawAll() {
	e.out.WriteString(ansiClearScreen)
	start := e.windowStart
	for row := 1; row <= e.editRows; row++ {
		e.paintRow(row, start)
		start = buffer.NextLineStart(e.doc.buf, start)
	}
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	e.lastStatus = statusLine{}
}

// syncCursor places the terminal cursor on the document cursor, clamped to
// the rightmost column for lines wider than the screen.
func (e *Editor) syncCursor() {
	col := e.doc.Column() + 1
	if col > e.termWidth {
		col = e.termWidth
	}
	e.moveTo(e.cursorRow(), col)
}

// ---------- Status row ----------

func (e *Editor) currentStatus() statusLine {
	s := statusLine{
		filename:  e.filename,
		modified:  e.doc.Modified(),
		selecting: e.doc.Selecting(),
		line:      e.doc.Line() + 1,
	}
	if time.Since(e.statusTime) < statusTimeout {
		s.message = e.statusMessage
	}
	return s
}

// drawStatusBar rewrites the status row, but only when one of its observable
// fields changed since the last draw.
func (e *Editor) drawStatusBar() {
	s := e.currentStatus()
	if s == e.lastStatus {
		return
	}
	e.lastStatus = s

	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	left := fmt.Sprintf(" %.20s", name)
	if s.modified {
		left += " (modified)"
	}
	if s.selecting {
		left += " [select]"
	}
	if s.message != "" {
		left = " " + s.message
	}
	right := fmt.Sprintf("Ln %d  v%s ", s.line, version.GetVersion())

	row := left
	if pad := e.termWidth - len(left) - len(right); pad > 0 {
		row += strings.Repeat(" ", pad) + right
	}
	if len(row) < e.termWidth {
		row += strings.Repeat(" ", e.termWidth-len(row))
	} else if len(row) > e.termWidth {
		row = row[:e.termWidth]
	}

	e.moveTo(e.termHeight, 1)
	e.out.WriteString(ansiInvert)
	e.out.WriteString(row)
	e.out.WriteString(ansiReset)
}

// drawPrompt paints a prompt with the input typed so far on the status row
// and leaves the terminal cursor right after the input.
func (e *Editor) drawPrompt(label, input string) {
	row := " " + label + input
	if pad := e.termWidth - len(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	} else {
		row = row[:e.termWidth]
	}
	e.moveTo(e.termHeight, 1)
	e.out.WriteString(ansiInvert)
	e.out.WriteString(row)
	e.out.WriteString(ansiReset)
	e.moveTo(e.termHeight, min(1+len(label)+len(input)+1, e.termWidth))
}
