package editor

import (
	"ged/buffer"
)

// tabStop is the fixed tab width. Tabs are never stored: the Tab key and the
// load-time expansion both emit spaces up to the next tabStop column.
const tabStop = 4

// insertChar inserts one byte at the cursor and redraws the line remainder,
// shifted one cell right.
func (e *Editor) insertChar(c byte) {
	e.doc.Insert(c)
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	e.paintTail(e.cursorRow(), e.doc.Column(), e.doc.Pos()-1)
}

// insertNewline splits the line at the cursor: the remainder moves onto a
// freshly inserted screen row, or the window scrolls when the split happens
// on the bottom edit row.
func (e *Editor) insertNewline() {
	row := e.cursorRow()
	col := e.doc.Column()
	e.doc.Insert('\n')
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	if row < e.editRows {
		e.moveTo(row+1, 1)
		e.out.WriteString(ansiInsertLine)
		e.paintRow(row+1, e.doc.Pos())
		if col < e.termWidth {
			e.moveTo(row, col+1)
			e.out.WriteString(ansiClearLine)
		}
	} else {
		e.scrollUp()
		if e.editRows > 1 && col < e.termWidth {
			e.moveTo(e.editRows-1, col+1)
			e.out.WriteString(ansiClearLine)
		}
	}
}

// insertTab inserts spaces one at a time until the cursor reaches the next
// tabStop column.
func (e *Editor) insertTab() {
	for {
		e.insertChar(' ')
		if e.doc.Column()%tabStop == 0 {
			break
		}
	}
}

// deleteForward removes the byte under the cursor. Deleting a newline joins
// the next line onto the cursor line and shrinks the screen by one row;
// otherwise the line remainder shifts left, revealing any byte that was
// clipped beyond the right edge.
func (e *Editor) deleteForward() {
	if e.doc.Pos() >= e.doc.Len() {
		return
	}
	row := e.cursorRow()
	col := e.doc.Column()
	joining := e.doc.ByteAt(e.doc.Pos()) == '\n'
	e.doc.DeleteAt()
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	e.paintTail(row, col+1, e.doc.Pos())
	if joining && row < e.editRows {
		e.moveTo(row+1, 1)
		e.out.WriteString(ansiDeleteLine)
		e.paintRow(e.editRows, e.rowStart(e.editRows))
	}
}

// deleteBackward moves the cursor left one byte and deletes it. At a line
// start this joins the cursor line onto its predecessor, scrolling down
// first when the predecessor is above the window.
func (e *Editor) deleteBackward() {
	if e.doc.Pos() == 0 {
		return
	}
	if e.doc.Column() == 0 {
		if e.cursorRow() == 1 {
			e.scrollDown()
		}
		row := e.cursorRow()
		e.doc.Left()
		e.doc.DeleteAt()
		e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
		e.paintTail(row-1, e.doc.Column()+1, e.doc.Pos())
		e.moveTo(row, 1)
		e.out.WriteString(ansiDeleteLine)
		e.paintRow(e.editRows, e.rowStart(e.editRows))
	} else {
		row := e.cursorRow()
		col := e.doc.Column()
		e.doc.Left()
		e.doc.DeleteAt()
		e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
		e.paintTail(row, col, e.doc.Pos())
	}
}

// deleteToLineEnd removes everything from the cursor up to, but not
// including, the terminating newline in one buffer call.
func (e *Editor) deleteToLineEnd() {
	end := buffer.LineEnd(e.doc.buf, e.doc.Pos())
	if end == e.doc.Pos() {
		return
	}
	e.doc.DeleteSpan(e.doc.Pos(), end)
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	if e.doc.Column() < e.termWidth {
		e.moveTo(e.cursorRow(), e.doc.Column()+1)
		e.out.WriteString(ansiClearLine)
	}
}

// deleteToLineStart removes everything from the line start up to the cursor
// in one buffer call and repaints the shifted remainder.
func (e *Editor) deleteToLineStart() {
	start := buffer.LineStart(e.doc.buf, e.doc.Pos())
	if start == e.doc.Pos() {
		return
	}
	row := e.cursorRow()
	e.doc.DeleteSpan(start, e.doc.Pos())
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	e.paintRow(row, e.doc.Pos())
}
