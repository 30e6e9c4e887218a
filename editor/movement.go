package editor

// Movement commands: a pure Document move followed by whatever scrolling is
// needed to keep the cursor inside the window. The wish column is
// established on the first vertical move and reset by processInput on any
// other key.

func (e *Editor) moveLeft() {
	e.doc.Left()
	e.scrollToCursor()
}

func (e *Editor) moveRight() {
	e.doc.Right()
	e.scrollToCursor()
}

func (e *Editor) moveUp() {
	if e.wishCol < 0 {
		e.wishCol = e.doc.Column()
	}
	e.doc.Up(e.wishCol)
	e.scrollToCursor()
}

func (e *Editor) moveDown() {
	if e.wishCol < 0 {
		e.wishCol = e.doc.Column()
	}
	e.doc.Down(e.wishCol)
	e.scrollToCursor()
}

func (e *Editor) moveLineStart() {
	e.doc.Home()
}

func (e *Editor) moveLineEnd() {
	e.doc.End()
}
