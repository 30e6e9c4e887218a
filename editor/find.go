package editor

import (
	"bytes"
)

// findCommand prompts for a byte string and moves the cursor to the next
// occurrence, searching forward from just after the cursor and wrapping to
// the start of the buffer. Empty input reuses the previous pattern. Matching
// is exact bytes, no patterns.
func (e *Editor) findCommand() {
	input, ok := e.readPrompt("Find: ", "")
	e.lastStatus = statusLine{}
	if !ok {
		e.setStatusMessage("Find cancelled.")
		return
	}
	if input == "" {
		input = e.lastSearch
	}
	if input == "" {
		e.setStatusMessage("No search text.")
		return
	}
	e.lastSearch = input

	text := e.doc.Slice(0, e.doc.Len())
	needle := []byte(input)
	idx := -1
	if from := e.doc.Pos() + 1; from < len(text) {
		if i := bytes.Index(text[from:], needle); i >= 0 {
			idx = from + i
		}
	}
	if idx < 0 {
		idx = bytes.Index(text, needle)
	}
	if idx < 0 {
		e.setStatusMessage("Not found: %s", input)
		return
	}
	e.doc.MoveTo(idx)
	e.scrollToCursor()
	e.setStatusMessage("Found at line %d", e.doc.Line()+1)
}
