package editor

import (
	"bytes"
	"strconv"
)

// Synthetic codes for keys that arrive as escape sequences. Plain keys are
// their own byte value.
const (
	keyArrowUp = 1000 + iota
	keyArrowDown
	keyArrowLeft
	keyArrowRight
	keyHome
	keyEnd
	keyDelete
)

const (
	keyEscape    = '\x1b'
	keyBackspace = '\x7f'

	maxPromptLen = 128
)

// ---------- Key decoding ----------

// readKey returns the next key: a byte value for plain keys, a synthetic
// code for decoded escape sequences, or 0 for sequences the editor ignores.
// A lone ESC byte is the Escape key; bufio buffering distinguishes it from
// the start of a sequence.
func (e *Editor) readKey() (int, error) {
	c, err := e.inputReader.ReadByte()
	if err != nil {
		return 0, err
	}
	if c != '\x1b' {
		return int(c), nil
	}
	if e.inputReader.Buffered() == 0 {
		return keyEscape, nil
	}
	b, err := e.inputReader.ReadByte()
	if err != nil || (b != '[' && b != 'O') {
		return keyEscape, nil
	}

	var params []byte
	for {
		if e.inputReader.Buffered() == 0 {
			return 0, nil
		}
		b, err = e.inputReader.ReadByte()
		if err != nil {
			return 0, nil
		}
		if b >= '0' && b <= '9' || b == ';' {
			params = append(params, b)
			continue
		}
		break
	}

	switch b {
	case 'A':
		return keyArrowUp, nil
	case 'B':
		return keyArrowDown, nil
	case 'C':
		return keyArrowRight, nil
	case 'D':
		return keyArrowLeft, nil
	case 'H':
		return keyHome, nil
	case 'F':
		return keyEnd, nil
	case '~':
		if i := bytes.IndexByte(params, ';'); i >= 0 {
			params = params[:i] // strip the modifier
		}
		switch string(params) {
		case "1", "7":
			return keyHome, nil
		case "4", "8":
			return keyEnd, nil
		case "3":
			return keyDelete, nil
		}
	}
	return 0, nil
}

// ---------- Dispatch ----------

func (e *Editor) processInput() error {
	c, err := e.readKey()
	if err != nil {
		return err
	}
	e.out.WriteString(ansiHideCursor)

	if c != keyArrowUp && c != keyArrowDown {
		e.wishCol = -1
	}

	switch c {
	case keyArrowUp:
		e.moveUp()
	case keyArrowDown:
		e.moveDown()
	case keyArrowLeft:
		e.moveLeft()
	case keyArrowRight:
		e.moveRight()
	case keyHome:
		e.moveLineStart()
	case keyEnd:
		e.moveLineEnd()
	case keyDelete:
		e.deleteForward()
	case keyBackspace, '\b': // Backspace or Ctrl+H
		e.deleteBackward()
	case '\r': // Enter
		e.insertNewline()
	case '\t': // Tab
		e.insertTab()
	case '\x02': // Ctrl+B
		e.toggleSelection()
	case '\x03': // Ctrl+C
		e.copyRegion()
	case '\x06': // Ctrl+F
		e.findCommand()
	case '\x07': // Ctrl+G
		e.gotoLineCommand()
	case '\x0b': // Ctrl+K
		e.deleteToLineEnd()
	case '\x11': // Ctrl+Q
		e.quitCommand()
	case '\x13': // Ctrl+S
		e.saveCommand()
	case '\x15': // Ctrl+U
		e.deleteToLineStart()
	case '\x16': // Ctrl+V
		e.paste()
	case '\x18': // Ctrl+X
		e.cutRegion()
	case keyEscape:
		if e.doc.Selecting() {
			e.doc.ClearSelection()
			e.setStatusMessage("Selection cleared.")
		}
	default:
		if c >= 32 && c <= 126 || c >= 160 && c <= 255 {
			e.insertChar(byte(c))
		}
	}
	return nil
}

// ---------- Prompts ----------

// readPrompt runs a synchronous line prompt on the status row. Enter accepts,
// Escape cancels, backspace edits; other control keys are ignored.
func (e *Editor) readPrompt(label, initial string) (string, bool) {
	input := []byte(initial)
	for {
		e.drawPrompt(label, string(input))
		e.out.WriteString(ansiShowCursor)
		e.out.Flush()
		c, err := e.readKey()
		if err != nil {
			return "", false
		}
		switch c {
		case '\r': // Enter
			return string(input), true
		case keyEscape:
			return "", false
		case keyBackspace, '\b':
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		default:
			if (c >= 32 && c <= 126 || c >= 160 && c <= 255) && len(input) < maxPromptLen {
				input = append(input, byte(c))
			}
		}
	}
}

// readYesNo asks a single-key question on the status row. ok is false when
// the answer was neither y nor n.
func (e *Editor) readYesNo(label string) (answer, ok bool) {
	e.drawPrompt(label, "")
	e.out.WriteString(ansiShowCursor)
	e.out.Flush()
	c, err := e.readKey()
	if err != nil {
		return false, false
	}
	switch c {
	case 'y', 'Y':
		return true, true
	case 'n', 'N':
		return false, true
	}
	return false, false
}

// ---------- Session commands ----------

// quitCommand drives Ctrl+Q. A modified buffer first asks whether to save,
// then for a filename pre-filled with the current one; a failed or cancelled
// save cancels the quit. Answering n discards the changes.
func (e *Editor) quitCommand() {
	if !e.doc.Modified() {
		e.quit = true
		return
	}
	answer, ok := e.readYesNo("Save modified buffer (y/n)?")
	e.lastStatus = statusLine{}
	if !ok {
		e.setStatusMessage("Quit cancelled.")
		return
	}
	if !answer {
		e.quit = true
		return
	}
	input, ok := e.readPrompt("Save as: ", e.filename)
	e.lastStatus = statusLine{}
	if !ok || input == "" {
		e.setStatusMessage("Save cancelled.")
		return
	}
	if err := e.save(input); err != nil {
		e.setStatusMessage("Save failed: %v", err)
		return
	}
	e.quit = true
}

func (e *Editor) gotoLineCommand() {
	input, ok := e.readPrompt("Go to line: ", "")
	e.lastStatus = statusLine{}
	if !ok || input == "" {
		e.setStatusMessage("Go to line cancelled.")
		return
	}
	n, err := strconv.Atoi(input)
	if err != nil || n <= 0 {
		e.setStatusMessage("Invalid line number: %s", input)
		return
	}
	e.doc.GotoLine(n - 1)
	e.scrollToCursor()
	e.setStatusMessage("Moved to line %d", e.doc.Line()+1)
}
