package editor

// ---------- Selection / Copy / Cut / Paste ----------

func (e *Editor) toggleSelection() {
	if e.doc.Selecting() {
		e.doc.ClearSelection()
		e.setStatusMessage("Selection cleared.")
		return
	}
	e.doc.StartSelection()
	e.setStatusMessage("Selection started.")
}

// copyRegion copies the selected span wholesale into the clipboard slot. The
// buffer is untouched; the selection is cleared.
func (e *Editor) copyRegion() {
	lo, hi, ok := e.doc.Region()
	if !ok {
		e.setStatusMessage("No selection.")
		return
	}
	e.clip.Set(e.doc.Slice(lo, hi))
	e.mirrorClipboard()
	e.doc.ClearSelection()
	e.setStatusMessage("Copied %d bytes", hi-lo)
}

// cutRegion copies the selected span and then deletes it one position at a
// time through the ordinary delete commands, so the cursor, line bookkeeping
// and screen stay tracked throughout.
func (e *Editor) cutRegion() {
	lo, hi, ok := e.doc.Region()
	if !ok {
		e.setStatusMessage("No selection.")
		return
	}
	e.clip.Set(e.doc.Slice(lo, hi))
	e.mirrorClipboard()
	if e.doc.Pos() <= lo {
		for i := 0; i < hi-lo; i++ {
			e.deleteForward()
		}
	} else {
		for i := 0; i < hi-lo; i++ {
			e.deleteBackward()
		}
	}
	e.doc.ClearSelection()
	e.setStatusMessage("Cut %d bytes", hi-lo)
}

// paste replays every clipboard byte through the single-character insert
// commands at the cursor.
func (e *Editor) paste() {
	data := e.clip.Bytes()
	if len(data) == 0 {
		e.setStatusMessage("Clipboard is empty.")
		return
	}
	for _, c := range data {
		if c == '\n' {
			e.insertNewline()
		} else {
			e.insertChar(c)
		}
	}
	e.setStatusMessage("Pasted %d bytes", len(data))
}
