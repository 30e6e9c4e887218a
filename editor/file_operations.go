package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"ged/buffer"
)

// ---------- Load / Save ----------

// loadFile reads name into the document buffer: carriage returns are
// dropped, a trailing newline is appended when a non-empty file lacks one,
// and a final pass expands every stored tab into spaces. Tabs exist only
// transiently during the load.
func (e *Editor) loadFile(name string) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := e.doc.buf
	r := bufio.NewReader(f)
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if c == '\r' {
			continue
		}
		buf.Insert(buf.Len(), c)
	}
	if n := buf.Len(); n > 0 && buf.ByteAt(n-1) != '\n' {
		buf.Insert(n, '\n')
	}
	expandTabs(buf)
	log.Printf("loaded %d bytes from %s", buf.Len(), name)
	return nil
}

// expandTabs replaces every tab with spaces up to the next tabStop column,
// tracking the column across newlines.
func expandTabs(buf buffer.Buffer) {
	col := 0
	for pos := 0; pos < buf.Len(); {
		switch buf.ByteAt(pos) {
		case '\n':
			col = 0
			pos++
		case '\t':
			buf.Delete(pos, 1)
			for {
				buf.Insert(pos, ' ')
				pos++
				col++
				if col%tabStop == 0 {
					break
				}
			}
		default:
			col++
			pos++
		}
	}
}

// save writes the buffer to name with every newline expanded to CR+LF and a
// guaranteed terminating CR+LF even for an empty buffer, then records the
// filename and clears the modified flag.
func (e *Editor) save(name string) error {
	if e.config.BackupOnSave {
		if _, err := os.Stat(name); err == nil {
			os.Rename(name, name+"~")
		}
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	buf := e.doc.buf
	n := buf.Len()
	written := 0
	for i := 0; i < n; i++ {
		c := buf.ByteAt(i)
		if c == '\n' {
			w.WriteString("\r\n")
			written += 2
		} else {
			w.WriteByte(c)
			written++
		}
	}
	if n == 0 || buf.ByteAt(n-1) != '\n' {
		w.WriteString("\r\n")
		written += 2
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.filename = name
	e.doc.SetModified(false)
	log.Printf("saved %d bytes to %s", written, name)
	e.setStatusMessage("%d bytes written to %s", written, name)
	return nil
}

// saveCommand drives Ctrl+S: it prompts for a filename when the session has
// none and leaves the buffer dirty when the save fails or is cancelled.
func (e *Editor) saveCommand() {
	name := e.filename
	if name == "" {
		input, ok := e.readPrompt("Save as: ", "")
		e.lastStatus = statusLine{}
		if !ok || input == "" {
			e.setStatusMessage("Save cancelled.")
			return
		}
		name = input
	}
	if err := e.save(name); err != nil {
		log.Printf("save failed: %v", err)
		e.setStatusMessage("Save failed: %v", err)
	}
}

func (e *Editor) setStatusMessage(f string, a ...interface{}) {
	e.statusMessage = fmt.Sprintf(f, a...)
	e.statusTime = time.Now()
}
