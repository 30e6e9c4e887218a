package editor

import (
	"log"

	"github.com/atotto/clipboard"
)

// clipboardChunk is the granularity the clipboard slot grows by.
const clipboardChunk = 256

// Clipboard is a single growable byte slot shared by copy, cut and paste.
// Each copy overwrites the content wholesale; the backing array grows in
// fixed chunks and never shrinks, so it is reused across operations. One
// Clipboard is created in main and outlives the editing session.
type Clipboard struct {
	buf []byte
}

func NewClipboard() *Clipboard {
	return &Clipboard{buf: make([]byte, 0, clipboardChunk)}
}

// Set replaces the clipboard content with p.
func (c *Clipboard) Set(p []byte) {
	if len(p) > cap(c.buf) {
		chunks := (len(p) + clipboardChunk - 1) / clipboardChunk
		c.buf = make([]byte, 0, chunks*clipboardChunk)
	}
	c.buf = append(c.buf[:0], p...)
}

func (c *Clipboard) Bytes() []byte { return c.buf }
func (c *Clipboard) Len() int      { return len(c.buf) }

// mirrorClipboard pushes the internal slot to the system clipboard, best
// effort. Paste always replays the internal slot, so a failure here only
// loses the cross-process copy.
func (e *Editor) mirrorClipboard() {
	if err := clipboard.WriteAll(string(e.clip.Bytes())); err != nil {
		log.Printf("system clipboard unavailable: %v", err)
	}
}
