package editor

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"time"

	"ged/config"
	"ged/terminal"
)

// ANSI escape codes
const (
	ansiHideCursor        = "\x1b[?25l"
	ansiShowCursor        = "\x1b[?25h"
	ansiClearScreen       = "\x1b[2J"
	ansiClearLine         = "\x1b[K"
	ansiReset             = "\x1b[m"
	ansiInvert            = "\x1b[7m"
	ansiInsertLine        = "\x1b[L"
	ansiDeleteLine        = "\x1b[M"
	ansiScrollUp          = "\x1b[S"
	ansiResetScrollRegion = "\x1b[r"
	ansiEnterAltScreen    = "\x1b[?1049h"
	ansiExitAltScreen     = "\x1b[?1049l"
)

// statusLine is the observable state of the status row. The bar is redrawn
// only when the current statusLine differs from the last one drawn.
type statusLine struct {
	filename  string
	modified  bool
	selecting bool
	line      int
	message   string
}

type Editor struct {
	term     terminal.Terminal
	config   config.Config
	doc      *Document
	clip     *Clipboard
	filename string

	out         *bufio.Writer
	inputReader *bufio.Reader

	termWidth  int
	termHeight int
	editRows   int

	// Window bounds as buffer offsets. windowStart is always the first
	// byte of a line; windowEnd sits just past a trailing newline or at
	// the end of the buffer.
	windowStart int
	windowEnd   int

	// Wish column for vertical movement. -1 when unset; any non-vertical
	// command resets it.
	wishCol int

	lastStatus    statusLine
	statusMessage string
	statusTime    time.Time

	lastSearch string
	quit       bool
}

func NewEditor(term terminal.Terminal, cfg config.Config, clip *Clipboard, file string) (*Editor, error) {
	e := &Editor{
		term:        term,
		config:      cfg,
		doc:         NewDocument(),
		clip:        clip,
		filename:    file,
		out:         bufio.NewWriter(os.Stdout),
		inputReader: bufio.NewReader(term.Stdin()),
		wishCol:     -1,
	}
	if file != "" {
		if err := e.loadFile(file); err != nil {
			return nil, fmt.Errorf("failed to load file %s: %w", file, err)
		}
	}
	e.refreshSize()
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	return e, nil
}

func (e *Editor) refreshSize() {
	w, h, err := e.term.GetWindowSize()
	if err != nil {
		e.termWidth = 80
		e.termHeight = 24
	} else {
		e.termWidth = w
		e.termHeight = h
	}
	if e.termHeight < 2 {
		e.termHeight = 2
	}
	e.editRows = e.termHeight - 1
}

func (e *Editor) Run() error {
	if err := e.term.EnableRawMode(); err != nil {
		return err
	}
	defer func() {
		e.out.WriteString(ansiResetScrollRegion)
		e.out.WriteString(ansiExitAltScreen)
		e.out.WriteString(ansiShowCursor)
		e.out.Flush()
		e.term.DisableRawMode()
	}()
	e.out.WriteString(ansiEnterAltScreen)
	e.setScrollRegion()
	e.redrawAll()
	log.Printf("session started, file %q", e.filename)

	for !e.quit {
		e.checkResize()
		e.drawStatusBar()
		e.syncCursor()
		e.out.WriteString(ansiShowCursor)
		if err := e.out.Flush(); err != nil {
			return err
		}
		if err := e.processInput(); err != nil {
			break
		}
	}
	log.Println("session ended")
	return nil
}

func (e *Editor) checkResize() {
	w, h, err := e.term.GetWindowSize()
	if err != nil {
		return
	}
	if w == e.termWidth && h == e.termHeight {
		return
	}
	e.termWidth = w
	e.termHeight = h
	if e.termHeight < 2 {
		e.termHeight = 2
	}
	e.editRows = e.termHeight - 1
	e.setScrollRegion()
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	e.scrollToCursor()
	e.redrawAll()
	log.Printf("resized to %d x %d", w, h)
	e.setStatusMessage("Window resized to %d x %d", w, h)
}
