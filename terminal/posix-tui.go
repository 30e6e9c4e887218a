//go:build linux || darwin

package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type stdTerminal struct {
	originalState *unix.Termios
	stdinFile     *os.File
}

func New() Terminal {
	return &stdTerminal{stdinFile: os.Stdin}
}

func (t *stdTerminal) Close() error {
	return nil
}

func (t *stdTerminal) Stdin() io.Reader {
	return t.stdinFile
}

// EnableRawMode puts the terminal into the byte-at-a-time mode the editor
// needs: no echo, no line buffering, no signal keys, no CR translation,
// no output post-processing. Reads block for a single byte (VMIN=1).
func (t *stdTerminal) EnableRawMode() error {
	fd := int(t.stdinFile.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	state, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	t.originalState = state

	raw := *state
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("failed to set termios: %w", err)
	}
	return nil
}

func (t *stdTerminal) DisableRawMode() error {
	if t.originalState == nil {
		return nil
	}
	fd := int(t.stdinFile.Fd())
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, t.originalState)
}

func (t *stdTerminal) GetWindowSize() (width, height int, err error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && w > 0 && h > 0 {
		return w, h, nil
	}
	return t.cursorPositionFallback()
}

// cursorPositionFallback measures the screen by pushing the cursor to the
// bottom-right corner and asking the terminal where it ended up (DSR/CPR).
// Only meaningful while raw mode is active.
func (t *stdTerminal) cursorPositionFallback() (int, int, error) {
	if _, err := os.Stdout.WriteString("\x1b[999C\x1b[999B\x1b[6n"); err != nil {
		return 0, 0, err
	}

	// Response has the form ESC [ rows ; cols R.
	var buf [32]byte
	n := 0
	for n < len(buf)-1 {
		if _, err := t.stdinFile.Read(buf[n : n+1]); err != nil {
			return 0, 0, err
		}
		if buf[n] == 'R' {
			break
		}
		n++
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(buf[:n]), "\x1b[%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("failed to parse cursor position report: %w", err)
	}
	return cols, rows, nil
}
