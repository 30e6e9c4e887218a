package terminal

import "io"

// Terminal abstracts the platform terminal: raw-mode switching, window-size
// queries, and the input stream the editor decodes key codes from. Screen
// output is plain VT100 escape sequences written to stdout by the caller.
type Terminal interface {
	EnableRawMode() error
	DisableRawMode() error
	GetWindowSize() (width, height int, err error)
	Stdin() io.Reader
	Close() error
}
