package editor

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"ged/config"
)

// mockTerminal is a test implementation of the Terminal interface
type mockTerminal struct {
	width, height int
	stdin         *bytes.Buffer
}

func (m *mockTerminal) EnableRawMode() error  { return nil }
func (m *mockTerminal) DisableRawMode() error { return nil }
func (m *mockTerminal) GetWindowSize() (int, int, error) {
	return m.width, m.height, nil
}
func (m *mockTerminal) Stdin() io.Reader { return m.stdin }
func (m *mockTerminal) Close() error     { return nil }

func newMockTerminal() *mockTerminal {
	return &mockTerminal{
		width:  80,
		height: 24,
		stdin:  bytes.NewBuffer(nil),
	}
}

// Test helper to create an editor preloaded with content. Screen output is
// discarded; tests that inspect it swap e.out for their own buffer.
func createTestEditor(content string) (*Editor, *mockTerminal, error) {
	term := newMockTerminal()
	e, err := NewEditor(term, config.DefaultConfig(), NewClipboard(), "")
	if err != nil {
		return nil, nil, err
	}
	e.out = bufio.NewWriter(io.Discard)
	for i := 0; i < len(content); i++ {
		e.doc.buf.Insert(i, content[i])
	}
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)
	return e, term, nil
}

func TestNewEditor(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		wantErr  bool
	}{
		{"no file", "", "", false},
		{"existing file", "ged_test_*.txt", "hello\nworld\n", false},
		{"nonexistent file", "no_such_file_12345.txt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filename := tt.filename
			if tt.content != "" {
				tmpfile, err := os.CreateTemp("", tt.filename)
				if err != nil {
					t.Fatal(err)
				}
				defer os.Remove(tmpfile.Name())
				tmpfile.WriteString(tt.content)
				tmpfile.Close()
				filename = tmpfile.Name()
			}

			term := newMockTerminal()
			e, err := NewEditor(term, config.DefaultConfig(), NewClipboard(), filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEditor() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if e == nil && !tt.wantErr {
				t.Error("NewEditor() returned nil editor")
			}
		})
	}
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain byte", "x", 'x'},
		{"carriage return", "\r", '\r'},
		{"arrow up", "\x1b[A", keyArrowUp},
		{"arrow down", "\x1b[B", keyArrowDown},
		{"arrow right", "\x1b[C", keyArrowRight},
		{"arrow left", "\x1b[D", keyArrowLeft},
		{"home", "\x1b[H", keyHome},
		{"end", "\x1b[F", keyEnd},
		{"ss3 home", "\x1bOH", keyHome},
		{"delete", "\x1b[3~", keyDelete},
		{"home tilde", "\x1b[1~", keyHome},
		{"home tilde alt", "\x1b[7~", keyHome},
		{"end tilde", "\x1b[4~", keyEnd},
		{"end tilde alt", "\x1b[8~", keyEnd},
		{"modified home", "\x1b[1;5H", keyHome},
		{"modified delete", "\x1b[3;2~", keyDelete},
		{"lone escape", "\x1b", keyEscape},
		{"unknown tilde", "\x1b[99~", 0},
		{"truncated csi", "\x1b[", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, term, err := createTestEditor("")
			if err != nil {
				t.Fatal(err)
			}
			term.stdin.WriteString(tt.input)

			got, err := e.readKey()
			if err != nil {
				t.Fatalf("readKey() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readKey(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestProcessInputInsertsPrintable(t *testing.T) {
	e, term, err := createTestEditor("")
	if err != nil {
		t.Fatal(err)
	}

	term.stdin.WriteString("hi")
	e.processInput()
	e.processInput()

	if e.doc.String() != "hi" {
		t.Errorf("expected %q, got %q", "hi", e.doc.String())
	}
	if !e.doc.Modified() {
		t.Error("expected document to be modified")
	}
}

func TestProcessInputIgnoresControlBytes(t *testing.T) {
	e, term, err := createTestEditor("")
	if err != nil {
		t.Fatal(err)
	}

	// 0x90 sits in the C1 control range and must not be inserted.
	term.stdin.WriteByte(0x90)
	e.processInput()
	if e.doc.Len() != 0 {
		t.Errorf("expected empty buffer, got %q", e.doc.String())
	}

	// 0xe9 is a printable high byte.
	term.stdin.WriteByte(0xe9)
	e.processInput()
	if e.doc.Len() != 1 || e.doc.ByteAt(0) != 0xe9 {
		t.Errorf("expected single byte 0xe9, got %q", e.doc.String())
	}
}

func TestProcessInputWishColumn(t *testing.T) {
	e, term, err := createTestEditor("alpha\nhi\ncharlie\n")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.MoveTo(4)

	term.stdin.WriteString("\x1b[B\x1b[B\x1b[D")

	e.processInput()
	if e.doc.Pos() != 8 || e.wishCol != 4 {
		t.Errorf("expected pos 8 wishCol 4, got pos %d wishCol %d", e.doc.Pos(), e.wishCol)
	}
	e.processInput()
	if e.doc.Pos() != 13 {
		t.Errorf("expected pos 13, got %d", e.doc.Pos())
	}

	// Any non-vertical key drops the wish column.
	e.processInput()
	if e.doc.Pos() != 12 || e.wishCol != -1 {
		t.Errorf("expected pos 12 wishCol -1, got pos %d wishCol %d", e.doc.Pos(), e.wishCol)
	}
}

func TestReadPrompt(t *testing.T) {
	e, term, err := createTestEditor("")
	if err != nil {
		t.Fatal(err)
	}

	term.stdin.WriteString("abc\x7fd\r")
	input, ok := e.readPrompt("Find: ", "")
	if !ok || input != "abd" {
		t.Errorf("expected (%q, true), got (%q, %v)", "abd", input, ok)
	}
}

func TestReadPromptCancel(t *testing.T) {
	e, term, err := createTestEditor("")
	if err != nil {
		t.Fatal(err)
	}

	term.stdin.WriteString("ab\x1b")
	input, ok := e.readPrompt("Find: ", "")
	if ok || input != "" {
		t.Errorf("expected cancelled prompt, got (%q, %v)", input, ok)
	}
}

func TestReadPromptKeepsInitial(t *testing.T) {
	e, term, err := createTestEditor("")
	if err != nil {
		t.Fatal(err)
	}

	term.stdin.WriteString("\r")
	input, ok := e.readPrompt("Save as: ", "old.txt")
	if !ok || input != "old.txt" {
		t.Errorf("expected (%q, true), got (%q, %v)", "old.txt", input, ok)
	}
}

func TestQuitCommandUnmodified(t *testing.T) {
	e, _, err := createTestEditor("hello")
	if err != nil {
		t.Fatal(err)
	}

	e.quitCommand()
	if !e.quit {
		t.Error("expected an unmodified buffer to quit immediately")
	}
}

func TestQuitCommandDiscard(t *testing.T) {
	e, term, err := createTestEditor("")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.Insert('x')

	term.stdin.WriteString("n")
	e.quitCommand()
	if !e.quit {
		t.Error("expected quit after discarding changes")
	}
}

func TestQuitCommandCancel(t *testing.T) {
	e, term, err := createTestEditor("")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.Insert('x')

	term.stdin.WriteString("\x1b")
	e.quitCommand()
	if e.quit {
		t.Error("expected cancelled quit to keep the session")
	}
	if e.statusMessage != "Quit cancelled." {
		t.Errorf("expected quit cancelled message, got %q", e.statusMessage)
	}
}

func TestQuitCommandSaves(t *testing.T) {
	e, term, err := createTestEditor("")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.Insert('h')
	e.doc.Insert('i')

	path := filepath.Join(t.TempDir(), "out.txt")
	term.stdin.WriteString("y" + path + "\r")

	e.quitCommand()
	if !e.quit {
		t.Fatal("expected the editor to quit after saving")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hi\r\n" {
		t.Errorf("expected %q, got %q", "hi\r\n", string(data))
	}
}

func TestGotoLineCommand(t *testing.T) {
	e, term, err := createTestEditor("one\ntwo\nthree\nfour\n")
	if err != nil {
		t.Fatal(err)
	}

	term.stdin.WriteString("3\r")
	e.gotoLineCommand()
	if e.doc.Pos() != 8 || e.doc.Line() != 2 {
		t.Errorf("expected pos 8 line 2, got pos %d line %d", e.doc.Pos(), e.doc.Line())
	}

	term.stdin.WriteString("abc\r")
	e.gotoLineCommand()
	if e.doc.Pos() != 8 {
		t.Errorf("expected invalid input to leave the cursor, got pos %d", e.doc.Pos())
	}
	if e.statusMessage != "Invalid line number: abc" {
		t.Errorf("unexpected status message %q", e.statusMessage)
	}
}

func TestFindCommand(t *testing.T) {
	e, term, err := createTestEditor("ab ab\n")
	if err != nil {
		t.Fatal(err)
	}

	term.stdin.WriteString("ab\r")
	e.findCommand()
	if e.doc.Pos() != 3 {
		t.Errorf("expected pos 3, got %d", e.doc.Pos())
	}

	// Empty input repeats the last search and wraps around.
	term.stdin.WriteString("\r")
	e.findCommand()
	if e.doc.Pos() != 0 {
		t.Errorf("expected wrap to pos 0, got %d", e.doc.Pos())
	}

	term.stdin.WriteString("zzz\r")
	e.findCommand()
	if e.doc.Pos() != 0 {
		t.Errorf("expected a missing needle to leave the cursor, got pos %d", e.doc.Pos())
	}
	if e.statusMessage != "Not found: zzz" {
		t.Errorf("unexpected status message %q", e.statusMessage)
	}
}

func TestCalculateWindowEnd(t *testing.T) {
	e, _, err := createTestEditor("one\ntwo\nthree\nfour\n")
	if err != nil {
		t.Fatal(err)
	}

	if got := e.calculateWindowEnd(0, 2); got != 8 {
		t.Errorf("expected window end 8, got %d", got)
	}
	if got := e.calculateWindowEnd(4, 1); got != 8 {
		t.Errorf("expected window end 8, got %d", got)
	}
	// More rows than lines stops at the end of the buffer.
	if got := e.calculateWindowEnd(0, 99); got != e.doc.Len() {
		t.Errorf("expected window end %d, got %d", e.doc.Len(), got)
	}
}

func TestScrolling(t *testing.T) {
	term := newMockTerminal()
	term.height = 3
	e, err := NewEditor(term, config.DefaultConfig(), NewClipboard(), "")
	if err != nil {
		t.Fatal(err)
	}
	e.out = bufio.NewWriter(io.Discard)
	content := "one\ntwo\nthree\nfour\n"
	for i := 0; i < len(content); i++ {
		e.doc.buf.Insert(i, content[i])
	}
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)

	if e.editRows != 2 || e.windowEnd != 8 {
		t.Fatalf("expected editRows 2 windowEnd 8, got %d and %d", e.editRows, e.windowEnd)
	}

	e.scrollUp()
	if e.windowStart != 4 || e.windowEnd != 14 {
		t.Errorf("expected window [4, 14), got [%d, %d)", e.windowStart, e.windowEnd)
	}

	e.scrollDown()
	if e.windowStart != 0 || e.windowEnd != 8 {
		t.Errorf("expected window [0, 8), got [%d, %d)", e.windowStart, e.windowEnd)
	}

	// Moving below the window scrolls until the cursor row is visible.
	e.doc.MoveTo(14)
	e.scrollToCursor()
	if e.windowStart != 8 || e.windowEnd != 19 {
		t.Errorf("expected window [8, 19), got [%d, %d)", e.windowStart, e.windowEnd)
	}
	if row := e.cursorRow(); row != 2 {
		t.Errorf("expected cursor row 2, got %d", row)
	}

	// Moving above the window scrolls back.
	e.doc.MoveTo(0)
	e.scrollToCursor()
	if e.windowStart != 0 || e.windowEnd != 8 {
		t.Errorf("expected window [0, 8), got [%d, %d)", e.windowStart, e.windowEnd)
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	e, _, err := createTestEditor("abcd")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.MoveTo(2)

	e.insertNewline()
	if e.doc.String() != "ab\ncd" {
		t.Errorf("expected %q, got %q", "ab\ncd", e.doc.String())
	}
	if e.doc.Pos() != 3 || e.doc.Line() != 1 {
		t.Errorf("expected pos 3 line 1, got pos %d line %d", e.doc.Pos(), e.doc.Line())
	}
	if e.windowEnd != e.doc.Len() {
		t.Errorf("expected windowEnd %d, got %d", e.doc.Len(), e.windowEnd)
	}
}

func TestDeleteForwardJoinsLines(t *testing.T) {
	e, _, err := createTestEditor("ab\ncd")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.MoveTo(2)

	e.deleteForward()
	if e.doc.String() != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", e.doc.String())
	}
	if e.doc.Pos() != 2 || e.doc.Line() != 0 {
		t.Errorf("expected pos 2 line 0, got pos %d line %d", e.doc.Pos(), e.doc.Line())
	}
}

func TestDeleteBackwardJoinsLines(t *testing.T) {
	e, _, err := createTestEditor("ab\ncd")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.MoveTo(3)

	e.deleteBackward()
	if e.doc.String() != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", e.doc.String())
	}
	if e.doc.Pos() != 2 || e.doc.Line() != 0 {
		t.Errorf("expected pos 2 line 0, got pos %d line %d", e.doc.Pos(), e.doc.Line())
	}
}

func TestDeleteToEndOfLine(t *testing.T) {
	e, _, err := createTestEditor("abc\ndef\n")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.MoveTo(4)

	e.deleteToLineEnd()
	if e.doc.String() != "abc\n\n" {
		t.Errorf("expected %q, got %q", "abc\n\n", e.doc.String())
	}
	if e.doc.Pos() != 4 {
		t.Errorf("expected pos 4, got %d", e.doc.Pos())
	}

	// At the end of a line there is nothing to delete.
	e.deleteToLineEnd()
	if e.doc.String() != "abc\n\n" {
		t.Errorf("expected %q, got %q", "abc\n\n", e.doc.String())
	}
}

func TestDeleteToStartOfLine(t *testing.T) {
	e, _, err := createTestEditor("abc\ndef\n")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.MoveTo(6)

	e.deleteToLineStart()
	if e.doc.String() != "abc\nf\n" {
		t.Errorf("expected %q, got %q", "abc\nf\n", e.doc.String())
	}
	if e.doc.Pos() != 4 || e.doc.Column() != 0 {
		t.Errorf("expected pos 4 column 0, got pos %d column %d", e.doc.Pos(), e.doc.Column())
	}
}

func TestInsertTab(t *testing.T) {
	e, _, err := createTestEditor("ab")
	if err != nil {
		t.Fatal(err)
	}
	e.doc.MoveTo(2)

	e.insertTab()
	if e.doc.String() != "ab  " {
		t.Errorf("expected %q, got %q", "ab  ", e.doc.String())
	}

	e2, _, err := createTestEditor("")
	if err != nil {
		t.Fatal(err)
	}
	e2.insertTab()
	if e2.doc.String() != "    " {
		t.Errorf("expected four spaces, got %q", e2.doc.String())
	}
}

func TestStatusBarRedrawsOnlyOnChange(t *testing.T) {
	term := newMockTerminal()
	e, err := NewEditor(term, config.DefaultConfig(), NewClipboard(), "")
	if err != nil {
		t.Fatal(err)
	}
	screen := &bytes.Buffer{}
	e.out = bufio.NewWriter(screen)

	e.drawStatusBar()
	e.out.Flush()
	first := screen.Len()
	if first == 0 {
		t.Fatal("expected the first draw to paint the status bar")
	}

	e.drawStatusBar()
	e.out.Flush()
	if screen.Len() != first {
		t.Error("expected an unchanged status to skip the redraw")
	}

	e.setStatusMessage("hello")
	e.drawStatusBar()
	e.out.Flush()
	if screen.Len() == first {
		t.Error("expected a new message to repaint the status bar")
	}
}

func TestCheckResize(t *testing.T) {
	e, term, err := createTestEditor("one\ntwo\nthree\n")
	if err != nil {
		t.Fatal(err)
	}

	term.width = 40
	term.height = 10
	e.checkResize()

	if e.termWidth != 40 || e.termHeight != 10 || e.editRows != 9 {
		t.Errorf("expected 40x10 with 9 edit rows, got %dx%d with %d",
			e.termWidth, e.termHeight, e.editRows)
	}
	if e.windowEnd != e.calculateWindowEnd(e.windowStart, e.editRows) {
		t.Error("expected windowEnd to track the new height")
	}
}

func BenchmarkInsertChar(b *testing.B) {
	term := newMockTerminal()
	e, _ := NewEditor(term, config.DefaultConfig(), NewClipboard(), "")
	e.out = bufio.NewWriter(io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.insertChar('a')
	}
}

func BenchmarkRedrawAll(b *testing.B) {
	term := newMockTerminal()
	e, _ := NewEditor(term, config.DefaultConfig(), NewClipboard(), "")
	e.out = bufio.NewWriter(io.Discard)
	line := "the quick brown fox jumps over the lazy dog\n"
	pos := 0
	for i := 0; i < 100; i++ {
		for j := 0; j < len(line); j++ {
			e.doc.buf.Insert(pos, line[j])
			pos++
		}
	}
	e.windowEnd = e.calculateWindowEnd(e.windowStart, e.editRows)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.redrawAll()
	}
}
