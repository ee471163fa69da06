// Package prompt collects function parameters interactively.
package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// ErrAborted is returned by a terminal prompt when the user presses Ctrl-C.
var ErrAborted = liner.ErrPromptAborted

// Prompter shows a message and reads one line of reply, without its line
// terminator. Each call blocks until a line is available.
type Prompter interface {
	Prompt(msg string) (string, error)
}

// Session is a Prompter holding resources that must be released.
type Session interface {
	Prompter
	io.Closer
}

// Open creates a session on in. If in is a terminal, the session edits lines
// with history in raw mode, and out is ignored in favor of the terminal.
// Otherwise, prompts are written to out and replies read from in line by line.
func Open(in *os.File, out io.Writer) Session {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		cli := liner.NewLiner()
		cli.SetCtrlCAborts(true)
		return &Terminal{cli}
	}
	return NewLines(in, out)
}

// Terminal is a line-editing prompt on the controlling terminal.
type Terminal struct {
	*liner.State
}

// Prompt reads a line, recording non-empty replies in the history.
func (t *Terminal) Prompt(msg string) (string, error) {
	s, err := t.State.Prompt(msg)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) != "" {
		t.AppendHistory(s)
	}
	return s, nil
}

// Lines prompts over plain streams, for piped or redirected input.
type Lines struct {
	r *bufio.Reader
	w io.Writer
}

// NewLines creates a prompt reading replies from r and writing messages to w.
func NewLines(r io.Reader, w io.Writer) *Lines {
	return &Lines{r: bufio.NewReader(r), w: w}
}

// Prompt writes msg and reads through the next newline. A final line without a
// newline is still a reply; io.EOF is returned only when no input remains.
func (l *Lines) Prompt(msg string) (string, error) {
	if _, err := io.WriteString(l.w, msg); err != nil {
		return "", err
	}
	s, err := l.r.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Close does nothing.
func (l *Lines) Close() error {
	return nil
}

var (
	_ Session = (*Terminal)(nil)
	_ Session = (*Lines)(nil)
)
