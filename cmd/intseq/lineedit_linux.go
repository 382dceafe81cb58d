//go:build linux

package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// ttyReader edits lines in raw mode and keeps history across calls.
type ttyReader struct {
	in      *os.File
	out     io.Writer
	history []string
}

func newLineReader(in io.Reader, out io.Writer) lineReader {
	if f, ok := in.(*os.File); ok {
		if _, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS); err == nil {
			return &ttyReader{in: f, out: out}
		}
	}
	return newPlainReader(in)
}

func (t *ttyReader) ReadLine(prompt string) (string, error) {
	fd := int(t.in.Fd())
	oldState, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return "", err
	}
	newState := *oldState
	newState.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &newState); err != nil {
		return "", err
	}
	defer func() {
		_ = unix.IoctlSetTermios(fd, unix.TCSETS, oldState)
	}()

	eb := newEditBuffer(&t.history)
	redraw := func() {
		_, _ = fmt.Fprintf(t.out, "\r%s%s\x1b[K", prompt, eb.line)
		if eb.cursor < len(eb.line) {
			_, _ = fmt.Fprintf(t.out, "\r%s%s", prompt, eb.line[:eb.cursor])
		}
	}

	_, _ = fmt.Fprint(t.out, prompt)
	var buf [16]byte
	for {
		n, err := t.in.Read(buf[:])
		if err != nil {
			return "", err
		}
		for _, c := range buf[:n] {
			switch eb.feed(c) {
			case editRedraw:
				redraw()
			case editSubmit:
				_, _ = fmt.Fprint(t.out, "\r\n")
				return eb.String(), nil
			case editInterrupt:
				_, _ = fmt.Fprint(t.out, "^C\r\n")
				return "", io.EOF
			case editEOF:
				_, _ = fmt.Fprint(t.out, "\r\n")
				return "", io.EOF
			}
		}
	}
}
