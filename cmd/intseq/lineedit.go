package main

import (
	"bufio"
	"io"
	"strings"
)

// lineReader reads one line of input per call. io.EOF ends the session.
type lineReader interface {
	ReadLine(prompt string) (string, error)
}

// plainReader is used when stdin is not a terminal. It prints no prompt.
type plainReader struct {
	r *bufio.Reader
}

func newPlainReader(r io.Reader) *plainReader {
	return &plainReader{r: bufio.NewReader(r)}
}

func (p *plainReader) ReadLine(string) (string, error) {
	s, err := p.r.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return trimTrailingNewline(s), nil
}

func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

type editAction int

const (
	editNone editAction = iota
	editRedraw
	editSubmit
	editInterrupt
	editEOF
)

// editBuffer is the terminal-independent part of the raw-mode line editor.
// Bytes go in through feed; the caller redraws or returns based on the
// resulting action.
type editBuffer struct {
	line   []byte
	cursor int

	escState int
	escBuf   strings.Builder

	history  *[]string
	histPos  int
	browsing bool
	draft    string
}

func newEditBuffer(history *[]string) *editBuffer {
	b := &editBuffer{history: history}
	if history != nil {
		b.histPos = len(*history)
	}
	return b
}

func (b *editBuffer) String() string { return string(b.line) }

// feed applies one input byte.
func (b *editBuffer) feed(c byte) editAction {
	switch b.escState {
	case 1:
		b.escState = 0
		switch c {
		case '[':
			b.escState = 2
			b.escBuf.Reset()
			return editNone
		case 'b', 'B': // Alt+b
			return b.wordLeft()
		case 'f', 'F': // Alt+f
			return b.wordRight()
		case 127: // Alt+Backspace
			return b.deleteWordBack()
		}
		return editNone
	case 2:
		b.escBuf.WriteByte(c)
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '~' {
			b.escState = 0
			return b.csi(b.escBuf.String())
		}
		return editNone
	}

	switch c {
	case 27:
		b.escState = 1
		return editNone
	case '\r', '\n':
		if strings.TrimSpace(string(b.line)) != "" && b.history != nil {
			*b.history = append(*b.history, string(b.line))
		}
		return editSubmit
	case 3: // Ctrl+C
		return editInterrupt
	case 4: // Ctrl+D
		if len(b.line) == 0 {
			return editEOF
		}
		return b.deleteForward()
	case 127, 8:
		if b.cursor == 0 {
			return editNone
		}
		b.line = append(b.line[:b.cursor-1], b.line[b.cursor:]...)
		b.cursor--
		return editRedraw
	case 1: // Ctrl+A
		b.cursor = 0
		return editRedraw
	case 5: // Ctrl+E
		b.cursor = len(b.line)
		return editRedraw
	case 21: // Ctrl+U
		b.line = append(b.line[:0], b.line[b.cursor:]...)
		b.cursor = 0
		return editRedraw
	case 23: // Ctrl+W
		return b.deleteWordBack()
	}
	if c < 32 {
		return editNone
	}
	b.line = append(b.line, 0)
	copy(b.line[b.cursor+1:], b.line[b.cursor:])
	b.line[b.cursor] = c
	b.cursor++
	return editRedraw
}

func (b *editBuffer) csi(seq string) editAction {
	switch seq {
	case "A":
		return b.historyPrev()
	case "B":
		return b.historyNext()
	case "D":
		if b.cursor > 0 {
			b.cursor--
			return editRedraw
		}
	case "C":
		if b.cursor < len(b.line) {
			b.cursor++
			return editRedraw
		}
	case "H", "1~":
		b.cursor = 0
		return editRedraw
	case "F", "4~":
		b.cursor = len(b.line)
		return editRedraw
	case "3~":
		return b.deleteForward()
	case "1;5D", "5D":
		return b.wordLeft()
	case "1;5C", "5C":
		return b.wordRight()
	}
	return editNone
}

func (b *editBuffer) historyPrev() editAction {
	if b.history == nil || len(*b.history) == 0 {
		return editNone
	}
	if !b.browsing {
		b.draft = string(b.line)
		b.browsing = true
		b.histPos = len(*b.history)
	}
	if b.histPos == 0 {
		return editNone
	}
	b.histPos--
	b.setLine((*b.history)[b.histPos])
	return editRedraw
}

func (b *editBuffer) historyNext() editAction {
	if !b.browsing {
		return editNone
	}
	if b.histPos < len(*b.history)-1 {
		b.histPos++
		b.setLine((*b.history)[b.histPos])
	} else {
		b.histPos = len(*b.history)
		b.browsing = false
		b.setLine(b.draft)
	}
	return editRedraw
}

func (b *editBuffer) setLine(s string) {
	b.line = append(b.line[:0], s...)
	b.cursor = len(b.line)
}

func (b *editBuffer) deleteForward() editAction {
	if b.cursor >= len(b.line) {
		return editNone
	}
	b.line = append(b.line[:b.cursor], b.line[b.cursor+1:]...)
	return editRedraw
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

func (b *editBuffer) wordStart() int {
	i := b.cursor
	for i > 0 && isBlank(b.line[i-1]) {
		i--
	}
	for i > 0 && !isBlank(b.line[i-1]) {
		i--
	}
	return i
}

func (b *editBuffer) wordLeft() editAction {
	if b.cursor == 0 {
		return editNone
	}
	b.cursor = b.wordStart()
	return editRedraw
}

func (b *editBuffer) wordRight() editAction {
	if b.cursor >= len(b.line) {
		return editNone
	}
	for b.cursor < len(b.line) && isBlank(b.line[b.cursor]) {
		b.cursor++
	}
	for b.cursor < len(b.line) && !isBlank(b.line[b.cursor]) {
		b.cursor++
	}
	return editRedraw
}

func (b *editBuffer) deleteWordBack() editAction {
	if b.cursor == 0 {
		return editNone
	}
	start := b.wordStart()
	b.line = append(b.line[:start], b.line[b.cursor:]...)
	b.cursor = start
	return editRedraw
}
