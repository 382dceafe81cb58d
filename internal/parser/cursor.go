package parser

import "github.com/samcharles93/intseq/internal/token"

// Cursor is a read position over an immutable token slice. It is a value:
// advancing returns a new Cursor and leaves the receiver untouched, so a
// failed parse attempt rolls back by simply keeping the old cursor.
type Cursor struct {
	toks []token.Token
	pos  int
}

// NewCursor returns a cursor positioned before the first token.
func NewCursor(toks []token.Token) Cursor {
	return Cursor{toks: toks}
}

// Pos returns the index of the next token to be read.
func (c Cursor) Pos() int { return c.pos }

// Done reports whether every token has been consumed.
func (c Cursor) Done() bool { return c.pos >= len(c.toks) }

// Peek returns the next token without consuming it.
func (c Cursor) Peek() (token.Token, bool) {
	if c.Done() {
		return token.Token{}, false
	}
	return c.toks[c.pos], true
}

// Next consumes one token. At the end of input it returns c unchanged.
func (c Cursor) Next() (token.Token, Cursor, bool) {
	tok, ok := c.Peek()
	if !ok {
		return tok, c, false
	}
	return tok, Cursor{toks: c.toks, pos: c.pos + 1}, true
}

// describe names the next token for error messages.
func (c Cursor) describe() (string, int) {
	tok, ok := c.Peek()
	if !ok {
		end := 0
		if n := len(c.toks); n > 0 {
			last := c.toks[n-1]
			end = last.Offset + len(last.Text)
		}
		return "end of input", end
	}
	return "token " + tok.String(), tok.Offset
}
