// Package parser turns a token stream in range notation into a Request.
//
// Accepted forms:
//
//	1..128
//	1, 2, 4, 8, 16..128
//	1, 2, 4, 8, 16..=128
//
// Any integer may carry a leading '-'.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/samcharles93/intseq/internal/token"
)

// Request is a parsed sequence expression.
type Request struct {
	// Prefix holds the explicit terms followed by the range start. It is
	// never empty.
	Prefix []int64
	// End is the exclusive bound. For inclusive notation it is one past
	// the written end value.
	End int64
	// Inclusive records whether the range was written with "..=".
	Inclusive bool
}

// Start returns the range start, the last element of the prefix.
func (r Request) Start() int64 { return r.Prefix[len(r.Prefix)-1] }

// ParseString lexes and parses src.
func ParseString(src string) (Request, error) {
	toks, err := token.Lex(src)
	if err != nil {
		return Request{}, err
	}
	return Parse(toks)
}

// Parse parses a complete sequence expression from toks.
func Parse(toks []token.Token) (Request, error) {
	c := NewCursor(toks)
	var prefix []int64
	for {
		x, next, ok, err := termComma(c)
		if err != nil {
			return Request{}, err
		}
		if !ok {
			break
		}
		prefix = append(prefix, x)
		c = next
	}

	start, end, inclusive, c, err := rangeExpr(c)
	if err != nil {
		return Request{}, err
	}
	if !c.Done() {
		return Request{}, unexpected(c, "end of input after range")
	}
	if inclusive {
		if end == math.MaxInt64 {
			return Request{}, &ParseError{Offset: lastOffset(toks), Found: "inclusive end " + strconv.FormatInt(end, 10), Expected: "a bound below the int64 maximum"}
		}
		end++
	}
	return Request{
		Prefix:    append(prefix, start),
		End:       end,
		Inclusive: inclusive,
	}, nil
}

// termComma consumes "int ,". On a soft failure it reports ok=false and the
// caller keeps its own cursor. Malformed literals are hard errors.
func termComma(c Cursor) (int64, Cursor, bool, error) {
	x, next, ok, err := signedInt(c)
	if err != nil || !ok {
		return 0, c, false, err
	}
	next, ok = punct(next, ',')
	if !ok {
		return 0, c, false, nil
	}
	return x, next, true, nil
}

// rangeExpr consumes "int . . [=] int".
func rangeExpr(c Cursor) (start, end int64, inclusive bool, _ Cursor, err error) {
	start, next, ok, err := signedInt(c)
	if err != nil {
		return 0, 0, false, c, err
	}
	if !ok {
		return 0, 0, false, c, unexpected(c, "integer")
	}
	for range 2 {
		if next, ok = punct(next, '.'); !ok {
			return 0, 0, false, c, unexpected(next, `".." range operator`)
		}
	}
	if after, ok := punct(next, '='); ok {
		inclusive = true
		next = after
	}
	end, after, ok, err := signedInt(next)
	if err != nil {
		return 0, 0, false, c, err
	}
	if !ok {
		return 0, 0, false, c, unexpected(next, "range end integer")
	}
	return start, end, inclusive, after, nil
}

// signedInt consumes an optional '-' followed by an integer literal. When
// the literal is missing the returned cursor is c itself, so a consumed
// sign is never left behind.
func signedInt(c Cursor) (int64, Cursor, bool, error) {
	next := c
	neg := false
	if after, ok := punct(c, '-'); ok {
		neg = true
		next = after
	}
	tok, after, ok := next.Next()
	if !ok || tok.Kind != token.Int {
		return 0, c, false, nil
	}
	x, err := parseLiteral(tok, neg)
	if err != nil {
		return 0, c, false, err
	}
	return x, after, true, nil
}

func punct(c Cursor, ch byte) (Cursor, bool) {
	tok, next, ok := c.Next()
	if !ok || !tok.IsPunct(ch) {
		return c, false
	}
	return next, true
}

// parseLiteral converts a literal token, accepting '_' between digits.
func parseLiteral(tok token.Token, neg bool) (int64, error) {
	text := tok.Text
	if strings.HasSuffix(text, "_") || strings.Contains(text, "__") {
		return 0, &LiteralError{Offset: tok.Offset, Text: text, Reason: "misplaced digit separator"}
	}
	digits := strings.ReplaceAll(text, "_", "")
	if neg {
		digits = "-" + digits
	}
	x, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		reason := "invalid digits"
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			reason = "out of int64 range"
		}
		return 0, &LiteralError{Offset: tok.Offset, Text: text, Reason: reason}
	}
	return x, nil
}

func lastOffset(toks []token.Token) int {
	if len(toks) == 0 {
		return 0
	}
	return toks[len(toks)-1].Offset
}
