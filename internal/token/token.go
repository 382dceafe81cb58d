package token

import "fmt"

// Kind classifies a token.
type Kind int

const (
	Int   Kind = iota // integer literal, unsigned textual form
	Punct             // single punctuation character
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "integer"
	case Punct:
		return "punctuation"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token is one lexical unit of the sequence notation.
type Token struct {
	Kind   Kind
	Text   string
	Offset int // byte offset in the source
}

// IsPunct reports whether t is the punctuation character ch.
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == ch
}

func (t Token) String() string {
	if t.Kind == Punct {
		return fmt.Sprintf("%q", t.Text)
	}
	return t.Text
}
