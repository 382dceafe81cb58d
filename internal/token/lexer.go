package token

import "fmt"

// LexError reports a character that cannot start a token.
type LexError struct {
	Offset int
	Char   rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at offset %d: unexpected character %q", e.Offset, e.Char)
}

// Lex splits src into integer literals and punctuation characters.
// Whitespace separates tokens and is dropped.
//
// A run of digits followed by letters, digits or underscores is kept as a
// single Int token so that "12ab" reaches the parser as one malformed
// literal instead of two unrelated tokens.
func Lex(src string) ([]Token, error) {
	var toks []Token
	pos := 0
	for pos < len(src) {
		ch := src[pos]
		switch {
		case isSpace(ch):
			pos++
		case isDigit(ch):
			start := pos
			for pos < len(src) && isLiteralByte(src[pos]) {
				pos++
			}
			toks = append(toks, Token{Kind: Int, Text: src[start:pos], Offset: start})
		case isPunct(ch):
			toks = append(toks, Token{Kind: Punct, Text: src[pos : pos+1], Offset: pos})
			pos++
		default:
			r := []rune(src[pos:])[0]
			return nil, &LexError{Offset: pos, Char: r}
		}
	}
	return toks, nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLiteralByte(ch byte) bool {
	return isDigit(ch) || ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isPunct(ch byte) bool {
	return ch > ' ' && ch < 0x7f && !isDigit(ch) && !isLiteralByte(ch)
}
