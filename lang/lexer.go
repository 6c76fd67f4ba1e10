package lang

import (
	"log/slog"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Tokenize converts source text into a token sequence terminated by a
// [KindEOF] token.
//
// Unrecognized characters become [KindUnknown] tokens and are left for the
// parser to reject. The only lexical error is a numeric literal outside the
// 32-bit signed range, reported as [ErrNumberRange].
func Tokenize(source string) ([]Token, error) {
	lx := &lexer{input: []byte(source)}

	for {
		lx.skipWhitespace()

		if lx.eof() {
			break
		}

		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		lx.tokens = append(lx.tokens, tok)
	}

	return append(lx.tokens, Token{Kind: KindEOF}), nil
}

// lexer holds the scanner state.
type lexer struct {
	input  []byte
	pos    int
	tokens []Token
}

// next scans one token starting at the current, non-whitespace position.
func (lx *lexer) next() (Token, error) {
	ch := lx.advance()

	switch ch {
	case '!':
		return lx.either('=', KindNotEqual, KindBang), nil
	case '=':
		return lx.either('=', KindEqual, KindAssign), nil
	case '<':
		return lx.either('=', KindLessEqual, KindLess), nil
	case '>':
		return lx.either('=', KindGreaterEqual, KindGreater), nil
	case '&':
		return lx.either('&', KindAnd, KindAnd), nil
	case '|':
		return lx.either('|', KindOr, KindOr), nil
	case '+':
		return Token{Kind: KindPlus}, nil
	case '-':
		return Token{Kind: KindMinus}, nil
	case '*':
		return Token{Kind: KindStar}, nil
	case '/':
		return Token{Kind: KindSlash}, nil
	case '%':
		return Token{Kind: KindPercent}, nil
	case '(':
		return Token{Kind: KindLParen}, nil
	case ')':
		return Token{Kind: KindRParen}, nil
	case '{':
		return Token{Kind: KindLBrace}, nil
	case '}':
		return Token{Kind: KindRBrace}, nil
	case ',':
		return Token{Kind: KindComma}, nil
	case '"':
		return lx.scanString(), nil
	}

	switch {
	case isDigit(ch):
		return lx.scanNumber(ch)
	case isIdentifierRune(ch):
		return lx.scanWord(ch), nil
	default:
		return Token{Kind: KindUnknown, Text: string(ch)}, nil
	}
}

// either emits long if the next character is second, consuming it, and short
// otherwise.
func (lx *lexer) either(second rune, long, short Kind) Token {
	if lx.peek() == second {
		lx.advance()

		return Token{Kind: long}
	}

	return Token{Kind: short}
}

// scanString consumes characters verbatim up to the closing quote. An
// unterminated string runs to the end of input.
func (lx *lexer) scanString() Token {
	start := lx.pos

	for !lx.eof() && lx.peek() != '"' {
		lx.advance()
	}

	text := string(lx.input[start:lx.pos])

	if !lx.eof() {
		lx.advance() // closing quote
	}

	return Token{Kind: KindString, Text: text}
}

func (lx *lexer) scanNumber(first rune) (Token, error) {
	start := lx.pos - utf8.RuneLen(first)

	for !lx.eof() && isDigit(lx.peek()) {
		lx.advance()
	}

	digits := string(lx.input[start:lx.pos])

	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return Token{}, ErrNumberRange.Wrap(err).
			With(slog.String("literal", digits))
	}

	return Token{Kind: KindNumber, Number: int32(n)}, nil
}

// scanWord scans an identifier, keyword or boolean literal.
func (lx *lexer) scanWord(first rune) Token {
	start := lx.pos - utf8.RuneLen(first)

	for !lx.eof() && isIdentifierRune(lx.peek()) {
		lx.advance()
	}

	word := string(lx.input[start:lx.pos])

	switch word {
	case "true":
		return Token{Kind: KindBoolean, Bool: true}
	case "false":
		return Token{Kind: KindBoolean, Bool: false}
	}

	if kind, ok := keywords[word]; ok {
		return Token{Kind: kind}
	}

	return Token{Kind: KindIdentifier, Text: word}
}

// Helper methods

func (lx *lexer) peek() rune {
	if lx.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(lx.input[lx.pos:])

	return r
}

func (lx *lexer) advance() rune {
	if lx.eof() {
		return 0
	}

	r, size := utf8.DecodeRune(lx.input[lx.pos:])
	lx.pos += size

	return r
}

func (lx *lexer) eof() bool {
	return lx.pos >= len(lx.input)
}

func (lx *lexer) skipWhitespace() {
	for !lx.eof() {
		switch lx.peek() {
		case ' ', '\t', '\r', '\n':
			lx.advance()
		default:
			return
		}
	}
}

// Character classification

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isIdentifierRune reports whether r may appear in an identifier. Digits are
// never part of an identifier, not even after the first character.
func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
