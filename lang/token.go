package lang

//go:generate go tool stringer --linecomment --type Kind --output token_string.go

import (
	"slices"
	"strconv"
)

// Kind identifies the variant of a [Token]. Its String method returns the
// source spelling of operators, punctuation and keywords, or the variant name
// of literal and sentinel kinds.
type Kind int

const (
	// KindEOF marks the end of input. Every token sequence ends with it.
	KindEOF Kind = iota // EndOfFile

	// KindUnknown is any character the lexer does not recognize.
	KindUnknown // Unknown

	// Literals.
	KindNumber     // Number
	KindString     // String
	KindBoolean    // Boolean
	KindIdentifier // Identifier

	// Keywords.
	KindDeclare // declare
	KindWhile   // while
	KindIf      // if
	KindFunc    // func
	KindPrint   // print
	KindReturn  // return

	// Operators.
	KindAssign       // =
	KindEqual        // ==
	KindBang         // !
	KindNotEqual     // !=
	KindLess         // <
	KindGreater      // >
	KindLessEqual    // <=
	KindGreaterEqual // >=
	KindAnd          // &&
	KindOr           // ||
	KindPlus         // +
	KindMinus        // -
	KindStar         // *
	KindSlash        // /
	KindPercent      // %

	// Punctuation.
	KindLParen // (
	KindRParen // )
	KindLBrace // {
	KindRBrace // }
	KindComma  // ,
)

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k >= KindDeclare && k <= KindReturn }

// IsOperator reports whether k is a unary or binary operator.
func (k Kind) IsOperator() bool { return k >= KindAssign && k <= KindPercent }

// keywords maps reserved words to their kinds. Each keyword has a short and
// a long spelling.
var keywords = map[string]Kind{
	"v":       KindDeclare,
	"declare": KindDeclare,
	"w":       KindWhile,
	"while":   KindWhile,
	"i":       KindIf,
	"if":      KindIf,
	"f":       KindFunc,
	"func":    KindFunc,
	"p":       KindPrint,
	"print":   KindPrint,
	"r":       KindReturn,
	"return":  KindReturn,
}

// Keywords returns every reserved spelling, including the boolean literals.
func Keywords() []string {
	words := append(sortedKeys(keywords), "false", "true")
	slices.Sort(words)

	return words
}

// Token is a single lexical unit.
//
// Only the field matching Kind is meaningful: Number for [KindNumber], Bool
// for [KindBoolean], Text for [KindString], [KindIdentifier] and
// [KindUnknown] (the offending character).
type Token struct {
	Kind   Kind
	Text   string
	Number int32
	Bool   bool
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return "Number(" + strconv.FormatInt(int64(t.Number), 10) + ")"

	case KindString:
		return "String(" + strconv.Quote(t.Text) + ")"

	case KindBoolean:
		return "Boolean(" + strconv.FormatBool(t.Bool) + ")"

	case KindIdentifier:
		return "Identifier(" + t.Text + ")"

	case KindUnknown:
		return "Unknown(" + strconv.QuoteRune(firstRune(t.Text)) + ")"

	case KindEOF:
		return t.Kind.String()

	default:
		return "'" + t.Kind.String() + "'"
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}

	return 0
}
