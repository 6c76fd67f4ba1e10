package lang

import (
	"log/slog"
)

// ParseString tokenizes and parses source text.
func ParseString(source string) (*Program, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

// Parse builds a program from a token sequence.
//
// The parser is recursive descent with one token of lookahead and no
// backtracking. A sequence that does not end with [KindEOF] is treated as if
// it did.
func Parse(tokens []Token) (*Program, error) {
	p := &parser{tokens: tokens}

	return p.parseProgram()
}

// MaxNesting bounds how deeply blocks, parentheses and prefix operators may
// nest. Deeper input is rejected as a syntax error instead of exhausting the
// goroutine stack in the parser or the evaluator.
const MaxNesting = 10000

// parser holds the parser state.
type parser struct {
	tokens []Token
	pos    int
	depth  int
}

// enter descends one nesting level; every successful call must be paired
// with leave.
func (p *parser) enter() error {
	if p.depth >= MaxNesting {
		return ErrSyntax.
			Wrapf("nesting deeper than %d levels", MaxNesting).
			With(
				slog.Int("depth", p.depth+1),
				slog.String("found", p.current().String()),
			)
	}

	p.depth++

	return nil
}

func (p *parser) leave() { p.depth-- }

// parseProgram parses: Statement* EndOfFile.
func (p *parser) parseProgram() (*Program, error) {
	prog := &Program{Statements: make([]Node, 0)}

	for p.current().Kind != KindEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		prog.Statements = append(prog.Statements, stmt)
	}

	return prog, nil
}

func (p *parser) parseStatement() (Node, error) {
	switch p.current().Kind {
	case KindDeclare:
		return p.parseDeclaration()
	case KindWhile:
		return p.parseWhile()
	case KindIf:
		return p.parseIf()
	case KindFunc:
		return p.parseFunction()
	case KindPrint:
		return p.parsePrint()
	case KindIdentifier:
		return p.parseIdentifierStatement()
	default:
		return nil, p.unexpected("statement")
	}
}

// parseDeclaration parses: 'declare' Identifier '=' Expression.
func (p *parser) parseDeclaration() (Node, error) {
	if err := p.consume(KindDeclare); err != nil {
		return nil, err
	}

	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.consume(KindAssign); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &VariableDeclaration{Name: name, Value: value}, nil
}

// parseWhile parses: 'while' Expression Block.
func (p *parser) parseWhile() (Node, error) {
	if err := p.consume(KindWhile); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &While{Condition: cond, Body: body}, nil
}

// parseIf parses: 'if' Expression Block.
func (p *parser) parseIf() (Node, error) {
	if err := p.consume(KindIf); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &If{Condition: cond, Body: body}, nil
}

// parseFunction parses: 'func' Identifier Block.
func (p *parser) parseFunction() (Node, error) {
	if err := p.consume(KindFunc); err != nil {
		return nil, err
	}

	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FunctionDeclaration{Name: name, Body: body}, nil
}

// parsePrint parses: 'print' Expression.
func (p *parser) parsePrint() (Node, error) {
	if err := p.consume(KindPrint); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &Print{Value: value}, nil
}

// parseIdentifierStatement parses an assignment (Identifier '=' Expression)
// or a call (Identifier '!').
func (p *parser) parseIdentifierStatement() (Node, error) {
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}

	switch p.current().Kind {
	case KindAssign:
		p.advance()

		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		return &VariableAssignment{Name: name, Value: value}, nil

	case KindBang:
		p.advance()

		return &FunctionCall{Name: name}, nil

	default:
		return nil, p.unexpected("'=' or '!'")
	}
}

// parseBlock parses: '{' Statement* '}'.
func (p *parser) parseBlock() ([]Node, error) {
	if err := p.consume(KindLBrace); err != nil {
		return nil, err
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	body := make([]Node, 0)

	for p.current().Kind != KindRBrace {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		body = append(body, stmt)
	}

	if err := p.consume(KindRBrace); err != nil {
		return nil, err
	}

	return body, nil
}

// parseExpression parses: Simple (('&&'|'||') Simple)*.
func (p *parser) parseExpression() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.parseLeft(p.parseSimple, KindAnd, KindOr)
}

// parseSimple parses the single flat tier shared by arithmetic and
// comparison operators: Term (op Term)*. There is no precedence among them;
// 1 + 2 * 3 is (1 + 2) * 3.
func (p *parser) parseSimple() (Node, error) {
	return p.parseLeft(p.parseTerm,
		KindPlus, KindMinus, KindStar, KindSlash, KindPercent,
		KindLess, KindGreater, KindLessEqual, KindGreaterEqual,
		KindEqual, KindNotEqual, KindAssign,
	)
}

// parseTerm parses: Factor (('='|'!=') Factor)*.
func (p *parser) parseTerm() (Node, error) {
	return p.parseLeft(p.parseFactor, KindAssign, KindNotEqual)
}

// parseLeft parses a left-associative chain of operand (op operand)*.
func (p *parser) parseLeft(
	operand func() (Node, error),
	ops ...Kind,
) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.advance().Kind

		right, err := operand()
		if err != nil {
			return nil, err
		}

		left = &Binary{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

// parseFactor parses a literal, identifier, parenthesized expression, or a
// prefix operator applied to an entire trailing expression.
func (p *parser) parseFactor() (Node, error) {
	tok := p.current()

	switch tok.Kind {
	case KindNumber:
		p.advance()

		return &Number{Value: tok.Number}, nil

	case KindString:
		p.advance()

		return &String{Value: tok.Text}, nil

	case KindBoolean:
		p.advance()

		return &Boolean{Value: tok.Bool}, nil

	case KindIdentifier:
		p.advance()

		return &Identifier{Name: tok.Text}, nil

	case KindLParen:
		p.advance()

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if err := p.consume(KindRParen); err != nil {
			return nil, err
		}

		return expr, nil

	case KindMinus, KindBang:
		p.advance()

		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		return &Unary{Operator: tok.Kind, Operand: operand}, nil

	default:
		return nil, p.unexpected(
			"number, string, boolean, identifier, '(', '-' or '!'",
		)
	}
}

// Helper methods

// current returns the token under the cursor. Past the end of the sequence
// it returns [KindEOF].
func (p *parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: KindEOF}
	}

	return p.tokens[p.pos]
}

// advance returns the current token and moves the cursor forward, stopping
// at the end-of-input sentinel.
func (p *parser) advance() Token {
	tok := p.current()
	if tok.Kind != KindEOF {
		p.pos++
	}

	return tok
}

func (p *parser) match(kinds ...Kind) bool {
	cur := p.current().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}

	return false
}

func (p *parser) consume(kind Kind) error {
	if p.current().Kind != kind {
		return p.unexpected("'" + kind.String() + "'")
	}

	p.advance()

	return nil
}

func (p *parser) consumeIdentifier() (string, error) {
	tok := p.current()
	if tok.Kind != KindIdentifier {
		return "", p.unexpected("identifier")
	}

	p.advance()

	return tok.Text, nil
}

// unexpected reports the current token where expected was required.
func (p *parser) unexpected(expected string) error {
	found := p.current()

	return ErrSyntax.
		Wrapf("expected %s but got %s", expected, found).
		With(
			slog.String("expected", expected),
			slog.String("found", found.String()),
		)
}
