package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/kleene"
)

// Expr is a parsed three-valued logic expression.
//
// Grammar, loosest binding first (the usual C ordering, & over ^ over |):
//
//	expr  := xor ('|' xor)*
//	xor   := and ('^' and)*
//	and   := unary ('&' unary)*
//	unary := '!' unary | '(' expr ')' | literal
//
// Literals are anything kleene.TryParse accepts: true/false/unknown
// case-insensitively, or the exact numerals 1, 0 and -1.
type Expr interface {
	fmt.Stringer
	eval(ev *Evaluator) kleene.TriState
}

type literal struct {
	value kleene.TriState
}

type not struct {
	operand Expr
}

type binary struct {
	op    byte // '&', '|' or '^'
	left  Expr
	right Expr
}

func (l literal) String() string { return l.value.String() }
func (n not) String() string     { return "!" + n.operand.String() }
func (b binary) String() string  { return fmt.Sprintf("(%s %c %s)", b.left, b.op, b.right) }

func (l literal) eval(*Evaluator) kleene.TriState { return l.value }

func (n not) eval(ev *Evaluator) kleene.TriState {
	result := n.operand.eval(ev).Not()
	ev.trace("not", "expr", n, "result", result)
	return result
}

func (b binary) eval(ev *Evaluator) kleene.TriState {
	left := b.left.eval(ev)

	var result kleene.TriState
	switch b.op {
	case '&':
		if left.IsFalse() {
			ev.trace("short-circuit", "expr", b, "reason", "left operand is False")
		}
		result = left.AndThen(func() kleene.TriState { return b.right.eval(ev) })
	case '|':
		if left.IsTrue() {
			ev.trace("short-circuit", "expr", b, "reason", "left operand is True")
		}
		result = left.OrElse(func() kleene.TriState { return b.right.eval(ev) })
	default:
		// Xor never short-circuits: no operand value decides it alone.
		result = left.Xor(b.right.eval(ev))
	}

	ev.trace("apply", "expr", b, "result", result)
	return result
}

// Evaluator evaluates parsed expressions. Logger, when set, receives a
// debug-level trace of every step including short-circuit decisions.
type Evaluator struct {
	Logger *slog.Logger
}

// Eval evaluates the expression with lazy And/Or semantics: a definite
// False prunes the right side of &, a definite True prunes the right side
// of |, and Unknown never prunes.
func (ev *Evaluator) Eval(e Expr) kleene.TriState {
	return e.eval(ev)
}

func (ev *Evaluator) trace(msg string, args ...any) {
	if ev == nil || ev.Logger == nil {
		return
	}
	ev.Logger.Debug(msg, args...)
}

// ParseExpr parses a three-valued logic expression.
func ParseExpr(input string) (Expr, error) {
	p := &parser{input: input}
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return e, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.peek() == '|' {
		p.pos++
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left = binary{op: '|', left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseXor() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek() == '^' {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = binary{op: '^', left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek() == '&' {
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binary{op: '&', left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of expression")
	}

	switch p.input[p.pos] {
	case '!':
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return not{operand: operand}, nil
	case '(':
		p.pos++
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return nil, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
		}
		p.pos++
		return e, nil
	}

	start := p.pos
	for p.pos < len(p.input) && isWordByte(p.input[p.pos]) {
		p.pos++
	}
	tok := p.input[start:p.pos]
	if tok == "" {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	v, err := kleene.Parse(tok)
	if err != nil {
		return nil, fmt.Errorf("invalid literal at offset %d: %w", start, err)
	}
	return literal{value: v}, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next significant byte without consuming it, or 0 at the
// end of input.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '-':
		return true
	}
	return false
}
