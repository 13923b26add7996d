// parser.go — recursive-descent parser producing a tagged expression tree.
//
// Grammar (three tiers plus assignment, detected inside factor):
//
//	expr   := term (("+" | "-") term)*            left-associative
//	term   := factor (("*" | "/" | "^") factor)*  left-associative
//	factor := NUMBER
//	        | VARIABLE
//	        | VARIABLE "=" expr                   assignment
//	        | "=" factor expr                     prefix-assignment edge path
//	        | "(" expr ")"
//	        | ("+" | "-") factor                  unary sign
//	        | COMMAND
//
// Power deliberately shares the term tier with "*" and "/" and associates
// left: 2^3^2 is (2^3)^2 and 2+3^2*4 is 2+((3^2)*4). This is the calculator's
// documented precedence, not conventional math precedence.
//
// The prefix-assignment production is reachable only from edge inputs such as
// "=x+1" (a second "=" is rejected by the lexer, so it can never appear in an
// assignment's right-hand side). It is kept because the evaluator assigns
// meaning to it: the factor after "=" is the target, the rest of the line the
// value.
//
// Each node variant carries only the children that exist for it; leaves have
// no child fields at all, so shapes like "a NUMBER with a left child" are
// unrepresentable.
package bigcalc

// Node is one element of the expression tree.
type Node interface {
	node()
}

// Number is an unsigned decimal integer literal. The digits are kept as text
// and converted by the evaluator, so literals of any magnitude survive.
type Number struct {
	Text string
	Col  int
}

// Variable is a reference to a named binding.
type Variable struct {
	Name string
	Col  int
}

// Command is a slash command leaf ("help" or "exit" by the time it parses).
type Command struct {
	Name string
	Col  int
}

// Binary applies Op ("+", "-", "*", "/", "^") to Left and Right.
type Binary struct {
	Op    string
	OpCol int
	Left  Node
	Right Node
}

// Unary applies a sign ("+" or "-") to Right.
type Unary struct {
	Op    string
	OpCol int
	Right Node
}

// Assign stores Value under Target. Target is normally a *Variable; the
// prefix-assignment edge path can produce something else, which the
// evaluator rejects.
type Assign struct {
	Target Node
	Value  Node
}

func (*Number) node()   {}
func (*Variable) node() {}
func (*Command) node()  {}
func (*Binary) node()   {}
func (*Unary) node()    {}
func (*Assign) node()   {}

// Parse consumes a token stream (END-terminated, as produced by Lexer.Scan)
// and returns the root of the expression tree. Anything left over after a
// complete expression is an invalid-expression failure.
func Parse(toks []Token) (Node, error) {
	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != END {
		return nil, errAt(InvalidExpression, p.peek().Col, "Invalid expression")
	}
	return n, nil
}

// ParseLine tokenizes and parses one line of input.
func ParseLine(line string) (Node, error) {
	toks, err := NewLexer(line).Scan()
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

type parser struct {
	toks []Token
	i    int
}

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) match(tt ...TokenType) bool {
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(PLUS, MINUS) {
		op := p.prev()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.Lexeme, OpCol: op.Col, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) term() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MULT, DIV, POW) {
		op := p.prev()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.Lexeme, OpCol: op.Col, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) factor() (Node, error) {
	t := p.peek()
	switch t.Type {
	case NUMBER:
		p.i++
		return &Number{Text: t.Lexeme, Col: t.Col}, nil

	case VARIABLE:
		p.i++
		v := &Variable{Name: t.Lexeme, Col: t.Col}
		if p.match(ASSIGN) {
			value, err := p.expr()
			if err != nil {
				return nil, err
			}
			return &Assign{Target: v, Value: value}, nil
		}
		return v, nil

	case ASSIGN:
		p.i++
		target, err := p.factor()
		if err != nil {
			return nil, err
		}
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &Assign{Target: target, Value: value}, nil

	case LROUND:
		p.i++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.match(RROUND) {
			return nil, errAt(InvalidExpression, p.peek().Col, "Invalid expression")
		}
		return inner, nil

	case PLUS, MINUS:
		p.i++
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: t.Lexeme, OpCol: t.Col, Right: right}, nil

	case COMMAND:
		p.i++
		return &Command{Name: t.Lexeme, Col: t.Col}, nil

	default:
		return nil, errAt(InvalidSyntax, t.Col, "Invalid expression")
	}
}
