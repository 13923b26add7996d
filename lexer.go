// lexer.go
package bigcalc

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	END TokenType = iota

	// Literals & identifiers
	NUMBER
	VARIABLE
	COMMAND

	// Operators & punctuation
	PLUS
	MINUS
	MULT
	DIV
	POW
	LROUND
	RROUND
	ASSIGN
)

func (t TokenType) String() string {
	switch t {
	case END:
		return "END"
	case NUMBER:
		return "NUMBER"
	case VARIABLE:
		return "VARIABLE"
	case COMMAND:
		return "COMMAND"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULT:
		return "MULT"
	case DIV:
		return "DIV"
	case POW:
		return "POW"
	case LROUND:
		return "LROUND"
	case RROUND:
		return "RROUND"
	case ASSIGN:
		return "ASSIGN"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a lexical token with its raw text and 0-based start column.
type Token struct {
	Type   TokenType
	Lexeme string
	Col    int
}

// Lexer scans one input line into tokens.
type Lexer struct {
	src     string
	start   int // start index of current token
	cur     int // current index
	tokens  []Token
	parens  int // net '(' minus ')'
	assigns int // ASSIGN tokens emitted so far
}

// NewLexer creates a lexer for a single line of input.
func NewLexer(line string) *Lexer {
	return &Lexer{src: line}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	return ch, true
}

func (l *Lexer) addToken(tt TokenType) Token {
	tok := Token{Type: tt, Lexeme: l.src[l.start:l.cur], Col: l.start}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) previousToken() *Token {
	if len(l.tokens) == 0 {
		return nil
	}
	return &l.tokens[len(l.tokens)-1]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// adjacencyErr reports a letter/digit fusion like "1a" or "ab12". Once an
// assignment has appeared on the line the user is mistyping an assignment,
// not a bare identifier, and the message changes accordingly.
func (l *Lexer) adjacencyErr() error {
	if l.assigns > 0 {
		return errAt(InvalidAssignment, l.start, "Invalid assignment")
	}
	return errAt(InvalidIdentifier, l.start, "Invalid identifier")
}

func (l *Lexer) scanNumber() error {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	if p := l.previousToken(); p != nil && p.Type == VARIABLE {
		return l.adjacencyErr()
	}
	l.addToken(NUMBER)
	return nil
}

func (l *Lexer) scanVariable() error {
	for {
		b, ok := l.peek()
		if !ok || !isAlpha(b) {
			break
		}
		l.advance()
	}
	if p := l.previousToken(); p != nil && p.Type == NUMBER {
		return l.adjacencyErr()
	}
	l.addToken(VARIABLE)
	return nil
}

// rewriteCommand turns a stream that is exactly [DIV, VARIABLE] into a single
// COMMAND token carrying the word. Runs after the whole line is scanned and
// before END is appended; this is the only lookahead-driven rewrite.
func (l *Lexer) rewriteCommand() error {
	if len(l.tokens) != 2 || l.tokens[0].Type != DIV || l.tokens[1].Type != VARIABLE {
		return nil
	}
	word := l.tokens[1].Lexeme
	switch word {
	case "help", "exit":
		l.tokens = []Token{{Type: COMMAND, Lexeme: word, Col: l.tokens[0].Col}}
		return nil
	default:
		return errAt(UnknownCommand, l.tokens[0].Col, "Unknown command")
	}
}

// Scan tokenizes the whole line and returns the tokens, END included.
// Parenthesis balance is checked only once the full line has been consumed.
func (l *Lexer) Scan() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.cur
		ch, _ := l.advance()

		switch ch {
		case ' ', '\t', '\r', '\n':
			continue
		case '+':
			l.addToken(PLUS)
			continue
		case '-':
			l.addToken(MINUS)
			continue
		case '*':
			l.addToken(MULT)
			continue
		case '/':
			l.addToken(DIV)
			continue
		case '^':
			l.addToken(POW)
			continue
		case '(':
			l.parens++
			l.addToken(LROUND)
			continue
		case ')':
			l.parens--
			l.addToken(RROUND)
			continue
		case '=':
			if l.assigns > 0 {
				return nil, errAt(InvalidAssignment, l.start, "Invalid assignment")
			}
			l.assigns++
			l.addToken(ASSIGN)
			continue
		}

		if isDigit(ch) {
			if err := l.scanNumber(); err != nil {
				return nil, err
			}
			continue
		}
		if isAlpha(ch) {
			if err := l.scanVariable(); err != nil {
				return nil, err
			}
			continue
		}

		return nil, errAt(BadCharacter, l.start, "Invalid expression")
	}

	if l.parens != 0 {
		return nil, errAt(InvalidExpression, len(l.src), "Invalid expression")
	}
	if err := l.rewriteCommand(); err != nil {
		return nil, err
	}
	l.start = l.cur
	l.addToken(END)
	return l.tokens, nil
}
