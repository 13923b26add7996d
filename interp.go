// interp.go — tree-walking evaluator over arbitrary-precision integers.
//
// An Interp is owned by the driver and holds the only state that outlives a
// single input line: the variable environment. Nothing here is global and
// nothing here terminates the process; the exit command surfaces as
// Result.Quit for the driver to act on.
package bigcalc

import (
	"fmt"
	"io"
	"math/big"
	"os"
)

const helpText = `The program calculates expressions with + - * / ^ and parentheses.
Commands: /help prints this text, /exit quits.`

const farewell = "Bye!"

// Result is the outcome of evaluating one input line. Hide is set when the
// driver should not echo the value (assignments and /help); Quit is set by
// /exit. Both are fresh per Eval call.
type Result struct {
	Value *big.Int
	Hide  bool
	Quit  bool
}

// Interp evaluates expression trees against a persistent environment.
// Command output (help text, farewell) goes to Out.
type Interp struct {
	Out io.Writer

	env map[string]*big.Int
}

// New creates an interpreter with an empty environment. A nil out defaults
// to os.Stdout.
func New(out io.Writer) *Interp {
	if out == nil {
		out = os.Stdout
	}
	return &Interp{Out: out, env: make(map[string]*big.Int)}
}

// Env returns a copy of the current variable bindings.
func (ip *Interp) Env() map[string]*big.Int {
	out := make(map[string]*big.Int, len(ip.env))
	for k, v := range ip.env {
		out[k] = new(big.Int).Set(v)
	}
	return out
}

// Run lexes, parses, and evaluates one line of input.
func (ip *Interp) Run(line string) (Result, error) {
	n, err := ParseLine(line)
	if err != nil {
		return Result{}, err
	}
	return ip.Eval(n)
}

// Eval walks the tree and returns the resulting value. The environment is
// mutated only by a completed assignment; any failure while evaluating an
// assignment's right-hand side leaves it untouched.
func (ip *Interp) Eval(n Node) (Result, error) {
	var res Result
	v, err := ip.eval(n, &res)
	if err != nil {
		return Result{}, err
	}
	res.Value = v
	return res, nil
}

func (ip *Interp) eval(n Node, res *Result) (*big.Int, error) {
	switch n := n.(type) {
	case *Number:
		v, ok := new(big.Int).SetString(n.Text, 10)
		if !ok {
			// The lexer only emits digit runs; this is unreachable.
			return nil, errAt(InvalidSyntax, n.Col, "Invalid expression")
		}
		return v, nil

	case *Variable:
		v, ok := ip.env[n.Name]
		if !ok {
			return nil, errAt(UnknownVariable, n.Col, "Unknown variable")
		}
		return v, nil

	case *Command:
		return ip.command(n, res)

	case *Assign:
		v, err := ip.eval(n.Value, res)
		if err != nil {
			return nil, err
		}
		target, ok := n.Target.(*Variable)
		if !ok {
			return nil, errAt(InvalidAssignment, 0, "Invalid assignment")
		}
		ip.env[target.Name] = v
		res.Hide = true
		return v, nil

	case *Unary:
		v, err := ip.eval(n.Right, res)
		if err != nil {
			return nil, err
		}
		if n.Op == "-" {
			return new(big.Int).Neg(v), nil
		}
		return v, nil

	case *Binary:
		return ip.binary(n, res)

	default:
		return nil, fmt.Errorf("internal: unknown node %T", n)
	}
}

func (ip *Interp) command(n *Command, res *Result) (*big.Int, error) {
	switch n.Name {
	case "help":
		fmt.Fprintln(ip.Out, helpText)
		res.Hide = true
		return big.NewInt(0), nil
	case "exit":
		fmt.Fprintln(ip.Out, farewell)
		res.Hide = true
		res.Quit = true
		return big.NewInt(0), nil
	default:
		return nil, errAt(UnknownCommand, n.Col, "Unknown command")
	}
}

// binary evaluates left before right, always.
func (ip *Interp) binary(n *Binary, res *Result) (*big.Int, error) {
	l, err := ip.eval(n.Left, res)
	if err != nil {
		return nil, err
	}
	r, err := ip.eval(n.Right, res)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "+":
		return new(big.Int).Add(l, r), nil
	case "-":
		return new(big.Int).Sub(l, r), nil
	case "*":
		return new(big.Int).Mul(l, r), nil
	case "/":
		if r.Sign() == 0 {
			return nil, errAt(DivisionByZero, n.OpCol, "Division by zero")
		}
		return new(big.Int).Quo(l, r), nil
	case "^":
		// Exponents must be non-negative and fit a machine word; anything
		// else is an explicit arithmetic failure rather than a silent
		// truncation.
		if r.Sign() < 0 || !r.IsInt64() {
			return nil, errAt(BadExponent, n.OpCol, "Invalid exponent")
		}
		return new(big.Int).Exp(l, r, nil), nil
	default:
		return nil, fmt.Errorf("internal: unknown operator %q", n.Op)
	}
}
