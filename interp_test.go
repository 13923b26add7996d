// interp_test.go
package bigcalc

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func run(t *testing.T, ip *Interp, line string) Result {
	t.Helper()
	res, err := ip.Run(line)
	if err != nil {
		t.Fatalf("Run(%q) error: %v", line, err)
	}
	return res
}

func wantValue(t *testing.T, ip *Interp, line, want string) {
	t.Helper()
	res := run(t, ip, line)
	if res.Value.String() != want {
		t.Fatalf("Run(%q) = %s, want %s", line, res.Value, want)
	}
	if res.Hide {
		t.Fatalf("Run(%q): value unexpectedly suppressed", line)
	}
}

func wantRunKind(t *testing.T, ip *Interp, line string, kind Kind) {
	t.Helper()
	_, err := ip.Run(line)
	if err == nil {
		t.Fatalf("Run(%q): expected error, got none", line)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("Run(%q): error %v is not *Error", line, err)
	}
	if e.Kind != kind {
		t.Fatalf("Run(%q): kind = %v, want %v", line, e.Kind, kind)
	}
}

func Test_Interp_Literals(t *testing.T) {
	ip := New(nil)
	wantValue(t, ip, "0", "0")
	wantValue(t, ip, "42", "42")
	// Arbitrary precision: far past int64.
	wantValue(t, ip, "123456789012345678901234567890", "123456789012345678901234567890")
}

func Test_Interp_Arithmetic(t *testing.T) {
	ip := New(nil)
	wantValue(t, ip, "2+3*4", "14")
	wantValue(t, ip, "(1+2)*3", "9")
	wantValue(t, ip, "10-4-3", "3")
	wantValue(t, ip, "-5+3", "-2")
	wantValue(t, ip, "+7", "7")
}

func Test_Interp_PowerPrecedence(t *testing.T) {
	ip := New(nil)
	// ^ shares the term tier and associates left: 3^2=9, 9*4=36, 2+36=38.
	wantValue(t, ip, "2+3^2*4", "38")
	// (2^3)^2 = 64, not 512.
	wantValue(t, ip, "2^3^2", "64")

	want := new(big.Int).Exp(big.NewInt(2), big.NewInt(128), nil).String()
	wantValue(t, ip, "2^128", want)
}

func Test_Interp_Division(t *testing.T) {
	ip := New(nil)
	wantValue(t, ip, "5/2", "2")
	wantValue(t, ip, "-5/2", "-2") // truncating, not flooring
	wantRunKind(t, ip, "5/0", DivisionByZero)
	wantRunKind(t, ip, "1/(2-2)", DivisionByZero)
}

func Test_Interp_BadExponent(t *testing.T) {
	ip := New(nil)
	wantRunKind(t, ip, "2^-3", BadExponent)
	wantRunKind(t, ip, "2^(0-1)", BadExponent)
	wantRunKind(t, ip, "2^(10^30)", BadExponent)
}

func Test_Interp_Variables(t *testing.T) {
	ip := New(nil)
	wantRunKind(t, ip, "a", UnknownVariable)

	res := run(t, ip, "a = 5")
	if !res.Hide {
		t.Fatal("assignment result not suppressed")
	}
	if res.Value.String() != "5" {
		t.Fatalf("assignment value = %s, want 5", res.Value)
	}
	wantValue(t, ip, "a", "5")
	wantValue(t, ip, "a + a*a", "30")

	// Reassignment: latest value wins across any number of assignments.
	run(t, ip, "a = 6")
	run(t, ip, "b = a")
	run(t, ip, "a = b + 1")
	wantValue(t, ip, "a", "7")

	env := ip.Env()
	if env["a"].String() != "7" || env["b"].String() != "6" {
		t.Fatalf("env = %v", env)
	}
}

func Test_Interp_AssignRHSFailureLeavesEnvUntouched(t *testing.T) {
	ip := New(nil)
	wantRunKind(t, ip, "x = unknown", UnknownVariable)
	wantRunKind(t, ip, "x = 1/0", DivisionByZero)
	if _, ok := ip.Env()["x"]; ok {
		t.Fatal("x bound despite failing right-hand side")
	}
}

func Test_Interp_ChainedAssignFixture(t *testing.T) {
	// Regression fixture for the documented behavior: a second '=' is
	// rejected at lex time, so "a=b=3" never reaches the parser.
	ip := New(nil)
	wantRunKind(t, ip, "a=b=3", InvalidAssignment)
	if len(ip.Env()) != 0 {
		t.Fatalf("env mutated: %v", ip.Env())
	}
}

func Test_Interp_PrefixAssignFixture(t *testing.T) {
	// "=x+1" parses via the prefix-assignment edge path and assigns x.
	ip := New(nil)
	res := run(t, ip, "=x+1")
	if !res.Hide || res.Value.String() != "1" {
		t.Fatalf("res = %+v", res)
	}
	wantValue(t, ip, "x", "1")
}

func Test_Interp_HelpCommand(t *testing.T) {
	var out strings.Builder
	ip := New(&out)
	res := run(t, ip, "/help")
	if !res.Hide {
		t.Fatal("/help result not suppressed")
	}
	if res.Quit {
		t.Fatal("/help should not quit")
	}
	if !strings.Contains(out.String(), "/exit quits") {
		t.Fatalf("help text missing: %q", out.String())
	}
}

func Test_Interp_ExitCommand(t *testing.T) {
	var out strings.Builder
	ip := New(&out)
	res := run(t, ip, "/exit")
	if !res.Quit {
		t.Fatal("/exit did not set Quit")
	}
	if out.String() != farewell+"\n" {
		t.Fatalf("farewell = %q", out.String())
	}
}

func Test_Interp_UnknownCommand(t *testing.T) {
	ip := New(nil)
	wantRunKind(t, ip, "/bogus", UnknownCommand)
}

func Test_Interp_EnvCopyIsDetached(t *testing.T) {
	ip := New(nil)
	run(t, ip, "n = 9")
	env := ip.Env()
	env["n"].SetInt64(0)
	wantValue(t, ip, "n", "9")
}
