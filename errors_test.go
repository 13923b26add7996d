package bigcalc

import (
	"errors"
	"strings"
	"testing"
)

func Test_Errors_MessagesAreBare(t *testing.T) {
	// The driver prints Error() verbatim; these strings are the contract.
	cases := []struct {
		line string
		want string
	}{
		{"1a", "Invalid identifier"},
		{"a=1b", "Invalid assignment"},
		{"zz", "Unknown variable"},
		{"/go", "Unknown command"},
		{"(1+2*3", "Invalid expression"},
		{"2+", "Invalid expression"},
		{"5/0", "Division by zero"},
		{"2^-1", "Invalid exponent"},
	}
	ip := New(nil)
	for _, c := range cases {
		_, err := ip.Run(c.line)
		if err == nil {
			t.Fatalf("Run(%q): expected error", c.line)
		}
		if err.Error() != c.want {
			t.Fatalf("Run(%q) message = %q, want %q", c.line, err.Error(), c.want)
		}
	}
}

func Test_Errors_KindSurvivesAs(t *testing.T) {
	_, err := New(nil).Run("5/0")
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("not *Error: %v", err)
	}
	if e.Kind != DivisionByZero {
		t.Fatalf("kind = %v", e.Kind)
	}
}

func Test_Errors_WrapWithSourceCaret(t *testing.T) {
	line := "(1+2*3"
	_, err := New(nil).Run(line)
	wrapped := WrapWithSource(err, line)

	msg := wrapped.Error()
	if !strings.HasPrefix(msg, "Invalid expression\n") {
		t.Fatalf("missing header: %q", msg)
	}
	if !strings.Contains(msg, "   1 | (1+2*3") {
		t.Fatalf("missing source line: %q", msg)
	}
	// Balance failure is reported at end of line: caret under column 6.
	if !strings.HasSuffix(msg, "     | "+strings.Repeat(" ", 6)+"^") {
		t.Fatalf("caret misplaced: %q", msg)
	}
}

func Test_Errors_WrapPassesOthersThrough(t *testing.T) {
	plain := errors.New("boom")
	if WrapWithSource(plain, "x") != plain {
		t.Fatal("non-*Error was rewritten")
	}
}

func Test_Errors_CaretColumnAtOperator(t *testing.T) {
	line := "10 / 0"
	_, err := New(nil).Run(line)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("not *Error: %v", err)
	}
	if e.Col != 3 {
		t.Fatalf("col = %d, want 3", e.Col)
	}
}
