// printer.go — canonical rendering of values and expression trees.
package bigcalc

import (
	"fmt"
	"math/big"
	"strings"
)

// FormatResult renders a computed value the way the driver echoes it.
func FormatResult(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// FormatNode renders a tree fully parenthesized, making the grouping the
// parser chose visible: 2+3^2*4 renders as (2 + ((3 ^ 2) * 4)). Used by
// parser tests and the driver's --ast mode.
func FormatNode(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Number:
		b.WriteString(n.Text)
	case *Variable:
		b.WriteString(n.Name)
	case *Command:
		b.WriteByte('/')
		b.WriteString(n.Name)
	case *Unary:
		b.WriteByte('(')
		b.WriteString(n.Op)
		writeNode(b, n.Right)
		b.WriteByte(')')
	case *Binary:
		b.WriteByte('(')
		writeNode(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Op)
		b.WriteByte(' ')
		writeNode(b, n.Right)
		b.WriteByte(')')
	case *Assign:
		b.WriteByte('(')
		writeNode(b, n.Target)
		b.WriteString(" = ")
		writeNode(b, n.Value)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<%T>", n)
	}
}
