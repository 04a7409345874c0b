package builder

import "tlsim/design"

// Sig returns a NamedValue expression reading v.
func Sig(v *design.Value) *design.NamedValue {
	return &design.NamedValue{Sym: v, W: v.Width}
}

// ParamRef returns a NamedValue expression reading the constant p.
func ParamRef(p *design.Parameter, width uint32) *design.NamedValue {
	return &design.NamedValue{Sym: p, W: width}
}

// Lit returns a sized integer literal.
func Lit(value uint64, width uint32) *design.IntegerLiteral {
	return &design.IntegerLiteral{Value: value, W: width}
}

// UnsizedLit returns an unbased-unsized literal such as '1 or '0.
func UnsizedLit(value uint64, width uint32) *design.UnbasedUnsizedIntegerLiteral {
	return &design.UnbasedUnsizedIntegerLiteral{Value: value, W: width}
}

// Not returns the logical-not (!x) of e.
func Not(e design.Expression) *design.UnaryOp {
	return &design.UnaryOp{Op: design.LogicalNot, Operand: e}
}

// BitNot returns the bitwise-complement (~x) of e.
func BitNot(e design.Expression) *design.UnaryOp {
	return &design.UnaryOp{Op: design.BitwiseNot, Operand: e}
}

// Bin returns a binary expression of the given operator and result width.
func Bin(op design.BinaryOperator, l, r design.Expression, width uint32) *design.BinaryOp {
	return &design.BinaryOp{Op: op, Left: l, Right: r, W: width}
}

// Blocking returns a blocking-assignment expression `lhs = rhs`.
func Blocking(lhs, rhs design.Expression) *design.Assignment {
	return &design.Assignment{Left: lhs, Right: rhs}
}

// NonBlocking returns a non-blocking-assignment expression `lhs <= rhs`.
func NonBlocking(lhs, rhs design.Expression) *design.Assignment {
	return &design.Assignment{Left: lhs, Right: rhs, NonBlocking: true}
}

// SimTime returns the $time system-call expression.
func SimTime() *design.Call {
	return &design.Call{Name: "$time", System: true, W: 64}
}

// Finish returns the $finish system-call expression statement payload.
func Finish() *design.Call {
	return &design.Call{Name: "$finish", System: true}
}

// Monitor returns the $monitor system-call expression: a format string
// followed by its argument expressions.
func Monitor(format string, args ...design.Expression) *design.Call {
	call := &design.Call{Name: "$monitor", System: true}
	call.Args = append(call.Args, &design.StringLiteral{Value: format})
	call.Args = append(call.Args, args...)
	return call
}
