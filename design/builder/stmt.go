package builder

import "tlsim/design"

// ExprStmt wraps an assignment or call expression as a statement.
func ExprStmt(e design.Expression) *design.ExpressionStatement {
	return &design.ExpressionStatement{Expr: e}
}

// Seq returns a List statement executing stmts in order.
func Seq(stmts ...design.Statement) *design.List {
	return &design.List{Stmts: stmts}
}

// If returns a Conditional statement; els may be nil.
func If(cond design.Expression, then, els design.Statement) *design.Conditional {
	return &design.Conditional{Cond: cond, IfTrue: then, IfFalse: els}
}

// DelayTicks returns a `#ticks` timing control.
func DelayTicks(ticks uint64) *design.Delay {
	return &design.Delay{Expr: Lit(ticks, 64)}
}

// AtPosEdge returns a posedge sensitivity on sig.
func AtPosEdge(sig *design.Value) *design.SignalEvent {
	return &design.SignalEvent{Expr: Sig(sig), Edge: design.PosEdge}
}

// AtNegEdge returns a negedge sensitivity on sig.
func AtNegEdge(sig *design.Value) *design.SignalEvent {
	return &design.SignalEvent{Expr: Sig(sig), Edge: design.NegEdge}
}

// AtAnyEdge returns a level-sensitivity wait on sig.
func AtAnyEdge(sig *design.Value) *design.SignalEvent {
	return &design.SignalEvent{Expr: Sig(sig), Edge: design.AnyEdge}
}

// Events returns an event-list timing control combining several.
func Events(evs ...design.TimingControl) *design.EventList {
	return &design.EventList{Events: evs}
}

// Timed wraps stmt with a timing control.
func Timed(timing design.TimingControl, stmt design.Statement) *design.Timed {
	return &design.Timed{Timing: timing, Stmt: stmt}
}

// Forever returns a forever-loop statement; only the
// `forever #delay lhs = expr;` shape is understood by the testbench
// expander.
func Forever(body design.Statement) *design.ForeverLoop {
	return &design.ForeverLoop{Body: body}
}
