// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

import "tlsim/design"

// execStatement runs an AlwaysComb (allowNba == false) or AlwaysFF
// (allowNba == true) body. Supported kinds are Block, List, Conditional,
// and ExpressionStatement carrying an Assignment; anything else is a
// silent no-op (§7 — unsupported statement kinds produce no effect).
//
// When allowNba is true, a non-blocking assignment (<=) is deferred to the
// kernel's NBA queue instead of written immediately, reproducing the
// active/NBA split that keeps a clocked swap (`a <= b; b <= a;`) from
// collapsing (property P4).
func (k *Kernel) execStatement(stmt design.Statement, allowNba bool) {
	switch s := stmt.(type) {
	case *design.Block:
		k.execStatement(s.Body, allowNba)
	case *design.List:
		for _, sub := range s.Stmts {
			k.execStatement(sub, allowNba)
		}
	case *design.Conditional:
		if k.eval(s.Cond).Bits != 0 {
			k.execStatement(s.IfTrue, allowNba)
		} else if s.IfFalse != nil {
			k.execStatement(s.IfFalse, allowNba)
		}
	case *design.ExpressionStatement:
		k.execAssignOrCall(s.Expr, allowNba)
	case *design.Empty, nil:
		// no-op
	default:
		// unsupported statement kind: silent no-op, per §7.
	}
}

func (k *Kernel) execAssignOrCall(e design.Expression, allowNba bool) {
	switch x := e.(type) {
	case *design.Assignment:
		lhs := k.signalFromExpr(x.Left)
		if lhs == nil {
			return
		}
		rhs := k.eval(x.Right)
		if x.NonBlocking && allowNba {
			k.NbaAssign(lhs, rhs.Bits)
		} else {
			k.setSignal(lhs, rhs.Bits)
		}
	default:
		// a bare call (e.g. $display) outside the testbench expander's
		// handling is not part of the supported construct set; no-op.
	}
}

// collectExprSignals walks e and returns every signal it reads, for
// subscribing a continuous-assign process as level-sensitive on its
// dependencies.
func collectExprSignals(k *Kernel, e design.Expression) []*Signal {
	var out []*Signal
	seen := make(map[*Signal]bool)
	collectExprSignalsInto(k, e, seen, &out)
	return out
}

func collectExprSignalsInto(k *Kernel, e design.Expression, seen map[*Signal]bool, out *[]*Signal) {
	switch x := e.(type) {
	case nil:
	case *design.NamedValue:
		if v, ok := x.Sym.(*design.Value); ok {
			if sig := k.resolve(v); sig != nil && !seen[sig] {
				seen[sig] = true
				*out = append(*out, sig)
			}
		}
	case *design.UnaryOp:
		collectExprSignalsInto(k, x.Operand, seen, out)
	case *design.BinaryOp:
		collectExprSignalsInto(k, x.Left, seen, out)
		collectExprSignalsInto(k, x.Right, seen, out)
	case *design.Assignment:
		collectExprSignalsInto(k, x.Right, seen, out)
	case *design.Call:
		for _, a := range x.Args {
			collectExprSignalsInto(k, a, seen, out)
		}
	case *design.Conversion:
		collectExprSignalsInto(k, x.Inner, seen, out)
	}
}

// collectStatementSignals walks stmt and returns the union of every signal
// read anywhere inside it — an AlwaysComb process's sensitivity list is
// exactly this set (§4.C).
func collectStatementSignals(k *Kernel, stmt design.Statement) []*Signal {
	var out []*Signal
	seen := make(map[*Signal]bool)
	collectStatementSignalsInto(k, stmt, seen, &out)
	return out
}

func collectStatementSignalsInto(k *Kernel, stmt design.Statement, seen map[*Signal]bool, out *[]*Signal) {
	switch s := stmt.(type) {
	case nil:
	case *design.Block:
		collectStatementSignalsInto(k, s.Body, seen, out)
	case *design.List:
		for _, sub := range s.Stmts {
			collectStatementSignalsInto(k, sub, seen, out)
		}
	case *design.Conditional:
		collectExprSignalsInto(k, s.Cond, seen, out)
		collectStatementSignalsInto(k, s.IfTrue, seen, out)
		collectStatementSignalsInto(k, s.IfFalse, seen, out)
	case *design.Timed:
		if d, ok := s.Timing.(*design.Delay); ok {
			collectExprSignalsInto(k, d.Expr, seen, out)
		}
		collectStatementSignalsInto(k, s.Stmt, seen, out)
	case *design.ExpressionStatement:
		if a, ok := s.Expr.(*design.Assignment); ok {
			collectExprSignalsInto(k, a.Right, seen, out)
		} else {
			collectExprSignalsInto(k, s.Expr, seen, out)
		}
	}
}
