// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

import "tlsim/design"

// BuildTestbench is the testbench expander (component F): it converts
// every top-level initial block into scheduled actions. A
// `forever { #delay lhs = expr; }` body becomes a self-rescheduling clock
// (setupClock); anything else is folded sequentially, treating `#d` as
// `t += d` and scheduling each assignment, $finish, or $monitor at the
// folded t (scheduleSequential). Control flow other than straight-line
// statements and delays is not supported inside an initial and is
// silently skipped, per §7.
func (k *Kernel) BuildTestbench(top *design.Instance) error {
	for _, pb := range top.ProceduralBlocks {
		if pb.Kind != design.Initial {
			continue
		}
		if loop, ok := pb.Body.(*design.ForeverLoop); ok {
			k.setupClock(loop)
			continue
		}
		t := uint64(0)
		k.scheduleSequential(pb.Body, &t)
	}
	return nil
}

// setupClock pattern-matches the one forever-loop shape the expander
// understands: `forever #delay lhs = expr;`. Anything else is silently
// not treated as a clock (§9 — this is deliberately not a general
// construct).
func (k *Kernel) setupClock(loop *design.ForeverLoop) {
	timed, ok := loop.Body.(*design.Timed)
	if !ok {
		return
	}
	delay, ok := timed.Timing.(*design.Delay)
	if !ok {
		return
	}
	es, ok := timed.Stmt.(*design.ExpressionStatement)
	if !ok {
		return
	}
	a, ok := es.Expr.(*design.Assignment)
	if !ok {
		return
	}
	lhs := k.signalFromExpr(a.Left)
	if lhs == nil {
		return
	}

	delayTicks := k.evalConst(delay.Expr)
	if delayTicks == 0 {
		return
	}

	var tick func()
	tick = func() {
		v := k.eval(a.Right)
		if a.NonBlocking {
			k.NbaAssign(lhs, v.Bits)
		} else {
			k.setSignal(lhs, v.Bits)
		}
		k.scheduleAt(k.currentTime+delayTicks, tick)
	}
	k.scheduleAt(delayTicks, tick)
}

// scheduleSequential folds a straight-line initial-block statement list in
// source order, threading a local clock t through delays (property P6).
func (k *Kernel) scheduleSequential(stmt design.Statement, t *uint64) {
	switch s := stmt.(type) {
	case *design.Block:
		k.scheduleSequential(s.Body, t)
	case *design.List:
		for _, sub := range s.Stmts {
			k.scheduleSequential(sub, t)
		}
	case *design.Timed:
		if delay, ok := s.Timing.(*design.Delay); ok {
			*t += k.evalConst(delay.Expr)
			k.scheduleSequential(s.Stmt, t)
		}
	case *design.ExpressionStatement:
		k.scheduleSequentialExpr(s.Expr, *t)
	case *design.Empty, nil:
		// no-op
	default:
		// unsupported statement kind inside an initial: silent no-op, §7.
	}
}

func (k *Kernel) scheduleSequentialExpr(e design.Expression, at uint64) {
	switch x := e.(type) {
	case *design.Call:
		k.handleSystemTask(x, at)
	case *design.Assignment:
		lhs := k.signalFromExpr(x.Left)
		if lhs == nil {
			return
		}
		rhs := x.Right
		nb := x.NonBlocking
		k.scheduleAt(at, func() {
			v := k.eval(rhs)
			if nb {
				k.NbaAssign(lhs, v.Bits)
			} else {
				k.setSignal(lhs, v.Bits)
			}
		})
	}
}

// handleSystemTask implements the two system tasks the expander supports
// inside an initial block: $finish (schedule termination at t) and
// $monitor (register a monitor whose first print fires at t, exactly like
// a top-level RegisterMonitor call — the "mid-initial $monitor" feature
// documented in SPEC_FULL.md, grounded on original_source's
// scheduleSequential/handleSystemTask).
func (k *Kernel) handleSystemTask(call *design.Call, at uint64) {
	if !call.System {
		return
	}
	switch call.Name {
	case "$finish":
		k.scheduleAt(at, func() { k.Finish() })
	case "$monitor":
		if len(call.Args) == 0 {
			return
		}
		fmtLit, ok := call.Args[0].(*design.StringLiteral)
		if !ok {
			return
		}
		args := make([]MonitorArg, 0, len(call.Args)-1)
		for _, a := range call.Args[1:] {
			args = append(args, k.exprToMonitorArg(a))
		}
		k.registerMonitorAt(at, fmtLit.Value, args)
	}
}

func (k *Kernel) exprToMonitorArg(e design.Expression) MonitorArg {
	switch x := e.(type) {
	case *design.Call:
		if x.System && x.Name == "$time" {
			return Time()
		}
	case *design.NamedValue:
		if v, ok := x.Sym.(*design.Value); ok {
			return SignalArg(k.resolve(v))
		}
	}
	return MonitorArg{}
}

// registerMonitorAt installs a Monitor process like RegisterMonitor, but
// defers both its signal subscriptions and its first scheduling to time
// `at` instead of the current time — the shape a $monitor call appearing
// mid-initial needs. Signal changes before `at` print nothing.
func (k *Kernel) registerMonitorAt(at uint64, format string, args []MonitorArg) *process {
	mon := &monitorRecord{format: format, args: args}
	p := &process{kind: processMonitor}
	p.run = func() { k.fireMonitor(mon) }

	k.monitors = append(k.monitors, mon)
	k.processes = append(k.processes, p)

	k.scheduleAt(at, func() {
		for _, a := range args {
			if a.Kind == MonitorSignal && a.Signal != nil {
				a.Signal.monitor = append(a.Signal.monitor, p)
			}
		}
		if !p.scheduled {
			k.scheduleProcess(p, k.currentTime)
		}
	})
	return p
}
