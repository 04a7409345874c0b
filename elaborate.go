// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

import (
	"github.com/pkg/errors"

	"tlsim/design"
)

// resolve returns the Signal a Value symbol is currently bound to. After
// the elaboration binder (component H) runs, a port's internal symbol
// resolves to the outer net's Signal (invariant I5); an unconnected or
// top-level symbol resolves to the Signal allocated for it directly.
func (k *Kernel) resolve(sym *design.Value) *Signal {
	return k.signalMap[sym]
}

// Elaborate walks top and every instance beneath it, allocates a Signal for
// each declared Value (masking width to a minimum of 1 and evaluating any
// initializer), binds port connections so an inner symbol aliases its
// outer net (component H), and registers every continuous assign and
// procedural block as a process (component C). Continuous and AlwaysComb
// processes are scheduled once at time 0 to establish initial values, as
// component C's register_continuous specifies.
//
// Elaborate does not build the testbench; call BuildTestbench afterwards
// for a design graph's initial blocks.
func (k *Kernel) Elaborate(top *design.Instance) error {
	if top == nil {
		return errors.New("tlsim: Elaborate: nil top-level instance")
	}
	if k.signalMap == nil {
		k.signalMap = make(map[*design.Value]*Signal)
	}

	k.collectSignals(top, top.Name)
	if err := k.elaborateInstance(top); err != nil {
		return errors.Wrapf(err, "elaborating %s", top.Name)
	}
	return nil
}

func (k *Kernel) collectSignals(inst *design.Instance, prefix string) {
	for _, v := range inst.Values {
		if _, ok := k.signalMap[v]; ok {
			continue
		}
		sig := k.NewSignal(prefix+"."+v.Name, v.Width)
		k.signalMap[v] = sig
		if v.Init != nil {
			sig.value = maskToWidth(k.evalConst(v.Init), sig.width)
		}
	}
	for _, child := range inst.Instances {
		k.collectSignals(child, prefix+"."+child.Name)
	}
}

func (k *Kernel) elaborateInstance(inst *design.Instance) error {
	for _, child := range inst.Instances {
		if err := k.connectPorts(child); err != nil {
			return err
		}
	}
	if err := k.collectProcesses(inst); err != nil {
		return err
	}
	for _, child := range inst.Instances {
		if err := k.elaborateInstance(child); err != nil {
			return err
		}
	}
	return nil
}

// connectPorts is the elaboration binder: for every connection on inst,
// the inner port's symbol entry in the signal map is replaced by the outer
// net's Signal. A port with no connection keeps the freshly allocated
// internal signal from collectSignals.
func (k *Kernel) connectPorts(inst *design.Instance) error {
	for _, conn := range inst.Connections {
		if conn.Port == nil || conn.Port.Internal == nil {
			continue
		}
		outer := k.signalFromExpr(conn.Actual)
		if outer == nil {
			continue
		}
		k.signalMap[conn.Port.Internal] = outer
	}
	return nil
}

// signalFromExpr resolves an expression expected to be a bare NamedValue
// reference to a signal (the shape port actuals and continuous-assign
// left-hand sides take). Any other expression kind has no signal to give,
// and returns nil — the caller silently skips it, per §7.
func (k *Kernel) signalFromExpr(e design.Expression) *Signal {
	nv, ok := e.(*design.NamedValue)
	if !ok {
		return nil
	}
	v, ok := nv.Sym.(*design.Value)
	if !ok {
		return nil
	}
	return k.resolve(v)
}

func (k *Kernel) collectProcesses(inst *design.Instance) error {
	for _, ca := range inst.ContinuousAssigns {
		if err := k.addContinuousAssign(ca); err != nil {
			return err
		}
	}
	for _, pb := range inst.ProceduralBlocks {
		switch pb.Kind {
		case design.AlwaysComb:
			k.addAlwaysComb(pb)
		case design.AlwaysFF:
			if err := k.addAlwaysFF(pb); err != nil {
				return err
			}
		}
	}
	return nil
}

func (k *Kernel) addContinuousAssign(ca *design.ContinuousAssign) error {
	if ca.Assign == nil {
		return nil
	}
	lhs := k.signalFromExpr(ca.Assign.Left)
	if lhs == nil {
		return errors.Errorf("continuous assign: left-hand side is not a signal reference")
	}
	rhsExpr := ca.Assign.Right
	deps := collectExprSignals(k, rhsExpr)
	k.RegisterContinuous(func() {
		v := k.eval(rhsExpr)
		k.setSignal(lhs, v.Bits)
	}, deps)
	return nil
}

func (k *Kernel) addAlwaysComb(pb *design.ProceduralBlock) {
	deps := collectStatementSignals(k, pb.Body)
	k.RegisterContinuous(func() {
		k.execStatement(pb.Body, false)
	}, deps)
}

func (k *Kernel) addAlwaysFF(pb *design.ProceduralBlock) error {
	body := pb.Body
	var timing design.TimingControl
	if timed, ok := body.(*design.Timed); ok {
		timing = timed.Timing
		body = timed.Stmt
	}

	deps := k.collectEdgeDeps(timing)
	_, err := k.RegisterEdge(func() {
		k.execStatement(body, true)
	}, deps)
	return err
}

// Build runs Elaborate followed by BuildTestbench, the sequence a
// generated program's entry point follows: allocate and bind signals,
// register continuous/comb/ff processes, then expand the testbench's
// initial blocks into scheduled actions.
func (k *Kernel) Build(top *design.Instance) error {
	if err := k.Elaborate(top); err != nil {
		return err
	}
	return k.BuildTestbench(top)
}

func (k *Kernel) collectEdgeDeps(timing design.TimingControl) []EdgeDep {
	var deps []EdgeDep
	switch t := timing.(type) {
	case nil:
		return nil
	case *design.EventList:
		for _, ev := range t.Events {
			deps = append(deps, k.collectEdgeDeps(ev)...)
		}
	case *design.SignalEvent:
		sig := k.signalFromExpr(t.Expr)
		if sig == nil {
			return deps
		}
		deps = append(deps, EdgeDep{Signal: sig, Edge: t.Edge})
	}
	return deps
}
