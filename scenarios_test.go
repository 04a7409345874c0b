// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"tlsim/design"
	"tlsim/design/builder"
)

// S1: an 8-bit adder feeding a clocked register, reset to 0 while rstn is
// low, and holding the registered sum of a and b otherwise.
func TestScenarioAdderPlusClockedRegister(t *testing.T) {
	m := builder.NewModule("adder_reg", "top")
	clk := m.Signal("clk", 1)
	rstn := m.Signal("rstn", 1)
	a := m.Signal("a", 8)
	b := m.Signal("b", 8)
	sum := m.Signal("sum", 8)

	m.AlwaysFF(builder.AtPosEdge(clk), builder.If(
		builder.Not(builder.Sig(rstn)),
		builder.ExprStmt(builder.NonBlocking(builder.Sig(sum), builder.Lit(0, 8))),
		builder.ExprStmt(builder.NonBlocking(builder.Sig(sum), builder.Bin(design.Add, builder.Sig(a), builder.Sig(b), 8))),
	))

	top, err := m.Build()
	require.NoError(t, err)

	k := NewKernel()
	require.NoError(t, k.Elaborate(top))

	clkSig, rstnSig, aSig, bSig, sumSig := k.resolve(clk), k.resolve(rstn), k.resolve(a), k.resolve(b), k.resolve(sum)

	k.Write(rstnSig, 0)
	k.Write(clkSig, 1)
	k.Run()
	require.EqualValues(t, 0, sumSig.Read(), "sum is held at 0 while reset is asserted")

	k.Write(clkSig, 0)
	k.Write(rstnSig, 1)
	k.Write(aSig, 15)
	k.Write(bSig, 10)
	k.Write(clkSig, 1)
	k.Run()
	require.EqualValues(t, 25, sumSig.Read())
}

// S2: a purely combinational chain settles within a single delta cycle,
// with no clock involved at all.
func TestScenarioCombinationalChainSettlesWithoutAClock(t *testing.T) {
	m := builder.NewModule("comb_chain", "top")
	a := m.Signal("a", 8)
	b := m.Signal("b", 8)
	sum := m.Signal("sum", 8)
	doubled := m.Signal("doubled", 8)

	m.Assign(builder.Sig(sum), builder.Bin(design.Add, builder.Sig(a), builder.Sig(b), 8))
	m.Assign(builder.Sig(doubled), builder.Bin(design.Mul, builder.Sig(sum), builder.Lit(2, 8), 8))

	top, err := m.Build()
	require.NoError(t, err)

	k := NewKernel()
	require.NoError(t, k.Elaborate(top))
	k.Run()

	aSig, bSig, doubledSig := k.resolve(a), k.resolve(b), k.resolve(doubled)
	k.Write(aSig, 3)
	k.Write(bSig, 4)
	k.Run()
	require.EqualValues(t, 14, doubledSig.Read(), "(3+4)*2 propagates through both continuous assigns in one run")
}

// S5: an asynchronous, active-low reset takes priority over the clock edge
// whenever it is itself the edge that woke the process, by being listed in
// the same sensitivity list as the clock.
func TestScenarioAsyncResetTakesPriorityViaSensitivityList(t *testing.T) {
	m := builder.NewModule("async_reset", "top")
	clk := m.Signal("clk", 1)
	rstn := m.Signal("rstn", 1)
	q := m.Signal("q", 8)

	m.AlwaysFF(builder.Events(builder.AtPosEdge(clk), builder.AtNegEdge(rstn)), builder.If(
		builder.Not(builder.Sig(rstn)),
		builder.ExprStmt(builder.NonBlocking(builder.Sig(q), builder.Lit(0, 8))),
		builder.ExprStmt(builder.NonBlocking(builder.Sig(q), builder.Bin(design.Add, builder.Sig(q), builder.Lit(1, 8), 8))),
	))

	top, err := m.Build()
	require.NoError(t, err)

	k := NewKernel()
	require.NoError(t, k.Elaborate(top))

	clkSig, rstnSig, qSig := k.resolve(clk), k.resolve(rstn), k.resolve(q)
	k.Write(rstnSig, 1)
	k.Write(qSig, 0) // no-op: already 0

	k.Write(clkSig, 1)
	k.Run()
	require.EqualValues(t, 1, qSig.Read())

	k.Write(clkSig, 0)
	k.Run()

	// Reset asserts asynchronously, independent of the clock's phase.
	k.Write(rstnSig, 0)
	k.Run()
	require.EqualValues(t, 0, qSig.Read(), "a negedge on rstn fires the process and forces q back to 0 without waiting for clk")
}

// S6: $finish fires at its scheduled time, and a $monitor watching the run
// prints its line for that same delta cycle before the simulation stops.
func TestScenarioMonitorObservesFinalDeltaCycleBeforeFinish(t *testing.T) {
	m := builder.NewModule("finish_timing", "top")
	a := m.Signal("a", 8)
	m.Initial(builder.Seq(
		builder.ExprStmt(builder.Monitor("a=%d", builder.Sig(a))),
		builder.Timed(builder.DelayTicks(40), builder.Seq(
			builder.ExprStmt(builder.Blocking(builder.Sig(a), builder.Lit(99, 8))),
			builder.ExprStmt(builder.Finish()),
		)),
	))

	top, err := m.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	k := NewKernel(WithOutput(&buf))
	require.NoError(t, k.Build(top))
	k.Run()

	lines := splitLinesForTest(buf.String())
	require.Equal(t, []string{"a=0", "a=99"}, lines, "the write at t=40 wakes the monitor before $finish, scheduled right after it, stops the run")
}
