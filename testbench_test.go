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

func TestForeverLoopClockSelfReschedules(t *testing.T) {
	// P7: `initial forever #5 clk = ~clk;` toggles clk every 5 ticks
	// indefinitely; the $finish at t=23 is what eventually stops it.
	m := builder.NewModule("m", "top")
	clk := m.Signal("clk", 1)
	m.Initial(builder.ExprStmt(builder.Blocking(builder.Sig(clk), builder.Lit(0, 1))))
	m.Initial(builder.Forever(builder.Timed(
		builder.DelayTicks(5),
		builder.ExprStmt(builder.Blocking(builder.Sig(clk), builder.BitNot(builder.Sig(clk)))),
	)))
	m.Initial(builder.Seq(builder.Timed(builder.DelayTicks(23), builder.ExprStmt(builder.Finish()))))

	top, err := m.Build()
	require.NoError(t, err)

	k := NewKernel()
	require.NoError(t, k.Build(top))

	clkSig := k.resolve(clk)
	var edges []uint64
	_, err = k.RegisterEdge(func() {
		edges = append(edges, k.Time())
	}, []EdgeDep{{Signal: clkSig, Edge: design.AnyEdge}})
	require.NoError(t, err)

	k.Run()
	require.Equal(t, []uint64{5, 10, 15, 20}, edges)
}

func TestSequentialFoldThreadsDelaysInSourceOrder(t *testing.T) {
	// P6: `#10 a=1; #10 a=2;` schedules the second write at t=20, not t=10.
	m := builder.NewModule("m", "top")
	a := m.Signal("a", 8)
	m.Initial(builder.Seq(
		builder.Timed(builder.DelayTicks(10), builder.ExprStmt(builder.Blocking(builder.Sig(a), builder.Lit(1, 8)))),
		builder.Timed(builder.DelayTicks(10), builder.ExprStmt(builder.Blocking(builder.Sig(a), builder.Lit(2, 8)))),
	))
	top, err := m.Build()
	require.NoError(t, err)

	k := NewKernel()
	require.NoError(t, k.Build(top))

	aSig := k.resolve(a)
	var trace []uint64
	k.RegisterContinuous(func() { trace = append(trace, k.Time()) }, []*Signal{aSig})
	k.Run()

	require.Equal(t, []uint64{0, 10, 20}, trace)
	require.EqualValues(t, 2, aSig.Read())
}

func TestFinishSystemTaskStopsRunAtScheduledTime(t *testing.T) {
	m := builder.NewModule("m", "top")
	a := m.Signal("a", 8)
	m.Initial(builder.Seq(
		builder.Timed(builder.DelayTicks(10), builder.ExprStmt(builder.Finish())),
		builder.Timed(builder.DelayTicks(10), builder.ExprStmt(builder.Blocking(builder.Sig(a), builder.Lit(1, 8)))),
	))
	top, err := m.Build()
	require.NoError(t, err)

	k := NewKernel()
	require.NoError(t, k.Build(top))
	k.Run()

	require.EqualValues(t, 10, k.Time())
	require.EqualValues(t, 0, k.resolve(a).Read(), "the write scheduled after $finish's time must never execute")
}

func TestMidInitialMonitorRegistersAtItsScheduledTime(t *testing.T) {
	m := builder.NewModule("m", "top")
	a := m.Signal("a", 8)
	m.Initial(builder.Seq(
		builder.Timed(builder.DelayTicks(10), builder.ExprStmt(builder.Blocking(builder.Sig(a), builder.Lit(9, 8)))),
		builder.Timed(builder.DelayTicks(10), builder.ExprStmt(builder.Monitor("a=%d", builder.Sig(a)))),
		builder.Timed(builder.DelayTicks(10), builder.ExprStmt(builder.Finish())),
	))
	top, err := m.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	k := NewKernel(WithOutput(&buf))
	require.NoError(t, k.Build(top))
	k.Run()

	require.Len(t, k.monitors, 1)
	require.Equal(t, []string{"a=9"}, splitLinesForTest(buf.String()),
		"the monitor starts at t=20, so the write of 9 at t=10 prints nothing of its own")
}
