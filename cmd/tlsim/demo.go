// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"tlsim/design"
	"tlsim/design/builder"
)

// buildAdderDemo assembles the 8-bit adder + clocked register design
// graph from SPEC_FULL.md's S1 scenario: an asynchronously-held reset, a
// 10-tick clock, three waves of operand changes, and a $finish at t=40.
func buildAdderDemo() (*design.Instance, error) {
	m := builder.NewModule("adder_reg_top", "top")

	clk := m.Signal("clk", 1)
	rstn := m.Signal("rstn", 1)
	a := m.Signal("a", 8)
	b := m.Signal("b", 8)
	sum := m.Signal("sum", 8)

	// always_ff @(posedge clk) if (!rstn) sum <= 0; else sum <= a + b;
	m.AlwaysFF(builder.AtPosEdge(clk), builder.If(
		builder.Not(builder.Sig(rstn)),
		builder.ExprStmt(builder.NonBlocking(builder.Sig(sum), builder.Lit(0, 8))),
		builder.ExprStmt(builder.NonBlocking(
			builder.Sig(sum),
			builder.Bin(design.Add, builder.Sig(a), builder.Sig(b), 8),
		)),
	))

	// initial clk = 0; forever #5 clk = ~clk;
	m.Initial(builder.ExprStmt(builder.Blocking(builder.Sig(clk), builder.Lit(0, 1))))
	m.Initial(builder.Forever(builder.Timed(
		builder.DelayTicks(5),
		builder.ExprStmt(builder.Blocking(builder.Sig(clk), builder.BitNot(builder.Sig(clk)))),
	)))

	// initial begin
	//   $monitor("Time: %0t | rstn: %b | a: %d | b: %d | sum: %d", ...);
	//   rstn = 0;
	//   #10 rstn = 1; a = 0; b = 0;
	//   #10 a = 15; b = 10;
	//   #10 a = 25; b = 30;
	//   #10 $finish;
	// end
	m.Initial(builder.Seq(
		builder.ExprStmt(builder.Monitor(
			"Time: %0t | rstn: %b | a: %d | b: %d | sum: %d",
			builder.SimTime(), builder.Sig(rstn), builder.Sig(a), builder.Sig(b), builder.Sig(sum),
		)),
		builder.ExprStmt(builder.Blocking(builder.Sig(rstn), builder.Lit(0, 1))),
		builder.Timed(builder.DelayTicks(10), builder.Seq(
			builder.ExprStmt(builder.Blocking(builder.Sig(rstn), builder.Lit(1, 1))),
			builder.ExprStmt(builder.Blocking(builder.Sig(a), builder.Lit(0, 8))),
			builder.ExprStmt(builder.Blocking(builder.Sig(b), builder.Lit(0, 8))),
		)),
		builder.Timed(builder.DelayTicks(10), builder.Seq(
			builder.ExprStmt(builder.Blocking(builder.Sig(a), builder.Lit(15, 8))),
			builder.ExprStmt(builder.Blocking(builder.Sig(b), builder.Lit(10, 8))),
		)),
		builder.Timed(builder.DelayTicks(10), builder.Seq(
			builder.ExprStmt(builder.Blocking(builder.Sig(a), builder.Lit(25, 8))),
			builder.ExprStmt(builder.Blocking(builder.Sig(b), builder.Lit(30, 8))),
		)),
		builder.Timed(builder.DelayTicks(10), builder.ExprStmt(builder.Finish())),
	))

	return m.Build()
}
