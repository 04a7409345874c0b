/*
Package tlsim provides an event-driven simulation kernel for synchronous
digital hardware: a scheduler that orders events across logical time, signal
propagation and sensitivity, the non-blocking-assignment deferral region,
edge detection, testbench-time expansion, and a formatted monitor engine.

The kernel consumes an already-elaborated design graph (package
tlsim/design) — lexing, parsing, elaboration and code generation are all out
of scope; this package is what a generated program, or a front-end driving
the kernel directly, targets.

A Kernel is built and run like this:

	k := tlsim.NewKernel()
	if err := k.Build(top); err != nil {
		log.Fatal(err)
	}
	k.Run()

See tlsim/design/builder for a way to construct a *design.Instance without a
front-end, and tlsim/cmd/tlsim for a runnable demo.
*/
package tlsim
