// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

import "tlsim/design"

// processKind tags the four process variants component C manages.
type processKind int

const (
	processContinuous processKind = iota
	processAlwaysComb
	processAlwaysFF
	processMonitor
)

// process is the kernel's internal record for one Continuous, AlwaysComb,
// AlwaysFF, or Monitor process. The scheduled flag coalesces multiple
// wake-ups within a single delta cycle (invariant I2); it is cleared the
// moment the scheduler pops the process's event, before run executes.
type process struct {
	kind      processKind
	run       func()
	scheduled bool
}

// EdgeDep is one entry of an always_ff sensitivity list: wait for Edge on
// Signal. Any subscribes the process as level-sensitive instead of to a
// directional edge, matching a plain `@(sig)` wait.
type EdgeDep struct {
	Signal *Signal
	Edge   design.Edge
}

// nbaAssign is one deferred non-blocking write, accumulated during the
// active region and applied all at once at the delta-cycle boundary.
type nbaAssign struct {
	signal *Signal
	value  uint64
}
