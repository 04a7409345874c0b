// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

import (
	"container/heap"
	"io"
	"os"

	"github.com/pkg/errors"

	"tlsim/design"
)

// event is one entry of the future queue: a (time, order) pair used as the
// heap's sort key (invariant I4 — for equal time, order is the tie-break)
// plus the callback to run when it is due.
type event struct {
	time   uint64
	order  uint64
	action func()
}

// eventHeap is a container/heap min-heap over (time, order). No third-party
// priority queue appears anywhere in the source corpus this kernel was
// grounded on, so the scheduler's future queue uses the standard library's
// heap algorithms directly, as spec.md §9 calls for.
type eventHeap []event

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].order < h[j].order
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(event))
}
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Kernel is the single owned struct holding all simulator state: the
// three-queue scheduler (component D), the signal and process arenas, and
// the monitor engine's output sink. There is no package-level singleton —
// every simulation gets its own *Kernel, passed explicitly.
type Kernel struct {
	currentTime uint64
	nextOrder   uint64
	finished    bool

	future eventHeap
	active []func()
	nba    []nbaAssign

	out io.Writer

	signals   []*Signal
	processes []*process
	monitors  []*monitorRecord

	signalMap map[*design.Value]*Signal
}

// Option configures a Kernel at construction time.
type Option func(*Kernel)

// WithOutput redirects the monitor engine's output away from os.Stdout,
// e.g. to a bytes.Buffer in tests. Grounded on hwtest.ComparePart's pattern
// of giving tests a seam onto otherwise-hardcoded simulation output.
func WithOutput(w io.Writer) Option {
	return func(k *Kernel) { k.out = w }
}

// NewKernel returns an idle Kernel ready for elaboration.
func NewKernel(opts ...Option) *Kernel {
	k := &Kernel{out: os.Stdout}
	heap.Init(&k.future)
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Time returns the current logical tick.
func (k *Kernel) Time() uint64 { return k.currentTime }

// Finish requests termination: the run loop stops once the delta cycle in
// which Finish was scheduled has fully drained (§4.D).
func (k *Kernel) Finish() { k.finished = true }

// NewSignal allocates and registers a new signal of the given width, masking
// width to a minimum of 1 (a width of 0 is a front-end programmer error;
// the kernel clamps rather than rejecting, per §7).
func (k *Kernel) NewSignal(name string, width uint32) *Signal {
	s := newSignal(name, width)
	k.signals = append(k.signals, s)
	return s
}

// Write performs a direct (blocking-assignment style) write to sig: mask to
// width, and if the masked value differs from the current one, propagate
// through the sensitivity & edge engine (component E). A no-change write is
// a no-op that wakes nobody (invariant I1, property P2).
func (k *Kernel) Write(sig *Signal, value uint64) {
	k.setSignal(sig, value)
}

// NbaAssign defers a write to sig until the current delta cycle's NBA
// region (component D's nba queue). Multiple deferred writes to signals
// accumulate in insertion order and are applied atomically by applyNba.
func (k *Kernel) NbaAssign(sig *Signal, value uint64) {
	k.nba = append(k.nba, nbaAssign{signal: sig, value: value})
}

func (k *Kernel) setSignal(sig *Signal, value uint64) {
	masked := maskToWidth(value, sig.width)
	if sig.value == masked {
		return
	}
	old := sig.value
	sig.value = masked
	k.onSignalChange(sig, old, masked)
}

// onSignalChange is the sensitivity & edge engine (component E): it wakes
// every subscriber whose scheduled flag is false, exactly once per delta
// cycle, using the whole-value-zero edge predicate (§4.E, and the open
// question in §9 that keeps this instead of per-bit LSB edges).
func (k *Kernel) onSignalChange(sig *Signal, old, new uint64) {
	for _, p := range sig.level {
		if !p.scheduled {
			k.scheduleProcess(p, k.currentTime)
		}
	}

	oldZero, newZero := old == 0, new == 0
	if oldZero && !newZero {
		for _, p := range sig.posedge {
			if !p.scheduled {
				k.scheduleProcess(p, k.currentTime)
			}
		}
	}
	if !oldZero && newZero {
		for _, p := range sig.negedge {
			if !p.scheduled {
				k.scheduleProcess(p, k.currentTime)
			}
		}
	}

	for _, p := range sig.monitor {
		if !p.scheduled {
			k.scheduleProcess(p, k.currentTime)
		}
	}
}

// RegisterContinuous installs a Continuous or AlwaysComb process: cb is
// subscribed as level-sensitive on every signal in deps and scheduled once
// at the current time to establish initial values (component C).
func (k *Kernel) RegisterContinuous(cb func(), deps []*Signal) *process {
	p := &process{kind: processContinuous, run: cb}
	for _, sig := range deps {
		if sig == nil {
			continue
		}
		sig.level = append(sig.level, p)
	}
	k.processes = append(k.processes, p)
	k.scheduleProcess(p, k.currentTime)
	return p
}

// RegisterEdge installs an AlwaysFF process: cb runs only when one of deps
// fires (a real edge, or a level wait for design.AnyEdge). It is not
// pre-scheduled — it fires only on an actual triggering event.
func (k *Kernel) RegisterEdge(cb func(), deps []EdgeDep) (*process, error) {
	if cb == nil {
		return nil, errors.New("tlsim: RegisterEdge: nil callback")
	}
	p := &process{kind: processAlwaysFF, run: cb}
	for _, d := range deps {
		if d.Signal == nil {
			continue
		}
		switch d.Edge {
		case design.PosEdge:
			d.Signal.posedge = append(d.Signal.posedge, p)
		case design.NegEdge:
			d.Signal.negedge = append(d.Signal.negedge, p)
		default:
			d.Signal.level = append(d.Signal.level, p)
		}
	}
	k.processes = append(k.processes, p)
	return p, nil
}

// ScheduleAt is the one-shot event primitive used by the testbench expander
// and by $finish: at t == currentTime it joins the active queue's tail
// (preserving FIFO order for same-time insertions); otherwise it is placed
// in the future heap.
func (k *Kernel) ScheduleAt(t uint64, cb func()) {
	k.scheduleAt(t, cb)
}

func (k *Kernel) scheduleAt(t uint64, action func()) {
	order := k.nextOrder
	k.nextOrder++
	if t == k.currentTime {
		k.active = append(k.active, action)
		return
	}
	heap.Push(&k.future, event{time: t, order: order, action: action})
}

func (k *Kernel) scheduleProcess(p *process, at uint64) {
	k.scheduleAt(at, func() {
		p.scheduled = false
		p.run()
	})
	p.scheduled = true
}

func (k *Kernel) applyNba() {
	pending := k.nba
	k.nba = nil
	for _, n := range pending {
		k.setSignal(n.signal, n.value)
	}
}

// Run drives the main scheduler loop until termination: no events remain in
// any of the three queues, or Finish was called and the current delta cycle
// has drained (§4.D).
func (k *Kernel) Run() {
	for !k.finished && (k.future.Len() > 0 || len(k.active) > 0 || len(k.nba) > 0) {
		if len(k.active) == 0 && k.future.Len() > 0 {
			next := k.future[0].time
			k.currentTime = next
			for k.future.Len() > 0 && k.future[0].time == next {
				e := heap.Pop(&k.future).(event)
				k.active = append(k.active, e.action)
			}
		}

		for len(k.active) > 0 {
			action := k.active[0]
			k.active = k.active[1:]
			action()
		}

		if len(k.nba) > 0 {
			k.applyNba()
		}
	}
}
