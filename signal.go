// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

// A Signal is a named net of declared bit width in [1, 64]. It holds its
// current value, masked to its width (invariant I1), and the four disjoint
// sensitivity lists that the sensitivity & edge engine (component E) fans
// out to on every change.
//
// Signals are created during elaboration and live for the lifetime of the
// Kernel that owns them; they are mutated only through the kernel's
// signal-write path, never directly.
type Signal struct {
	name  string
	width uint32
	value uint64

	level   []*process
	posedge []*process
	negedge []*process
	monitor []*process
}

func newSignal(name string, width uint32) *Signal {
	if width == 0 {
		width = 1
	}
	return &Signal{name: name, width: width}
}

// Name returns the signal's elaborated name, e.g. "top.reg.q".
func (s *Signal) Name() string { return s.name }

// Width returns the signal's declared bit width.
func (s *Signal) Width() uint32 { return s.width }

// Read returns the signal's current value (component A).
func (s *Signal) Read() uint64 { return s.value }
