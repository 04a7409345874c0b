// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package builder provides a programmatic way to construct a
// tlsim/design graph without a front-end, the same role hwsim.Chip and
// PartSpec.NewPart play for composing logic-gate parts from Go code instead
// of a text HDL. It exists for tests and the bundled demo; a real front-end
// would build tlsim/design nodes directly from a parsed source file.
package builder

import (
	"github.com/pkg/errors"

	"tlsim/design"
)

// Module accumulates the pieces of one design.Instance: its signals,
// parameters, continuous assigns, procedural blocks, ports, and child
// instances.
type Module struct {
	inst   *design.Instance
	values map[string]*design.Value
	params map[string]*design.Parameter
	ports  map[string]*design.Port
}

// NewModule starts a new module definition named definition, instantiated
// under instanceName.
func NewModule(definition, instanceName string) *Module {
	return &Module{
		inst: &design.Instance{
			Definition: definition,
			Name:       instanceName,
		},
		values: make(map[string]*design.Value),
		params: make(map[string]*design.Parameter),
		ports:  make(map[string]*design.Port),
	}
}

// Signal declares an internal net. Width is clamped to a minimum of 1
// (0 is a front-end programmer error the kernel tolerates by clamping,
// per SPEC_FULL.md §7).
func (m *Module) Signal(name string, width uint32) *design.Value {
	return m.signal(name, width, nil)
}

// SignalInit declares an internal net with an initializer expression,
// evaluated once at elaboration.
func (m *Module) SignalInit(name string, width uint32, init design.Expression) *design.Value {
	return m.signal(name, width, init)
}

func (m *Module) signal(name string, width uint32, init design.Expression) *design.Value {
	if width == 0 {
		width = 1
	}
	if v, ok := m.values[name]; ok {
		return v
	}
	v := &design.Value{Name: name, Width: width, Init: init}
	m.values[name] = v
	m.inst.Values = append(m.inst.Values, v)
	return v
}

// Param declares a named constant.
func (m *Module) Param(name string, value uint64) *design.Parameter {
	if p, ok := m.params[name]; ok {
		return p
	}
	p := &design.Parameter{Name: name, Value: value}
	m.params[name] = p
	m.inst.Parameters = append(m.inst.Parameters, p)
	return p
}

// Port declares a port named name, backed by an internal signal of the
// given width, and returns that internal signal (for use inside this
// module's own assigns and procedural blocks).
func (m *Module) Port(name string, dir design.PortDirection, width uint32) *design.Value {
	v := m.signal(name, width, nil)
	port := &design.Port{Name: name, Direction: dir, Internal: v}
	m.ports[name] = port
	m.inst.Ports = append(m.inst.Ports, port)
	return v
}

// Assign adds a continuous assign `lhs = rhs` (component C's Continuous
// process kind).
func (m *Module) Assign(lhs, rhs design.Expression) {
	m.inst.ContinuousAssigns = append(m.inst.ContinuousAssigns, &design.ContinuousAssign{
		Assign: &design.Assignment{Left: lhs, Right: rhs},
	})
}

// AlwaysComb adds an always_comb block.
func (m *Module) AlwaysComb(body design.Statement) {
	m.inst.ProceduralBlocks = append(m.inst.ProceduralBlocks, &design.ProceduralBlock{
		Kind: design.AlwaysComb,
		Body: body,
	})
}

// AlwaysFF adds an always_ff block sensitive to timing.
func (m *Module) AlwaysFF(timing design.TimingControl, body design.Statement) {
	m.inst.ProceduralBlocks = append(m.inst.ProceduralBlocks, &design.ProceduralBlock{
		Kind: design.AlwaysFF,
		Body: &design.Timed{Timing: timing, Stmt: body},
	})
}

// Initial adds an initial block.
func (m *Module) Initial(body design.Statement) {
	m.inst.ProceduralBlocks = append(m.inst.ProceduralBlocks, &design.ProceduralBlock{
		Kind: design.Initial,
		Body: body,
	})
}

// Instantiate adds child as a sub-instance of m, connecting its ports per
// conns (a port name to actual-expression map). A connection naming a port
// child does not have is an error, mirroring hwsim.Chip's validation of
// pin names against a part's declared interface.
func (m *Module) Instantiate(child *Module, conns map[string]design.Expression) error {
	childInst, err := child.Build()
	if err != nil {
		return errors.Wrapf(err, "building sub-instance %q", child.inst.Name)
	}

	for name, actual := range conns {
		port, ok := child.ports[name]
		if !ok {
			return errors.Errorf("instance %q: unknown port %q on %q", m.inst.Name, name, child.inst.Definition)
		}
		childInst.Connections = append(childInst.Connections, &design.PortConnection{
			Port:   port,
			Actual: actual,
		})
	}

	m.inst.Instances = append(m.inst.Instances, childInst)
	return nil
}

// Build validates and returns the assembled design.Instance.
func (m *Module) Build() (*design.Instance, error) {
	if m.inst.Name == "" {
		return nil, errors.New("builder: module has no instance name")
	}
	return m.inst, nil
}
