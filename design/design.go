// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package design defines the elaborated design graph that the tlsim kernel
// consumes. It is the contract a front-end (lexer/parser/elaborator) and a
// standalone-program code generator would both target; this package does not
// itself parse anything — nodes are built directly by a front-end or, for
// tests and the bundled demo, by tlsim/design/builder.
package design

// Symbol is implemented by the two kinds of named, value-carrying
// declarations a NamedValue expression can reference: a signal (Value) or a
// constant (Parameter). Symbol identity is pointer identity, matching the
// elaborated graph's convention of symbol tables keyed by pointer rather
// than by name.
type Symbol interface {
	SymbolName() string
}

// Value is a declared net (the spec's ValueSymbol): a name, a bit width in
// [1, 64], and an optional initializer expression evaluated once at
// elaboration time.
type Value struct {
	Name string
	Width uint32
	Init Expression
}

func (v *Value) SymbolName() string { return v.Name }

// Parameter is a named constant integer.
type Parameter struct {
	Name  string
	Value uint64
}

func (p *Parameter) SymbolName() string { return p.Name }

// PortDirection classifies a Port.
type PortDirection int

const (
	In PortDirection = iota
	Out
	InOut
	Ref
)

func (d PortDirection) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	case InOut:
		return "inout"
	case Ref:
		return "ref"
	default:
		return "unknown"
	}
}

// Port is a module's externally visible connection point. Internal names
// the Value it aliases inside the instance body before binding; after
// binding (see tlsim's elaboration binder) that Value's entry in the
// kernel's signal map is replaced by the outer net it was connected to.
type Port struct {
	Name      string
	Direction PortDirection
	Internal  *Value
}

// PortConnection ties one of an Instance's ports to an expression in the
// enclosing scope. Actual is expected to be a *NamedValue referencing the
// outer net; any other expression kind is simply left unbound by the
// binder (it has no signal to alias to).
type PortConnection struct {
	Port   *Port
	Actual Expression
}

// ContinuousAssign holds a single `assign lhs = rhs;`.
type ContinuousAssign struct {
	Assign *Assignment
}

// ProceduralBlockKind selects the semantics of a ProceduralBlock.
type ProceduralBlockKind int

const (
	Initial ProceduralBlockKind = iota
	AlwaysFF
	AlwaysComb
)

// ProceduralBlock is one `initial`, `always_ff`, or `always_comb` body.
type ProceduralBlock struct {
	Kind ProceduralBlockKind
	Body Statement
}

// Instance is one module instantiation: a definition name, its body
// (signals, parameters, continuous assigns, procedural blocks, and nested
// instances), and — when it is itself a sub-instance of some parent — the
// port list and the connections supplied by the parent.
type Instance struct {
	Definition string
	Name       string

	Values             []*Value
	Parameters         []*Parameter
	ContinuousAssigns  []*ContinuousAssign
	ProceduralBlocks   []*ProceduralBlock
	Instances          []*Instance

	Ports       []*Port
	Connections []*PortConnection
}
