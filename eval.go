// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

import "tlsim/design"

// Value is the evaluator's result: a masked bit pattern and the width it
// was masked to.
type Value struct {
	Bits  uint64
	Width uint32
}

// eval is the expression evaluator (component B): a pure function from a
// design-graph expression plus the kernel's current signal snapshot to a
// fixed-width value. Arithmetic is carried out in 64-bit unsigned and
// masked to the result width after every binary operator, modeling
// two's-complement wrap within that width. Division by zero yields 0.
// Unsupported expression kinds evaluate to 0 (§7).
func (k *Kernel) eval(e design.Expression) Value {
	switch x := e.(type) {
	case *design.IntegerLiteral:
		return Value{maskToWidth(x.Value, x.W), x.W}
	case *design.UnbasedUnsizedIntegerLiteral:
		return Value{maskToWidth(x.Value, x.W), x.W}
	case *design.NamedValue:
		return k.evalNamedValue(x)
	case *design.UnaryOp:
		return k.evalUnary(x)
	case *design.BinaryOp:
		return k.evalBinary(x)
	case *design.Assignment:
		// An assignment's "value" (when read, e.g. as a sub-expression) is
		// its right-hand side; statement execution handles the write.
		return k.eval(x.Right)
	case *design.Call:
		return k.evalCall(x)
	case *design.Conversion:
		v := k.eval(x.Inner)
		return Value{maskToWidth(v.Bits, x.W), x.W}
	case *design.StringLiteral:
		return Value{0, 0}
	default:
		return Value{0, 64}
	}
}

func (k *Kernel) evalNamedValue(x *design.NamedValue) Value {
	switch sym := x.Sym.(type) {
	case *design.Parameter:
		return Value{maskToWidth(sym.Value, x.W), x.W}
	case *design.Value:
		sig := k.resolve(sym)
		if sig == nil {
			return Value{0, x.W}
		}
		return Value{sig.Read(), sig.Width()}
	default:
		return Value{0, x.W}
	}
}

func (k *Kernel) evalUnary(x *design.UnaryOp) Value {
	v := k.eval(x.Operand)
	switch x.Op {
	case design.LogicalNot:
		if v.Bits == 0 {
			return Value{1, 1}
		}
		return Value{0, 1}
	case design.BitwiseNot:
		return Value{maskToWidth(^v.Bits, v.Width), v.Width}
	default:
		return Value{0, x.Width()}
	}
}

func (k *Kernel) evalBinary(x *design.BinaryOp) Value {
	lhs := k.eval(x.Left)
	rhs := k.eval(x.Right)
	w := x.Width()

	boolResult := func(b bool) Value {
		if b {
			return Value{1, 1}
		}
		return Value{0, 1}
	}

	switch x.Op {
	case design.Add:
		return Value{maskToWidth(lhs.Bits+rhs.Bits, w), w}
	case design.Sub:
		return Value{maskToWidth(lhs.Bits-rhs.Bits, w), w}
	case design.Mul:
		return Value{maskToWidth(lhs.Bits*rhs.Bits, w), w}
	case design.Div:
		if rhs.Bits == 0 {
			return Value{0, w}
		}
		return Value{maskToWidth(lhs.Bits/rhs.Bits, w), w}
	case design.LogicalAnd:
		return boolResult(lhs.Bits != 0 && rhs.Bits != 0)
	case design.LogicalOr:
		return boolResult(lhs.Bits != 0 || rhs.Bits != 0)
	case design.Eq:
		return boolResult(lhs.Bits == rhs.Bits)
	case design.Neq:
		return boolResult(lhs.Bits != rhs.Bits)
	case design.Lt:
		return boolResult(lhs.Bits < rhs.Bits)
	case design.Lte:
		return boolResult(lhs.Bits <= rhs.Bits)
	case design.Gt:
		return boolResult(lhs.Bits > rhs.Bits)
	case design.Gte:
		return boolResult(lhs.Bits >= rhs.Bits)
	case design.BitAnd:
		return Value{maskToWidth(lhs.Bits&rhs.Bits, w), w}
	case design.BitOr:
		return Value{maskToWidth(lhs.Bits|rhs.Bits, w), w}
	case design.BitXor:
		return Value{maskToWidth(lhs.Bits^rhs.Bits, w), w}
	default:
		return Value{0, w}
	}
}

func (k *Kernel) evalCall(x *design.Call) Value {
	if x.System && x.Name == "$time" {
		return Value{k.currentTime, 64}
	}
	return Value{0, x.W}
}

// evalConst evaluates an expression expected to be a compile-time constant
// (a delay, a clock period) and returns just its bit pattern.
func (k *Kernel) evalConst(e design.Expression) uint64 {
	return k.eval(e).Bits
}
