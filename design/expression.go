package design

// Expression is any node the evaluator (tlsim's component B) can reduce to a
// fixed-width value given a signal snapshot. Every concrete expression type
// below carries its own intrinsic bit width, resolved by whatever built the
// graph (a front-end's type checker, or design/builder's defaulting rules).
type Expression interface {
	Width() uint32
}

// IntegerLiteral is a sized integer constant, e.g. Verilog's 4'd10.
type IntegerLiteral struct {
	Value uint64
	W     uint32
}

func (e *IntegerLiteral) Width() uint32 { return e.W }

// UnbasedUnsizedIntegerLiteral is an unsized constant such as '1 or '0;
// distinct from IntegerLiteral only in provenance — the evaluator treats
// both identically once width has been resolved.
type UnbasedUnsizedIntegerLiteral struct {
	Value uint64
	W     uint32
}

func (e *UnbasedUnsizedIntegerLiteral) Width() uint32 { return e.W }

// NamedValue reads a Symbol: either a signal (through the kernel's signal
// store) or a parameter's constant.
type NamedValue struct {
	Sym Symbol
	W   uint32
}

func (e *NamedValue) Width() uint32 { return e.W }

// UnaryOperator enumerates the supported unary operators.
type UnaryOperator int

const (
	LogicalNot UnaryOperator = iota // !x, width 1
	BitwiseNot                      // ~x, width of x
)

// UnaryOp applies a unary operator to Operand.
type UnaryOp struct {
	Op      UnaryOperator
	Operand Expression
}

func (e *UnaryOp) Width() uint32 {
	if e.Op == LogicalNot {
		return 1
	}
	return e.Operand.Width()
}

// BinaryOperator enumerates the supported binary operators. Add through Or
// are named directly by spec.md; Eq through BitXor are the evaluator
// extension documented in SPEC_FULL.md's §4.B note.
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	LogicalAnd
	LogicalOr
	Eq
	Neq
	Lt
	Lte
	Gt
	Gte
	BitAnd
	BitOr
	BitXor
)

// BinaryOp applies a binary operator to Left and Right. W is the result
// width: 1 for the comparison/logical operators, the elaborated expression
// width otherwise.
type BinaryOp struct {
	Op    BinaryOperator
	Left  Expression
	Right Expression
	W     uint32
}

func (e *BinaryOp) Width() uint32 {
	switch e.Op {
	case LogicalAnd, LogicalOr, Eq, Neq, Lt, Lte, Gt, Gte:
		return 1
	default:
		return e.W
	}
}

// Assignment is `lhs = rhs` (blocking) or `lhs <= rhs` (non-blocking,
// NonBlocking == true). It appears as the sole expression of a
// ContinuousAssign or as the Expr of an ExpressionStatement.
type Assignment struct {
	Left        Expression
	Right       Expression
	NonBlocking bool
}

func (e *Assignment) Width() uint32 { return e.Left.Width() }

// Call is a system-task/function call such as $time, $finish, or $monitor.
// System is always true in this kernel: user-defined function calls are not
// part of the supported construct set.
type Call struct {
	Name   string
	Args   []Expression
	System bool
	W      uint32
}

func (e *Call) Width() uint32 { return e.W }

// StringLiteral is a literal string, used only as a $monitor/$display
// format argument; it carries no numeric width.
type StringLiteral struct {
	Value string
}

func (e *StringLiteral) Width() uint32 { return 0 }

// Conversion is a transparent width/type cast: evaluating it evaluates
// Inner and (re-)masks the result to W.
type Conversion struct {
	Inner Expression
	W     uint32
}

func (e *Conversion) Width() uint32 { return e.W }
