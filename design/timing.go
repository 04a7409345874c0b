package design

// Edge classifies a SignalEvent's wait condition.
type Edge int

const (
	AnyEdge Edge = iota
	PosEdge
	NegEdge
)

// TimingControl is any node that can appear before a Timed statement's body.
type TimingControl interface {
	timingNode()
}

// Delay is `#Expr`: a pure time advance with no sensitivity.
type Delay struct {
	Expr Expression
}

func (*Delay) timingNode() {}

// SignalEvent is `@(edge Expr)`: sensitivity to one signal's transitions.
type SignalEvent struct {
	Expr Expression
	Edge Edge
}

func (*SignalEvent) timingNode() {}

// EventList is `@(a or b or ...)`: sensitivity to any of several events.
type EventList struct {
	Events []TimingControl
}

func (*EventList) timingNode() {}
