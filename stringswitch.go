package stringswitch

import "github.com/envp/stringswitch/internal/table"

// Switch is the entry state of a switch whose parameter will be supplied
// at evaluation time. It has no Evaluate method: at least one case or a
// default must be registered first.
type Switch[R any] struct{}

// BoundSwitch is the entry state of a switch whose parameter was captured
// at creation. It has no Evaluate method: at least one case or a default
// must be registered first.
type BoundSwitch[R any] struct {
	param string
}

// New creates a switch whose parameter is supplied later, to Evaluate.
func New[R any]() *Switch[R] {
	return &Switch[R]{}
}

// For creates a switch bound to param. Evaluate takes no argument and
// matches against the captured value.
func For[R any](param string) *BoundSwitch[R] {
	return &BoundSwitch[R]{param: param}
}

// When registers the first case and moves the switch into case
// accumulation. The receiver is consumed.
func (s *Switch[R]) When(label string, result R) *Cases[R] {
	t := table.New[R]()
	t.Insert(label, result)
	return &Cases[R]{cases: t}
}

// Default registers a fallback without any cases. The resulting switch
// always produces a result. The receiver is consumed.
func (s *Switch[R]) Default(result R) *Defaulted[R] {
	return &Defaulted[R]{cases: table.New[R](), fallback: result}
}

// When registers the first case and moves the switch into case
// accumulation, carrying the bound parameter. The receiver is consumed.
func (s *BoundSwitch[R]) When(label string, result R) *BoundCases[R] {
	t := table.New[R]()
	t.Insert(label, result)
	return &BoundCases[R]{cases: t, param: s.param}
}

// Default registers a fallback without any cases, carrying the bound
// parameter. The resulting switch always produces a result. The receiver
// is consumed.
func (s *BoundSwitch[R]) Default(result R) *BoundDefaulted[R] {
	return &BoundDefaulted[R]{cases: table.New[R](), param: s.param, fallback: result}
}
