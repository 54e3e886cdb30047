package stringswitch

import "github.com/envp/stringswitch/internal/table"

// Cases accumulates cases for a switch with no default whose parameter is
// supplied at evaluation. Evaluate reports a miss through its second
// return value.
type Cases[R any] struct {
	cases *table.Table[R]
}

// BoundCases accumulates cases for a switch with no default whose
// parameter was captured at creation.
type BoundCases[R any] struct {
	cases *table.Table[R]
	param string
}

// Defaulted accumulates cases for a switch with a fallback whose
// parameter is supplied at evaluation. Evaluate always produces a result.
type Defaulted[R any] struct {
	cases    *table.Table[R]
	fallback R
}

// BoundDefaulted accumulates cases for a switch with a fallback whose
// parameter was captured at creation.
type BoundDefaulted[R any] struct {
	cases    *table.Table[R]
	param    string
	fallback R
}

//
// Cases
//

// When registers a case. If label was already registered, the first
// result is kept and this one is ignored.
func (c *Cases[R]) When(label string, result R) *Cases[R] {
	c.cases.Insert(label, result)
	return c
}

// Default sets the fallback result, fixing the result type of Evaluate
// to R. The receiver is consumed. A second default cannot be set: the
// returned type has no Default method.
func (c *Cases[R]) Default(result R) *Defaulted[R] {
	return &Defaulted[R]{cases: c.cases, fallback: result}
}

// Evaluate matches param against the registered cases. The second return
// value is false when no case matched.
func (c *Cases[R]) Evaluate(param string) (R, bool) {
	return c.cases.Lookup(param)
}

//
// BoundCases
//

// When registers a case. If label was already registered, the first
// result is kept and this one is ignored.
func (c *BoundCases[R]) When(label string, result R) *BoundCases[R] {
	c.cases.Insert(label, result)
	return c
}

// Default sets the fallback result, fixing the result type of Evaluate
// to R. The receiver is consumed. A second default cannot be set: the
// returned type has no Default method.
func (c *BoundCases[R]) Default(result R) *BoundDefaulted[R] {
	return &BoundDefaulted[R]{cases: c.cases, param: c.param, fallback: result}
}

// Evaluate matches the parameter captured at creation against the
// registered cases. The second return value is false when no case
// matched.
func (c *BoundCases[R]) Evaluate() (R, bool) {
	return c.cases.Lookup(c.param)
}

//
// Defaulted
//

// When registers a case. If label was already registered, the first
// result is kept and this one is ignored.
func (d *Defaulted[R]) When(label string, result R) *Defaulted[R] {
	d.cases.Insert(label, result)
	return d
}

// Evaluate matches param against the registered cases, returning the
// fallback on a miss.
func (d *Defaulted[R]) Evaluate(param string) R {
	if result, ok := d.cases.Lookup(param); ok {
		return result
	}
	return d.fallback
}

//
// BoundDefaulted
//

// When registers a case. If label was already registered, the first
// result is kept and this one is ignored.
func (d *BoundDefaulted[R]) When(label string, result R) *BoundDefaulted[R] {
	d.cases.Insert(label, result)
	return d
}

// Evaluate matches the parameter captured at creation against the
// registered cases, returning the fallback on a miss.
func (d *BoundDefaulted[R]) Evaluate() R {
	if result, ok := d.cases.Lookup(d.param); ok {
		return result
	}
	return d.fallback
}
