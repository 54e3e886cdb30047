// Package table defines the case-mapping primitive shared by the public
// builder states and the declarative config layer.
package table

// Table maps case labels to results for exact-match lookup. Matching is
// byte-exact on the label contents; no normalization is applied.
type Table[R any] struct {
	cases map[string]R
}

// New creates an empty table.
func New[R any]() *Table[R] {
	return &Table[R]{cases: make(map[string]R)}
}

// Insert registers result under label. Insertion is first-wins: if label
// is already present, the existing result is kept and the new one dropped.
func (t *Table[R]) Insert(label string, result R) {
	if _, exists := t.cases[label]; exists {
		return
	}
	t.cases[label] = result
}

// Lookup returns the result registered under param and whether one exists.
func (t *Table[R]) Lookup(param string) (R, bool) {
	result, ok := t.cases[param]
	return result, ok
}

// Len returns the number of registered labels.
func (t *Table[R]) Len() int {
	return len(t.cases)
}
