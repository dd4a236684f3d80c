package symtab

import "github.com/dolthub/swiss"

// PropertyTable interns property names to small positive integer tags
// (spec §3 "Property"), unique across the whole program.
type PropertyTable struct {
	byName *swiss.Map[string, int32]
	order  []string
	next   int32
}

// NewPropertyTable creates an empty property table. Tags start at 1 so
// that 0 is never a valid tag and can be used as a sentinel.
func NewPropertyTable() *PropertyTable {
	return &PropertyTable{byName: swiss.NewMap[string, int32](32), next: 1}
}

// Intern returns the tag for name, assigning the next available tag the
// first time name is seen.
func (t *PropertyTable) Intern(name string) int32 {
	if tag, ok := t.byName.Get(name); ok {
		return tag
	}
	tag := t.next
	t.next++
	t.byName.Put(name, tag)
	t.order = append(t.order, name)
	return tag
}

// Lookup returns the tag already assigned to name, if any, without
// interning a new one.
func (t *PropertyTable) Lookup(name string) (int32, bool) {
	return t.byName.Get(name)
}

// Names returns every interned property name in first-use order.
func (t *PropertyTable) Names() []string { return t.order }
