// Package symtab implements the global and local symbol tables, the
// property and vocabulary tables, and the forward-reference fixup model
// described in spec §3 and §4.5.
//
// Lookups are backed by github.com/dolthub/swiss, the SwissTable hash map
// the teacher repo already reaches for (lang/machine/map.go) in place of a
// built-in map, since every one of these tables is a long-lived,
// session-owned interning structure exactly like that one.
package symtab

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/advsys/advc/lang/arena"
)

// Region identifies which arena a Fixup's offset lives in.
type Region int

const (
	RegionCode Region = iota
	RegionData
)

// Fixup records a single pending patch: when the target symbol's value
// becomes known, the word at (Region, Offset) is overwritten with it
// (spec §3, §4.5, GLOSSARY "Fixup").
type Fixup struct {
	Region Region
	Offset int32
}

// StorageClass is the kind of thing a global symbol names (spec §3).
// Storage class may transition only Undefined -> one of the others.
type StorageClass int

const (
	Undefined StorageClass = iota
	Constant
	Variable
	Object
	Function
)

func (c StorageClass) String() string {
	switch c {
	case Undefined:
		return "undefined"
	case Constant:
		return "constant"
	case Variable:
		return "variable"
	case Object:
		return "object"
	case Function:
		return "function"
	default:
		return "invalid"
	}
}

// Global is one entry in the program's global symbol table (spec §3).
type Global struct {
	Name    string
	Class   StorageClass
	Value   int32 // literal for Constant; data offset for Variable/Object; code offset for Function
	Defined bool
	Fixups  []Fixup
}

// AddFixup records a pending reference to this symbol. If the symbol is
// already defined, the fixup is patched immediately instead of being
// queued, matching the C reference's AddSymbolRef.
func (g *Global) AddFixup(code, data *arena.Arena, region Region, offset int32) {
	if g.Defined {
		patch(code, data, region, offset, g.Value)
		return
	}
	g.Fixups = append(g.Fixups, Fixup{Region: region, Offset: offset})
}

// Define transitions the symbol to defined with the given class and value,
// and patches every pending fixup (spec §3 invariant: "on definition, all
// pending fixups are patched with the resolved value").
func (g *Global) Define(code, data *arena.Arena, class StorageClass, value int32) error {
	if g.Defined {
		return fmt.Errorf("redefinition of %q", g.Name)
	}
	if g.Class != Undefined && g.Class != class {
		return fmt.Errorf("%q used as %s cannot be defined as %s", g.Name, g.Class, class)
	}
	g.Class = class
	g.Value = value
	g.Defined = true
	for _, f := range g.Fixups {
		patch(code, data, f.Region, f.Offset, value)
	}
	g.Fixups = nil
	return nil
}

func patch(code, data *arena.Arena, region Region, offset, value int32) {
	switch region {
	case RegionCode:
		code.PutWord(int(offset), value)
	case RegionData:
		data.PutWord(int(offset), value)
	}
}

// GlobalTable is the program's single global symbol table, keyed by name.
// Order is tracked separately so that diagnostics and dumps (spec §9's
// PrintSymbols-equivalent "Symbol table dump") are deterministic despite
// the underlying hash map's unspecified iteration order.
type GlobalTable struct {
	byName *swiss.Map[string, *Global]
	order  []*Global
}

// NewGlobalTable creates an empty global symbol table.
func NewGlobalTable() *GlobalTable {
	return &GlobalTable{byName: swiss.NewMap[string, *Global](64)}
}

// Find returns the symbol named name, if any.
func (t *GlobalTable) Find(name string) (*Global, bool) {
	return t.byName.Get(name)
}

// Undefined looks up or creates an undefined placeholder symbol for name,
// with the given storage class recorded as the class it is expected to
// eventually hold (spec §4.5: "referenced-but-undefined symbols in
// expressions are added to the global table as undefined objects").
func (t *GlobalTable) Undefined(name string, class StorageClass) *Global {
	if g, ok := t.byName.Get(name); ok {
		return g
	}
	g := &Global{Name: name, Class: class}
	t.byName.Put(name, g)
	t.order = append(t.order, g)
	return g
}

// Define defines (or redefines-as-error) the symbol named name as class
// with the given value, creating it first if it doesn't exist yet.
func (t *GlobalTable) Define(code, data *arena.Arena, name string, class StorageClass, value int32) (*Global, error) {
	g, ok := t.byName.Get(name)
	if !ok {
		g = &Global{Name: name}
		t.byName.Put(name, g)
		t.order = append(t.order, g)
	}
	if err := g.Define(code, data, class, value); err != nil {
		return nil, err
	}
	return g, nil
}

// All returns every global symbol in declaration/first-reference order.
func (t *GlobalTable) All() []*Global {
	return t.order
}

// CheckResolved implements the end-of-compile pass of spec §4.5: any
// symbol still undefined that was referenced as an object or function is a
// compile error.
func (t *GlobalTable) CheckResolved() error {
	for _, g := range t.order {
		if !g.Defined && (g.Class == Object || g.Class == Function) {
			return fmt.Errorf("undefined %s: %q", g.Class, g.Name)
		}
	}
	return nil
}
