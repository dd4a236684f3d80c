package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/arena"
	"github.com/advsys/advc/lang/symtab"
)

func TestGlobalFixupBeforeDefine(t *testing.T) {
	code := arena.New("code", 64)
	data := arena.New("data", 64)

	table := symtab.NewGlobalTable()
	g := table.Undefined("Kitchen", symtab.Object)

	off, err := code.AllocWord(0)
	require.NoError(t, err)
	g.AddFixup(code, data, symtab.RegionCode, int32(off))
	require.Equal(t, int32(0), code.WordAt(off), "not patched yet")

	_, err = table.Define(code, data, "Kitchen", symtab.Object, 100)
	require.NoError(t, err)
	require.Equal(t, int32(100), code.WordAt(off))
}

func TestGlobalFixupAfterDefine(t *testing.T) {
	code := arena.New("code", 64)
	data := arena.New("data", 64)

	table := symtab.NewGlobalTable()
	_, err := table.Define(code, data, "Kitchen", symtab.Object, 42)
	require.NoError(t, err)

	g, ok := table.Find("Kitchen")
	require.True(t, ok)

	off, err := data.AllocWord(0)
	require.NoError(t, err)
	g.AddFixup(code, data, symtab.RegionData, int32(off))
	require.Equal(t, int32(42), data.WordAt(off), "immediate patch since already defined")
}

func TestGlobalRedefinitionError(t *testing.T) {
	code := arena.New("code", 64)
	data := arena.New("data", 64)
	table := symtab.NewGlobalTable()

	_, err := table.Define(code, data, "Foo", symtab.Variable, 1)
	require.NoError(t, err)
	_, err = table.Define(code, data, "Foo", symtab.Variable, 2)
	require.Error(t, err)
}

func TestGlobalClassMismatch(t *testing.T) {
	code := arena.New("code", 64)
	data := arena.New("data", 64)
	table := symtab.NewGlobalTable()

	table.Undefined("Foo", symtab.Object)
	_, err := table.Define(code, data, "Foo", symtab.Variable, 1)
	require.Error(t, err)
}

func TestCheckResolved(t *testing.T) {
	code := arena.New("code", 64)
	data := arena.New("data", 64)
	table := symtab.NewGlobalTable()

	table.Undefined("Missing", symtab.Object)
	require.Error(t, table.CheckResolved())

	_, err := table.Define(code, data, "Missing", symtab.Object, 1)
	require.NoError(t, err)
	require.NoError(t, table.CheckResolved())
}
