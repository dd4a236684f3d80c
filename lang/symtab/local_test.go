package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/symtab"
)

func TestLocalTableFunctionNumbering(t *testing.T) {
	lt := symtab.NewLocalTable()
	a1, err := lt.AddArgument("x")
	require.NoError(t, err)
	require.Equal(t, int32(0), a1.Index)
	a2, err := lt.AddArgument("y")
	require.NoError(t, err)
	require.Equal(t, int32(1), a2.Index)

	l1, err := lt.AddLocal("z")
	require.NoError(t, err)
	require.Equal(t, int32(0), l1.Index)

	require.Equal(t, 2, lt.NumArguments())
	require.Equal(t, 1, lt.NumLocals())
}

func TestLocalTableMethodNumbering(t *testing.T) {
	lt := symtab.NewLocalTable()
	lt.ReserveMethodSlots()
	a1, err := lt.AddArgument("arg1")
	require.NoError(t, err)
	require.Equal(t, int32(2), a1.Index)
}

func TestLocalTableDuplicates(t *testing.T) {
	lt := symtab.NewLocalTable()
	_, err := lt.AddArgument("x")
	require.NoError(t, err)
	_, err = lt.AddArgument("x")
	require.Error(t, err)

	_, err = lt.AddLocal("z")
	require.NoError(t, err)
	_, err = lt.AddLocal("z")
	require.Error(t, err)
}

func TestLocalTableFind(t *testing.T) {
	lt := symtab.NewLocalTable()
	_, _ = lt.AddArgument("x")
	_, _ = lt.AddLocal("y")

	_, ok := lt.FindArgument("x")
	require.True(t, ok)
	_, ok = lt.FindArgument("y")
	require.False(t, ok)

	_, ok = lt.FindLocal("y")
	require.True(t, ok)
	_, ok = lt.FindLocal("x")
	require.False(t, ok)
}
