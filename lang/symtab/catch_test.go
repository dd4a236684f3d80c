package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/symtab"
)

func TestCatchStackNesting(t *testing.T) {
	cs := symtab.NewCatchStack(3)

	outer := cs.Push("e1")
	require.Equal(t, 1, outer.Depth)
	require.Equal(t, int32(3), cs.SlotFor(outer.Depth))

	inner := cs.Push("e2")
	require.Equal(t, 2, inner.Depth)
	require.Equal(t, int32(4), cs.SlotFor(inner.Depth))
	require.Equal(t, 2, cs.MaxDepth())

	sym, ok := cs.Find("e1")
	require.True(t, ok)
	require.Equal(t, outer, sym)

	cs.Pop()
	_, ok = cs.Find("e2")
	require.False(t, ok)
	require.Equal(t, 2, cs.MaxDepth(), "MaxDepth does not decrease on Pop")

	cs.Pop()
	_, ok = cs.Find("e1")
	require.False(t, ok)
}

func TestCatchStackShadowing(t *testing.T) {
	cs := symtab.NewCatchStack(0)
	cs.Push("e")
	cs.Push("e")
	sym, ok := cs.Find("e")
	require.True(t, ok)
	require.Equal(t, 2, sym.Depth, "innermost binding shadows the outer one")
}
