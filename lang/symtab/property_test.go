package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/symtab"
)

func TestPropertyTableIntern(t *testing.T) {
	pt := symtab.NewPropertyTable()
	tag1 := pt.Intern("description")
	tag2 := pt.Intern("capacity")
	require.NotEqual(t, tag1, tag2)
	require.NotZero(t, tag1, "tag 0 is reserved as a sentinel")

	again := pt.Intern("description")
	require.Equal(t, tag1, again)

	require.Equal(t, []string{"description", "capacity"}, pt.Names())
}

func TestPropertyTableLookup(t *testing.T) {
	pt := symtab.NewPropertyTable()
	_, ok := pt.Lookup("description")
	require.False(t, ok)

	tag := pt.Intern("description")
	got, ok := pt.Lookup("description")
	require.True(t, ok)
	require.Equal(t, tag, got)
}
