package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/compiler"
)

func TestLookupRoundTrip(t *testing.T) {
	for i, def := range compiler.OpcodeTable {
		if def.Name == "" {
			continue
		}
		op, ok := compiler.Lookup(def.Name)
		require.True(t, ok, def.Name)
		require.Equal(t, compiler.Opcode(i), op)
		require.Equal(t, def.Name, op.String())
		require.Equal(t, def.Fmt, op.Format())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := compiler.Lookup("not-an-opcode")
	require.False(t, ok)
}

func TestIllegalOpcodeString(t *testing.T) {
	var op compiler.Opcode = 255
	require.Equal(t, "illegal", op.String())
	require.Equal(t, compiler.FmtNone, op.Format())
}
