package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/arena"
)

func TestAllocWord(t *testing.T) {
	a := arena.New("test", 64)
	off, err := a.AllocWord(42)
	require.NoError(t, err)
	require.Equal(t, 0, off)
	require.Equal(t, int32(42), a.WordAt(off))
	require.Equal(t, 4, a.Len())
}

func TestAllocWords(t *testing.T) {
	a := arena.New("test", 64)
	off, err := a.AllocWords([]int32{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, int32(1), a.WordAt(off))
	require.Equal(t, int32(2), a.WordAt(off+4))
	require.Equal(t, int32(3), a.WordAt(off+8))
}

func TestAllocBytes(t *testing.T) {
	a := arena.New("test", 64)
	off, err := a.AllocBytes([]byte{0xde, 0xad, 0xbe, 0xef})
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, a.Bytes()[off:off+4])
}

func TestAllocZero(t *testing.T) {
	a := arena.New("test", 64)
	off, err := a.AllocZero(8)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 8), a.Bytes()[off:off+8])
}

func TestPutWord(t *testing.T) {
	a := arena.New("test", 64)
	off, err := a.AllocWord(0)
	require.NoError(t, err)
	a.PutWord(off, 99)
	require.Equal(t, int32(99), a.WordAt(off))
}

func TestRewind(t *testing.T) {
	a := arena.New("test", 64)
	off, err := a.AllocWord(1)
	require.NoError(t, err)
	_, err = a.AllocWord(2)
	require.NoError(t, err)
	a.Rewind(off)
	require.Equal(t, off, a.Len())
}

func TestOverflow(t *testing.T) {
	a := arena.New("test", 4)
	_, err := a.AllocWord(1)
	require.NoError(t, err)
	_, err = a.AllocWord(2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "overflow")
}
