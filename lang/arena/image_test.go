package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/arena"
)

func newTestImage(t *testing.T) *arena.Image {
	t.Helper()
	return arena.NewImage(arena.Limits{Code: 4096, Data: 4096, Strings: 4096})
}

func TestObjectBuilderAddProperty(t *testing.T) {
	img := newTestImage(t)
	b, err := img.BeginObject(0)
	require.NoError(t, err)

	rec, err := b.AddProperty(1, false, 42)
	require.NoError(t, err)
	require.False(t, rec.Shared)
	require.Equal(t, int32(1), rec.Tag)
	require.Equal(t, int32(42), img.Data.WordAt(int(rec.ValueOff)))
	require.Equal(t, int32(1), b.NProperties())

	idx := b.FindInherited(1)
	require.Equal(t, 0, idx)
	require.Equal(t, -1, b.FindInherited(2))
}

func TestObjectBuilderSharedTagBit(t *testing.T) {
	img := newTestImage(t)
	b, err := img.BeginObject(0)
	require.NoError(t, err)

	rec, err := b.AddProperty(3, true, 7)
	require.NoError(t, err)
	require.True(t, rec.Shared)
	tagWord := img.Data.WordAt(int(rec.TagOff))
	require.NotZero(t, tagWord&arena.SharedBit)
	require.Equal(t, int32(3), tagWord&^arena.SharedBit)
}

func TestInheritFromSkipsSharedProperties(t *testing.T) {
	img := newTestImage(t)

	class, err := img.BeginObject(0)
	require.NoError(t, err)
	_, err = class.AddProperty(1, false, 10) // inherited: not shared
	require.NoError(t, err)
	_, err = class.AddProperty(2, true, 20) // not inherited: shared
	require.NoError(t, err)

	obj, err := img.BeginObject(class.HeaderOff)
	require.NoError(t, err)
	require.NoError(t, obj.InheritFrom(class.HeaderOff))

	require.Equal(t, int32(1), obj.NProperties())
	idx := obj.FindInherited(1)
	require.Equal(t, 0, idx)
	require.False(t, obj.Props[idx].Shared)
	require.Equal(t, int32(10), img.Data.WordAt(int(obj.Props[idx].ValueOff)))

	require.Equal(t, -1, obj.FindInherited(2))
}

func TestObjectBuilderSetValueOverridesInherited(t *testing.T) {
	img := newTestImage(t)

	class, err := img.BeginObject(0)
	require.NoError(t, err)
	_, err = class.AddProperty(5, false, 100)
	require.NoError(t, err)

	obj, err := img.BeginObject(class.HeaderOff)
	require.NoError(t, err)
	require.NoError(t, obj.InheritFrom(class.HeaderOff))

	idx := obj.FindInherited(5)
	require.Equal(t, 0, idx)
	obj.SetValue(idx, 999)
	require.Equal(t, int32(999), img.Data.WordAt(int(obj.Props[idx].ValueOff)))
}

func TestAllocArrayLayout(t *testing.T) {
	img := newTestImage(t)
	off, err := img.AllocArray([]int32{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, int32(3), img.Data.WordAt(int(off)-4))
	require.Equal(t, int32(1), img.Data.WordAt(int(off)))
	require.Equal(t, int32(2), img.Data.WordAt(int(off)+4))
	require.Equal(t, int32(3), img.Data.WordAt(int(off)+8))
}

func TestInternStringIsIdempotent(t *testing.T) {
	img := newTestImage(t)
	off1, isNew1, err := img.InternString("hello")
	require.NoError(t, err)
	require.True(t, isNew1)

	off2, isNew2, err := img.InternString("hello")
	require.NoError(t, err)
	require.False(t, isNew2)
	require.Equal(t, off1, off2)
}
