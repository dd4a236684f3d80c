package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/arena"
	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/compiler"
	"github.com/advsys/advc/lang/nativeasm"
	"github.com/advsys/advc/lang/parser"
)

func parseSource(t *testing.T, src string) *parser.Result {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.adv")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	res, err := parser.ParseProgram(path, arena.DefaultLimits, nativeasm.Stub{})
	require.NoError(t, err)
	return res
}

func parseSourceErr(t *testing.T, src string) error {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.adv")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	_, err := parser.ParseProgram(path, arena.DefaultLimits, nativeasm.Stub{})
	return err
}

func firstIntegerLit(n ast.Node) (*ast.IntegerLit, bool) {
	var found *ast.IntegerLit
	ast.Inspect(n, func(node ast.Node) bool {
		if found != nil {
			return false
		}
		if lit, ok := node.(*ast.IntegerLit); ok {
			found = lit
			return false
		}
		return true
	})
	return found, found != nil
}

func TestConstantFoldingArithmetic(t *testing.T) {
	res := parseSource(t, `
def main() {
	return 2 + 3 * 4;
}
`)
	require.Len(t, res.Program.Functions, 1)
	lit, ok := firstIntegerLit(res.Program.Functions[0].Body)
	require.True(t, ok)
	require.Equal(t, int32(14), lit.Value)
}

func TestConstantFoldingUnaryAndBitwise(t *testing.T) {
	res := parseSource(t, `
def main() {
	return -(1 << 3) & ~1;
}
`)
	lit, ok := firstIntegerLit(res.Program.Functions[0].Body)
	require.True(t, ok)
	require.Equal(t, int32(-8)&^1, lit.Value)
}

func TestConstantFoldingComparison(t *testing.T) {
	res := parseSource(t, `
def main() {
	return 3 > 1;
}
`)
	lit, ok := firstIntegerLit(res.Program.Functions[0].Body)
	require.True(t, ok)
	require.Equal(t, int32(1), lit.Value)
}

func TestNestedArrayPlacement(t *testing.T) {
	res := parseSource(t, `
var tree[] = { 1, { 2, 3 }, 4 };
`)
	g, ok := res.Globals.Find("tree")
	require.True(t, ok)
	require.True(t, g.Defined)

	require.Equal(t, int32(3), res.Image.Data.WordAt(int(g.Value)-4))
	require.Equal(t, int32(1), res.Image.Data.WordAt(int(g.Value)))
	require.Equal(t, int32(4), res.Image.Data.WordAt(int(g.Value)+8))

	childOff := res.Image.Data.WordAt(int(g.Value) + 4)
	require.Equal(t, int32(2), res.Image.Data.WordAt(int(childOff)-4))
	require.Equal(t, int32(2), res.Image.Data.WordAt(int(childOff)))
	require.Equal(t, int32(3), res.Image.Data.WordAt(int(childOff)+4))
}

func TestForwardFunctionReferenceInArray(t *testing.T) {
	res := parseSource(t, `
var fns[] = { helper };

def helper() {
	return 1;
}
`)
	err := compiler.CompileProgram(res.FileSet, res.Image, res.Globals, res.Props, res.Program)
	require.NoError(t, err)

	g, ok := res.Globals.Find("fns")
	require.True(t, ok)
	require.True(t, g.Defined)

	helper, ok := res.Globals.Find("helper")
	require.True(t, ok)
	require.True(t, helper.Defined)

	require.Equal(t, helper.Value, res.Image.Data.WordAt(int(g.Value)))
}

// objectProperty reads back the tag and value words of the first property
// record on the object named objName (the test objects below all declare
// exactly one of their own properties).
func objectProperty(res *parser.Result, objName string) (tag, value int32, ok bool) {
	g, found := res.Globals.Find(objName)
	if !found {
		return 0, 0, false
	}
	nProps := res.Image.Data.WordAt(int(g.Value) + 4)
	if nProps == 0 {
		return 0, 0, false
	}
	base := int(g.Value) + 8
	return res.Image.Data.WordAt(base), res.Image.Data.WordAt(base + 4), true
}

func TestObjectOverrideNonSharedPropertyWithScalar(t *testing.T) {
	res := parseSource(t, `
object Kitchen {
	plainProp: 2;
}

Kitchen Thing {
	plainProp: 9;
}
`)
	_, value, ok := objectProperty(res, "Thing")
	require.True(t, ok)
	require.Equal(t, int32(9), value)
}

// A shared property's storage lives on the class, not the object (spec
// §4.3 step 2): InheritFrom never copies it into a subclass, so the only
// way a later binding in the same property list lands on an existing
// Props entry with Shared set is redeclaring it within the very same
// object body.
func TestObjectRedeclareSharedPropertyWithScalarIsError(t *testing.T) {
	err := parseSourceErr(t, `
object Thing {
	shared sharedProp: 1;
	sharedProp: 9;
}
`)
	require.Error(t, err)
}

func TestObjectOverrideNonSharedPropertyWithMethod(t *testing.T) {
	res := parseSource(t, `
def helper() {
	return 0;
}

object Kitchen {
	plainProp: 2;
}

Kitchen Thing {
	plainProp: method() {
		return 1;
	};
}
`)
	err := compiler.CompileProgram(res.FileSet, res.Image, res.Globals, res.Props, res.Program)
	require.NoError(t, err)

	_, value, ok := objectProperty(res, "Thing")
	require.True(t, ok)
	require.NotZero(t, value)
}

func TestObjectRedeclareSharedPropertyWithMethodIsError(t *testing.T) {
	err := parseSourceErr(t, `
object Thing {
	shared sharedProp: method() {
		return 1;
	};
	sharedProp: method() {
		return 2;
	};
}
`)
	require.Error(t, err)
}

func TestObjectOverrideNonSharedPropertyWithNestedArray(t *testing.T) {
	res := parseSource(t, `
object Kitchen {
	plainProp: 0;
}

Kitchen Thing {
	plainProp: { 10, 20 };
}
`)
	_, value, ok := objectProperty(res, "Thing")
	require.True(t, ok)

	arrayOff := value
	require.Equal(t, int32(2), res.Image.Data.WordAt(int(arrayOff)-4))
	require.Equal(t, int32(10), res.Image.Data.WordAt(int(arrayOff)))
	require.Equal(t, int32(20), res.Image.Data.WordAt(int(arrayOff)+4))
}

func TestObjectRedeclareSharedPropertyWithNestedArrayIsError(t *testing.T) {
	err := parseSourceErr(t, `
object Thing {
	shared sharedProp: 1;
	sharedProp: { 10, 20 };
}
`)
	require.Error(t, err)
}

func TestObjectNewNestedArrayProperty(t *testing.T) {
	res := parseSource(t, `
object Thing {
	items: { 5, 6, 7 };
}
`)
	_, value, ok := objectProperty(res, "Thing")
	require.True(t, ok)

	require.Equal(t, int32(3), res.Image.Data.WordAt(int(value)-4))
	require.Equal(t, int32(5), res.Image.Data.WordAt(int(value)))
	require.Equal(t, int32(6), res.Image.Data.WordAt(int(value)+4))
	require.Equal(t, int32(7), res.Image.Data.WordAt(int(value)+8))
}

// A nested array bound to a property that isn't the object's last one
// must not disturb the property table that follows it: the array is
// placed after the whole object finishes, and only the array's eventual
// offset is patched into the property's own value word.
func TestObjectNestedArrayPropertyFollowedByAnotherProperty(t *testing.T) {
	res := parseSource(t, `
object Thing {
	items: { 5, 6, 7 };
	other: 42;
}
`)
	g, ok := res.Globals.Find("Thing")
	require.True(t, ok)

	nProps := res.Image.Data.WordAt(int(g.Value) + 4)
	require.Equal(t, int32(2), nProps)

	itemsValueOff := res.Image.Data.WordAt(int(g.Value) + 8 + 4)
	require.Equal(t, int32(3), res.Image.Data.WordAt(int(itemsValueOff)-4))
	require.Equal(t, int32(5), res.Image.Data.WordAt(int(itemsValueOff)))
	require.Equal(t, int32(6), res.Image.Data.WordAt(int(itemsValueOff)+4))
	require.Equal(t, int32(7), res.Image.Data.WordAt(int(itemsValueOff)+8))

	otherValueOff := res.Image.Data.WordAt(int(g.Value) + 8 + 8 + 4)
	require.Equal(t, int32(42), otherValueOff)
}
