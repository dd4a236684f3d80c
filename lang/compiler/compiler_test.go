package compiler_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/arena"
	"github.com/advsys/advc/lang/compiler"
	"github.com/advsys/advc/lang/nativeasm"
	"github.com/advsys/advc/lang/parser"
)

func parseAndCompile(t *testing.T, src string) *parser.Result {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.adv")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	res, err := parser.ParseProgram(path, arena.DefaultLimits, nativeasm.Stub{})
	require.NoError(t, err)

	err = compiler.CompileProgram(res.FileSet, res.Image, res.Globals, res.Props, res.Program)
	require.NoError(t, err)
	return res
}

func TestCompileSimpleFunction(t *testing.T) {
	res := parseAndCompile(t, `
var count = 0;

def main() {
	var i = 0;
	i = i + 1;
	if (i > 0) {
		return i;
	}
	return 0;
}
`)

	g, ok := res.Globals.Find("main")
	require.True(t, ok)
	require.True(t, g.Defined)

	var buf bytes.Buffer
	require.NoError(t, compiler.Disassemble(&buf, res.Image.Code, 0, res.Image.Code.Len()))
	require.Contains(t, buf.String(), "reserve")
	require.Contains(t, buf.String(), "return")
}

func TestCompileLoopsAndControlFlow(t *testing.T) {
	res := parseAndCompile(t, `
def main() {
	var i;
	i = 0;
	while (i < 10) {
		i = i + 1;
		if (i == 5) {
			continue;
		}
		if (i == 9) {
			break;
		}
	}
	for (i = 0; i < 3; i = i + 1) {
	}
	do {
		i = i - 1;
	} while (i > 0);
	return i;
}
`)
	g, ok := res.Globals.Find("main")
	require.True(t, ok)
	require.True(t, g.Defined)
}

func TestCompileForwardObjectReference(t *testing.T) {
	res := parseAndCompile(t, `
def main() {
	return Kitchen;
}

object Kitchen {
}
`)
	err := compiler.ResolveProgram(res.Image, res.Globals)
	require.NoError(t, err)
}

func TestCompileUndefinedObjectIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.adv")
	require.NoError(t, os.WriteFile(path, []byte(`
def main() {
	return Missing;
}
`), 0o600))

	res, err := parser.ParseProgram(path, arena.DefaultLimits, nativeasm.Stub{})
	require.NoError(t, err)

	err = compiler.CompileProgram(res.FileSet, res.Image, res.Globals, res.Props, res.Program)
	require.Error(t, err)

	err = compiler.ResolveProgram(res.Image, res.Globals)
	require.Error(t, err)
}

func TestCompilePrintAndTryCatch(t *testing.T) {
	res := parseAndCompile(t, `
def main() {
	try {
		throw 1;
	} catch (e) {
		print #"caught ", e;
	}
	println "done";
	return 0;
}
`)
	g, ok := res.Globals.Find("main")
	require.True(t, ok)
	require.True(t, g.Defined)

	var buf bytes.Buffer
	require.NoError(t, compiler.Disassemble(&buf, res.Image.Code, 0, res.Image.Code.Len()))
	require.Contains(t, buf.String(), "trypush")
	require.Contains(t, buf.String(), "trapstr")
}

func TestCompileIncDecAndAssignOps(t *testing.T) {
	res := parseAndCompile(t, `
var g = 0;

def main() {
	var i = 0;
	i++;
	++i;
	i--;
	--i;
	g += 1;
	i = g;
	return i;
}
`)
	g, ok := res.Globals.Find("main")
	require.True(t, ok)
	require.True(t, g.Defined)
}
