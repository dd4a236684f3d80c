package maincmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/internal/maincmd"
)

func TestValidateNoCommand(t *testing.T) {
	c := &maincmd.Cmd{}
	c.SetArgs(nil)
	c.SetFlags(map[string]bool{})
	require.Error(t, c.Validate())
}

func TestValidateUnknownCommand(t *testing.T) {
	c := &maincmd.Cmd{}
	c.SetArgs([]string{"bogus", "a.adv"})
	c.SetFlags(map[string]bool{})
	require.Error(t, c.Validate())
}

func TestValidateMissingFile(t *testing.T) {
	c := &maincmd.Cmd{}
	c.SetArgs([]string{"parse"})
	c.SetFlags(map[string]bool{})
	require.Error(t, c.Validate())
}

func TestValidateGrammarNeedsNoFile(t *testing.T) {
	c := &maincmd.Cmd{}
	c.SetArgs([]string{"grammar"})
	c.SetFlags(map[string]bool{})
	require.NoError(t, c.Validate())
}

func TestValidateDumpFlagRejectedOutsideCompile(t *testing.T) {
	c := &maincmd.Cmd{}
	c.SetArgs([]string{"parse", "a.adv"})
	c.SetFlags(map[string]bool{"dump-code": true})
	require.Error(t, c.Validate())
}

func TestTokenizeAndParseSmoke(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.adv")
	require.NoError(t, os.WriteFile(path, []byte("var x = 1;\ndef main() { return x; }\n"), 0o600))

	c := &maincmd.Cmd{}
	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

	require.NoError(t, c.Tokenize(context.Background(), stdio, []string{path}))
	require.Contains(t, buf.String(), "var")

	buf.Reset()
	require.NoError(t, c.Parse(context.Background(), stdio, []string{path}))
	require.Contains(t, buf.String(), "Program")

	buf.Reset()
	c2 := &maincmd.Cmd{DumpSymbols: true}
	require.NoError(t, c2.Compile(context.Background(), stdio, []string{path}))
	require.Contains(t, buf.String(), "x")
}
