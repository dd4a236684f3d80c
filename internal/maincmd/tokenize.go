package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/advsys/advc/lang/scanner"
	"github.com/advsys/advc/lang/token"
)

// Tokenize scans the one file named in args and prints the resulting
// tokens, one per line, in the form "file:line:col: TOKEN literal".
func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	fset := token.NewFileSet()
	toks, err := scanner.ScanFile(fset, args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	for _, tv := range toks {
		pos := fset.Position(tv.Value.Pos)
		fmt.Fprintf(stdio.Stdout, "%s: %s", pos, tv.Token)
		if tv.Value.Raw != "" {
			fmt.Fprintf(stdio.Stdout, " %s", tv.Value.Raw)
		}
		fmt.Fprintln(stdio.Stdout)
	}
	return nil
}
