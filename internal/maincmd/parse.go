package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/advsys/advc/lang/ast"
	"github.com/advsys/advc/lang/nativeasm"
	"github.com/advsys/advc/lang/parser"
)

// Parse parses the one file named in args and prints the resulting
// abstract syntax tree.
func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
	lim, err := arenaLimits()
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	res, err := parser.ParseProgram(args[0], lim, nativeasm.Stub{})
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	if err := ast.Fprint(stdio.Stdout, res.Program); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}
