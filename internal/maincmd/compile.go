package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/advsys/advc/lang/compiler"
	"github.com/advsys/advc/lang/nativeasm"
	"github.com/advsys/advc/lang/parser"
)

// Compile runs the full pipeline (parse, codegen, fixup resolution) over
// the one file named in args, optionally disassembling the generated code
// and/or dumping the resolved global symbol table (spec §4's four
// compilation passes, "SUPPLEMENTED FROM original_source/"'s -s/-d dump
// flags).
func (c *Cmd) Compile(_ context.Context, stdio mainer.Stdio, args []string) error {
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

	if err := compiler.CompileProgram(res.FileSet, res.Image, res.Globals, res.Props, res.Program); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	if c.DumpSymbols {
		for _, g := range res.Globals.All() {
			fmt.Fprintf(stdio.Stdout, "%-20s %-10s value=%d defined=%v\n", g.Name, g.Class, g.Value, g.Defined)
		}
	}

	if c.DumpCode {
		if err := compiler.Disassemble(stdio.Stdout, res.Image.Code, 0, res.Image.Code.Len()); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
	}

	return nil
}
