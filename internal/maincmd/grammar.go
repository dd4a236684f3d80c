package maincmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mna/mainer"
	"golang.org/x/exp/ebnf"

	"github.com/advsys/advc/lang/grammar"
)

// Grammar prints adv2's EBNF grammar and verifies it parses and that every
// production reachable from Program is defined.
func (c *Cmd) Grammar(_ context.Context, stdio mainer.Stdio, _ []string) error {
	g, err := ebnf.Parse("adv2.ebnf", strings.NewReader(grammar.Source))
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	if err := ebnf.Verify(g, "Program"); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	fmt.Fprint(stdio.Stdout, grammar.Source)
	return nil
}
