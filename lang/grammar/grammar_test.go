package grammar_test

import (
	"os"
	"testing"

	"golang.org/x/exp/ebnf"
)

// TestEBNF checks that adv2.ebnf is well-formed and that every production
// reachable from Program is defined, mirroring the teacher's own grammar
// cross-check (lang/grammar/grammar_test.go).
func TestEBNF(t *testing.T) {
	f, err := os.Open("adv2.ebnf")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	g, err := ebnf.Parse("adv2.ebnf", f)
	if err != nil {
		t.Fatal(err)
	}
	if err := ebnf.Verify(g, "Program"); err != nil {
		t.Fatal(err)
	}
}
