// Package grammar embeds and verifies adv2's EBNF grammar (spec §4.2),
// following the teacher's lang/grammar package: the grammar itself is a
// checked-in .ebnf file, cross-checked against golang.org/x/exp/ebnf in
// grammar_test.go, and made available at runtime for the `grammar` CLI
// command's dump/verify mode.
package grammar

import _ "embed"

//go:embed adv2.ebnf
var Source string
