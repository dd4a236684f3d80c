package parser

import (
	"fmt"

	"github.com/advsys/advc/lang/token"
)

// CompileError is the single error type the parser and compiler ever
// return: adv2, like its C ancestor, aborts at the first error instead of
// recovering and continuing (spec "Error Handling Design" — the original
// compiler longjmps out of the parse on the first diagnostic; advc models
// that as a single non-local error value rather than a scanner.ErrorList).
type CompileError struct {
	Pos token.Position
	Msg string
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

// fatal is the internal panic value thrown by (*parser).errorf and
// recovered at the single entry point in ParseProgram, unwinding the
// entire recursive-descent call stack in one step, matching the reference
// compiler's setjmp/longjmp abort.
type fatal struct{ err *CompileError }
