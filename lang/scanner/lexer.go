package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/advsys/advc/lang/token"
)

// frame is one entry in the include stack: an open source file and the
// Scanner tokenizing it.
type frame struct {
	path string
	file *token.File
	sc   Scanner
}

// Lexer multiplexes token requests over a LIFO stack of included source
// files (spec §4.1): PushFile opens and pushes a new file; reaching EOF in
// any non-root frame transparently pops back to the enclosing file; EOF at
// the root frame is end-of-input. It also implements the one-token
// pushback the parser's recursive-descent needs.
type Lexer struct {
	fset    *token.FileSet
	stack   []*frame
	pending *pendingTok // non-nil if a token was pushed back

	// errFn receives lex errors as they occur; advc treats lex errors as
	// fatal (spec §7), and the errFn ParseProgram installs aborts the parse
	// instead of returning.
	errFn func(token.Position, string)
}

type pendingTok struct {
	tok token.Token
	val token.Value
}

// NewLexer creates a Lexer over the given FileSet, reporting lex errors
// through errFn.
func NewLexer(fset *token.FileSet, errFn func(token.Position, string)) *Lexer {
	return &Lexer{fset: fset, errFn: errFn}
}

// PushFile opens path, relative to the current working directory for the
// root file or to the including file's directory for nested includes
// (spec §6 "nested includes relative to their including file is
// acceptable"), and pushes it onto the include stack. A missing file is
// reported as a fatal I/O error by the caller (spec §4.1, §7).
func (l *Lexer) PushFile(path string) error {
	resolved := path
	if len(l.stack) > 0 && !filepath.IsAbs(path) {
		resolved = filepath.Join(filepath.Dir(l.stack[len(l.stack)-1].path), path)
	}
	b, err := os.ReadFile(resolved)
	if err != nil {
		// fall back to a path relative to the process cwd, so that a root
		// file opened from a subdirectory can still include siblings by the
		// name given on the command line.
		if resolved != path {
			b, err = os.ReadFile(path)
			resolved = path
		}
	}
	if err != nil {
		return fmt.Errorf("include file not found: %s", path)
	}

	f := l.fset.AddFile(resolved, -1, len(b))
	fr := &frame{path: resolved, file: f}
	fr.sc.Init(f, b, l.errFn)
	l.stack = append(l.stack, fr)
	return nil
}

// Depth returns the current include-stack depth (0 means nothing pushed).
func (l *Lexer) Depth() int { return len(l.stack) }

// top returns the innermost active frame, or nil if the stack is empty.
func (l *Lexer) top() *frame {
	if len(l.stack) == 0 {
		return nil
	}
	return l.stack[len(l.stack)-1]
}

// Scan returns the next token, transparently popping finished include
// frames. At the outermost EOF, it keeps returning token.EOF.
func (l *Lexer) Scan() (token.Token, token.Value) {
	if l.pending != nil {
		p := l.pending
		l.pending = nil
		return p.tok, p.val
	}

	for {
		fr := l.top()
		if fr == nil {
			return token.EOF, token.Value{}
		}
		var tv token.Value
		tok := fr.sc.Scan(&tv)
		if tok == token.EOF && len(l.stack) > 1 {
			l.stack = l.stack[:len(l.stack)-1]
			continue
		}
		return tok, tv
	}
}

// Unscan pushes back a single token, which the next Scan call will return.
// Only one token of pushback is supported at a time (spec §4.1).
func (l *Lexer) Unscan(tok token.Token, val token.Value) {
	l.pending = &pendingTok{tok: tok, val: val}
}

// File returns the token.File owning the current innermost frame, or nil
// if nothing is open.
func (l *Lexer) File() *token.File {
	if fr := l.top(); fr != nil {
		return fr.file
	}
	return nil
}

// Position resolves a Pos to a human-readable source location via the
// shared FileSet.
func (l *Lexer) Position(p token.Pos) token.Position {
	return l.fset.Position(p)
}
