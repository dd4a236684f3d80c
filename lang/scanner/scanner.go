// Package scanner tokenizes adv2 source files for the parser to consume,
// and owns the include-file stack (spec §4.1): each pushed file is a
// separate Scanner bound to its own *token.File, and the Lexer multiplexes
// between them, popping back to the enclosing file on EOF.
//
// Some of the low-level character scanning is adapted from the Go source
// code's own scanner:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.
package scanner

import (
	"fmt"
	"go/scanner"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/advsys/advc/lang/token"
)

type (
	// Error and ErrorList are reused from the standard library's go/scanner,
	// the same alias the teacher package uses, since they already provide
	// position-sorted, multi-error accumulation with a well-behaved Error()
	// string.
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

var PrintError = scanner.PrintError

// TokenAndValue combines the token type with its scanned value.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// Scanner tokenizes a single source file.
type Scanner struct {
	file *token.File
	src  []byte
	err  func(pos token.Position, msg string)

	cur  rune
	off  int
	roff int
}

// Init (re)initializes the scanner to tokenize src, which must be exactly
// file.Size() bytes.
func (s *Scanner) Init(file *token.File, src []byte, errHandler func(token.Position, string)) {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	s.file = file
	s.src = src
	s.err = errHandler
	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.advance()
}

func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		if s.cur == '\n' {
			s.file.AddLine(s.off)
		}
		s.cur = -1
		return
	}
	s.off = s.roff
	if s.cur == '\n' {
		s.file.AddLine(s.off)
	}
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.off, "illegal UTF-8 encoding")
		}
	}
	s.roff += w
	s.cur = r
}

func (s *Scanner) error(off int, msg string) {
	if s.err != nil {
		s.err(s.file.Position(s.file.Pos(off)), msg)
	}
}

func (s *Scanner) errorf(off int, format string, args ...any) {
	s.error(off, fmt.Sprintf(format, args...))
}

func (s *Scanner) advanceIf(b byte) bool {
	if s.cur == rune(b) {
		s.advance()
		return true
	}
	return false
}

// Scan returns the next token in the file, filling in tokVal with its raw
// text, position and (for INT/STRING) decoded value.
func (s *Scanner) Scan(tokVal *token.Value) (tok token.Token) {
	s.skipWhitespaceAndComments()

	pos := s.file.Pos(s.off)
	start := s.off

	switch cur := s.cur; {
	case isLetter(cur):
		lit := s.ident()
		tok = token.LookupKeyword(lit)
		*tokVal = token.Value{Raw: lit, Pos: pos}

	case cur == '\'':
		// character literal, e.g. 'a', yields an INT token (spec §6)
		tok = token.INT
		lit, v := s.charLit()
		*tokVal = token.Value{Raw: lit, Pos: pos, Int: v}

	case isDigit(cur):
		lit, v := s.number()
		tok = token.INT
		*tokVal = token.Value{Raw: lit, Pos: pos, Int: v}

	case cur == '"':
		tok = token.STRING
		lit, val := s.stringLit()
		*tokVal = token.Value{Raw: lit, Pos: pos, String: val}

	default:
		s.advance() // always make progress
		switch cur {
		case '+':
			tok = token.PLUS
			if s.advanceIf('+') {
				tok = token.INC
			} else if s.advanceIf('=') {
				tok = token.PLUS_EQ
			}
		case '-':
			tok = token.MINUS
			if s.advanceIf('-') {
				tok = token.DEC
			} else if s.advanceIf('=') {
				tok = token.MINUS_EQ
			}
		case '*':
			tok = token.STAR
			if s.advanceIf('=') {
				tok = token.STAR_EQ
			}
		case '/':
			tok = token.SLASH
			if s.advanceIf('=') {
				tok = token.SLASH_EQ
			}
		case '%':
			tok = token.PERCENT
			if s.advanceIf('=') {
				tok = token.PERCENT_EQ
			}
		case '^':
			tok = token.CIRCUMFLEX
			if s.advanceIf('=') {
				tok = token.CIRCUMFLEX_EQ
			}
		case '~':
			tok = token.TILDE
		case '!':
			tok = token.BANG
			if s.advanceIf('=') {
				tok = token.NEQ
			}
		case '&':
			tok = token.AMPERSAND
			if s.advanceIf('&') {
				tok = token.ANDAND
			} else if s.advanceIf('=') {
				tok = token.AMP_EQ
			}
		case '|':
			tok = token.PIPE
			if s.advanceIf('|') {
				tok = token.OROR
			} else if s.advanceIf('=') {
				tok = token.PIPE_EQ
			}
		case '<':
			tok = token.LT
			if s.advanceIf('<') {
				tok = token.LTLT
				if s.advanceIf('=') {
					tok = token.LTLT_EQ
				}
			} else if s.advanceIf('=') {
				tok = token.LE
			}
		case '>':
			tok = token.GT
			if s.advanceIf('>') {
				tok = token.GTGT
				if s.advanceIf('=') {
					tok = token.GTGT_EQ
				}
			} else if s.advanceIf('=') {
				tok = token.GE
			}
		case '=':
			tok = token.EQ
			if s.advanceIf('=') {
				tok = token.EQEQ
			}
		case '.':
			tok = token.DOT
		case ',':
			tok = token.COMMA
		case ';':
			tok = token.SEMI
		case ':':
			tok = token.COLON
		case '?':
			tok = token.QUESTION
		case '#':
			tok = token.HASH
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		case -1:
			tok = token.EOF
		default:
			s.errorf(start, "unexpected character %#U", cur)
			tok = token.ILLEGAL
		}
		*tokVal = token.Value{Raw: string(s.src[start:s.off]), Pos: pos}
	}
	return tok
}

func (s *Scanner) ident() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

// skipWhitespaceAndComments consumes whitespace, "// line" comments and
// "/* block */" comments (spec §6). An unterminated block comment is a
// fatal lex error.
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case isWhitespace(s.cur):
			s.advance()
		case s.cur == '/' && s.peek() == '/':
			for s.cur != '\n' && s.cur != -1 {
				s.advance()
			}
		case s.cur == '/' && s.peek() == '*':
			start := s.off
			s.advance()
			s.advance()
			closed := false
			for s.cur != -1 {
				if s.cur == '*' && s.peek() == '/' {
					s.advance()
					s.advance()
					closed = true
					break
				}
				s.advance()
			}
			if !closed {
				s.error(start, "unterminated block comment")
			}
		default:
			return
		}
	}
}

func isWhitespace(rn rune) bool {
	return rn == ' ' || rn == '\t' || rn == '\n' || rn == '\r'
}

func isLetter(rn rune) bool {
	return 'a' <= rn && rn <= 'z' ||
		'A' <= rn && rn <= 'Z' ||
		rn == '_' ||
		rn >= utf8.RuneSelf && unicode.IsLetter(rn)
}

func isDigit(rn rune) bool {
	return '0' <= rn && rn <= '9'
}

// ScanFile reads and tokenizes a single file, appending it to fset, for use
// by the `tokenize` CLI command (spec §6).
func ScanFile(fset *token.FileSet, path string) ([]TokenAndValue, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := fset.AddFile(filepath.Clean(path), -1, len(b))
	var el ErrorList
	var s Scanner
	s.Init(f, b, el.Add)
	var toks []TokenAndValue
	var tv token.Value
	for {
		tok := s.Scan(&tv)
		toks = append(toks, TokenAndValue{Token: tok, Value: tv})
		if tok == token.EOF {
			break
		}
	}
	el.Sort()
	return toks, el.Err()
}
