package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/scanner"
	"github.com/advsys/advc/lang/token"
)

func scanAll(t *testing.T, src string) []scanner.TokenAndValue {
	t.Helper()
	fset := token.NewFileSet()
	f := fset.AddFile("test.adv", -1, len(src))
	var el scanner.ErrorList
	var s scanner.Scanner
	s.Init(f, []byte(src), el.Add)
	var out []scanner.TokenAndValue
	var tv token.Value
	for {
		tok := s.Scan(&tv)
		out = append(out, scanner.TokenAndValue{Token: tok, Value: tv})
		if tok == token.EOF {
			break
		}
	}
	require.NoError(t, el.Err())
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, "x += 1 << 2; a && b || !c;")
	want := []token.Token{
		token.IDENT, token.PLUS_EQ, token.INT, token.LTLT, token.INT, token.SEMI,
		token.IDENT, token.ANDAND, token.IDENT, token.OROR, token.BANG, token.IDENT, token.SEMI,
		token.EOF,
	}
	got := make([]token.Token, len(toks))
	for i, tv := range toks {
		got[i] = tv.Token
	}
	require.Equal(t, want, got)
}

func TestScanIntegerLiterals(t *testing.T) {
	toks := scanAll(t, "10 0x1F 017 'a'")
	require.Equal(t, int32(10), toks[0].Value.Int)
	require.Equal(t, int32(31), toks[1].Value.Int)
	require.Equal(t, int32(15), toks[2].Value.Int)
	require.Equal(t, int32('a'), toks[3].Value.Int)
}

func TestScanStringLiteral(t *testing.T) {
	toks := scanAll(t, `"hello\nworld"`)
	require.Equal(t, token.STRING, toks[0].Token)
	require.Equal(t, "hello\nworld", toks[0].Value.String)
}

func TestScanKeywords(t *testing.T) {
	toks := scanAll(t, "object property method try catch shared byte")
	want := []token.Token{
		token.OBJECT, token.PROPERTY, token.METHOD, token.TRY, token.CATCH,
		token.SHARED, token.BYTE, token.EOF,
	}
	got := make([]token.Token, len(toks))
	for i, tv := range toks {
		got[i] = tv.Token
	}
	require.Equal(t, want, got)
}

func TestScanComments(t *testing.T) {
	toks := scanAll(t, "x /* a block\ncomment */ = 1; // trailing\n")
	require.Equal(t, token.IDENT, toks[0].Token)
	require.Equal(t, token.EQ, toks[1].Token)
	require.Equal(t, token.INT, toks[2].Token)
	require.Equal(t, token.SEMI, toks[3].Token)
	require.Equal(t, token.EOF, toks[4].Token)
}
