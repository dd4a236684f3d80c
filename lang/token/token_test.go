package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/advsys/advc/lang/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		lit  string
		want token.Token
	}{
		{"include", token.INCLUDE},
		{"object", token.OBJECT},
		{"shared", token.SHARED},
		{"noun", token.IDENT}, // word-type names are plain identifiers to the lexer
		{"banana", token.IDENT},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, token.LookupKeyword(tc.lit), tc.lit)
	}
}

func TestLookupWordType(t *testing.T) {
	cases := []struct {
		lit  string
		want token.WordType
	}{
		{"noun", token.WordNoun},
		{"verb", token.WordVerb},
		{"adjective", token.WordAdjective},
		{"preposition", token.WordPreposition},
		{"conjunction", token.WordConjunction},
		{"article", token.WordArticle},
		{"object", token.WordNone},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, token.LookupWordType(tc.lit), tc.lit)
	}
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "+=", token.PLUS_EQ.String())
	require.True(t, token.PLUS_EQ.IsCompoundAssign())
	require.False(t, token.PLUS.IsCompoundAssign())
}
