package symtab

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/advsys/advc/lang/token"
)

// VocabWord is one (type, string) vocabulary entry (spec §3 "Vocabulary
// word"), in declaration order, ready to be emitted as the post-compile
// vocabulary table (spec §6).
type VocabWord struct {
	Type token.WordType
	Str  string
}

// VocabTable tracks every declared vocabulary word, globally unique by
// string (spec §3, §8 "Vocabulary uniqueness").
type VocabTable struct {
	byWord *swiss.Map[string, token.WordType]
	words  []VocabWord
}

// NewVocabTable creates an empty vocabulary table.
func NewVocabTable() *VocabTable {
	return &VocabTable{byWord: swiss.NewMap[string, token.WordType](64)}
}

// Add declares word as belonging to wordType. Re-declaring an existing
// word with a different type is a compile error (spec §3, §7).
func (t *VocabTable) Add(wordType token.WordType, word string) error {
	if existing, ok := t.byWord.Get(word); ok {
		if existing != wordType {
			return fmt.Errorf("word %q redeclared as %s, previously %s", word, wordType, existing)
		}
		return nil
	}
	t.byWord.Put(word, wordType)
	t.words = append(t.words, VocabWord{Type: wordType, Str: word})
	return nil
}

// Words returns every declared vocabulary word in declaration order.
func (t *VocabTable) Words() []VocabWord { return t.words }
