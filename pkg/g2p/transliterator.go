// Package g2p converts English spelling into phoneme streams using an
// ordered table of context-sensitive letter-to-sound rules.
package g2p

import (
	"strings"
	"unicode"

	"github.com/temporal-IPA/autopun/pkg/conversion"
	"github.com/temporal-IPA/autopun/pkg/phoneme"
)

// Transliterator applies a RuleTable to text. It holds no mutable
// state and is safe for concurrent use.
type Transliterator struct {
	rules *RuleTable
}

// Ensure Transliterator implements Converter.
var _ Converter = (*Transliterator)(nil)

// NewTransliterator returns a Transliterator bound to rules.
func NewTransliterator(rules *RuleTable) *Transliterator {
	return &Transliterator{rules: rules}
}

// NewEnglish returns a Transliterator bound to the English rule table.
func NewEnglish() *Transliterator {
	return NewTransliterator(English())
}

// Word converts a single word into a phoneme stream.
//
// The word is folded to unaccented upper case and padded with one space
// on each side. Scanning starts right after the left pad; at each
// position the rules of the current character's group are tried in
// order and the first match emits its phones and consumes its span.
// When nothing matches, the position advances by one character, so
// every iteration makes progress and Word terminates on any input. The
// pause produced by the right pad is dropped.
func (t *Transliterator) Word(word string) phoneme.Stream {
	padded := " " + strings.ToUpper(conversion.FoldDiacritics(word)) + " "

	var out strings.Builder
	out.Grow(len(padded))
	pos := 1
	for pos < len(padded) {
		advance := 1
		for i := range t.rules.groups[padded[pos]] {
			r := &t.rules.groups[padded[pos]][i]
			if r.matches(padded, pos) {
				out.WriteString(string(r.phones))
				advance = len(r.match)
				break
			}
		}
		pos += advance
	}

	s := out.String()
	if n := len(s); n > 0 && phoneme.Code(s[n-1]) == phoneme.Boundary {
		s = s[:n-1]
	}
	return phoneme.Stream(s)
}

// Line converts free text word by word, joining consecutive words with
// one pause. Characters other than letters and apostrophes only
// separate words.
func (t *Transliterator) Line(text string) phoneme.Stream {
	return joinWords(t.Word, text)
}

// joinWords pronounces the words of text with word and joins the
// non-empty results with one pause.
func joinWords(word func(string) phoneme.Stream, text string) phoneme.Stream {
	var out strings.Builder
	for _, w := range Words(text) {
		phones := word(w)
		if len(phones) == 0 {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte(byte(phoneme.Boundary))
		}
		out.WriteString(string(phones))
	}
	return phoneme.Stream(out.String())
}

// Words splits text into runs of letters and apostrophes.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
