package g2p

import (
	"strings"

	"github.com/temporal-IPA/autopun/pkg/conversion"
	"github.com/temporal-IPA/autopun/pkg/phoneme"
)

// LexiconOptions control how a Lexicon matches words.
type LexiconOptions struct {
	// DiacriticInsensitive enables a second lookup pass on the
	// diacritic-free form of a word, so that "naive" finds an entry
	// recorded as "naïve" and the reverse.
	DiacriticInsensitive bool
}

// Lexicon is a Converter that pronounces the words it knows from a
// table of exceptions and delegates every other word to a fallback,
// typically the rule-based Transliterator. It fixes words the rules get
// wrong without touching the rule table.
//
// Entries hold exact (unsquashed) pronunciations, such as the output of
// a raw dictionary build. A Lexicon is filled with Set before use and
// is read-only afterwards.
type Lexicon struct {
	strict   map[string]phoneme.Stream
	tolerant map[string]phoneme.Stream
	fallback Converter
	options  LexiconOptions
}

// Ensure Lexicon implements Converter.
var _ Converter = (*Lexicon)(nil)

// NewLexicon returns an empty Lexicon in front of fallback.
func NewLexicon(fallback Converter, opts LexiconOptions) *Lexicon {
	return &Lexicon{
		strict:   make(map[string]phoneme.Stream),
		tolerant: make(map[string]phoneme.Stream),
		fallback: fallback,
		options:  opts,
	}
}

// Set records the pronunciation of word. When a word is recorded
// several times the first pronunciation is kept.
func (l *Lexicon) Set(word string, phones phoneme.Stream) {
	key := strictKey(word)
	if key == "" {
		return
	}
	if _, dup := l.strict[key]; !dup {
		l.strict[key] = phones
	}
	tk := tolerantKey(word)
	if _, dup := l.tolerant[tk]; !dup {
		l.tolerant[tk] = phones
	}
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int { return len(l.strict) }

// Lookup returns the recorded pronunciation of word. The strict pass
// compares lower-cased words; the tolerant pass, when enabled, also
// ignores diacritics.
func (l *Lexicon) Lookup(word string) (phoneme.Stream, bool) {
	if phones, ok := l.strict[strictKey(word)]; ok {
		return phones, true
	}
	if l.options.DiacriticInsensitive {
		if phones, ok := l.tolerant[tolerantKey(word)]; ok {
			return phones, true
		}
	}
	return "", false
}

// Word implements Converter.
func (l *Lexicon) Word(word string) phoneme.Stream {
	if phones, ok := l.Lookup(word); ok {
		return phones
	}
	return l.fallback.Word(word)
}

// Line implements Converter. Words are looked up one by one, so a
// phrase mixes recorded and rule-based pronunciations.
func (l *Lexicon) Line(text string) phoneme.Stream {
	return joinWords(l.Word, text)
}

func strictKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func tolerantKey(word string) string {
	return strictKey(conversion.FoldDiacritics(word))
}
