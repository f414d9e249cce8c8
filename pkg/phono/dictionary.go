// Package phono holds the phonetic dictionary: an ordered list of
// (word, squashed pronunciation) pairs, the loaders that read it from
// disk and the builder that produces it from a plain word list.
package phono

import (
	"strings"

	"github.com/temporal-IPA/autopun/pkg/g2p"
	"github.com/temporal-IPA/autopun/pkg/phoneme"
)

// Entry is one dictionary word and its squashed pronunciation.
type Entry struct {
	Word   string
	Phones phoneme.Stream
}

// Index is an ordered collection of entries. The same word may appear
// several times; each occurrence is an alternative candidate. An Index
// is filled once and read-only afterwards, so concurrent readers need
// no locking.
type Index struct {
	entries []Entry
}

// NewIndex creates an empty Index with room for capacity entries.
func NewIndex(capacity int) *Index {
	return &Index{entries: make([]Entry, 0, capacity)}
}

// NewIndexFromEntries wraps entries, which must not be modified later.
func NewIndexFromEntries(entries []Entry) *Index {
	return &Index{entries: entries}
}

// Add appends an entry.
func (ix *Index) Add(word string, phones phoneme.Stream) {
	ix.entries = append(ix.entries, Entry{Word: word, Phones: phones})
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Entries returns the entries in insertion order. The slice is shared
// and must be treated as read-only.
func (ix *Index) Entries() []Entry {
	if ix == nil {
		return nil
	}
	return ix.entries
}

// Each calls fn for every entry in insertion order until fn returns
// false.
func (ix *Index) Each(fn func(Entry) bool) {
	for _, e := range ix.Entries() {
		if !fn(e) {
			return
		}
	}
}

// Lookup returns the pronunciations recorded for word, compared
// case-insensitively.
func (ix *Index) Lookup(word string) []phoneme.Stream {
	key := NormalizeString(word)
	var out []phoneme.Stream
	for _, e := range ix.Entries() {
		if NormalizeString(e.Word) == key {
			out = append(out, e.Phones)
		}
	}
	return out
}

// Transliterate builds the dictionary entry of word: its pronunciation
// according to conv, squashed.
func Transliterate(conv g2p.Converter, word string) Entry {
	return Entry{Word: word, Phones: phoneme.Squash(conv.Word(word))}
}

// FromWords builds an Index by transliterating every word.
func FromWords(conv g2p.Converter, words ...string) *Index {
	ix := NewIndex(len(words))
	for _, w := range words {
		e := Transliterate(conv, w)
		ix.Add(e.Word, e.Phones)
	}
	return ix
}

// NormalizeString is the func used to compare words.
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
