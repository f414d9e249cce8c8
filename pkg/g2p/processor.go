package g2p

import "github.com/temporal-IPA/autopun/pkg/phoneme"

// Converter is the minimal grapheme-to-phoneme contract used by the
// dictionary builder and the pun synthesizer.
//
// Implementations must be pure: the same input always yields the same
// stream, and they must be safe for concurrent use.
type Converter interface {
	// Word converts a single word. Characters that no rule knows are
	// skipped.
	Word(word string) phoneme.Stream

	// Line converts free text. Runs of characters other than letters and
	// apostrophes separate words; consecutive words are joined by one
	// pause.
	Line(text string) phoneme.Stream
}
