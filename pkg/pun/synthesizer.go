// Package pun builds puns: it re-spells an utterance as a sequence of
// dictionary words whose squashed pronunciations, laid end to end,
// sound exactly like the utterance.
package pun

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/temporal-IPA/autopun/pkg/g2p"
	"github.com/temporal-IPA/autopun/pkg/phoneme"
	"github.com/temporal-IPA/autopun/pkg/phono"
)

// DefaultMaxPhones bounds the length of the squashed utterance a
// Synthesizer accepts.
const DefaultMaxPhones = 1024

// Source draws the random numbers used to pick among coverings.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}

// globalSource uses the process-wide math/rand/v2 generator, which is
// safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithRand sets the default random source.
func WithRand(src Source) Option {
	return func(s *Synthesizer) {
		if src != nil {
			s.rng = src
		}
	}
}

// WithMaxPhones sets the longest squashed utterance, in codes, that is
// searched. Longer utterances have no result. n <= 0 removes the bound.
func WithMaxPhones(n int) Option {
	return func(s *Synthesizer) { s.maxPhones = n }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *zap.Logger) Option {
	return func(s *Synthesizer) {
		if l != nil {
			s.logger = l
		}
	}
}

// Synthesizer finds weighted-random coverings of utterances by
// dictionary words. It only reads its Index and Converter, so one
// Synthesizer may serve concurrent callers as long as its Source is
// safe for concurrent use; the default one is.
type Synthesizer struct {
	ix        *phono.Index
	conv      g2p.Converter
	rng       Source
	maxPhones int
	logger    *zap.Logger
}

// New returns a Synthesizer drawing words from ix and pronouncing
// utterances with conv. Entries of ix may hold exact or squashed
// pronunciations.
func New(ix *phono.Index, conv g2p.Converter, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		ix:        ix,
		conv:      conv,
		rng:       globalSource{},
		maxPhones: DefaultMaxPhones,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns a pun for utterance using the default random
// source. The boolean is false when no covering exists.
func (s *Synthesizer) Synthesize(utterance string) (string, bool) {
	return s.SynthesizeWith(utterance, s.rng)
}

// SynthesizeWith is like Synthesize but draws from rng.
//
// Every returned pun is a space-separated list of dictionary words
// whose pronunciations concatenate to Target(utterance), and none of
// them appears among the words of utterance.
func (s *Synthesizer) SynthesizeWith(utterance string, rng Source) (string, bool) {
	target := s.Target(utterance)
	if len(target) == 0 {
		return "", false
	}
	if s.maxPhones > 0 && len(target) > s.maxPhones {
		s.logger.Debug("utterance too long",
			zap.Int("phones", len(target)),
			zap.Int("max_phones", s.maxPhones))
		return "", false
	}

	excluded := exclusionSet(utterance)
	m := buildMemo(target, s.ix, excluded)
	if !m.resolve(rng) {
		s.logger.Debug("no covering", zap.String("target", target.String()))
		return "", false
	}
	return m.text(), true
}

// Target returns the squashed pronunciation of utterance with the
// pauses between words removed, so that dictionary words may straddle
// the original word boundaries.
func (s *Synthesizer) Target(utterance string) phoneme.Stream {
	return phoneme.Squash(phoneme.StripBoundaries(s.conv.Line(utterance)))
}

// exclusionSet returns the normalized whitespace-delimited tokens of
// utterance, both as written and with the surrounding characters that
// are neither letters nor apostrophes trimmed, so that "cat," also
// excludes "cat".
func exclusionSet(utterance string) map[string]struct{} {
	tokens := strings.Fields(utterance)
	set := make(map[string]struct{}, 2*len(tokens))
	for _, tok := range tokens {
		set[phono.NormalizeString(tok)] = struct{}{}
		trimmed := strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && r != '\''
		})
		if trimmed != "" {
			set[phono.NormalizeString(trimmed)] = struct{}{}
		}
	}
	return set
}
