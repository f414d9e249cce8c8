package pun

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporal-IPA/autopun/pkg/g2p"
	"github.com/temporal-IPA/autopun/pkg/phoneme"
	"github.com/temporal-IPA/autopun/pkg/phono"
)

// fixedConv pronounces every line the same way.
type fixedConv struct{ line phoneme.Stream }

func (c fixedConv) Word(string) phoneme.Stream { return c.line }
func (c fixedConv) Line(string) phoneme.Stream { return c.line }

func index(pairs ...string) *phono.Index {
	ix := phono.NewIndex(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		ix.Add(pairs[i], phoneme.MustParse(pairs[i+1]))
	}
	return ix
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestHappyBirthday(t *testing.T) {
	conv := g2p.NewEnglish()
	ix := phono.FromWords(conv, "hub", "pip", "earth", "day", "happy", "birthday")
	s := New(ix, conv, WithRand(seeded(1)))

	assert.Equal(t, phoneme.MustParse("HH AE p p IY p UW TH t EY"), s.Target("Happy Birthday"))

	got, ok := s.Synthesize("Happy Birthday")
	require.True(t, ok)
	assert.Equal(t, "hub pip earth day", got)
}

func TestPunctuationOnlyHasNoResult(t *testing.T) {
	conv := g2p.NewEnglish()
	s := New(phono.FromWords(conv, "dot", "a"), conv)
	for _, u := range []string{"", "...", "?!", "   "} {
		got, ok := s.Synthesize(u)
		assert.False(t, ok, "utterance %q", u)
		assert.Empty(t, got)
	}
}

func TestExclusion(t *testing.T) {
	conv := g2p.NewEnglish()
	catPhones := phoneme.Squash(conv.Word("cat"))
	ix := phono.NewIndexFromEntries([]phono.Entry{
		{Word: "cat", Phones: catPhones},
		{Word: "Kat", Phones: catPhones},
	})
	s := New(ix, conv)

	got, ok := s.Synthesize("cat")
	require.True(t, ok)
	assert.Equal(t, "Kat", got)

	_, ok = s.Synthesize("CAT! kat")
	assert.False(t, ok, "both words appear in the utterance")

	only := New(phono.NewIndexFromEntries(ix.Entries()[:1]), conv)
	_, ok = only.Synthesize("Cat")
	assert.False(t, ok)
}

func TestExclusionSet(t *testing.T) {
	set := exclusionSet(`"Happy" birthday, to YOU!! 42 'Tis`)
	assert.Equal(t, map[string]struct{}{
		`"happy"`:   {},
		"happy":     {},
		"birthday,": {},
		"birthday":  {},
		"to":        {},
		"you!!":     {},
		"you":       {},
		"42":        {},
		"'tis":      {},
	}, set)
}

func TestExclusionKeepsApostrophes(t *testing.T) {
	conv := fixedConv{line: phoneme.MustParse("t IY s")}

	only := New(index("'tis", "t IY s"), conv)
	_, ok := only.Synthesize("'tis")
	assert.False(t, ok, "'tis appears in the utterance")
	_, ok = only.Synthesize("'Tis,")
	assert.False(t, ok)

	both := New(index("'tis", "t IY s", "tis", "t IY s"), conv)
	got, ok := both.Synthesize("'tis")
	require.True(t, ok)
	assert.Equal(t, "tis", got)
}

func TestWordsMayStraddleBoundaries(t *testing.T) {
	conv := g2p.NewEnglish()
	// One dictionary word spans both words of the utterance; "tee"
	// alone leads nowhere.
	ix := phono.FromWords(conv, "tee")
	ix.Add("teaday", phoneme.Squash(conv.Word("tea")+conv.Word("day")))
	s := New(ix, conv)

	got, ok := s.Synthesize("tea day")
	require.True(t, ok)
	assert.Equal(t, "teaday", got)
}

func TestOnlyViableTransitionsAreChosen(t *testing.T) {
	// From 0, "pt" leads to an offset nothing can leave.
	conv := fixedConv{line: phoneme.MustParse("p t k")}
	ix := index("pt", "p t", "p", "p", "tk", "t k")
	s := New(ix, conv)
	for seed := uint64(0); seed < 20; seed++ {
		got, ok := s.SynthesizeWith("x", seeded(seed))
		require.True(t, ok)
		assert.Equal(t, "p tk", got)
	}
}

func TestChoiceIsWeightedByCoverings(t *testing.T) {
	// Two coverings: "p t k" and "pt k".
	conv := fixedConv{line: phoneme.MustParse("p t k")}
	ix := index("p", "p", "pt", "p t", "t", "t", "k", "k")
	s := New(ix, conv)

	rng := seeded(42)
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		got, ok := s.SynthesizeWith("x", rng)
		require.True(t, ok)
		counts[got]++
	}
	require.Len(t, counts, 2)
	assert.InDelta(t, 500, counts["p t k"], 100)
	assert.InDelta(t, 500, counts["pt k"], 100)
}

func TestSeededRunsAreReproducible(t *testing.T) {
	conv := fixedConv{line: phoneme.MustParse("p t k p t k p t k")}
	ix := index("p", "p", "pt", "p t", "t", "t", "k", "k", "tk", "t k", "ptk", "p t k", "kp", "k p")
	s := New(ix, conv)

	for seed := uint64(0); seed < 10; seed++ {
		a, okA := s.SynthesizeWith("x", seeded(seed))
		b, okB := s.SynthesizeWith("x", seeded(seed))
		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, a, b)
	}

	// Same thing through WithRand.
	a, _ := New(ix, conv, WithRand(seeded(3))).Synthesize("x")
	b, _ := New(ix, conv, WithRand(seeded(3))).Synthesize("x")
	assert.Equal(t, a, b)
}

func TestMaxPhones(t *testing.T) {
	conv := fixedConv{line: phoneme.MustParse("p p p p")}
	ix := index("p", "p")

	_, ok := New(ix, conv, WithMaxPhones(3)).Synthesize("x")
	assert.False(t, ok)

	got, ok := New(ix, conv, WithMaxPhones(4)).Synthesize("x")
	require.True(t, ok)
	assert.Equal(t, "p p p p", got)

	_, ok = New(ix, conv, WithMaxPhones(0)).Synthesize("x")
	assert.True(t, ok)
}

func TestLongTargetSaturatesWeights(t *testing.T) {
	// The number of coverings of 300 "p" by "p" and "pp" is a Fibonacci
	// number far beyond math.MaxInt.
	target := phoneme.Stream(strings.Repeat(string(phoneme.MustParse("p")), 300))
	conv := fixedConv{line: target}
	ix := index("p", "p", "pp", "p p")

	got, ok := New(ix, conv, WithRand(seeded(9))).Synthesize("x")
	require.True(t, ok)
	assert.Equal(t, target, covering(t, ix, got))
}

func TestEmptyPhonesAreIgnored(t *testing.T) {
	conv := fixedConv{line: phoneme.MustParse("k")}
	ix := phono.NewIndexFromEntries([]phono.Entry{
		{Word: "silent", Phones: ""},
		{Word: "k", Phones: phoneme.MustParse("k")},
	})
	got, ok := New(ix, conv).Synthesize("x")
	require.True(t, ok)
	assert.Equal(t, "k", got)
}

// covering concatenates the dictionary pronunciations of the words of
// pun. Each word of the index has a single pronunciation.
func covering(t *testing.T, ix *phono.Index, pun string) phoneme.Stream {
	t.Helper()
	var b strings.Builder
	for _, w := range strings.Split(pun, " ") {
		phones := ix.Lookup(w)
		require.NotEmpty(t, phones, "word %q not in dictionary", w)
		b.WriteString(string(phoneme.Squash(phones[0])))
	}
	return phoneme.Stream(b.String())
}

// TestCoveringAndExclusionInvariants checks every result over random
// dictionary subsets and seeds.
func TestCoveringAndExclusionInvariants(t *testing.T) {
	conv := g2p.NewEnglish()
	pool := []string{
		"a", "at", "hat", "cat", "sat", "on", "the", "mat", "hub", "pip",
		"earth", "day", "tea", "pea", "happy", "birthday", "hap", "bird",
		"good", "morning", "more", "ning", "go", "odd", "in", "nun", "ma",
		"tom", "ate", "toe", "oh", "no", "knee", "sun", "day", "pay",
		"'tis", "tis", "'twas", "twas", "was", "this",
	}
	utterances := []string{
		"Happy Birthday",
		"the cat sat on the mat",
		"good morning",
		"Tomato",
		"'Tis the season",
		"'twas",
		"...",
	}

	found := 0
	for seed := uint64(0); seed < 50; seed++ {
		rng := seeded(seed)
		var words []string
		for _, w := range pool {
			if rng.IntN(10) < 7 {
				words = append(words, w)
			}
		}
		ix := phono.FromWords(conv, words...)
		s := New(ix, conv, WithRand(rng))

		for _, u := range utterances {
			got, ok := s.Synthesize(u)
			if !ok {
				continue
			}
			found++
			assert.Equal(t, s.Target(u), covering(t, ix, got), "utterance %q, pun %q", u, got)

			tokens := strings.Fields(strings.ToLower(u))
			for _, w := range strings.Split(got, " ") {
				assert.NotContains(t, tokens, strings.ToLower(w), "pun %q of %q reuses %q", got, u, w)
			}
		}
	}
	assert.Positive(t, found, "no utterance was ever covered")
}

func TestAddSat(t *testing.T) {
	assert.Equal(t, 5, addSat(2, 3))
	assert.Equal(t, math.MaxInt, addSat(math.MaxInt, 1))
	assert.Equal(t, math.MaxInt, addSat(math.MaxInt-1, 7))
}
