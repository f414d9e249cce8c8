package phono

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporal-IPA/autopun/pkg/g2p"
	"github.com/temporal-IPA/autopun/pkg/phoneme"
)

func TestParsePhonesTxtLine(t *testing.T) {
	word, phones, err := parsePhonesTxtLine("cat " + string(phoneme.MustParse("k AE t")))
	require.NoError(t, err)
	assert.Equal(t, "cat", word)
	assert.Equal(t, phoneme.MustParse("k AE t"), phones)

	// Codes include '#' (EY); it is data, never a comment.
	word, phones, err = parsePhonesTxtLine("day 4#")
	require.NoError(t, err)
	assert.Equal(t, "day", word)
	assert.Equal(t, phoneme.MustParse("d EY"), phones)
}

func TestParsePhonesTxtLineRejectsMalformed(t *testing.T) {
	for _, line := range []string{
		"cat",
		"cat 4# extra",
		"cat  4#",
		" 4#",
		"cat ~~",
	} {
		_, _, err := parsePhonesTxtLine(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestLoadReaderFailsOnWholeFile(t *testing.T) {
	content := "cat 4#\ndog\nday 4#\n"
	_, err := LoadReader(strings.NewReader(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadReaderKeepsOrderAndDuplicates(t *testing.T) {
	content := "read 9!4\r\n\nread 9#4\nRed 9#4\n"
	ix, err := LoadReader(strings.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, 3, ix.Len())

	entries := ix.Entries()
	assert.Equal(t, "read", entries[0].Word)
	assert.Equal(t, phoneme.Stream("9!4"), entries[0].Phones)
	assert.Equal(t, "Red", entries[2].Word)
	assert.Len(t, ix.Lookup("READ"), 2)
	assert.Len(t, ix.Lookup("red"), 1)
}

func TestSniff(t *testing.T) {
	assert.True(t, sniffPhonesTxt([]byte("cat 4#\ndog 4$\n"), true))
	assert.False(t, sniffPhonesTxt([]byte("cat\tk AE t\n"), true))
	assert.False(t, sniffPhonesTxt(nil, true))

	var buf bytes.Buffer
	require.NoError(t, WriteGob(&buf, NewIndex(0)))
	assert.Equal(t, KindGOB, selectLoader(buf.Bytes(), true).Kind())
	assert.Equal(t, KindPhonesTxt, selectLoader([]byte("cat 4#\n"), true).Kind())
}

func TestGobRoundTrip(t *testing.T) {
	src := FromWords(g2p.NewEnglish(), "happy", "birthday", "happy")

	var buf bytes.Buffer
	require.NoError(t, WriteGob(&buf, src))

	got, err := LoadReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Entries(), got.Entries())
}

func TestGobRejectsCorruptedPhones(t *testing.T) {
	var buf bytes.Buffer
	bad := NewIndexFromEntries([]Entry{{Word: "x", Phones: "~"}})
	require.NoError(t, WriteGob(&buf, bad))

	_, err := LoadReader(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0")
}

func TestLoadPathsConcatenatesInOrder(t *testing.T) {
	conv := g2p.NewEnglish()
	var gobBuf bytes.Buffer
	require.NoError(t, WriteGob(&gobBuf, FromWords(conv, "day")))

	var txt bytes.Buffer
	require.NoError(t, WritePhonesTxt(&txt, FromWords(conv, "cat", "dog").Entries()))

	fsys := fstest.MapFS{
		"a.txt": {Data: txt.Bytes()},
		"b.gob": {Data: gobBuf.Bytes()},
	}
	ix, err := LoadPaths(context.Background(), fsys, "a.txt", " ", "b.gob")
	require.NoError(t, err)

	var words []string
	for _, e := range ix.Entries() {
		words = append(words, e.Word)
	}
	assert.Equal(t, []string{"cat", "dog", "day"}, words)

	_, err = LoadPaths(context.Background(), fsys, "a.txt", "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestLoadBlobs(t *testing.T) {
	ix, err := LoadBlobs([]byte("cat 4#\n"), nil, []byte("dog 4$\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Len())
}

func TestLazyLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	lazy := NewLazy(func() (*Index, error) {
		calls.Add(1)
		return FromWords(g2p.NewEnglish(), "cat"), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ix, err := lazy.Get()
			assert.NoError(t, err)
			assert.Equal(t, 1, ix.Len())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestRegisterLoader(t *testing.T) {
	saved := builtinLoaders
	t.Cleanup(func() { builtinLoaders = saved })

	csv := NewLineLoader(Kind("csv"),
		func(sniff []byte, isEOF bool) bool { return bytes.HasPrefix(sniff, []byte("word,")) },
		func(line string) (string, phoneme.Stream, error) {
			word, mnemonics, ok := strings.Cut(line, ",")
			if !ok || word == "word" {
				return "", "", nil
			}
			phones, err := phoneme.Parse(mnemonics)
			return word, phones, err
		})
	RegisterLoader(nil)
	require.Len(t, builtinLoaders, len(saved))
	RegisterLoader(csv)

	src := "word,phones\ncat,k AE t\n"
	assert.Equal(t, csv, selectLoader([]byte(src), true))
	ix, err := LoadReader(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []phoneme.Stream{phoneme.MustParse("k AE t")}, ix.Lookup("cat"))
}

func TestReadyServesTheGivenIndex(t *testing.T) {
	ix := NewIndex(1)
	ix.Add("cat", phoneme.MustParse("k AE t"))
	got, err := Ready(ix).Get()
	require.NoError(t, err)
	assert.Same(t, ix, got)
}
