package phono

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temporal-IPA/autopun/pkg/conversion"
	"github.com/temporal-IPA/autopun/pkg/g2p"
	"github.com/temporal-IPA/autopun/pkg/phoneme"
)

// BuildOptions control a Build run.
type BuildOptions struct {
	// Encoding of the word list. The zero value means UTF-8.
	Encoding conversion.Encoding

	// Raw disables squashing, so the output keeps the exact
	// pronunciation. Raw output is not suitable for punning.
	Raw bool

	// FlushEvery flushes the output after that many lines; 0 flushes
	// after every line.
	FlushEvery int

	// Logger receives per-word skip notices (debug) and the summary.
	Logger *zap.Logger
}

// BuildStats summarizes a Build run.
type BuildStats struct {
	Words   int // non-blank input lines
	Written int // entries written
	Skipped int // words that cannot be stored
}

// Build converts a word list, one word per line, into the native
// phonetic dictionary format, writing one "<word> <codes>" line per
// word as soon as it is converted.
//
// Reading and converting run as a two-stage pipeline. Words containing
// whitespace, and words without any pronounceable letter, are skipped
// since they could not be read back. Build stops early when ctx is
// canceled and returns ctx's error.
func Build(ctx context.Context, r io.Reader, w io.Writer, conv g2p.Converter, opts BuildOptions) (BuildStats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var stats BuildStats
	words := make(chan string, 256)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(words)
		scanner := bufio.NewScanner(opts.Encoding.NewReader(r))
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word == "" {
				continue
			}
			select {
			case words <- word:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read word list: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		bw := bufio.NewWriter(w)
		pending := 0
		for word := range words {
			stats.Words++
			if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
				stats.Skipped++
				logger.Debug("skipping word with whitespace", zap.String("word", word))
				continue
			}
			phones := conv.Word(word)
			if !opts.Raw {
				phones = phoneme.Squash(phones)
			}
			if phones == "" {
				stats.Skipped++
				logger.Debug("skipping unpronounceable word", zap.String("word", word))
				continue
			}
			if _, err := bw.WriteString(FormatEntry(Entry{Word: word, Phones: phones})); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
			stats.Written++
			pending++
			if pending >= max(opts.FlushEvery, 1) {
				if err := bw.Flush(); err != nil {
					return err
				}
				pending = 0
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return bw.Flush()
	})

	err := g.Wait()
	logger.Info("dictionary build finished",
		zap.Int("words", stats.Words),
		zap.Int("written", stats.Written),
		zap.Int("skipped", stats.Skipped),
		zap.Error(err),
	)
	return stats, err
}
