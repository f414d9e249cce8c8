package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temporal-IPA/autopun/pkg/conversion"
	"github.com/temporal-IPA/autopun/pkg/phono"
)

type convertFlags struct {
	encoding   string
	raw        bool
	gob        bool
	flushEvery int
}

func newConvertCmd(a *app) *cobra.Command {
	var f convertFlags
	cmd := &cobra.Command{
		Use:   "convert [WORDLIST]",
		Short: "Build a phonetic dictionary from a word list",
		Long: `Reads a list of English words, one per line, and writes one
"<word> <phones>" line per word on standard output. WORDLIST defaults to
dictionary.word_list from the configuration (/usr/share/dict/words).

Supported encodings: ` + strings.Join(conversion.EncodingNames(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runConvert(ctx, cmd, args, f)
		},
	}
	cmd.Flags().StringVarP(&f.encoding, "encoding", "e", "", "Charset of the word list (default from config)")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "Keep exact pronunciations instead of squashing them")
	cmd.Flags().BoolVar(&f.gob, "gob", false, "Write a gob snapshot instead of text")
	cmd.Flags().IntVar(&f.flushEvery, "flush-every", 1, "Flush the output every N lines")
	return cmd
}

func (a *app) runConvert(ctx context.Context, cmd *cobra.Command, args []string, f convertFlags) error {
	path := a.cfg.Dictionary.WordList
	if len(args) > 0 {
		path = args[0]
	}
	name := a.cfg.Dictionary.Encoding
	if f.encoding != "" {
		name = f.encoding
	}
	enc, err := conversion.ParseEncoding(name)
	if err != nil {
		return err
	}

	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer in.Close()

	opts := phono.BuildOptions{
		Encoding:   enc,
		Raw:        f.raw,
		FlushEvery: f.flushEvery,
		Logger:     a.logger.Named("convert"),
	}
	a.logger.Debug("converting word list",
		zap.String("path", path),
		zap.String("encoding", enc.Name),
		zap.Bool("raw", f.raw))

	conv, err := a.converter(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !f.gob {
		_, err = phono.Build(ctx, in, out, conv, opts)
		return err
	}

	var buf bytes.Buffer
	if _, err := phono.Build(ctx, in, &buf, conv, opts); err != nil {
		return err
	}
	ix, err := phono.LoadReader(&buf)
	if err != nil {
		return err
	}
	return phono.WriteGob(out, ix)
}
