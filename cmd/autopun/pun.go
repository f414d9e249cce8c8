package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temporal-IPA/autopun/pkg/phono"
	"github.com/temporal-IPA/autopun/pkg/pun"
)

func newPunCmd(a *app) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "pun [DICT...]",
		Short: "Recast each input line as a phonetic pun",
		Long: `Reads lines on standard input and prints, for each one, a sequence of
dictionary words that sounds like it, or the no-solution text. DICT files
are phonetic dictionaries written by "autopun convert", text or gob; they
default to dictionary.paths from the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				a.cfg.Pun.Seed = seed
			}
			return a.runPun(cmd, args)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible puns (0: random)")
	return cmd
}

func (a *app) runPun(cmd *cobra.Command, args []string) error {
	paths := a.cfg.Dictionary.Paths
	if len(args) > 0 {
		paths = args
	}
	logger := a.logger.Named("pun")

	ctx := cmd.Context()
	dict := phono.NewLazy(func() (*phono.Index, error) {
		ix, err := phono.LoadPaths(ctx, phono.OSFS, paths...)
		if err != nil {
			return nil, err
		}
		logger.Debug("dictionary loaded", zap.Strings("paths", paths), zap.Int("entries", ix.Len()))
		return ix, nil
	})

	opts := []pun.Option{
		pun.WithMaxPhones(a.cfg.Pun.MaxPhones),
		pun.WithLogger(logger),
	}
	if s := a.cfg.Pun.Seed; s != 0 {
		opts = append(opts, pun.WithRand(rand.New(rand.NewPCG(s, s))))
	}
	conv, err := a.converter(ctx)
	if err != nil {
		return err
	}
	punner := pun.NewPunner(dict, conv, opts...)

	return forEachLine(ctx, cmd, func(line string) (string, error) {
		text, ok, err := punner.Pun(line)
		if err != nil {
			return "", err
		}
		if !ok {
			return a.cfg.Pun.NoSolution, nil
		}
		return text, nil
	})
}

// forEachLine maps every line of the command input through fn and
// writes the results, flushing after each line.
func forEachLine(ctx context.Context, cmd *cobra.Command, fn func(string) (string, error)) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := bufio.NewWriter(cmd.OutOrStdout())
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := fn(scanner.Text())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, result); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}
	}
	return scanner.Err()
}
