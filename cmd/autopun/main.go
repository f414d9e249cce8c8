// Command autopun reparses English phrases into phonetically similar
// sequences of dictionary words.
//
//	autopun convert /usr/share/dict/words > phones
//	echo "Happy Birthday" | autopun pun phones
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temporal-IPA/autopun/internal/config"
	"github.com/temporal-IPA/autopun/internal/logging"
	"github.com/temporal-IPA/autopun/pkg/g2p"
	"github.com/temporal-IPA/autopun/pkg/phono"
)

// app carries the state shared by all subcommands.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	lexicon    []string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "autopun",
		Short: "Produce phonetic puns over English text",
		Long: `autopun converts English text to phonemes with a set of letter-to-sound
rules, then re-spells it as other dictionary words that sound alike.
"Happy Birthday" can be recast as "hub pip earth day".

Build a phonetic dictionary once with "autopun convert", then feed lines
to "autopun pun".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("lexicon") {
				cfg.Dictionary.Lexicon = a.lexicon
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging, a.verbose)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringSliceVar(&a.lexicon, "lexicon", nil, "Files of exact pronunciations overriding the rules")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newPunCmd(a),
		newPhonemesCmd(a),
	)
	return rootCmd
}

// converter returns the English rules, behind the configured lexicon
// files if any.
func (a *app) converter(ctx context.Context) (g2p.Converter, error) {
	rules := g2p.NewEnglish()
	paths := a.cfg.Dictionary.Lexicon
	if len(paths) == 0 {
		return rules, nil
	}
	ix, err := phono.LoadPaths(ctx, phono.OSFS, paths...)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	lex := g2p.NewLexicon(rules, g2p.LexiconOptions{DiacriticInsensitive: true})
	ix.Each(func(e phono.Entry) bool {
		lex.Set(e.Word, e.Phones)
		return true
	})
	a.logger.Debug("lexicon loaded", zap.Strings("paths", paths), zap.Int("words", lex.Len()))
	return lex, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
