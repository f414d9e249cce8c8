package main

import (
	"github.com/spf13/cobra"
)

func newPhonemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "phonemes",
		Short: "Print the pronunciation of each input line",
		Long: `Reads lines on standard input and prints their pronunciation as
space-separated phoneme mnemonics, "/" marking a pause between words.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.converter(cmd.Context())
			if err != nil {
				return err
			}
			return forEachLine(cmd.Context(), cmd, func(line string) (string, error) {
				return conv.Line(line).String(), nil
			})
		},
	}
}
