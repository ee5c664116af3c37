// Package cmd implements the CLI commands for tweetpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tweetpipe/internal/config"
)

var (
	cfgFile   string
	activeCfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tweetpipe",
	Short: "tweetpipe — turn documents into ready-to-post tweet threads",
	Long: `tweetpipe converts a document (txt, md, json, csv, tsv, pdf, docx, html)
or a web page into an ordered tweet thread: length-bounded tweets, each
numbered with an " i/N" suffix, previewed, saved, or posted as a reply
chain.

Usage:
  tweetpipe compose <file> [flags]
  tweetpipe compose --url <url> [flags]`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(config.LoadOptions{
			Cmd:        cmd,
			ConfigFile: cfgFile,
			Defaults:   config.DefaultConfig(),
		})
		if err != nil {
			return err
		}
		activeCfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(rootCmd.PersistentFlags(), config.DefaultConfig())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
