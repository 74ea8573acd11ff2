package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatcompare/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cheatcompare",
	Short: "Compare two reference documents side by side",
	Long: `cheatcompare serves a page with two document pickers and renders the
chosen markdown cheat sheets next to each other, so the same topic can be
compared across languages at a glance.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
