package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatcompare/internal/render"
	"github.com/ziadkadry99/cheatcompare/internal/source"
)

var renderCmd = &cobra.Command{
	Use:   "render <document>",
	Short: "Print one document's rendered HTML",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Bool("title", false, "print only the document's top-level heading")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	origin, stop, err := startLocalStore(cfg)
	if err != nil {
		return err
	}
	defer stop()

	fetcher, err := newFetcher(cfg, origin)
	if err != nil {
		return fmt.Errorf("creating fetcher: %w", err)
	}

	address := source.Resolve(cfg.BasePath, args[0])
	text, err := fetcher.Fetch(context.Background(), address)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", source.FileName(args[0]), err)
	}

	renderer := render.New(cfg.Theme)
	if titleOnly, _ := cmd.Flags().GetBool("title"); titleOnly {
		fmt.Println(renderer.Title(text))
		return nil
	}

	html, err := renderer.Render(text)
	if err != nil {
		return err
	}
	fmt.Println(html)
	return nil
}
