package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatcompare/internal/check"
	"github.com/ziadkadry99/cheatcompare/internal/progress"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every configured document can be retrieved",
	Long: `Fetches each configured document once, exactly as the viewer would, and
reports the ones that are missing. Exits non-zero when any document fails.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	results := check.Documents(context.Background(), fetcher, cfg.BasePath, cfg.Documents, progress.NewReporter())
	failed := check.Failed(results)

	for _, r := range results {
		if verbose && r.OK() {
			fmt.Printf("ok    %-20s %d bytes\n", r.Name, r.Bytes)
		}
	}
	for _, r := range failed {
		fmt.Printf("FAIL  %-20s %v\n", r.Name, r.Err)
	}

	if len(failed) > 0 {
		names := make([]string, len(failed))
		for i, r := range failed {
			names[i] = r.Name
		}
		return fmt.Errorf("%d of %d documents unavailable: %s", len(failed), len(results), strings.Join(names, ", "))
	}
	fmt.Printf("All %d documents available.\n", len(results))
	return nil
}
