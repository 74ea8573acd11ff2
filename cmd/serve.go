package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cheatcompare/internal/db"
	"github.com/ziadkadry99/cheatcompare/internal/diag"
	"github.com/ziadkadry99/cheatcompare/internal/render"
	"github.com/ziadkadry99/cheatcompare/internal/server"
	"github.com/ziadkadry99/cheatcompare/internal/session"
	"github.com/ziadkadry99/cheatcompare/internal/view"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the comparison web server",
	Long:  `Serves the side-by-side comparison page, the document store directory and the diagnostics API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override server.port")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", cfg.Server.Port, err)
	}
	origin := localOrigin(ln)

	fetcher, err := newFetcher(cfg, origin)
	if err != nil {
		ln.Close()
		return fmt.Errorf("creating fetcher: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "journal.db")
	database, err := db.Open(dbPath)
	if err != nil {
		ln.Close()
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	journal := diag.NewStore(database)

	retentionCtx, stopRetention := context.WithCancel(context.Background())
	defer stopRetention()
	go journal.RunRetention(retentionCtx, journalRetention(cfg), time.Hour)

	renderer := render.New(cfg.Theme)
	sessions := session.NewManager(func(id string) *view.View {
		return view.New(view.Options{
			Title:        cfg.Title,
			Documents:    cfg.Documents,
			BasePath:     cfg.BasePath,
			Fetcher:      fetcher,
			Renderer:     renderer,
			Logger:       log.Default(),
			OnFailure:    journal.Recorder(id),
			FetchTimeout: fetchTimeout(cfg),
			Verbose:      verbose,
		})
	}, time.Duration(cfg.Server.SessionTTLMins)*time.Minute)
	defer sessions.Close()

	sweepDone := make(chan struct{})
	defer close(sweepDone)
	go sessions.Run(time.Minute, sweepDone)

	srvCfg := server.Config{
		Port:     cfg.Server.Port,
		BasePath: cfg.BasePath,
		AllowAll: cfg.Server.AllowAllOrigins,
	}
	if cfg.ServesDocs() {
		srvCfg.DocsDir = cfg.DocsDir
		if _, err := os.Stat(cfg.DocsDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: document directory %s: %v\n", cfg.DocsDir, err)
		}
	}
	srv := server.New(srvCfg, sessions, journal)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "cheatcompare %s serving at %s\n", Version, origin)
	fmt.Fprintf(os.Stderr, "  Documents: %d from %s\n", len(cfg.Documents), cfg.BasePath)
	fmt.Fprintf(os.Stderr, "  Journal: %s\n", dbPath)

	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(origin)
	}

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
