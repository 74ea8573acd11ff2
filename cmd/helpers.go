package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ziadkadry99/cheatcompare/internal/config"
	"github.com/ziadkadry99/cheatcompare/internal/loader"
	"github.com/ziadkadry99/cheatcompare/internal/server"
	"github.com/ziadkadry99/cheatcompare/internal/session"
)

// loadConfig loads and validates the config, providing a user-friendly error.
// Variables from a .env file in the working directory are applied first so
// CHEATCOMPARE_* overrides can live there.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cheatcompare init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// fetchTimeout converts the configured timeout; zero means none.
func fetchTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.FetchTimeoutSeconds) * time.Second
}

// journalRetention converts the configured retention; zero keeps everything.
func journalRetention(cfg *config.Config) time.Duration {
	return time.Duration(cfg.JournalRetentionDays) * 24 * time.Hour
}

// newFetcher builds the document fetcher. A path-style base_path is fetched
// from origin (this server when serving); an absolute URL is used as is.
func newFetcher(cfg *config.Config, origin string) (*loader.HTTPFetcher, error) {
	if !strings.HasPrefix(cfg.BasePath, "/") {
		origin = ""
	}
	return loader.NewHTTPFetcher(origin, fetchTimeout(cfg))
}

// localOrigin returns the loopback URL for a listener.
func localOrigin(ln net.Listener) string {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://127.0.0.1:%d", addr.Port)
	}
	return "http://" + ln.Addr().String()
}

// startLocalStore serves a local docs_dir on a loopback port so one-shot
// commands fetch documents the same way the viewer does. For an external
// base_path it returns an empty origin and does nothing.
func startLocalStore(cfg *config.Config) (origin string, stop func(), err error) {
	if !cfg.ServesDocs() {
		return "", func() {}, nil
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, fmt.Errorf("starting local document store: %w", err)
	}
	srv := server.New(server.Config{BasePath: cfg.BasePath, DocsDir: cfg.DocsDir}, session.NewManager(nil, 0), nil)
	go srv.Serve(ln) //nolint:errcheck

	stop = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}
	return localOrigin(ln), stop, nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
