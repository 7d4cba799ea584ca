package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cfs-ui/cfs-docs/internal/config"
	"github.com/cfs-ui/cfs-docs/internal/logging"
	"github.com/cfs-ui/cfs-docs/internal/web"
)

const shutdownTimeout = 5 * time.Second

// handleServe runs the search API and web shell until interrupted.
func handleServe(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	listenAddr := fs.String("listen", cfg.Web.Listen, "Listen address for the server")
	token := fs.String("token", cfg.Web.Token, "Bearer token required on /api and /ws")
	docsPath := fs.String("docs", cfg.Docs.Path, "Markdown file to index")

	fs.Usage = func() {
		fmt.Println("Usage: cfs-docs serve [options]")
		fmt.Println()
		fmt.Println("Serve the documentation search API and web UI.")
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  cfs-docs serve")
		fmt.Println("  cfs-docs serve --listen 0.0.0.0:8420 --token s3cret")
	}

	if err := parseFlags(fs, args); err != nil {
		if err == errHelp {
			return nil
		}
		return err
	}

	server := web.NewServer(web.Config{
		ListenAddr:       *listenAddr,
		Token:            *token,
		Content:          newLocalProvider(cfg, *docsPath),
		QuickFilterLimit: cfg.Search.QuickFilterLimit,
		SuggestLimit:     cfg.Search.SuggestLimit,
		Debounce:         cfg.Debounce(),
		LoadTimeout:      cfg.LoadTimeout(),
		RateLimit:        cfg.RateLimit(),
		Burst:            cfg.Web.Burst,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serveUntilDone(ctx, server)
}

// lifecycleServer is the part of *web.Server the serve lifecycle needs.
type lifecycleServer interface {
	Start() error
	Shutdown(ctx context.Context) error
	Addr() string
}

// serveUntilDone runs srv until ctx is done or Start fails, then shuts it
// down gracefully.
func serveUntilDone(ctx context.Context, srv lifecycleServer) error {
	fmt.Printf("cfs-docs listening on http://%s\n", srv.Addr())
	log := logging.ForComponent(logging.CompWeb)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("web_shutdown", slog.Bool("signal", ctx.Err() != nil))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
