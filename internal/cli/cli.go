package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rvagigs/venue-capture/internal/browser"
	"github.com/rvagigs/venue-capture/internal/capture"
	"github.com/rvagigs/venue-capture/internal/logger"
	"github.com/rvagigs/venue-capture/internal/notifier"
	"github.com/rvagigs/venue-capture/internal/parsers"
	"github.com/rvagigs/venue-capture/internal/scraper"
	"github.com/rvagigs/venue-capture/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNewEvents = 2
)

var (
	flagChannel     string
	flagDataDir     string
	flagFormat      string
	flagPostgresDSN string
	flagNotify      bool
	flagDryRun      bool
	flagStatic      bool
	flagLimit       int
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venue-capture",
		Short: "Capture concert listings from a venue website",
		Long: `Captures concert listings from a venue's calendar and detail pages,
normalizes them into capture events, and reports newly announced shows
since the last run.`,
		RunE: runCapture,
	}

	cmd.Flags().StringVar(&flagChannel, "channel", "", "Channel to capture: richmondshows, thecamel, or broadberry (required)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "~/.local/share/venue-capture", "Data directory for snapshots and run logs")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagPostgresDSN, "postgres-dsn", os.Getenv("CAPTURE_POSTGRES_DSN"), "Postgres DSN for event storage (or env: CAPTURE_POSTGRES_DSN)")
	cmd.Flags().BoolVar(&flagNotify, "notify", false, "Tweet newly captured shows")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of posting them")
	cmd.Flags().BoolVar(&flagStatic, "static", false, "Fetch pages over plain HTTP instead of headless Chrome")
	cmd.Flags().IntVar(&flagLimit, "limit", 0, "Maximum number of detail pages to visit (0 = no limit)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("channel")

	return cmd
}

// runCapture is the main command logic
func runCapture(cmd *cobra.Command, args []string) error {
	logger.Setup(flagVerbose)
	metrics := logger.NewMetrics()

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, ok := scraper.ConfigFor(strings.ToLower(strings.TrimSpace(flagChannel)))
	if !ok {
		return fmt.Errorf("unknown channel: %s", flagChannel)
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	nav, cleanup := newNavigator(cfg)
	defer cleanup()

	ctx := context.Background()
	log := capture.NewLog(cfg.TenantName, cfg.ChannelName)
	results := capture.NewResults()

	// Phase 1: list page.
	slog.Debug("navigating to list page", "url", cfg.ListPageUri)
	navStart := time.Now()
	page, err := nav.Navigate(ctx, cfg.ListPageUri)
	if err != nil {
		return fmt.Errorf("navigating to list page: %w", err)
	}
	metrics.RecordTiming("navigate.list", time.Since(navStart))
	scraper.ParseListPage(page.Doc, cfg, results, log)
	slog.Info("list page extracted", "channel", cfg.ChannelName, "stubs", len(results.Events))

	// Phase 2: one detail page per stub, in list order.
	enricher := scraper.NewEnricher(cfg, parsers.Helpers{})
	for i, ev := range results.Events {
		if flagLimit > 0 && i >= flagLimit {
			break
		}
		uri := ev.FirstUri()
		if uri == "" {
			log.Warnf("No detail page uri for event: %s", ev.EventTitle)
			continue
		}

		slog.Debug("navigating to detail page", "url", uri)
		navStart = time.Now()
		detail, err := nav.Navigate(ctx, uri)
		if err != nil {
			log.Errorf("Error navigating to detail page: %s : %s .", uri, err)
			continue
		}
		metrics.RecordTiming("navigate.detail", time.Since(navStart))
		enricher.Enrich(detail.Doc, ev, uri, log)
		metrics.IncrCounter("pages.detail")
	}

	stubs := len(results.Events)
	capture.RemoveMissingDates(results, log)
	log.TotalCapturedEvents = len(results.Events)
	metrics.AddCounter("events.captured", int64(len(results.Events)))
	metrics.AddCounter("events.dropped", int64(stubs-len(results.Events)))

	// Diff against the previous run before overwriting the snapshot.
	previous, err := store.LoadSnapshot(cfg.ChannelName)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	fresh := capture.Diff(previous, results.Events)

	previous.Update(results.Events)
	if err := store.SaveSnapshot(previous, cfg.ChannelName); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	if err := store.WriteRunLog(log); err != nil {
		slog.Warn("failed to write run log", "err", err)
	}

	if flagPostgresDSN != "" {
		if err := writePostgres(flagPostgresDSN, results.Events); err != nil {
			slog.Error("postgres write failed", "err", err)
		}
	}

	if flagNotify && len(fresh) > 0 {
		if err := notify(fresh); err != nil {
			slog.Error("notification failed", "err", err)
		}
	}

	result := &OutputResult{
		CapturedAt: time.Now().UTC(),
		Channel:    cfg.ChannelName,
		Events:     results.Events,
		EventCount: len(results.Events),
		NewEvents:  fresh,
		NewCount:   len(fresh),
		Log:        log,
	}
	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	metrics.Log()

	// Exit code 2 signals "new shows found" to cron wrappers.
	if len(fresh) > 0 {
		cleanup()
		os.Exit(ExitNewEvents)
	}
	return nil
}

// newNavigator picks the page collaborator for this run.
func newNavigator(cfg scraper.ChannelConfig) (browser.Navigator, func()) {
	if flagStatic || cfg.Nav.Static {
		return browser.NewHTTPNavigator(), func() {}
	}
	chrome := browser.NewChromeNavigator(browser.ChromeOptions{
		Timeout:      cfg.Nav.Timeout,
		WaitSelector: cfg.Nav.WaitSelector,
	})
	return chrome, chrome.Close
}

// notify posts the newly captured shows.
func notify(fresh []*capture.CaptureEvent) error {
	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier()
	} else {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			return err
		}
		n = tw
	}
	return n.Notify(fresh)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

// writePostgres stores the run's events in Postgres.
func writePostgres(dsn string, events []*capture.CaptureEvent) error {
	pw, err := storage.NewPostgresWriter(dsn)
	if err != nil {
		return err
	}
	defer pw.Close()
	return pw.WriteEvents(events)
}
