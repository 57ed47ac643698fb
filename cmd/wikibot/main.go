package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/fmhy/wikibot/pkg/config"
	"github.com/fmhy/wikibot/pkg/domain"
	"github.com/fmhy/wikibot/pkg/feed"
	"github.com/fmhy/wikibot/pkg/repository"
	"github.com/fmhy/wikibot/pkg/scheduler"
	"github.com/fmhy/wikibot/pkg/tracker"
	"github.com/fmhy/wikibot/pkg/urlx"
	"github.com/fmhy/wikibot/pkg/wiki"
)

// Opts with all CLI options
type Opts struct {
	Config     string `short:"c" long:"config" env:"CONFIG" default:"wikibot.yml" description:"config file path"`
	Migrate    bool   `long:"migrate" description:"replay channel history into the ledger and exit"`
	HistoryDir string `long:"history-dir" env:"HISTORY_DIR" description:"directory with exported channel history for --migrate"`
	Audit      bool   `long:"audit" description:"compare tracked urls against the wiki and exit"`

	// feed administration, each runs once and exits
	AddFeed    string `long:"add-feed" description:"subscribe a feed url, requires --channel"`
	RemoveFeed string `long:"remove-feed" description:"unsubscribe a feed by id"`
	ListFeeds  bool   `long:"list-feeds" description:"list feed subscriptions for --channel"`
	Channel    int64  `long:"channel" description:"channel id for feed administration"`
	Interval   int    `long:"interval" description:"per-feed check interval in minutes, 0 uses the configured default"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting wikibot version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] wikibot failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// app holds the wired components and the one-time start guard
type app struct {
	cfg       *config.Config
	repos     *repository.Repositories
	tracker   *tracker.Tracker
	scheduler *scheduler.Scheduler
	feeds     *feed.Manager
	started   atomic.Bool
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime(),
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	wikiClient := wiki.NewClient(cfg.Wiki.Endpoint, cfg.HTTPTimeout())
	extractor := urlx.NewExtractor(cfg.Wiki.ExcludedDomains...)
	classifier := tracker.NewClassifier(cfg.Channels)
	trk := tracker.New(extractor, classifier, repos.WikiURL, wikiClient)

	fetcher := feed.NewFetcher(cfg.HTTPTimeout(), cfg.Feeds.UserAgent, cfg.Feeds.MaxDescriptionLength)

	sched := scheduler.NewScheduler(repos.Feed, repos.Entry, repos.WikiURL, fetcher, &logPoster{}, scheduler.Config{
		TickInterval:         cfg.TickInterval(),
		MaxConcurrentChecks:  cfg.Schedule.MaxConcurrentChecks,
		DefaultCheckInterval: cfg.FeedCheckInterval(),
		MaxEntriesPerCheck:   cfg.Schedule.MaxEntriesPerCheck,
		PostDelay:            cfg.PostDelay(),
		StaleAfter:           cfg.StaleCutoff(),
		DebugForcePost:       cfg.Feeds.DebugForcePost,
	})

	a := &app{cfg: cfg, repos: repos, tracker: trk, scheduler: sched, feeds: feed.NewManager(repos.Feed, fetcher)}

	switch {
	case opts.Migrate:
		return a.migrate(ctx, opts.HistoryDir, extractor, classifier, wikiClient)
	case opts.Audit:
		return a.audit(ctx)
	case opts.AddFeed != "":
		return a.addFeed(ctx, opts)
	case opts.RemoveFeed != "":
		return a.removeFeed(ctx, opts.RemoveFeed)
	case opts.ListFeeds:
		return a.listFeeds(ctx, opts.Channel)
	default:
		return a.serve(ctx)
	}
}

// addFeed subscribes a feed for a channel after validating it
func (a *app) addFeed(ctx context.Context, opts Opts) error {
	if opts.Channel == 0 {
		return fmt.Errorf("--channel is required for --add-feed")
	}
	interval := time.Duration(opts.Interval) * time.Minute
	sub, err := a.feeds.Subscribe(ctx, opts.AddFeed, opts.Channel, 0, 0, interval)
	if err != nil {
		return fmt.Errorf("add feed: %w", err)
	}
	fmt.Printf("subscribed %q (%s), id %s\n", sub.Name, sub.URL, sub.ID)
	return nil
}

// removeFeed unsubscribes a feed by its id
func (a *app) removeFeed(ctx context.Context, id string) error {
	if err := a.feeds.Unsubscribe(ctx, id); err != nil {
		return fmt.Errorf("remove feed: %w", err)
	}
	fmt.Printf("unsubscribed %s\n", id)
	return nil
}

// listFeeds prints the subscriptions posting into a channel
func (a *app) listFeeds(ctx context.Context, channelID int64) error {
	if channelID == 0 {
		return fmt.Errorf("--channel is required for --list-feeds")
	}
	subs, err := a.feeds.ListChannel(ctx, channelID)
	if err != nil {
		return fmt.Errorf("list feeds: %w", err)
	}
	if len(subs) == 0 {
		fmt.Printf("no feeds subscribed in channel %d\n", channelID)
		return nil
	}
	for _, s := range subs {
		interval := s.CheckInterval
		if interval == 0 {
			interval = a.cfg.FeedCheckInterval()
		}
		fmt.Printf("%s  %s  %q  every %v\n", s.ID, s.URL, s.Name, interval)
	}
	return nil
}

// serve starts the background workers and blocks until the context is done
func (a *app) serve(ctx context.Context) error {
	a.start(ctx)
	<-ctx.Done()
	a.scheduler.Stop()
	return nil
}

// start begins background processing exactly once, repeated ready signals
// are ignored
func (a *app) start(ctx context.Context) {
	if !a.started.CompareAndSwap(false, true) {
		return
	}
	a.scheduler.Start(ctx)
}

// audit prints the disagreements between the ledger and the live wiki
func (a *app) audit(ctx context.Context) error {
	report, err := a.tracker.AuditRecords(ctx)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	if report.Empty() {
		log.Print("[INFO] audit clean, ledger matches the wiki")
		return nil
	}

	for _, url := range report.AddedNotLive {
		fmt.Printf("added but not in wiki: %s\n", url)
	}
	for _, url := range report.ShouldBeAdded {
		fmt.Printf("in wiki but not added: %s\n", url)
	}
	return nil
}

// migrate replays exported channel history into the ledger, authoritative
// channels first so their claims win over later submissions
func (a *app) migrate(ctx context.Context, historyDir string, extractor *urlx.Extractor, classifier *tracker.Classifier, wikiClient *wiki.Client) error {
	if historyDir == "" {
		return fmt.Errorf("--history-dir is required for --migrate")
	}

	history, err := newFileHistory(historyDir)
	if err != nil {
		return fmt.Errorf("open history dir: %w", err)
	}

	var channels []int64
	channels = append(channels, a.cfg.Channels.Added...)
	channels = append(channels, a.cfg.Channels.Removed...)
	channels = append(channels, a.cfg.Channels.Pending...)

	m := tracker.NewMigrator(extractor, classifier, a.repos.WikiURL, wikiClient, history)
	stats, err := m.Run(ctx, channels)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] migration finished: %d channels, %d messages, %d urls collected, %d inserted",
		stats.ChannelsProcessed, stats.MessagesScanned, stats.URLsCollected, stats.Inserted)
	return nil
}

func setupLog(dbg, noColor bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

// logPoster is the delivery sink when no chat transport is attached, it
// writes entries to the log. A deployment with a real chat connection
// swaps in its own poster.
type logPoster struct {
	seq atomic.Int64
}

func (p *logPoster) PostEntry(_ context.Context, channelID int64, entry domain.FeedEntry) (int64, error) {
	lgr.Printf("[INFO] channel %d: %s %s", channelID, entry.Title, entry.Link)
	return p.seq.Add(1), nil
}
