// Package main is the entry point for pagestack.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pagestack/internal/config"
	"github.com/dshills/pagestack/internal/logging"
	"github.com/dshills/pagestack/internal/pages"
	"github.com/dshills/pagestack/internal/ui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	logFile    string
	document   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.document != "" {
		cfg.Document.Path = opts.document
	}

	logFile, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer logFile.Close()

	log := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: logFile,
		Prefix: "pagestack",
	})
	log.Info("starting pagestack %s", version)

	doc, err := openDocument(cfg.Document.Path, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	view, err := ui.New(screen, doc, ui.WithLogger(log))
	if err != nil {
		log.Error("creating view: %v", err)
		return 1
	}
	if err := view.ApplyConfig(cfg); err != nil {
		view.SetStatus(fmt.Sprintf("config: %v", err))
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.configPath != "" {
		watchConfig(ctx, opts.configPath, view, log)
	}

	err = view.Run(ctx)
	if doc.IsModified() {
		log.Warn("quit with unsaved changes to %s", doc.Name())
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("%v", err)
		return 1
	}

	log.Info("exiting")
	return 0
}

// openDocument opens path, or starts an empty document that will be
// saved to path when it does not exist yet.
func openDocument(path string, log *logging.Logger) (*pages.Document, error) {
	if path == "" {
		return pages.NewDocument(nil, pages.WithLogger(log)), nil
	}

	doc, err := pages.OpenDocument(path, pages.WithLogger(log))
	if errors.Is(err, os.ErrNotExist) {
		doc = pages.NewDocument(nil, pages.WithLogger(log))
		doc.Path = path
		return doc, nil
	}
	return doc, err
}

// watchConfig reloads the configuration into view whenever the file changes.
func watchConfig(ctx context.Context, path string, view *ui.View, log *logging.Logger) {
	w, err := config.NewWatcher(path, func(cfg *config.Config, err error) {
		view.Post(func() {
			if err != nil {
				view.SetStatus(fmt.Sprintf("config: %v", err))
				return
			}
			if err := view.ApplyConfig(cfg); err != nil {
				view.SetStatus(fmt.Sprintf("config: %v", err))
				return
			}
			view.SetStatus("Configuration reloaded")
		})
	}, config.WithWatchLogger(log))
	if err != nil {
		log.Warn("config reload disabled: %v", err)
		return
	}

	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("config watcher stopped: %v", err)
		}
	}()
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pagestack", "config.toml")
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Path to log file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pagestack - arrange document pages with undo/redo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pagestack [options] [pages.yaml]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  u undo, ctrl+r redo, d delete, r/R rotate, D duplicate,\n")
		fmt.Fprintf(os.Stderr, "  J/K move, v reverse, w save, q quit, j/k select\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("pagestack %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		if _, err := logging.ParseLevel(opts.logLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: at most one page list may be given\n")
		os.Exit(1)
	}
	opts.document = flag.Arg(0)

	return opts
}
