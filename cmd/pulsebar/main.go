// pulsebar renders status blocks as a single line, once or continuously.
//
// Each block pairs a data source (cpu, memory, time, ...) with a format
// template such as " $icon $cpu_utilization.eng(w:2) ". Lines are written to
// stdout, colored when stdout is a terminal.
//
// Usage:
//
//	pulsebar [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: $XDG_CONFIG_HOME/pulsebar/config.toml)
//	-once           Render a single line and exit
//	-check          Validate the configuration and compile every template, then exit
//	-watch          Reload the configuration file when it changes
//	-list           List sources, themes, icon sets and formatters
//	-width int      Maximum line width (0 = terminal width when on a terminal)
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/greshake/i3status-rust-sub000/pkg/bar"
	"github.com/greshake/i3status-rust-sub000/pkg/config"
	"github.com/greshake/i3status-rust-sub000/pkg/formatter"
	"github.com/greshake/i3status-rust-sub000/pkg/icons"
	"github.com/greshake/i3status-rust-sub000/pkg/preview"
	"github.com/greshake/i3status-rust-sub000/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		once        = flag.Bool("once", false, "Render a single line and exit")
		check       = flag.Bool("check", false, "Validate the configuration and exit")
		watch       = flag.Bool("watch", false, "Reload the configuration file when it changes")
		list        = flag.Bool("list", false, "List sources, themes, icon sets and formatters")
		width       = flag.Int("width", 0, "Maximum line width (0 = terminal width)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("pulsebar %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}
	if *list {
		printLists(os.Stdout)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, path, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "path", path, "blocks", len(cfg.Blocks))

	b, err := bar.New(cfg, bar.DefaultRegistry())
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	if *check {
		fmt.Printf("ok: %d blocks (%s)\n", len(b.Names()), strings.Join(b.Names(), ", "))
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()

	lineWidth := *width
	if lineWidth == 0 && preview.IsTerminal(os.Stdout) {
		lineWidth = preview.Width()
	}

	if *once {
		out := newLineWriter(os.Stdout, preview.NewPrinter(os.Stdout, b.Shared().Theme), lineWidth)
		out.write(b.Render(ctx))
		return
	}

	var reloads <-chan *config.Config
	if *watch {
		if path == "" {
			logger.Warn("no config file to watch")
		} else {
			reloads = watchConfig(ctx, logger, path)
		}
	}
	if err := runBar(ctx, logger, b, reloads, lineWidth); err != nil {
		logger.Error("bar stopped", "err", err)
		os.Exit(1)
	}
}

// loadConfig reads the named file, or searches the standard paths when name
// is empty. The returned path is "" when the defaults are used.
func loadConfig(name string) (*config.Config, string, error) {
	if name == "" {
		return config.Load()
	}
	cfg, err := config.LoadFromFile(name)
	return cfg, name, err
}

// watchConfig delivers successfully reloaded configs. Only the newest one is
// kept when the bar is slow to pick it up.
func watchConfig(ctx context.Context, logger *slog.Logger, path string) <-chan *config.Config {
	ch := make(chan *config.Config, 1)
	go func() {
		err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
			if err != nil {
				logger.Warn("config reload failed", "path", path, "err", err)
				return
			}
			select {
			case <-ch:
			default:
			}
			ch <- cfg
		})
		if err != nil && ctx.Err() == nil {
			logger.Error("config watcher stopped", "path", path, "err", err)
		}
	}()
	return ch
}

// runBar runs b until ctx is done, replacing it whenever a reloaded config
// builds successfully.
func runBar(ctx context.Context, logger *slog.Logger, b *bar.Bar, reloads <-chan *config.Config, width int) error {
	for {
		out := newLineWriter(os.Stdout, preview.NewPrinter(os.Stdout, b.Shared().Theme), width)
		runCtx, stop := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() { done <- b.Run(runCtx, out.write) }()
		logger.Debug("bar running", "blocks", len(b.Names()), "tick", b.Tick())

		select {
		case <-ctx.Done():
			stop()
			<-done
			return nil
		case err := <-done:
			stop()
			return err
		case cfg := <-reloads:
			stop()
			<-done
			nb, err := bar.New(cfg, bar.DefaultRegistry())
			if err != nil {
				logger.Warn("keeping previous config", "err", err)
				continue
			}
			logger.Info("config reloaded", "blocks", len(nb.Names()))
			b = nb
		}
	}
}

// lineWriter prints a line whenever the rendered output changes.
type lineWriter struct {
	w       io.Writer
	printer *preview.Printer
	width   int
	last    string
	started bool
}

func newLineWriter(w io.Writer, p *preview.Printer, width int) *lineWriter {
	return &lineWriter{w: w, printer: p, width: width}
}

func (lw *lineWriter) write(outputs []bar.BlockOutput) {
	line := lw.printer.Line(outputs, lw.width)
	if lw.started && line == lw.last {
		return
	}
	lw.started = true
	lw.last = line
	fmt.Fprintln(lw.w, line)
}

func printLists(w io.Writer) {
	fmt.Fprintf(w, "sources:    %s\n", strings.Join(bar.DefaultRegistry().Sources(), ", "))
	fmt.Fprintf(w, "themes:     %s\n", strings.Join(theme.Names(), ", "))
	fmt.Fprintf(w, "icons:      %s\n", strings.Join(icons.Names(), ", "))
	fmt.Fprintf(w, "formatters: %s\n", strings.Join(formatter.Names(), ", "))
	fmt.Fprintf(w, "presets:    %s\n", strings.Join(config.PresetNames(), ", "))
}
