package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/converter"
	"github.com/nguyentantai21042004/transcript-flow/internal/document"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/output"
	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

const defaultConfigPath = "config.yaml"

type flags struct {
	configPath string
	output     string
	timestamps bool
	kebab      bool
	force      bool
	rename     bool
	copy       bool
	format     string
	convert    string
	watch      bool
}

func parseFlags() (flags, []string, func()) {
	var f flags
	fs := newFlagSet(&f, flag.ExitOnError)
	args, _ := parseInterspersed(fs, os.Args[1:])
	return f, args, fs.Usage
}

func newFlagSet(f *flags, handling flag.ErrorHandling) *flag.FlagSet {
	fs := flag.NewFlagSet("transcribe", handling)
	fs.StringVar(&f.configPath, "config", defaultConfigPath, "Path to YAML config file")
	fs.StringVar(&f.output, "o", "", "Output file path (default: <video-title> Transcript.md)")
	fs.BoolVar(&f.timestamps, "t", false, "Include timestamps at start of each segment")
	fs.BoolVar(&f.kebab, "k", false, "Use kebab-case filename (lowercase-with-dashes)")
	fs.BoolVar(&f.force, "f", false, "Overwrite existing file")
	fs.BoolVar(&f.rename, "r", false, "Add a number to the filename if it already exists")
	fs.BoolVar(&f.copy, "c", false, "Also copy the transcript to the clipboard")
	fs.StringVar(&f.format, "format", "", "Output format: markdown or docx")
	fs.StringVar(&f.convert, "convert", "", "Convert an existing .srt file or directory instead of downloading")
	fs.BoolVar(&f.watch, "watch", false, "Watch paths.input and convert new .srt files")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  transcribe [flags] URL [flags]\n  transcribe -convert <file|dir>\n  transcribe -watch\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs
}

// parseInterspersed accepts flags before and after positional arguments,
// so "transcribe URL -t" works. Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func main() {
	f, args, usage := parseFlags()

	_ = godotenv.Load()

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithRunID(ctx, logger.NewRunID())

	renderer := document.New(document.SystemClock{})
	writer := output.New(log)

	switch {
	case f.watch:
		err = runWatch(ctx, cfg, converter.New(cfg, renderer, writer, log), log)
	case f.convert != "":
		err = runConvert(ctx, cfg, converter.New(cfg, renderer, writer, log), f.convert)
	case len(args) == 1:
		proc := processor.New(cfg, executor.New(), renderer, writer, log)
		_, err = proc.Process(ctx, args[0], processor.Options{
			Timestamps: cfg.Render.Timestamps,
			Kebab:      cfg.Output.Kebab,
			OutputPath: f.output,
			Format:     cfg.Output.Format,
			OnConflict: cfg.Output.OnConflict,
			Copy:       cfg.Output.CopyToClipboard,
		})
	default:
		usage()
		os.Exit(2)
	}

	if err != nil && (errors.Is(err, context.Canceled) || ctx.Err() != nil) {
		fmt.Fprintln(os.Stderr, "\nCancelled.")
		os.Exit(130)
	}
	if errors.Is(err, output.ErrFileExists) {
		log.Error(ctx, "%v (use -f to overwrite or -r to rename)", err)
		os.Exit(1)
	}
	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file if present; the default path may be absent.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return config.LoadEnv()
		}
	}
	return config.Load(path)
}

func applyFlags(cfg *config.Config, f flags) {
	if f.timestamps {
		cfg.Render.Timestamps = true
	}
	if f.kebab {
		cfg.Output.Kebab = true
	}
	if f.copy {
		cfg.Output.CopyToClipboard = true
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.rename {
		cfg.Output.OnConflict = config.ConflictRename
	}
	if f.force {
		cfg.Output.OnConflict = config.ConflictOverwrite
	}
}

func runConvert(ctx context.Context, cfg *config.Config, conv converter.Converter, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", cfg.Paths.Output, err)
	}
	if info.IsDir() {
		return conv.ConvertAll(ctx, path, cfg.Paths.Output)
	}
	_, err = conv.Convert(ctx, path, cfg.Paths.Output)
	return err
}

func runWatch(ctx context.Context, cfg *config.Config, conv converter.Converter, log logger.Logger) error {
	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	handler := func(ctx context.Context, path string) error {
		written, err := conv.Convert(ctx, path, cfg.Paths.Output)
		if err != nil {
			return err
		}
		log.Info(ctx, "[DONE] %s -> %s", path, written)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, converter.IsCaptionFile, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "Watching %s, writing to %s (Ctrl+C to stop)", cfg.Paths.Input, cfg.Paths.Output)

	// Convert whatever was already waiting before the watch started.
	if err := conv.ConvertAll(ctx, cfg.Paths.Input, cfg.Paths.Output); err != nil {
		log.Warn(ctx, "Initial conversion failed: %v", err)
	}

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(ctx, "Watcher stopped")
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
