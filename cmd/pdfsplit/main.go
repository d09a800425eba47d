package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/coba-yu/pdf-util/internal/config"
	"github.com/coba-yu/pdf-util/internal/splitter"
)

func main() {
	os.Exit(run())
}

func run() int {
	var input, output, pages string
	flag.StringVar(&input, "input", "", "Input PDF file path")
	flag.StringVar(&input, "i", "", "Input PDF file path (shorthand)")
	flag.StringVar(&output, "output", "", "Output directory path")
	flag.StringVar(&output, "o", "", "Output directory path (shorthand)")
	flag.StringVar(&pages, "pages", "", "Chapter start page numbers, comma-separated (e.g. 1,10,20,30)")
	flag.StringVar(&pages, "p", "", "Chapter start page numbers (shorthand)")
	flag.Parse()

	// .env is optional.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	setupLogging(cfg)

	if input == "" || output == "" || pages == "" {
		fmt.Fprintln(os.Stderr, "Error: -input, -output and -pages are required")
		flag.Usage()
		return 1
	}

	breakPages, err := splitter.ParsePageList(pages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	splitCfg, err := splitter.NewSplitConfig(input, output, breakPages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sp, err := splitter.NewSplitter(splitCfg, cfg.StrictValidation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	created, err := sp.Split(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted")
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	slog.Info("Split complete.", "filesCreated", created)
	return 0
}

func setupLogging(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
