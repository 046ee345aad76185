package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/letsssgooo/quizApp/internal/app"
	"github.com/letsssgooo/quizApp/internal/config"
	"github.com/letsssgooo/quizApp/internal/events/fetcher"
	"github.com/letsssgooo/quizApp/internal/events/sender"
	"github.com/letsssgooo/quizApp/internal/lib/slogcustom"
	"github.com/letsssgooo/quizApp/internal/quiz"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	log := setupLogger(cfg.LogLevel)
	slog.SetDefault(log)
	slog.Debug("starting quiz app...")

	set, err := loadSet(cfg.QuestionsPath)
	if err != nil {
		slog.Error("cannot load questions", "path", cfg.QuestionsPath, "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quizApp, err := app.New(fetcher.NewLineFetcher(os.Stdin), sender.NewWriterSender(os.Stdout), set, log)
	if err != nil {
		slog.Error("cannot create quiz", "err", err)
		os.Exit(1)
	}

	if err = quizApp.Run(ctx); err != nil {
		slog.Error("quiz stopped with error", "err", err)
		os.Exit(1)
	}
}

func setupLogger(level slog.Level) *slog.Logger {
	return slog.New(slogcustom.NewCustomHandler(os.Stderr, level))
}

func loadSet(path string) (*quiz.Set, error) {
	if path == "" {
		return quiz.DefaultSet(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return quiz.LoadSet(data)
}
