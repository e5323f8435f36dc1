// Vasco membership portal - interactive terminal client
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/educlima/vasco-app/internal/cli"
	"github.com/educlima/vasco-app/internal/config"
	"github.com/educlima/vasco-app/internal/logging"
	"github.com/educlima/vasco-app/internal/services/auth"
	"github.com/educlima/vasco-app/internal/storage"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", logging.Err(err))
		os.Exit(1)
	}

	log := logging.New(os.Stderr, cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slots, closeSlots, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Error("failed to open session storage", logging.Err(err))
		os.Exit(1)
	}
	defer closeSlots()

	svc := auth.NewService(cfg, auth.NewDirectory(auth.SeedAccount()), slots, log, nil)

	var passwords cli.PasswordReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		passwords = cli.TerminalPasswords(os.Stdin)
	}

	if err := cli.New(svc, os.Stdin, os.Stdout, passwords).Run(ctx); err != nil {
		log.Error("cli failed", logging.Err(err))
		closeSlots()
		os.Exit(1)
	}
}
