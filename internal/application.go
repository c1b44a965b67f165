package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mancala/internal/config"
	"github.com/rocketscienceinc/mancala/internal/entity"
	"github.com/rocketscienceinc/mancala/internal/mancala"
	"github.com/rocketscienceinc/mancala/transport/console"
)

// RunApp - runs a single match on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	board, err := entity.NewBoard(conf.Board.Pits, conf.Board.Seeds)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	match := mancala.NewMatch(logger, board)

	server := console.New(logger, match, os.Stdin, os.Stdout, console.Options{
		Plain:     conf.Console.IsPlain(),
		HideTitle: conf.Console.HideTitle,
	})

	log.Info("Starting console game", "matchID", match.ID(), "pits", conf.Board.Pits, "seeds", conf.Board.Seeds)

	if err = server.Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, console.ErrInputClosed) {
			log.Info("Game interrupted", "reason", err)
			return nil
		}

		return fmt.Errorf("console game error: %w", err)
	}

	return nil
}
