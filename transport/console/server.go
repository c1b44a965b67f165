package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/mancala/internal/entity"
	"github.com/rocketscienceinc/mancala/internal/mancala"
)

var ErrInputClosed = errors.New("input closed")

type Options struct {
	Plain     bool
	HideTitle bool
}

// Server drives one match from a line-oriented input and prints the board to out.
type Server struct {
	logger *slog.Logger

	match  *mancala.Match
	in     io.Reader
	out    io.Writer
	render func(*entity.Board) string
	opts   Options

	lines chan string
	errs  chan error
}

func New(logger *slog.Logger, match *mancala.Match, in io.Reader, out io.Writer, opts Options) *Server {
	render := Pretty
	if opts.Plain {
		render = Plain
	}

	return &Server{
		logger: logger.With("component", "console"),
		match:  match,
		in:     in,
		out:    out,
		render: render,
		opts:   opts,
		lines:  make(chan string),
		errs:   make(chan error, 1),
	}
}

// Start plays the match to the end. It returns ctx.Err() when ctx is cancelled
// and ErrInputClosed when the input runs dry before the game is over.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start", "matchID", that.match.ID())

	go that.readLines()

	if !that.opts.HideTitle {
		if err := that.print(Title()); err != nil {
			return err
		}
	}

	if err := that.handlePlayers(ctx); err != nil {
		return err
	}

	if err := that.print("\nInitial board:\n" + that.render(that.match.Board())); err != nil {
		return err
	}

	log.Info("game started")

	for !that.match.IsGameOver() {
		if err := that.handleTurn(ctx); err != nil {
			return err
		}
	}

	return that.handleGameFinished()
}

// readLines feeds input lines to the game loop until the input ends.
func (that *Server) readLines() {
	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- scanner.Text()
	}

	if err := scanner.Err(); err != nil {
		that.errs <- fmt.Errorf("failed to read input: %w", err)
		return
	}

	that.errs <- ErrInputClosed
}

func (that *Server) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-that.lines:
		return strings.TrimSpace(line), nil
	case err := <-that.errs:
		return "", err
	}
}

func (that *Server) prompt(ctx context.Context, msg string) (string, error) {
	if err := that.print(msg); err != nil {
		return "", err
	}
	return that.readLine(ctx)
}

func (that *Server) print(s string) error {
	if _, err := io.WriteString(that.out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
