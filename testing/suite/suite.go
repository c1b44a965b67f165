package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mancala/internal/entity"
	"github.com/rocketscienceinc/mancala/internal/mancala"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Match *mancala.Match
}

// New returns a context bound to the test and a default match with no players.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Match:  mancala.NewDefaultMatch(logger),
	}
}

// WithPlayers seats Lily on side 1 and Lucy on side 2.
func (that *Suite) WithPlayers() *Suite {
	that.Helper()

	require.NoError(that.T, that.Match.CreatePlayer("Lily"))
	require.NoError(that.T, that.Match.CreatePlayer("Lucy"))

	return that
}

// WithBoard swaps the match for one played on a numPits x seedsPerPit board.
func (that *Suite) WithBoard(numPits, seedsPerPit int) *Suite {
	that.Helper()

	board, err := entity.NewBoard(numPits, seedsPerPit)
	require.NoError(that.T, err)

	that.Match = mancala.NewMatch(that.Logger, board)

	return that
}
