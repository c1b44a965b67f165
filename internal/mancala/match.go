package mancala

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/mancala/internal/apperror"
	"github.com/rocketscienceinc/mancala/internal/entity"
)

// TurnResult is what a played turn leaves behind.
type TurnResult struct {
	Outcome entity.Outcome
	// Seeds holds side 1 pits, side 1 store, side 2 pits, side 2 store.
	Seeds []int
}

// Match holds the two players, whose turn it is, and the board they play on.
type Match struct {
	logger *slog.Logger

	id      string
	board   *entity.Board
	players [2]*entity.Player
	current int
}

func NewMatch(logger *slog.Logger, board *entity.Board) *Match {
	id := uuid.NewString()

	return &Match{
		logger:  logger.With("component", "match", "matchID", id),
		id:      id,
		board:   board,
		current: entity.Side1,
	}
}

func NewDefaultMatch(logger *slog.Logger) *Match {
	return NewMatch(logger, entity.NewDefaultBoard())
}

func (that *Match) ID() string { return that.id }

func (that *Match) Board() *entity.Board { return that.board }

func (that *Match) CurrentSide() int { return that.current }

// Player returns the player seated on side, or nil if the seat is empty.
func (that *Match) Player(side int) *entity.Player {
	if side != entity.Side1 && side != entity.Side2 {
		return nil
	}
	return that.players[side-1]
}

func (that *Match) CurrentPlayer() *entity.Player {
	return that.Player(that.current)
}

// CreatePlayer seats name on side 1, or on side 2 once side 1 is taken.
func (that *Match) CreatePlayer(name string) error {
	for i, player := range that.players {
		if player != nil {
			continue
		}

		side := i + 1
		that.players[i] = entity.NewPlayer(name, side)
		that.logger.Info("player joined", "side", side, "name", name)

		return nil
	}

	return fmt.Errorf("%w: cannot add %q", apperror.ErrMatchFull, name)
}

func (that *Match) isReady() bool {
	return that.players[0] != nil && that.players[1] != nil
}

func (that *Match) PitSeeds(side int) []int { return that.board.PitSeeds(side) }

func (that *Match) StoreSeeds(side int) int { return that.board.StoreSeeds(side) }

func (that *Match) IsGameOver() bool { return that.board.IsGameOver() }

// ExecuteTurn plays pit on side. Once the turn ends the game, the remaining
// seeds are swept into the stores and OutcomeGameOver is reported.
func (that *Match) ExecuteTurn(side, pit int) (*TurnResult, error) {
	log := that.logger.With("method", "ExecuteTurn", "side", side, "pit", pit)

	if that.board.IsGameOver() {
		return nil, apperror.ErrGameFinished
	}

	if !that.isReady() {
		return nil, apperror.ErrGameIsNotStarted
	}

	outcome, err := that.board.PlayTurn(side, pit)
	if err != nil {
		log.Debug("turn rejected", "error", err)
		return nil, fmt.Errorf("invalid turn: %w", err)
	}

	if that.board.IsGameOver() {
		that.board.FinalTally()
		outcome = entity.OutcomeGameOver

		log.Info("game finished",
			"store1", that.board.StoreSeeds(entity.Side1),
			"store2", that.board.StoreSeeds(entity.Side2),
			"winner", that.board.Winner().String(),
		)
	}

	log.Debug("turn played", "outcome", outcome.String())

	return &TurnResult{
		Outcome: outcome,
		Seeds:   that.board.Snapshot(),
	}, nil
}

// AdvanceTurn hands the turn to the other side. Drivers skip it after an
// extra turn.
func (that *Match) AdvanceTurn() {
	if that.current == entity.Side1 {
		that.current = entity.Side2
	} else {
		that.current = entity.Side1
	}
}

// ReportWinner describes the result of the match so far.
func (that *Match) ReportWinner() Report {
	winner := that.board.Winner()

	switch winner {
	case entity.WinnerNone:
		return Report{Status: ReportNotFinished}
	case entity.WinnerTie:
		return Report{Status: ReportTie}
	}

	side, _ := winner.Side()
	report := Report{Status: ReportWon, Side: side}
	if player := that.Player(side); player != nil {
		report.Name = player.Name()
	}

	return report
}
