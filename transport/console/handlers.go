package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/mancala/internal/apperror"
	"github.com/rocketscienceinc/mancala/internal/entity"
)

func (that *Server) handlePlayers(ctx context.Context) error {
	for _, side := range []int{entity.Side1, entity.Side2} {
		name, err := that.prompt(ctx, fmt.Sprintf("Enter player %d name: ", side))
		if err != nil {
			return err
		}

		if err = that.match.CreatePlayer(name); err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}
	}

	return nil
}

func (that *Server) handleTurn(ctx context.Context) error {
	log := that.logger.With("method", "handleTurn")

	side := that.match.CurrentSide()

	pit, err := that.readPit(ctx, side)
	if err != nil {
		return err
	}

	result, err := that.match.ExecuteTurn(side, pit)
	if errors.Is(err, apperror.ErrEmptyPit) || errors.Is(err, apperror.ErrInvalidPit) {
		log.Warn("turn rejected after validation", "side", side, "pit", pit, "error", err)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if result.Outcome == entity.OutcomeExtraTurn {
		if err = that.print(fmt.Sprintf("player %d take another turn\n", side)); err != nil {
			return err
		}
	}

	if err = that.print("\n" + that.render(that.match.Board())); err != nil {
		return err
	}

	if result.Outcome == entity.OutcomeCompleted {
		that.match.AdvanceTurn()
	}

	return nil
}

// readPit prompts side's player until a playable pit number is entered.
func (that *Server) readPit(ctx context.Context, side int) (int, error) {
	board := that.match.Board()
	name := ""
	if player := that.match.Player(side); player != nil {
		name = player.Name()
	}

	if err := that.print(fmt.Sprintf("Player %d (%s) turn.\n", side, name)); err != nil {
		return 0, err
	}

	msg := fmt.Sprintf("Choose a pit (1-%d): ", board.NumPits())

	for {
		input, err := that.prompt(ctx, msg)
		if err != nil {
			return 0, err
		}

		pit, err := strconv.Atoi(input)
		if err != nil || !board.IsValidPit(pit) {
			if err = that.print(fmt.Sprintf("Value must be an integer between 1-%d!\n", board.NumPits())); err != nil {
				return 0, err
			}
			continue
		}

		if board.Container(side, pit).Seeds() == 0 {
			if err = that.print("Player must select a pit that is not empty!\n"); err != nil {
				return 0, err
			}
			continue
		}

		return pit, nil
	}
}

func (that *Server) handleGameFinished() error {
	log := that.logger.With("method", "handleGameFinished")

	report := that.match.ReportWinner()

	if err := that.print("\nFinal board:\n" + that.render(that.match.Board())); err != nil {
		return err
	}

	if err := that.print(report.String() + "\n"); err != nil {
		return err
	}

	log.Info("game finished", "matchID", that.match.ID(), "result", report.String())

	return nil
}
