package mancala_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mancala/internal/apperror"
	"github.com/rocketscienceinc/mancala/internal/entity"
	"github.com/rocketscienceinc/mancala/internal/mancala"
	"github.com/rocketscienceinc/mancala/testing/suite"
)

func TestMatch_CreatePlayer(t *testing.T) {
	t.Run("Seats players in order", func(t *testing.T) {
		// Given: a fresh match
		_, st := suite.New(t)

		// When: two players join
		require.NoError(t, st.Match.CreatePlayer("Lily"))
		require.NoError(t, st.Match.CreatePlayer("Lucy"))

		// Then: the first is side 1, the second side 2
		assert.Equal(t, "Lily", st.Match.Player(entity.Side1).Name())
		assert.Equal(t, entity.Side1, st.Match.Player(entity.Side1).Side())
		assert.Equal(t, "Lucy", st.Match.Player(entity.Side2).Name())
		assert.Equal(t, "Lily", st.Match.CurrentPlayer().Name())
	})

	t.Run("Rejects a third player", func(t *testing.T) {
		// Given: a full match
		_, st := suite.New(t)
		st.WithPlayers()

		// When: a third player tries to join
		err := st.Match.CreatePlayer("Max")

		// Then: ErrMatchFull is returned and the seats are unchanged
		require.ErrorIs(t, err, apperror.ErrMatchFull)
		assert.Equal(t, "Lucy", st.Match.Player(entity.Side2).Name())
	})

	t.Run("Unknown side has no player", func(t *testing.T) {
		_, st := suite.New(t)

		assert.Nil(t, st.Match.Player(3))
		assert.Nil(t, st.Match.Player(entity.Side1))
	})
}

func TestMatch_ExecuteTurn(t *testing.T) {
	t.Run("Extra turn returns the snapshot", func(t *testing.T) {
		// Given: a match with two players
		_, st := suite.New(t)
		st.WithPlayers()

		// When: side 1 plays pit 3
		result, err := st.Match.ExecuteTurn(entity.Side1, 3)

		// Then: the last seed landed in side 1's store
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeExtraTurn, result.Outcome)
		assert.Equal(t, []int{4, 4, 0, 5, 5, 5, 1, 4, 4, 4, 4, 4, 4, 0}, result.Seeds)
	})

	t.Run("Requires two players", func(t *testing.T) {
		// Given: a match with a single player
		_, st := suite.New(t)
		require.NoError(t, st.Match.CreatePlayer("Lily"))

		// When: a turn is attempted
		result, err := st.Match.ExecuteTurn(entity.Side1, 1)

		// Then: ErrGameIsNotStarted is returned and nothing moved
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		assert.Nil(t, result)
		assert.Equal(t, []int{4, 4, 4, 4, 4, 4}, st.Match.PitSeeds(entity.Side1))
	})

	t.Run("Surfaces board validation errors", func(t *testing.T) {
		_, st := suite.New(t)
		st.WithPlayers()

		_, err := st.Match.ExecuteTurn(3, 1)
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)

		_, err = st.Match.ExecuteTurn(entity.Side1, 7)
		require.ErrorIs(t, err, apperror.ErrInvalidPit)

		_, err = st.Match.ExecuteTurn(entity.Side1, 1)
		require.NoError(t, err)

		_, err = st.Match.ExecuteTurn(entity.Side1, 1)
		require.ErrorIs(t, err, apperror.ErrEmptyPit)
	})

	t.Run("Forced sweep ends the game", func(t *testing.T) {
		// Given: a match with two players
		_, st := suite.New(t)
		st.WithPlayers()

		// When: side 1 plays pits 1 through 6
		var result *mancala.TurnResult
		for pit := 1; pit <= 6; pit++ {
			var err error
			result, err = st.Match.ExecuteTurn(entity.Side1, pit)
			require.NoError(t, err)
		}

		// Then: the game is over, the pits were swept, side 2 wins
		assert.Equal(t, entity.OutcomeGameOver, result.Outcome)
		assert.True(t, st.Match.IsGameOver())
		assert.Equal(t, 12, st.Match.StoreSeeds(entity.Side1))
		assert.Equal(t, 36, st.Match.StoreSeeds(entity.Side2))
		assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 12, 0, 0, 0, 0, 0, 0, 36}, result.Seeds)

		report := st.Match.ReportWinner()
		assert.Equal(t, mancala.ReportWon, report.Status)
		assert.Equal(t, entity.Side2, report.Side)
		assert.Equal(t, "Winner is player 2: Lucy", report.String())
	})

	t.Run("Turns after the end are rejected", func(t *testing.T) {
		// Given: a finished match
		_, st := suite.New(t)
		st.WithPlayers()
		for pit := 1; pit <= 6; pit++ {
			_, err := st.Match.ExecuteTurn(entity.Side1, pit)
			require.NoError(t, err)
		}

		// When: side 2 tries to play
		_, err := st.Match.ExecuteTurn(entity.Side2, 1)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestMatch_AdvanceTurn(t *testing.T) {
	_, st := suite.New(t)
	st.WithPlayers()

	assert.Equal(t, entity.Side1, st.Match.CurrentSide())

	st.Match.AdvanceTurn()
	assert.Equal(t, entity.Side2, st.Match.CurrentSide())
	assert.Equal(t, "Lucy", st.Match.CurrentPlayer().Name())

	st.Match.AdvanceTurn()
	assert.Equal(t, entity.Side1, st.Match.CurrentSide())
}

func TestMatch_ExtraTurnKeepsSide(t *testing.T) {
	// Given: a driver that only advances after a plain turn
	_, st := suite.New(t)
	st.WithPlayers()

	// When: side 1 earns an extra turn
	result, err := st.Match.ExecuteTurn(st.Match.CurrentSide(), 3)
	require.NoError(t, err)
	if result.Outcome != entity.OutcomeExtraTurn {
		st.Match.AdvanceTurn()
	}

	// Then: side 1 is still to move
	assert.Equal(t, entity.Side1, st.Match.CurrentSide())
}

func TestMatch_ReportWinner(t *testing.T) {
	t.Run("Not finished", func(t *testing.T) {
		// Given: the documented mid-game sequence
		_, st := suite.New(t)
		st.WithPlayers()
		moves := [][2]int{{1, 3}, {1, 1}, {2, 3}, {2, 4}, {1, 2}, {2, 2}, {1, 1}}
		for _, m := range moves {
			_, err := st.Match.ExecuteTurn(m[0], m[1])
			require.NoError(t, err)
		}

		// When: the winner is requested
		report := st.Match.ReportWinner()

		// Then: the game has not ended
		assert.Equal(t, mancala.ReportNotFinished, report.Status)
		assert.Equal(t, "Game has not ended", report.String())
		assert.Equal(t, 10, st.Match.StoreSeeds(entity.Side1))
		assert.Equal(t, 2, st.Match.StoreSeeds(entity.Side2))
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a one-pit, one-seed board
		_, st := suite.New(t)
		st.WithBoard(1, 1).WithPlayers()

		// When: side 1 sows its only seed
		result, err := st.Match.ExecuteTurn(entity.Side1, 1)
		require.NoError(t, err)

		// Then: the sweep leaves one seed per store
		assert.Equal(t, entity.OutcomeGameOver, result.Outcome)
		assert.Equal(t, []int{0, 1, 0, 1}, result.Seeds)
		assert.Equal(t, "It's a tie", st.Match.ReportWinner().String())
	})

	t.Run("Capture wins the game", func(t *testing.T) {
		// Given: a two-pit, one-seed board
		_, st := suite.New(t)
		st.WithBoard(2, 1).WithPlayers()

		// When: side 1 banks pit 2 then captures with pit 1
		result, err := st.Match.ExecuteTurn(entity.Side1, 2)
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeExtraTurn, result.Outcome)

		result, err = st.Match.ExecuteTurn(entity.Side1, 1)
		require.NoError(t, err)

		// Then: side 1 holds 3 seeds against 1
		assert.Equal(t, entity.OutcomeGameOver, result.Outcome)
		assert.Equal(t, []int{0, 0, 3, 0, 0, 1}, result.Seeds)
		assert.Equal(t, "Winner is player 1: Lily", st.Match.ReportWinner().String())
	})
}

func TestMatch_ID(t *testing.T) {
	_, st := suite.New(t)
	other := mancala.NewDefaultMatch(st.Logger)

	assert.NotEmpty(t, st.Match.ID())
	assert.NotEqual(t, st.Match.ID(), other.ID())
}
