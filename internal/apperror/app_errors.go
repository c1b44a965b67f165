package apperror

import "errors"

var (
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrInvalidPit       = errors.New("invalid pit index")
	ErrEmptyPit         = errors.New("pit is empty")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrMatchFull        = errors.New("match already has two players")
	ErrInvalidBoardSize = errors.New("invalid board size")
)
