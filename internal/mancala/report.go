package mancala

import "fmt"

type ReportStatus int

const (
	ReportNotFinished ReportStatus = iota
	ReportTie
	ReportWon
)

// Report is the match result as seen by a presentation layer.
type Report struct {
	Status ReportStatus
	Side   int
	Name   string
}

func (that Report) String() string {
	switch that.Status {
	case ReportTie:
		return "It's a tie"
	case ReportWon:
		return fmt.Sprintf("Winner is player %d: %s", that.Side, that.Name)
	default:
		return "Game has not ended"
	}
}
