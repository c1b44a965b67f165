package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/mancala/internal/entity"
)

const (
	ansiRed    = "\u001b[31m"
	ansiYellow = "\u001b[33m"
	ansiReset  = "\u001b[0m"
)

// Title returns the banner printed before a new game.
func Title() string {
	return ansiRed +
		"███╗   ███╗ █████╗ ███╗   ██╗ ██████╗ █████╗ ██╗      █████╗\n" +
		"████╗ ████║██╔══██╗████╗  ██║██╔════╝██╔══██╗██║     ██╔══██╗\n" +
		"██╔████╔██║███████║██╔██╗ ██║██║     ███████║██║     ███████║\n" +
		"██║╚██╔╝██║██╔══██║██║╚██╗██║██║     ██╔══██║██║     ██╔══██║\n" +
		"██║ ╚═╝ ██║██║  ██║██║ ╚████║╚██████╗██║  ██║███████╗██║  ██║\n" +
		"╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝\n" +
		ansiYellow + "A two-player game of sowing and capturing\n" + ansiReset
}

// Plain renders the stores and pits of both sides one per line:
//
//	player1:
//	store: 10
//	[0, 0, 2, 7, 7, 6]
func Plain(board *entity.Board) string {
	var sb strings.Builder

	for _, side := range []int{entity.Side1, entity.Side2} {
		fmt.Fprintf(&sb, "player%d:\n", side)
		fmt.Fprintf(&sb, "store: %d\n", board.StoreSeeds(side))
		fmt.Fprintf(&sb, "%s\n", formatList(board.PitSeeds(side)))
	}

	return sb.String()
}

// Pretty renders the board with box-drawing characters. Side 2 sits on top,
// read right to left, so both sides sow counter-clockwise:
//
//	Player 2    6   5   4   3   2   1
//	╔═════════╦═══╦═══╦═══╦═══╦═══╦═══╦═════════╗
//	║ Store 2 ║ 4 ║ 4 ║ 4 ║ 4 ║ 4 ║ 4 ║ Store 1 ║
//	║    0    ╠═══╬═══╬═══╬═══╬═══╬═══╣    0    ║
//	║         ║ 4 ║ 4 ║ 4 ║ 4 ║ 4 ║ 4 ║         ║
//	╚═════════╩═══╩═══╩═══╩═══╩═══╩═══╩═════════╝
//	Player 1    1   2   3   4   5   6
func Pretty(board *entity.Board) string {
	n := board.NumPits()

	labels := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		labels = append(labels, i)
	}

	top := reversed(board.PitSeeds(entity.Side2))
	bottom := board.PitSeeds(entity.Side1)

	var sb strings.Builder

	sb.WriteString(strings.TrimRight("Player 2   "+joinCells(reversed(labels), " "), " ") + "\n")
	sb.WriteString("╔═════════╦" + strings.Repeat("═══╦", n) + "═════════╗\n")
	sb.WriteString("║ Store 2 ║" + joinCells(top, "║") + "║ Store 1 ║\n")
	sb.WriteString("║ " + center(strconv.Itoa(board.StoreSeeds(entity.Side2)), 8) + "╠" +
		strings.Repeat("═══╬", n-1) + "═══╣ " +
		center(strconv.Itoa(board.StoreSeeds(entity.Side1)), 8) + "║\n")
	sb.WriteString("║         ║" + joinCells(bottom, "║") + "║         ║\n")
	sb.WriteString("╚═════════╩" + strings.Repeat("═══╩", n) + "═════════╝\n")
	sb.WriteString(strings.TrimRight("Player 1   "+joinCells(labels, " "), " ") + "\n")

	return sb.String()
}

func formatList(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func joinCells(values []int, sep string) string {
	cells := make([]string, 0, len(values))
	for _, v := range values {
		cells = append(cells, center(strconv.Itoa(v), 3))
	}
	return strings.Join(cells, sep)
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}

	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func reversed(values []int) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}
