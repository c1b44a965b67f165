package entity

import (
	"fmt"

	"github.com/rocketscienceinc/mancala/internal/apperror"
)

const (
	DefaultPits        = 6
	DefaultSeedsPerPit = 4
)

// Board is the closed loop of pits and stores. Slots are laid out as
// side 1 pits 1..N, side 1 store, side 2 pits 1..N, side 2 store; the
// slot after the last one is slot 0 again.
type Board struct {
	numPits     int
	seedsPerPit int
	containers  []Container
}

func NewBoard(numPits, seedsPerPit int) (*Board, error) {
	if numPits < 1 {
		return nil, fmt.Errorf("%w: %d pits", apperror.ErrInvalidBoardSize, numPits)
	}

	if seedsPerPit < 0 {
		return nil, fmt.Errorf("%w: %d seeds per pit", apperror.ErrInvalidBoardSize, seedsPerPit)
	}

	that := &Board{
		numPits:     numPits,
		seedsPerPit: seedsPerPit,
	}
	that.setup()

	return that, nil
}

func NewDefaultBoard() *Board {
	board, err := NewBoard(DefaultPits, DefaultSeedsPerPit)
	if err != nil {
		panic(err)
	}
	return board
}

// setup builds and wires every container and seeds the pits.
func (that *Board) setup() {
	size := 2 * (that.numPits + 1)
	that.containers = make([]Container, size)

	for i := range that.containers {
		c := &that.containers[i]
		c.index = i
		c.next = (i + 1) % size
		c.opposite = noOpposite

		c.side = Side1
		offset := i
		if i > that.numPits {
			c.side = Side2
			offset = i - (that.numPits + 1)
		}

		if offset == that.numPits {
			c.kind = KindStore
			c.id = storeID
			continue
		}

		c.kind = KindPit
		c.id = offset + 1
		c.seeds = that.seedsPerPit
		// side A pit i faces side B pit N+1-i
		c.opposite = 2*that.numPits - i
	}
}

func (that *Board) NumPits() int { return that.numPits }

func (that *Board) SeedsPerPit() int { return that.seedsPerPit }

// Size is the number of containers on the loop.
func (that *Board) Size() int { return len(that.containers) }

// IsValidPit reports whether n names a pit on either side.
func (that *Board) IsValidPit(n int) bool {
	return n >= 1 && n <= that.numPits
}

func isValidSide(side int) bool {
	return side == Side1 || side == Side2
}

func (that *Board) storeIndex(side int) int {
	if side == Side1 {
		return that.numPits
	}
	return 2*that.numPits + 1
}

func (that *Board) pitIndex(side, pit int) int {
	if side == Side1 {
		return pit - 1
	}
	return that.numPits + pit
}

// At returns the container in slot index.
func (that *Board) At(index int) *Container {
	return &that.containers[index]
}

// Container returns pit id on side. Both must be valid.
func (that *Board) Container(side, id int) *Container {
	return &that.containers[that.pitIndex(side, id)]
}

func (that *Board) Store(side int) *Container {
	return &that.containers[that.storeIndex(side)]
}

func (that *Board) Next(c *Container) *Container {
	return &that.containers[c.next]
}

// Opposite returns the mirror pit of c, or nil for a store.
func (that *Board) Opposite(c *Container) *Container {
	idx, ok := c.Opposite()
	if !ok {
		return nil
	}
	return &that.containers[idx]
}

// Pits returns side's pits in id order.
func (that *Board) Pits(side int) []*Container {
	first := that.pitIndex(side, 1)

	pits := make([]*Container, 0, that.numPits)
	for i := first; i < first+that.numPits; i++ {
		pits = append(pits, &that.containers[i])
	}

	return pits
}

func (that *Board) PitSeeds(side int) []int {
	seeds := make([]int, 0, that.numPits)
	for _, pit := range that.Pits(side) {
		seeds = append(seeds, pit.Seeds())
	}
	return seeds
}

func (that *Board) StoreSeeds(side int) int {
	return that.Store(side).Seeds()
}

func (that *Board) EmptyPits(side int) []bool {
	empty := make([]bool, 0, that.numPits)
	for _, pit := range that.Pits(side) {
		empty = append(empty, pit.Seeds() == 0)
	}
	return empty
}

// Snapshot returns side 1 pits, side 1 store, side 2 pits, side 2 store.
func (that *Board) Snapshot() []int {
	seeds := make([]int, 0, len(that.containers))
	seeds = append(seeds, that.PitSeeds(Side1)...)
	seeds = append(seeds, that.StoreSeeds(Side1))
	seeds = append(seeds, that.PitSeeds(Side2)...)
	seeds = append(seeds, that.StoreSeeds(Side2))
	return seeds
}

func (that *Board) TotalSeeds() int {
	total := 0
	for i := range that.containers {
		total += that.containers[i].seeds
	}
	return total
}

func (that *Board) sideTotal(side int) int {
	total := that.StoreSeeds(side)
	for _, n := range that.PitSeeds(side) {
		total += n
	}
	return total
}

func (that *Board) allPitsEmpty(side int) bool {
	for _, empty := range that.EmptyPits(side) {
		if !empty {
			return false
		}
	}
	return true
}

// IsGameOver reports whether either side has run out of seeds in its pits.
// The other side may still hold seeds; FinalTally sweeps them.
func (that *Board) IsGameOver() bool {
	return that.allPitsEmpty(Side1) || that.allPitsEmpty(Side2)
}

// Winner compares pit plus store totals once the game is over.
func (that *Board) Winner() Winner {
	if !that.IsGameOver() {
		return WinnerNone
	}

	side1, side2 := that.sideTotal(Side1), that.sideTotal(Side2)

	switch {
	case side1 > side2:
		return WinnerSide1
	case side2 > side1:
		return WinnerSide2
	default:
		return WinnerTie
	}
}

// FinalTally moves every seed left in the pits into its owner's store.
func (that *Board) FinalTally() {
	for _, side := range []int{Side1, Side2} {
		store := that.Store(side)
		for _, pit := range that.Pits(side) {
			store.AddSeeds(pit.Seeds())
			pit.Clear()
		}
	}
}

// PlayTurn sows the seeds of pit on side counter-clockwise. The opponent's
// store is skipped. A last seed landing in an empty own pit captures the
// opposite pit; a last seed landing in the own store earns an extra turn.
// Nothing is mutated when validation fails.
func (that *Board) PlayTurn(side, pit int) (Outcome, error) {
	if err := that.validateTurn(side, pit); err != nil {
		return OutcomeCompleted, err
	}

	current := that.Container(side, pit)
	remaining := current.Seeds()
	current.Clear()

	for remaining > 0 {
		current = that.Next(current)

		switch {
		case current.IsStore() && current.Side() != side:
			continue
		case remaining == 1 && current.IsPit() && current.Side() == side && current.Seeds() == 0:
			opposite := that.Opposite(current)
			that.Store(side).AddSeeds(opposite.Seeds() + 1)
			opposite.Clear()
		default:
			current.Increment()
		}

		remaining--
	}

	if current.IsStore() && current.Side() == side {
		return OutcomeExtraTurn, nil
	}

	return OutcomeCompleted, nil
}

func (that *Board) validateTurn(side, pit int) error {
	if !isValidSide(side) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, side)
	}

	if !that.IsValidPit(pit) {
		return fmt.Errorf("%w: pit %d, want 1-%d", apperror.ErrInvalidPit, pit, that.numPits)
	}

	if that.Container(side, pit).Seeds() == 0 {
		return fmt.Errorf("%w: pit %d", apperror.ErrEmptyPit, pit)
	}

	return nil
}
