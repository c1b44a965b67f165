package entity

const (
	Side1 = 1
	Side2 = 2
)

// Kind tells a pit from a store.
type Kind int

const (
	KindPit Kind = iota
	KindStore
)

func (k Kind) String() string {
	if k == KindStore {
		return "store"
	}
	return "pit"
}

// storeID is the id every store carries; pits are numbered from 1.
const storeID = 0

// noOpposite marks a container without a mirror slot.
const noOpposite = -1

// Container is one pit or store on the board. Links to the next and
// opposite containers are slot indices into the owning Board.
type Container struct {
	index    int
	id       int
	side     int
	kind     Kind
	seeds    int
	next     int
	opposite int
}

func (that *Container) Index() int { return that.index }

// ID returns the pit number (1..N), or 0 for a store.
func (that *Container) ID() int { return that.id }

func (that *Container) Side() int { return that.side }

func (that *Container) Kind() Kind { return that.kind }

func (that *Container) IsPit() bool { return that.kind == KindPit }

func (that *Container) IsStore() bool { return that.kind == KindStore }

func (that *Container) Seeds() int { return that.seeds }

func (that *Container) SetSeeds(n int) { that.seeds = n }

func (that *Container) AddSeeds(n int) { that.seeds += n }

func (that *Container) Increment() { that.seeds++ }

func (that *Container) Clear() { that.seeds = 0 }

// Next returns the slot index of the following container, counter-clockwise.
func (that *Container) Next() int { return that.next }

// Opposite returns the slot index of the mirror pit. Stores report false.
func (that *Container) Opposite() (int, bool) {
	if that.opposite == noOpposite {
		return 0, false
	}
	return that.opposite, true
}
