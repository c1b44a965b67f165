package entity

type Player struct {
	name string
	side int
}

func NewPlayer(name string, side int) *Player {
	return &Player{
		name: name,
		side: side,
	}
}

func (that *Player) Name() string { return that.name }

func (that *Player) Side() int { return that.side }
