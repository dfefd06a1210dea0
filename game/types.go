// Package game contains the Connect-4 board, win detection and the turn cycle for termfour.
package game

const (
	Columns = 7
	Rows    = 6
	ToWin   = 4
)

// Stone is the occupant of a board cell.
type Stone int

const (
	Empty Stone = iota
	PlayerA
	PlayerB
)

// Other returns the opponent of s. Empty has no opponent and is returned unchanged.
func (s Stone) Other() Stone {
	switch s {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

// IsPlayer returns true for PlayerA and PlayerB.
func (s Stone) IsPlayer() bool {
	return s == PlayerA || s == PlayerB
}

func (s Stone) String() string {
	switch s {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return "empty"
}

// Error is a game rule violation.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull    Error = "column is full"
	ErrInvalidColumn Error = "column out of range"
	ErrInvalidStone  Error = "stone must belong to a player"
	ErrRoundOver     Error = "round is over"
)
