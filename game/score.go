package game

// Score tallies wins per player across rounds.
type Score struct {
	A int
	B int
}

// Add credits one win to player. Empty is ignored.
func (s *Score) Add(player Stone) {
	switch player {
	case PlayerA:
		s.A++
	case PlayerB:
		s.B++
	}
}

// Of returns the wins of player.
func (s Score) Of(player Stone) int {
	switch player {
	case PlayerA:
		return s.A
	case PlayerB:
		return s.B
	}
	return 0
}
