package game

// axes holds one direction per line through a cell; the opposite direction is scanned too.
var axes = [4][2]int{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // rising diagonal
	{1, -1}, // falling diagonal
}

// CheckWin reports whether the stone just placed at (column, row) completes four in a row
// for player. Only lines through that cell are inspected.
func CheckWin(b *Board, column, row int, player Stone) bool {
	if !player.IsPlayer() || b.Occupant(column, row) != player {
		return false
	}
	for _, d := range axes {
		n := countInDirection(b, column, row, d[0], d[1], player) +
			countInDirection(b, column, row, -d[0], -d[1], player)
		if n >= ToWin-1 {
			return true
		}
	}
	return false
}

// countInDirection counts consecutive stones of player starting next to (column, row)
// and walking by (dc, dr). The origin cell is not counted.
func countInDirection(b *Board, column, row, dc, dr int, player Stone) int {
	count := 0
	c, r := column+dc, row+dr
	for b.Occupant(c, r) == player {
		count++
		c += dc
		r += dr
	}
	return count
}
