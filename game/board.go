package game

// Board is the 7-column stacking grid. Each column holds its stones bottom-up,
// so the stone at index 0 is the lowest one.
type Board struct {
	columns [Columns][]Stone
	moves   int
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.columns {
		b.columns[i] = make([]Stone, 0, Rows)
	}
	return b
}

// Drop places a stone on top of the given column and returns the row it landed on,
// 0 being the bottom. A full column returns ErrColumnFull and leaves the board untouched.
func (b *Board) Drop(column int, player Stone) (int, error) {
	if !validColumn(column) {
		return -1, ErrInvalidColumn
	}
	if !player.IsPlayer() {
		return -1, ErrInvalidStone
	}
	if len(b.columns[column]) == Rows {
		return -1, ErrColumnFull
	}
	b.columns[column] = append(b.columns[column], player)
	b.moves++
	return len(b.columns[column]) - 1, nil
}

// Occupant returns the stone at (column, row). Coordinates outside the board or
// above the top of a column are Empty.
func (b *Board) Occupant(column, row int) Stone {
	if !validColumn(column) || row < 0 || row >= len(b.columns[column]) {
		return Empty
	}
	return b.columns[column][row]
}

// Height returns the number of stones in a column.
func (b *Board) Height(column int) int {
	if !validColumn(column) {
		return 0
	}
	return len(b.columns[column])
}

// IsColumnFull returns true if the column cannot take another stone.
// Out-of-range columns count as full.
func (b *Board) IsColumnFull(column int) bool {
	if !validColumn(column) {
		return true
	}
	return len(b.columns[column]) == Rows
}

// IsFull returns true if no column accepts a drop.
func (b *Board) IsFull() bool {
	return b.moves == Columns*Rows
}

// Moves returns the number of stones on the board.
func (b *Board) Moves() int {
	return b.moves
}

// Reset removes every stone.
func (b *Board) Reset() {
	for i := range b.columns {
		b.columns[i] = b.columns[i][:0]
	}
	b.moves = 0
}

func validColumn(column int) bool {
	return column >= 0 && column < Columns
}
