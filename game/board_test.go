package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropFillsColumnBottomUp(t *testing.T) {
	for column := 0; column < Columns; column++ {
		b := NewBoard()
		for want := 0; want < Rows; want++ {
			row, err := b.Drop(column, PlayerA)
			require.NoError(t, err)
			assert.Equal(t, want, row, "column %d", column)
		}

		before := *b
		row, err := b.Drop(column, PlayerB)
		assert.ErrorIs(t, err, ErrColumnFull)
		assert.Equal(t, -1, row)
		assert.Equal(t, before.moves, b.moves)
		for r := 0; r < Rows; r++ {
			assert.Equal(t, PlayerA, b.Occupant(column, r))
		}
		assert.True(t, b.IsColumnFull(column))
	}
}

func TestOccupantAfterSingleDrop(t *testing.T) {
	for column := 0; column < Columns; column++ {
		for _, player := range []Stone{PlayerA, PlayerB} {
			b := NewBoard()
			row, err := b.Drop(column, player)
			require.NoError(t, err)
			require.Equal(t, 0, row)

			for c := 0; c < Columns; c++ {
				for r := 0; r < Rows; r++ {
					want := Empty
					if c == column && r == row {
						want = player
					}
					assert.Equal(t, want, b.Occupant(c, r), "(%d,%d)", c, r)
				}
			}
		}
	}
}

func TestOccupantOutOfBounds(t *testing.T) {
	b := NewBoard()
	_, err := b.Drop(0, PlayerA)
	require.NoError(t, err)

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {Columns, 0}, {0, Rows}, {-1, -1}, {Columns, Rows}} {
		assert.Equal(t, Empty, b.Occupant(pos[0], pos[1]), "%v", pos)
	}
}

func TestDropRejectsBadInput(t *testing.T) {
	b := NewBoard()

	_, err := b.Drop(-1, PlayerA)
	assert.ErrorIs(t, err, ErrInvalidColumn)
	_, err = b.Drop(Columns, PlayerA)
	assert.ErrorIs(t, err, ErrInvalidColumn)
	_, err = b.Drop(0, Empty)
	assert.ErrorIs(t, err, ErrInvalidStone)

	assert.Zero(t, b.Moves())
}

func TestResetIsIdempotent(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 20; i++ {
		_, err := b.Drop(i%Columns, PlayerA)
		require.NoError(t, err)
	}

	b.Reset()
	b.Reset()

	assert.Zero(t, b.Moves())
	for c := 0; c < Columns; c++ {
		assert.Zero(t, b.Height(c))
		for r := 0; r < Rows; r++ {
			assert.Equal(t, Empty, b.Occupant(c, r))
		}
	}
	for c := 0; c < Columns; c++ {
		for r := 0; r < Rows; r++ {
			row, err := b.Drop(c, PlayerB)
			require.NoError(t, err)
			assert.Equal(t, r, row)
		}
	}
	assert.True(t, b.IsFull())
}

func TestStoneOther(t *testing.T) {
	assert.Equal(t, PlayerB, PlayerA.Other())
	assert.Equal(t, PlayerA, PlayerB.Other())
	assert.Equal(t, Empty, Empty.Other())
}
