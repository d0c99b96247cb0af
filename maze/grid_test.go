package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("initializes fully walled unvisited cells", func(t *testing.T) {
		g, err := New(4, 3, 1.0)
		assert.NoError(t, err)
		assert.Equal(t, 4, g.Width)
		assert.Equal(t, 3, g.Height)
		assert.Equal(t, 1.0, g.CellSize)
		assert.Len(t, g.Cells, 3)

		for row := 0; row < g.Height; row++ {
			assert.Len(t, g.Cells[row], 4)
			for col := 0; col < g.Width; col++ {
				cell := g.Cells[row][col]
				assert.True(t, cell.NorthWall)
				assert.True(t, cell.SouthWall)
				assert.True(t, cell.EastWall)
				assert.True(t, cell.WestWall)
				assert.False(t, cell.Visited)
				assert.False(t, cell.Hazard)
				assert.False(t, cell.Pickup)
			}
		}
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := New(0, 3, 1.0)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = New(3, -1, 1.0)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("rejects non-positive cell size", func(t *testing.T) {
		_, err := New(3, 3, 0)
		assert.ErrorIs(t, err, ErrInvalidCellSize)
	})
}

func TestCellAt(t *testing.T) {
	g, err := New(3, 2, 1.0)
	assert.NoError(t, err)

	t.Run("returns the owned cell", func(t *testing.T) {
		cell := g.CellAt(1, 2)
		assert.Same(t, g.Cells[1][2], cell)
	})

	t.Run("panics on out-of-range lookup", func(t *testing.T) {
		assert.Panics(t, func() { g.CellAt(2, 0) })
		assert.Panics(t, func() { g.CellAt(0, 3) })
		assert.Panics(t, func() { g.CellAt(-1, 0) })
	})
}

func TestNeighbors(t *testing.T) {
	g, err := New(3, 3, 1.0)
	assert.NoError(t, err)

	t.Run("corner cell has two neighbors in fixed order", func(t *testing.T) {
		moves := g.Neighbors(CellPosition{Row: 0, Col: 0})
		assert.Len(t, moves, 2)
		assert.Equal(t, East, moves[0].Direction)
		assert.Equal(t, South, moves[1].Direction)
	})

	t.Run("center cell enumerates north east south west", func(t *testing.T) {
		moves := g.Neighbors(CellPosition{Row: 1, Col: 1})
		assert.Len(t, moves, 4)
		dirs := []string{moves[0].Direction, moves[1].Direction, moves[2].Direction, moves[3].Direction}
		assert.Equal(t, []string{North, East, South, West}, dirs)
	})
}

func TestOpenWall(t *testing.T) {
	g, err := New(2, 2, 1.0)
	assert.NoError(t, err)

	g.OpenWall(Move{
		From:      CellPosition{Row: 0, Col: 0},
		To:        CellPosition{Row: 0, Col: 1},
		Direction: East,
	})

	assert.False(t, g.Cells[0][0].EastWall)
	assert.False(t, g.Cells[0][1].WestWall)
	assert.True(t, g.Cells[0][0].NorthWall)
	assert.True(t, g.Cells[0][1].EastWall)
}

func TestString(t *testing.T) {
	g, err := New(1, 1, 1.0)
	assert.NoError(t, err)
	assert.Equal(t, "+---+\n|   |\n+---+\n", g.String())

	g.Cells[0][0].Hazard = true
	assert.Equal(t, "+---+\n| ! |\n+---+\n", g.String())
}
