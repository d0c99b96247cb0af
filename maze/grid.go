/*
Package maze provides tools for creating and carving rectangular mazes.

It defines the Grid structure, composed of Cell values that carry wall
configurations and optional hazard/pickup tags. Carving uses randomized
iterative depth-first search (recursive backtracking) and always yields
a perfect maze: the open-passage graph is a spanning tree over the grid.

All randomness flows through an explicitly supplied Rand source, so a
fixed seed reproduces the maze bit for bit.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by grid construction and generation.
var (
	ErrInvalidDimensions = errors.New("width and height must be at least 1")
	ErrInvalidCellSize   = errors.New("cell size must be positive")
	ErrNilGrid           = errors.New("grid is nil")
	ErrOutOfBounds       = errors.New("cell position out of grid bounds")
)

// Grid is a rectangular maze grid. It owns every cell for the lifetime
// of the maze; cells are mutated in place by Carve and
// TagHazardsAndPickups and never reallocated.
type Grid struct {
	Width    int       // Number of columns
	Height   int       // Number of rows
	CellSize float64   // World-space edge length of one cell; unused by generation
	Cells    [][]*Cell // Row-major grid of cells
}

// New initializes a grid of the given dimensions with every cell fully
// walled, unvisited and untagged. It rejects non-positive dimensions
// and a non-positive cell size.
func New(width, height int, cellSize float64) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	if cellSize <= 0 {
		return nil, ErrInvalidCellSize
	}

	cells := make([][]*Cell, height)
	for i := range cells {
		cells[i] = make([]*Cell, width)
		for j := range cells[i] {
			cells[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		Cells:    cells,
	}, nil
}

// InBound reports whether the given position is inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// CellAt returns the cell at the given position. An out-of-range
// position is a programming error, not a runtime condition: CellAt
// panics rather than returning an error.
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.InBound(row, col) {
		panic(fmt.Sprintf("maze: cell position (%d,%d) outside %dx%d grid", row, col, g.Width, g.Height))
	}
	return g.Cells[row][col]
}

// Neighbors returns the in-bounds moves from pos, in the fixed order
// North, East, South, West.
func (g *Grid) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, d := range directionOrder {
		neighbor := CellPosition{Row: pos.Row + d.delta.Row, Col: pos.Col + d.delta.Col}
		if g.InBound(neighbor.Row, neighbor.Col) {
			result = append(result, Move{From: pos, To: neighbor, Direction: d.name})
		}
	}
	return result
}

// OpenWall clears the wall crossed by the given move. The shared wall
// is represented redundantly on both cells, so both flags are cleared
// together to keep the model consistent.
func (g *Grid) OpenWall(move Move) {
	switch move.Direction {
	case North:
		g.Cells[move.From.Row][move.From.Col].NorthWall = false
		g.Cells[move.To.Row][move.To.Col].SouthWall = false
	case South:
		g.Cells[move.From.Row][move.From.Col].SouthWall = false
		g.Cells[move.To.Row][move.To.Col].NorthWall = false
	case East:
		g.Cells[move.From.Row][move.From.Col].EastWall = false
		g.Cells[move.To.Row][move.To.Col].WestWall = false
	case West:
		g.Cells[move.From.Row][move.From.Col].WestWall = false
		g.Cells[move.To.Row][move.To.Col].EastWall = false
	}
}

// String renders the maze as ASCII art. Hazard cells are marked with
// '!' and pickup cells with '*'.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.Width) + "\n")

	for row := 0; row < g.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			mark := " "
			if cell.Hazard {
				mark = "!"
			} else if cell.Pickup {
				mark = "*"
			}
			if !cell.EastWall {
				cellRow += " " + mark + "  "
			} else {
				cellRow += " " + mark + " |"
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for col := 0; col < g.Width; col++ {
			if !g.Cells[row][col].SouthWall {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
