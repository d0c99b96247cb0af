package world

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mazeforge/world-api/maze"
)

// ErrNilGrid is returned when Build receives no grid.
var ErrNilGrid = errors.New("grid is nil")

// Build enumerates every cell of a finished grid and produces its
// world-space scene. Cell (row, col) occupies the square from
// (col, row)*CellSize to (col+1, row+1)*CellSize; nodes sit at the
// square's center, wall segments at the center of their edge.
//
// Each wall boundary is emitted exactly once: every cell contributes
// its north and west walls, the last column its east walls and the
// last row its south walls.
func Build(g *maze.Grid, start maze.CellPosition, seed int64) (*Scene, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	scene := &Scene{
		ID:       uuid.New(),
		Width:    g.Width,
		Height:   g.Height,
		CellSize: g.CellSize,
		Seed:     seed,
		Start:    start,
	}

	size := g.CellSize
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			centerX := (float64(col) + 0.5) * size
			centerY := (float64(row) + 0.5) * size

			if cell.NorthWall {
				scene.Walls = append(scene.Walls, WallSegment{
					Row: row, Col: col, Side: SideNorth,
					X: centerX, Y: float64(row) * size, Horizontal: true,
				})
			}
			if cell.WestWall {
				scene.Walls = append(scene.Walls, WallSegment{
					Row: row, Col: col, Side: SideWest,
					X: float64(col) * size, Y: centerY, Horizontal: false,
				})
			}
			if col == g.Width-1 && cell.EastWall {
				scene.Walls = append(scene.Walls, WallSegment{
					Row: row, Col: col, Side: SideEast,
					X: float64(col+1) * size, Y: centerY, Horizontal: false,
				})
			}
			if row == g.Height-1 && cell.SouthWall {
				scene.Walls = append(scene.Walls, WallSegment{
					Row: row, Col: col, Side: SideSouth,
					X: centerX, Y: float64(row+1) * size, Horizontal: true,
				})
			}

			switch {
			case cell.Hazard:
				scene.Hazards = append(scene.Hazards, Node{
					ID: uuid.New(), Kind: NodeHazard,
					Row: row, Col: col, X: centerX, Y: centerY,
				})
			case cell.Pickup:
				scene.Pickups = append(scene.Pickups, Node{
					ID: uuid.New(), Kind: NodePickup,
					Row: row, Col: col, X: centerX, Y: centerY,
				})
			}
		}
	}

	return scene, nil
}
