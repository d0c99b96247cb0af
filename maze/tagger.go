package maze

import "fmt"

// TagHazardsAndPickups walks every cell except the start cell in
// row-major order and tags it by probability. Per cell the draw order
// is fixed: one Float64 draw against probHazard marks a hazard; only
// when that roll fails, a second independent Float64 draw against
// probPickup marks a pickup. A cell is therefore never both, the start
// cell is never either, and the effective pickup rate is
// (1-probHazard)*probPickup rather than probPickup.
func TagHazardsAndPickups(g *Grid, start CellPosition, probHazard, probPickup float64, rng Rand) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBound(start.Row, start.Col) {
		return ErrOutOfBounds
	}
	if probHazard < 0 || probHazard > 1 {
		return fmt.Errorf("hazard probability %v outside [0,1]", probHazard)
	}
	if probPickup < 0 || probPickup > 1 {
		return fmt.Errorf("pickup probability %v outside [0,1]", probPickup)
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if row == start.Row && col == start.Col {
				continue
			}
			cell := g.Cells[row][col]
			if rng.Float64() < probHazard {
				cell.Hazard = true
			} else if rng.Float64() < probPickup {
				cell.Pickup = true
			}
		}
	}
	return nil
}
