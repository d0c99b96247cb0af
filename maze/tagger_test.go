package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCarvedGrid(t *testing.T, width, height int, seed int64) *Grid {
	t.Helper()
	g, err := New(width, height, 1.0)
	assert.NoError(t, err)
	assert.NoError(t, Carve(g, CellPosition{}, rand.New(rand.NewSource(seed))))
	return g
}

func TestTagHazardsAndPickups(t *testing.T) {
	start := CellPosition{}

	t.Run("start cell is never tagged", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			g := newCarvedGrid(t, 5, 5, seed)
			rng := rand.New(rand.NewSource(seed))
			assert.NoError(t, TagHazardsAndPickups(g, start, 1.0, 1.0, rng))

			assert.False(t, g.Cells[0][0].Hazard)
			assert.False(t, g.Cells[0][0].Pickup)
		}
	})

	t.Run("hazard and pickup are mutually exclusive", func(t *testing.T) {
		g := newCarvedGrid(t, 10, 10, 3)
		rng := rand.New(rand.NewSource(3))
		assert.NoError(t, TagHazardsAndPickups(g, start, 0.5, 0.9, rng))

		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				cell := g.Cells[row][col]
				assert.False(t, cell.Hazard && cell.Pickup)
			}
		}
	})

	t.Run("hazard probability one tags every non-start cell", func(t *testing.T) {
		g := newCarvedGrid(t, 4, 4, 11)
		rng := rand.New(rand.NewSource(11))
		assert.NoError(t, TagHazardsAndPickups(g, start, 1.0, 0.0, rng))

		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				if row == 0 && col == 0 {
					continue
				}
				assert.True(t, g.Cells[row][col].Hazard)
				assert.False(t, g.Cells[row][col].Pickup)
			}
		}
	})

	t.Run("pickup probability one fills the miss of a zero hazard roll", func(t *testing.T) {
		g := newCarvedGrid(t, 4, 4, 12)
		rng := rand.New(rand.NewSource(12))
		assert.NoError(t, TagHazardsAndPickups(g, start, 0.0, 1.0, rng))

		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				if row == 0 && col == 0 {
					continue
				}
				assert.False(t, g.Cells[row][col].Hazard)
				assert.True(t, g.Cells[row][col].Pickup)
			}
		}
	})

	t.Run("zero probabilities leave the grid untagged", func(t *testing.T) {
		g := newCarvedGrid(t, 6, 6, 13)
		rng := rand.New(rand.NewSource(13))
		assert.NoError(t, TagHazardsAndPickups(g, start, 0.0, 0.0, rng))

		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				assert.False(t, g.Cells[row][col].Tagged())
			}
		}
	})

	t.Run("rates converge to p and (1-p)*q", func(t *testing.T) {
		const (
			probHazard = 0.3
			probPickup = 0.5
			runs       = 200
		)

		rng := rand.New(rand.NewSource(99))
		hazards, pickups, total := 0, 0, 0
		for i := 0; i < runs; i++ {
			g, err := New(20, 20, 1.0)
			assert.NoError(t, err)
			assert.NoError(t, TagHazardsAndPickups(g, start, probHazard, probPickup, rng))

			for row := 0; row < g.Height; row++ {
				for col := 0; col < g.Width; col++ {
					if row == 0 && col == 0 {
						continue
					}
					total++
					if g.Cells[row][col].Hazard {
						hazards++
					}
					if g.Cells[row][col].Pickup {
						pickups++
					}
				}
			}
		}

		hazardRate := float64(hazards) / float64(total)
		pickupRate := float64(pickups) / float64(total)
		assert.InDelta(t, probHazard, hazardRate, 0.02)
		assert.InDelta(t, (1-probHazard)*probPickup, pickupRate, 0.02)
	})

	t.Run("fixed seed reproduces the tagging", func(t *testing.T) {
		tag := func() *Grid {
			g := newCarvedGrid(t, 8, 8, 21)
			assert.NoError(t, TagHazardsAndPickups(g, start, 0.25, 0.4, rand.New(rand.NewSource(77))))
			return g
		}

		assert.Equal(t, tag().String(), tag().String())
	})

	t.Run("1x1 grid has nothing to tag", func(t *testing.T) {
		g := newCarvedGrid(t, 1, 1, 1)
		rng := rand.New(rand.NewSource(1))
		assert.NoError(t, TagHazardsAndPickups(g, start, 1.0, 1.0, rng))
		assert.False(t, g.Cells[0][0].Tagged())
	})

	t.Run("rejects out-of-range probabilities", func(t *testing.T) {
		g := newCarvedGrid(t, 3, 3, 1)
		rng := rand.New(rand.NewSource(1))

		assert.Error(t, TagHazardsAndPickups(g, start, -0.1, 0.5, rng))
		assert.Error(t, TagHazardsAndPickups(g, start, 0.5, 1.1, rng))
	})

	t.Run("rejects nil grid and bad start", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		assert.ErrorIs(t, TagHazardsAndPickups(nil, start, 0.5, 0.5, rng), ErrNilGrid)

		g := newCarvedGrid(t, 3, 3, 1)
		err := TagHazardsAndPickups(g, CellPosition{Row: 9, Col: 9}, 0.5, 0.5, rng)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}
