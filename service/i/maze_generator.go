package i

import (
	"context"

	"github.com/google/uuid"

	"github.com/mazeforge/world-api/world"
)

// GenerateRequest carries the parameters for one maze generation run.
// Zero Seed means "pick one from the clock"; any other value makes the
// run fully reproducible.
type GenerateRequest struct {
	Width      int
	Height     int
	CellSize   float64
	HazardProb float64
	PickupProb float64
	Seed       int64
}

// MazeGenerator generates maze world scenes and keeps the finished
// ones addressable until dropped. Scenes live in memory only.
type MazeGenerator interface {
	// Generate carves and tags a new maze and returns its scene.
	Generate(ctx context.Context, req GenerateRequest) (*world.Scene, error)

	// ByID returns a previously generated scene.
	ByID(ctx context.Context, id uuid.UUID) (*world.Scene, error)

	// Drop forgets a previously generated scene.
	Drop(ctx context.Context, id uuid.UUID) error
}
