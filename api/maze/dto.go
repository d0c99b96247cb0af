// Package mazeapi provides structures and handlers for maze generation requests.
package mazeapi

// GenerateRequest represents a request to generate a new maze scene.
// Omitted fields fall back to the configured defaults; a zero seed
// yields a time-seeded, non-reproducible maze.
type GenerateRequest struct {
	Width      *int     `json:"width" binding:"omitempty,min=1"`
	Height     *int     `json:"height" binding:"omitempty,min=1"`
	CellSize   *float64 `json:"cell_size" binding:"omitempty,gt=0"`
	HazardProb *float64 `json:"hazard_prob" binding:"omitempty,gte=0,lte=1"`
	PickupProb *float64 `json:"pickup_prob" binding:"omitempty,gte=0,lte=1"`
	Seed       int64    `json:"seed"`
}

// Defaults are the generation parameters applied when a request omits them.
type Defaults struct {
	Width      int
	Height     int
	CellSize   float64
	HazardProb float64
	PickupProb float64
}
