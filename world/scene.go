// Package world turns a finished maze grid into a world-space scene
// description for a game engine to instantiate. The package never
// touches an engine: it produces pure data plus a hook registry the
// engine wires its own touch callbacks into.
package world

import (
	"github.com/google/uuid"

	"github.com/mazeforge/world-api/maze"
)

// Node kinds placed into a scene.
const (
	NodeHazard = "hazard"
	NodePickup = "pickup"
)

// Wall sides emitted as segments.
const (
	SideNorth = "north"
	SideEast  = "east"
	SideSouth = "south"
	SideWest  = "west"
)

// WallSegment is one wall of one cell, positioned at its world-space
// center. Shared boundaries are emitted once, owned by the cell on the
// north/west side.
type WallSegment struct {
	Row        int     `json:"row"`
	Col        int     `json:"col"`
	Side       string  `json:"side"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Horizontal bool    `json:"horizontal"`
}

// Node is a hazard or pickup placed at a cell's world-space center.
// The ID is unique within the scene so an engine can key its touch
// handlers to it and detach them later, e.g. when a pickup is
// collected.
type Node struct {
	ID   uuid.UUID `json:"id"`
	Kind string    `json:"kind"`
	Row  int       `json:"row"`
	Col  int       `json:"col"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
}

// Scene is the world-space description of one generated maze.
type Scene struct {
	ID       uuid.UUID         `json:"id"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	CellSize float64           `json:"cell_size"`
	Seed     int64             `json:"seed"`
	Start    maze.CellPosition `json:"start"`
	Walls    []WallSegment     `json:"walls"`
	Hazards  []Node            `json:"hazards"`
	Pickups  []Node            `json:"pickups"`
}

// NodeByID returns the hazard or pickup node with the given ID, or nil.
func (s *Scene) NodeByID(id uuid.UUID) *Node {
	for i := range s.Hazards {
		if s.Hazards[i].ID == id {
			return &s.Hazards[i]
		}
	}
	for i := range s.Pickups {
		if s.Pickups[i].ID == id {
			return &s.Pickups[i]
		}
	}
	return nil
}
