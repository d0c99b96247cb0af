package maze

// Cell represents a single cell in a maze grid.
// It includes wall flags for each side, a marker used while carving,
// and the hazard/pickup tag assigned after carving.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool
	// Visited is true once the carving pass has entered this cell.
	Visited bool
	// Hazard marks the cell as damaging to actors that enter it.
	Hazard bool
	// Pickup marks the cell as holding a collectible.
	Pickup bool
}

// Tagged reports whether the cell carries either a hazard or a pickup.
func (c *Cell) Tagged() bool {
	return c.Hazard || c.Pickup
}

// CellPosition is a 0-based cell coordinate in the maze grid.
type CellPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move represents a step from one cell to an adjacent one in a specific direction.
type Move struct {
	From      CellPosition
	To        CellPosition
	Direction string
}

// Cardinal direction names used in Move values.
const (
	North = "North"
	East  = "East"
	South = "South"
	West  = "West"
)

// directionOrder fixes the enumeration order of candidate neighbors.
// Carving consumes one random draw per step indexed into the unvisited
// subset of this list, so the order is part of the reproducibility
// contract: fixed seed means fixed maze.
var directionOrder = []struct {
	name  string
	delta CellPosition
}{
	{North, CellPosition{Row: -1, Col: 0}},
	{East, CellPosition{Row: 0, Col: 1}},
	{South, CellPosition{Row: 1, Col: 0}},
	{West, CellPosition{Row: 0, Col: -1}},
}
