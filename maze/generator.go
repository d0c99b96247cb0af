package maze

// Rand is the source of randomness consumed by generation. It is a
// single linear sequence of draws; *math/rand.Rand satisfies it, and
// seeding one reproduces the maze exactly.
type Rand interface {
	// Intn returns a uniform int in [0, n). n must be positive.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// Carve cuts a perfect maze into the grid using randomized iterative
// depth-first search with an explicit backtrack stack.
//
// Starting from start, each step enumerates the unvisited in-bounds
// neighbors of the current cell in the order North, East, South, West
// and picks one uniformly with a single rng.Intn draw. The shared wall
// is opened on both sides, the current cell is pushed onto the stack
// and the chosen neighbor becomes current. When no unvisited neighbor
// remains the stack is popped; when the stack is empty every cell has
// been visited and carving stops.
//
// Excluding visited neighbors from candidacy is what makes the result
// a spanning tree: connected, acyclic, exactly Width*Height-1 open
// passages.
func Carve(g *Grid, start CellPosition, rng Rand) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBound(start.Row, start.Col) {
		return ErrOutOfBounds
	}

	current := start
	g.Cells[current.Row][current.Col].Visited = true
	var stack []CellPosition

	for {
		candidates := unvisitedNeighbors(g, current)
		switch {
		case len(candidates) > 0:
			move := candidates[rng.Intn(len(candidates))]
			g.OpenWall(move)
			stack = append(stack, current)
			g.Cells[move.To.Row][move.To.Col].Visited = true
			current = move.To
		case len(stack) > 0:
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		default:
			return nil
		}
	}
}

// unvisitedNeighbors filters Neighbors down to cells the carve has not
// entered yet, preserving the North, East, South, West order.
func unvisitedNeighbors(g *Grid, pos CellPosition) []Move {
	var result []Move
	for _, move := range g.Neighbors(pos) {
		if !g.Cells[move.To.Row][move.To.Col].Visited {
			result = append(result, move)
		}
	}
	return result
}
