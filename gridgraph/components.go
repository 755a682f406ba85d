package gridgraph

// ConnectedComponents groups the open cells into regions under gg's
// connectivity. Each region lists row-major cell indices in BFS order;
// regions are ordered by their first cell in a row-major scan.
// Coordinate converts an index back to (x, y).
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var regions [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			first := gg.index(x, y)
			if !gg.Passable(x, y) || seen[first] {
				continue
			}
			seen[first] = true
			region := []int{first}

			for qi := 0; qi < len(region); qi++ {
				cx, cy := gg.Coordinate(region[qi])
				for _, d := range gg.neighborOffsets {
					nx, ny := cx+d[0], cy+d[1]
					if !gg.Passable(nx, ny) {
						continue
					}
					if ni := gg.index(nx, ny); !seen[ni] {
						seen[ni] = true
						region = append(region, ni)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}

// SameRegion reports whether open cells a and b are connected.
// Walls and out-of-range cells are never connected to anything.
func (gg *GridGraph) SameRegion(a, b Cell) bool {
	if !gg.Passable(a.X, a.Y) || !gg.Passable(b.X, b.Y) {
		return false
	}
	ia, ib := gg.index(a.X, a.Y), gg.index(b.X, b.Y)
	for _, region := range gg.ConnectedComponents() {
		var hasA, hasB bool
		for _, i := range region {
			hasA = hasA || i == ia
			hasB = hasB || i == ib
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}
