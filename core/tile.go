package core

// Point is an integer vector used for pixel offsets and displacements
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Scale multiplies both components by n
func (p Point) Scale(n int) Point {
	return Point{p.X * n, p.Y * n}
}

// Tile is a cell of the movement grid
type Tile struct {
	X, Y int
}

// Step returns the neighbouring tile n steps along d
func (t Tile) Step(d Direction, n int) Tile {
	v := d.Vector()
	return Tile{t.X + v.X*n, t.Y + v.Y*n}
}

// DistanceSq is the squared euclidean distance in tiles
func (t Tile) DistanceSq(o Tile) int {
	dx := t.X - o.X
	dy := t.Y - o.Y
	return dx*dx + dy*dy
}
