package sim

// Random draws the next value of the deterministic source
// The seed advances once per call and the ghosts' positions perturb the result,
// so identical seeds and ghost histories reproduce identical choices
func (g *Game) Random() int {
	n := g.seed
	g.seed++
	for _, gh := range g.ghosts {
		n += gh.Tile.X * gh.Tile.Y * gh.Offset
	}
	if n < 0 {
		return -n
	}
	return n
}
