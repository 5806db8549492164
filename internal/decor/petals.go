package decor

import (
	"math"
	"math/rand"
	"strings"
	"time"
)

// PetalCount is how many petals drift across the screen.
const PetalCount = 15

// PetalGlyph is drawn at each visible petal position.
const PetalGlyph = "•"

// Petal is one drifting petal. X is the starting column as a fraction of
// the width.
type Petal struct {
	Delay    time.Duration
	Duration time.Duration
	X        float64
}

// Point is a cell position in a frame.
type Point struct {
	Col, Row int
}

// Petals is a fixed set of petals. It holds no animation state; every frame
// is computed from the elapsed time alone.
type Petals struct {
	petals []Petal
}

// NewPetals draws n petals from seed: delay in [0, 20s), column in [0, 1),
// fall duration in [15s, 25s).
func NewPetals(seed int64, n int) Petals {
	r := rand.New(rand.NewSource(seed))
	ps := make([]Petal, n)
	for i := range ps {
		ps[i] = Petal{
			Delay:    time.Duration(r.Float64() * float64(20*time.Second)),
			X:        r.Float64(),
			Duration: 15*time.Second + time.Duration(r.Float64()*float64(10*time.Second)),
		}
	}
	return Petals{petals: ps}
}

// All returns a copy of the petals.
func (p Petals) All() []Petal {
	out := make([]Petal, len(p.petals))
	copy(out, p.petals)
	return out
}

// Positions returns where each visible petal sits after elapsed, in a
// width×height grid. Petals fade in and out over the first and last tenth
// of their fall and are not reported then.
func (p Petals) Positions(elapsed time.Duration, width, height int) []Point {
	if width <= 0 || height <= 0 {
		return nil
	}
	var pts []Point
	for _, pt := range p.petals {
		t := elapsed - pt.Delay
		if t < 0 || pt.Duration <= 0 {
			continue
		}
		phase := math.Mod(float64(t), float64(pt.Duration)) / float64(pt.Duration)
		if phase < 0.1 || phase > 0.9 {
			continue
		}
		row := int(phase * float64(height))

		// The sideways sway runs on a slightly shorter period than the fall
		// so successive passes trace different spirals.
		swayPeriod := 0.8 * float64(pt.Duration)
		sway := math.Sin(2*math.Pi*float64(t)/swayPeriod) * 3
		col := int(math.Round(pt.X*float64(width-1) + sway))
		if col < 0 || col >= width || row >= height {
			continue
		}
		pts = append(pts, Point{Col: col, Row: row})
	}
	return pts
}

// Frame renders the petals after elapsed as height lines of width cells.
func (p Petals) Frame(elapsed time.Duration, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for _, pt := range p.Positions(elapsed, width, height) {
		grid[pt.Row][pt.Col] = PetalGlyph
	}
	lines := make([]string, height)
	for r := range grid {
		lines[r] = strings.Join(grid[r], "")
	}
	return strings.Join(lines, "\n")
}
