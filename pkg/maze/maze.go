package maze

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultVariants are the building models scattered through the maze
var DefaultVariants = []string{
	"building-a",
	"building-b",
	"building-c",
	"building-f",
}

// Placement is one building to load and where to put it
type Placement struct {
	Variant  string
	Position mgl64.Vec3
	Scale    float64
}

// Generator lays buildings out in random clumps
type Generator struct {
	Clumps      int      // number of clumps
	MaxClump    int      // buildings per clump are drawn from 1..MaxClump
	Extent      float64  // clump centres fall in [-Extent/2, Extent/2)
	Jitter      float64  // spread of buildings around a clump centre
	Variants    []string // model names to choose from
	MinScale    float64
	ScaleSpread float64
	ScaleBoost  float64
}

// NewGenerator creates a generator with the stock maze settings
func NewGenerator() *Generator {
	return &Generator{
		Clumps:      15,
		MaxClump:    3,
		Extent:      40,
		Jitter:      4,
		Variants:    DefaultVariants,
		MinScale:    0.5,
		ScaleSpread: 0.5,
		ScaleBoost:  3,
	}
}

// Generate returns the building placements for a seed.
// The same seed always yields the same layout.
func (g *Generator) Generate(seed int64) []Placement {
	rng := rand.New(rand.NewSource(seed))
	if len(g.Variants) == 0 || g.Clumps <= 0 {
		return nil
	}
	maxClump := g.MaxClump
	if maxClump < 1 {
		maxClump = 1
	}

	placements := make([]Placement, 0, g.Clumps*maxClump)
	for i := 0; i < g.Clumps; i++ {
		clumpSize := rng.Intn(maxClump) + 1
		xCenter := math.Floor(rng.Float64()*g.Extent - g.Extent/2)
		zCenter := math.Floor(rng.Float64()*g.Extent - g.Extent/2)

		for j := 0; j < clumpSize; j++ {
			x := xCenter + (rng.Float64()-0.5)*g.Jitter
			z := zCenter + (rng.Float64()-0.5)*g.Jitter
			variant := g.Variants[rng.Intn(len(g.Variants))]
			scale := (g.MinScale + rng.Float64()*g.ScaleSpread) * g.ScaleBoost

			placements = append(placements, Placement{
				Variant:  variant,
				Position: mgl64.Vec3{x, 0, z},
				Scale:    scale,
			})
		}
	}
	return placements
}
