package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is either placed at a position or eaten (needs regeneration).
type Food struct {
	pos    core.Position
	exists bool
}

// Exists returns food placed at p.
func Exists(p core.Position) Food {
	return Food{pos: p, exists: true}
}

// Eaten returns the sentinel meaning "no food placed".
func Eaten() Food {
	return Food{}
}

// IsEaten reports whether the food needs regeneration.
func (f Food) IsEaten() bool {
	return !f.exists
}

// Position returns the food position and whether food exists.
func (f Food) Position() (core.Position, bool) {
	return f.pos, f.exists
}

// At reports whether food exists at p.
func (f Food) At(p core.Position) bool {
	return f.exists && f.pos == p
}

// Generator places food using its own random source.
type Generator struct {
	rng         *rand.Rand
	avoidSnake  bool
	maxAttempts int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithAvoidSnake makes Generate redraw up to attempts times while the
// drawn cell is under the snake. The last draw is kept if all collide.
func WithAvoidSnake(attempts int) GeneratorOption {
	return func(g *Generator) {
		g.avoidSnake = true
		g.maxAttempts = max(attempts, 1)
	}
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64, opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws a food position with each coordinate in [2, bound).
// By default the snake is not consulted, so food may land under it.
// Returns Eaten when the bounds have no interior.
func (g *Generator) Generate(bounds core.Bounds, s *Snake) Food {
	if !bounds.HasInterior() {
		return Eaten()
	}

	var p core.Position
	for range g.maxAttempts {
		p = core.Pos(2+g.rng.Intn(bounds.W-2), 2+g.rng.Intn(bounds.H-2))
		if !g.avoidSnake || s == nil || !s.Occupies(p) {
			break
		}
	}
	return Exists(p)
}
