package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGenerateWithinInterior(t *testing.T) {
	g := NewGenerator(999)
	bounds := core.NewBounds(12, 7)

	seenX := make(map[int]bool)
	seenY := make(map[int]bool)
	for range 2000 {
		food := g.Generate(bounds, nil)
		p, ok := food.Position()
		if !ok {
			t.Fatal("Generate returned eaten food on a board with interior")
		}
		if p.X < 2 || p.X >= bounds.W || p.Y < 2 || p.Y >= bounds.H {
			t.Fatalf("Food out of range at %v", p)
		}
		seenX[p.X] = true
		seenY[p.Y] = true
	}

	// Every column in [2, W) and row in [2, H) should come up.
	if len(seenX) != bounds.W-2 {
		t.Errorf("Saw %d distinct x values, expected %d", len(seenX), bounds.W-2)
	}
	if len(seenY) != bounds.H-2 {
		t.Errorf("Saw %d distinct y values, expected %d", len(seenY), bounds.H-2)
	}
}

func TestGenerateDeterminism(t *testing.T) {
	g1 := NewGenerator(12345)
	g2 := NewGenerator(12345)
	bounds := core.NewBounds(80, 24)

	for i := range 50 {
		f1 := g1.Generate(bounds, nil)
		f2 := g2.Generate(bounds, nil)
		if f1 != f2 {
			t.Fatalf("Draw %d differs: %v vs %v", i, f1, f2)
		}
	}
}

func TestGenerateNoInterior(t *testing.T) {
	g := NewGenerator(1)

	for _, b := range []core.Bounds{core.NewBounds(2, 10), core.NewBounds(10, 2), core.NewBounds(0, 0)} {
		if food := g.Generate(b, nil); !food.IsEaten() {
			t.Errorf("Generate(%v) = %v, expected eaten", b, food)
		}
	}
}

func TestGenerateMayOverlapSnakeByDefault(t *testing.T) {
	// A 3x4 board has interior cells (2,2) and (2,3) only, both under the
	// starting snake, so every draw overlaps.
	g := NewGenerator(7)
	s := New()

	food := g.Generate(core.NewBounds(3, 4), s)
	p, ok := food.Position()
	if !ok || !s.Occupies(p) {
		t.Errorf("Expected food under the snake, got %v", food)
	}
}

func TestGenerateAvoidSnake(t *testing.T) {
	g := NewGenerator(42, WithAvoidSnake(256))
	s := FromBody(DirRight, core.Pos(2, 2), core.Pos(3, 2), core.Pos(4, 2))
	bounds := core.NewBounds(5, 4) // interior (2..4, 2..3)

	for range 200 {
		p, ok := g.Generate(bounds, s).Position()
		if !ok {
			t.Fatal("Generate returned eaten food")
		}
		if s.Occupies(p) {
			t.Fatalf("Food placed under the snake at %v", p)
		}
	}
}

func TestFoodAt(t *testing.T) {
	f := Exists(core.Pos(4, 5))

	if !f.At(core.Pos(4, 5)) {
		t.Error("At should match the food position")
	}
	if f.At(core.Pos(5, 4)) {
		t.Error("At should not match another position")
	}
	if Eaten().At(core.Position{}) {
		t.Error("Eaten food is nowhere")
	}
}
