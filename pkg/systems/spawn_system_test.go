package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/meteorstorm/pkg/config"
	"github.com/decker502/meteorstorm/pkg/entities"
)

func newTestSpawnSystem(clock *fakeClock) (*MeteorSpawnSystem, *entities.Registry) {
	em := entities.NewRegistry()
	cfg := config.DefaultGameConfig().Meteor
	s := NewMeteorSpawnSystem(em, solidSprite(20, 20), clock, rand.New(rand.NewSource(1)), cfg, 800)
	return s, em
}

func TestMeteorSpawnCadence(t *testing.T) {
	tests := []struct {
		name      string
		now       int64
		wantNew   int
		wantTotal int
	}{
		{"before first interval", 1499, 0, 0},
		{"first interval", 1500, 1, 1},
		{"same frame again", 1500, 0, 1},
		{"frame spans two periods", 4500, 2, 3},
		{"just before next", 5999, 0, 3},
		{"next", 6000, 1, 4},
	}

	clock := &fakeClock{}
	s, em := newTestSpawnSystem(clock)
	for _, tt := range tests {
		clock.now = tt.now
		if got := s.Update(); got != tt.wantNew {
			t.Errorf("%s: Update() = %d, want %d", tt.name, got, tt.wantNew)
		}
		if got := em.Count(entities.GroupMeteors); got != tt.wantTotal {
			t.Errorf("%s: meteors = %d, want %d", tt.name, got, tt.wantTotal)
		}
		if s.Spawned() != tt.wantTotal {
			t.Errorf("%s: Spawned() = %d, want %d", tt.name, s.Spawned(), tt.wantTotal)
		}
	}
}

func TestMeteorSpawnCadenceIsFixed(t *testing.T) {
	// 即使某一帧来迟，后续生成时刻仍按 start + k*interval 计算
	clock := &fakeClock{now: 100}
	s, _ := newTestSpawnSystem(clock)

	clock.now = 1700
	if got := s.Update(); got != 1 {
		t.Fatalf("Update() = %d, want 1", got)
	}
	clock.now = 3099
	if got := s.Update(); got != 0 {
		t.Errorf("Update() at 3099 = %d, want 0", got)
	}
	clock.now = 3100
	if got := s.Update(); got != 1 {
		t.Errorf("Update() at 3100 = %d, want 1", got)
	}
}

func TestMeteorSpawnPositionRange(t *testing.T) {
	clock := &fakeClock{}
	s, em := newTestSpawnSystem(clock)
	clock.now = 1500 * 200
	s.Update()

	ids := em.GetEntitiesIn(entities.GroupMeteors)
	if len(ids) != 200 {
		t.Fatalf("meteors = %d, want 200", len(ids))
	}
	for _, id := range ids {
		e, _ := em.Get(id)
		c := e.Bounds().Center()
		if c.X < 0 || c.X > 800 {
			t.Errorf("spawn x = %v, want in [0, 800]", c.X)
		}
		if c.Y < -400 || c.Y > -100 {
			t.Errorf("spawn y = %v, want in [-400, -100]", c.Y)
		}
		if !em.InGroup(id, entities.GroupAll) {
			t.Errorf("meteor %d not in all group", id)
		}
	}
}

func TestRandomMeteorParamsRanges(t *testing.T) {
	cfg := config.DefaultGameConfig().Meteor
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomMeteorParams(rng, cfg)
		if p.Direction.X < -0.5 || p.Direction.X > 0.5 {
			t.Fatalf("direction x = %v, want in [-0.5, 0.5]", p.Direction.X)
		}
		if p.Direction.Y != 1 {
			t.Fatalf("direction y = %v, want 1", p.Direction.Y)
		}
		if p.Speed < 100 || p.Speed > 300 || p.Speed != float64(int(p.Speed)) {
			t.Fatalf("speed = %v, want integer in [100, 300]", p.Speed)
		}
		if p.RotationSpeed < 20 || p.RotationSpeed > 50 {
			t.Fatalf("rotation speed = %v, want in [20, 50]", p.RotationSpeed)
		}
		if p.LifetimeMs != 5000 {
			t.Fatalf("lifetime = %d, want 5000", p.LifetimeMs)
		}
	}
}

func TestRandIntInclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := randInt(rng, 1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("randInt = %d, want in [1, 3]", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("randInt covered %d values, want 3", len(seen))
	}
}
