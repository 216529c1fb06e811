package game

import (
	"math/rand"
	"testing"
	"time"
)

func TestDefaultConfigMatchesEffectTuning(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Particles.Count != 60 {
		t.Errorf("Count = %d, want 60", cfg.Particles.Count)
	}
	ranges := []struct {
		name string
		got  Range
		want Range
	}{
		{"radius", cfg.Particles.Radius, Range{0.5, 2.5}},
		{"speed", cfg.Particles.Speed, Range{0.2, 0.7}},
		{"drift", cfg.Particles.Drift, Range{-0.2, 0.2}},
		{"opacity", cfg.Particles.Opacity, Range{0.3, 0.8}},
	}
	for _, r := range ranges {
		if r.got != r.want {
			t.Errorf("%s range = %v, want %v", r.name, r.got, r.want)
		}
	}
	if cfg.Particles.WrapMargin != 10 {
		t.Errorf("WrapMargin = %v, want 10", cfg.Particles.WrapMargin)
	}
	if cfg.Cursor.Smoothing != 0.15 || cfg.Cursor.PressedScale != 1.3 || cfg.Cursor.PressedRotation != 25 {
		t.Errorf("cursor tuning = %+v", cfg.Cursor)
	}
	if cfg.Cursor.SparkleLifetime != 600*time.Millisecond {
		t.Errorf("SparkleLifetime = %v, want 600ms", cfg.Cursor.SparkleLifetime)
	}
}

func TestRangeSample(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	r := Range{Min: -0.2, Max: 0.2}
	for i := 0; i < 10000; i++ {
		if v := r.Sample(rng); !r.Contains(v) {
			t.Fatalf("Sample() = %v outside %v", v, r)
		}
	}
}

func TestConfigSeededRandIsRepeatable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234
	a, b := cfg.NewRand(), cfg.NewRand()
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("seeded sources diverged")
		}
	}
}
