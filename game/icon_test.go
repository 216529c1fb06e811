package game

import (
	"math"
	"testing"
	"time"
)

func opaquePixels(icon *Icon) int {
	img := icon.Image()
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestLoadWandIcon(t *testing.T) {
	icon, err := LoadWandIcon(32)
	if err != nil {
		t.Fatalf("LoadWandIcon() = %v", err)
	}
	if icon.Size() != 32 {
		t.Fatalf("Size() = %d, want 32", icon.Size())
	}
	if w, h := icon.stick.Size(); w != 32 || h != 32 {
		t.Errorf("stick raster %dx%d, want 32x32", w, h)
	}

	parts := icon.Parts()
	if len(parts) != 6 {
		t.Fatalf("Parts() returned %d parts, want 6", len(parts))
	}
	for i, p := range parts {
		if p.Icon == nil {
			t.Errorf("part %d has no raster", i)
			continue
		}
		if opaquePixels(p.Icon) == 0 {
			t.Errorf("part %d is fully transparent", i)
		}
	}
}

func TestWandIconPartsFollowClock(t *testing.T) {
	icon, err := LoadWandIcon(32)
	if err != nil {
		t.Fatalf("LoadWandIcon() = %v", err)
	}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	icon.start = start
	icon.now = func() time.Time { return now }

	tests := []struct {
		name      string
		elapsed   time.Duration
		starAngle float64
		dot0Alpha float64
		dot0Scale float64
		dot3Alpha float64
	}{
		{"start", 0, 0, 0.3, 1.0 / 8, 0.3},
		{"quarter dot period", 300 * time.Millisecond, 2 * math.Pi * 0.075, 0.65, 1.5 / 8, 0.45},
		{"dot peak", 600 * time.Millisecond, 2 * math.Pi * 0.15, 1, 2.0 / 8, 0.6},
		{"one second", time.Second, math.Pi / 2, 1 - 0.7*2/3, (2 - 2.0/3) / 8, 0.8},
		{"half turn", 2 * time.Second, math.Pi, 1 - 0.7/3, (2 - 1.0/3) / 8, 0.3},
		{"full turn wraps", 4 * time.Second, 0, 0.3 + 0.7*2/3, (1 + 2.0/3) / 8, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = start.Add(tt.elapsed)
			parts := icon.Parts()

			star, dot0, dot3 := parts[1], parts[2], parts[5]
			if math.Abs(star.Rotation-tt.starAngle) > 1e-9 {
				t.Errorf("star rotation = %v, want %v", star.Rotation, tt.starAngle)
			}
			if math.Abs(dot0.Alpha-tt.dot0Alpha) > 1e-9 {
				t.Errorf("dot 0 alpha = %v, want %v", dot0.Alpha, tt.dot0Alpha)
			}
			if math.Abs(dot0.Scale-tt.dot0Scale) > 1e-9 {
				t.Errorf("dot 0 scale = %v, want %v", dot0.Scale, tt.dot0Scale)
			}
			if math.Abs(dot3.Alpha-tt.dot3Alpha) > 1e-9 {
				t.Errorf("dot 3 alpha = %v, want %v", dot3.Alpha, tt.dot3Alpha)
			}
		})
	}
}

func TestWandIconPartPlacement(t *testing.T) {
	icon, err := LoadWandIcon(64)
	if err != nil {
		t.Fatalf("LoadWandIcon() = %v", err)
	}
	parts := icon.Parts()

	if stick := parts[0]; stick.X != 32 || stick.Y != 32 || stick.Rotation != 0 {
		t.Errorf("stick posed at (%v, %v) rot %v, want frame center", stick.X, stick.Y, stick.Rotation)
	}
	if star := parts[1]; star.X != 36 || star.Y != 20 {
		t.Errorf("star at (%v, %v), want (36, 20)", star.X, star.Y)
	}
	if dot := parts[3]; dot.X != 50 || dot.Y != 24 {
		t.Errorf("dot 1 at (%v, %v), want (50, 24)", dot.X, dot.Y)
	}
	if dot := parts[3]; math.Abs(dot.Scale-1.0/dotViewRadius/partSupersample) > 1e-12 {
		t.Errorf("fixed-radius dot scale = %v", dot.Scale)
	}
}

func TestTwinkleLoop(t *testing.T) {
	tw := twinkle{low: 0.2, high: 0.9, period: 1800 * time.Millisecond}
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0.2},
		{450 * time.Millisecond, 0.55},
		{900 * time.Millisecond, 0.9},
		{1350 * time.Millisecond, 0.55},
		{1800 * time.Millisecond, 0.2},
	}
	for _, tt := range tests {
		if got := tw.at(tt.elapsed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("at(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestRasterizeSVGRejectsEmptySize(t *testing.T) {
	if _, err := rasterizeSVG(wandStickSVG, 0, 32); err == nil {
		t.Error("rasterizeSVG with zero width succeeded")
	}
}
