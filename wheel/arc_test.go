package wheel

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestThumbSegmentsThicknessRamp(t *testing.T) {
	segs := ThumbSegments(DefaultArcConfig())
	if len(segs) != DefaultEndAngle-DefaultStartAngle+1 {
		t.Fatalf("got %d segments, want %d", len(segs), DefaultEndAngle-DefaultStartAngle+1)
	}
	if segs[0].Sector != DefaultStartAngle || segs[len(segs)-1].Sector != DefaultEndAngle {
		t.Fatalf("segments span %d..%d", segs[0].Sector, segs[len(segs)-1].Sector)
	}
	if math.Abs(segs[0].Thickness-0.02) > 1e-9 {
		t.Fatalf("first thickness = %v", segs[0].Thickness)
	}
	if math.Abs(segs[10].Thickness-0.22) > 1e-9 {
		t.Fatalf("thickness after 10 sectors = %v", segs[10].Thickness)
	}
	prev := 0.0
	for i, s := range segs {
		if s.Thickness < prev {
			t.Fatalf("segment %d thinner than previous", i)
		}
		if s.Thickness > thumbMaxThickness {
			t.Fatalf("segment %d thickness %v above cap", i, s.Thickness)
		}
		prev = s.Thickness
	}
	if segs[len(segs)-1].Thickness != thumbMaxThickness {
		t.Fatalf("last thickness = %v, want cap", segs[len(segs)-1].Thickness)
	}
	step := 2 * math.Pi / 360
	if math.Abs(segs[0].StartAngle-90*step) > 1e-9 || math.Abs(segs[0].EndAngle-91*step) > 1e-9 {
		t.Fatalf("first segment angles %v..%v", segs[0].StartAngle, segs[0].EndAngle)
	}
}

func TestThumbLayoutIgnoresSectorCount(t *testing.T) {
	deg := math.Pi / 180
	tests := []struct {
		name       string
		sectors    int
		start, end int
	}{
		{"default", 360, 90, 270},
		{"twelve", 12, 90, 270},
		{"thirty-six", 36, 90, 270},
		{"short arc", 36, 10, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultArcConfig()
			cfg.TotalSectors = tt.sectors
			cfg.StartAngleDeg = tt.start
			cfg.EndAngleDeg = tt.end

			segs := ThumbSegments(cfg)
			if len(segs) != tt.end-tt.start+1 {
				t.Fatalf("got %d segments, want %d", len(segs), tt.end-tt.start+1)
			}
			first, last := segs[0], segs[len(segs)-1]
			if math.Abs(first.StartAngle-float64(tt.start)*deg) > 1e-9 {
				t.Fatalf("arc starts at %v rad, want %d deg", first.StartAngle, tt.start)
			}
			span := (last.EndAngle - first.StartAngle) / deg
			if math.Abs(span-float64(tt.end-tt.start+1)) > 1e-9 {
				t.Fatalf("arc spans %v deg, want %d", span, tt.end-tt.start+1)
			}

			got := HeadRect(Point{}, 100, cfg)
			a := float64(tt.end+1) * deg
			want := Rect{
				Min: Point{X: 100 * math.Cos(a), Y: 100*math.Sin(a) - cfg.HeadSizePx/2},
				Max: Point{X: 100*math.Cos(a) + cfg.HeadSizePx, Y: 100*math.Sin(a) + cfg.HeadSizePx/2},
			}
			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("HeadRect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRingSegments(t *testing.T) {
	segs, err := RingSegments(12, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 12 {
		t.Fatalf("got %d segments", len(segs))
	}
	for i, s := range segs {
		want, _ := ColorForSector(i, 12)
		if s.Color != want || s.Thickness != 10 {
			t.Fatalf("segment %d = %+v", i, s)
		}
	}
	if math.Abs(segs[11].EndAngle-2*math.Pi) > 1e-9 {
		t.Fatalf("ring does not close: last end %v", segs[11].EndAngle)
	}
	if _, err := RingSegments(0, 10); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("RingSegments(0) err = %v", err)
	}
}

func TestHeadRect(t *testing.T) {
	cfg := DefaultArcConfig()
	got := HeadRect(Point{}, 100, cfg)
	a := 271 * math.Pi / 180
	end := Point{X: 100 * math.Cos(a), Y: 100 * math.Sin(a)}
	want := Rect{
		Min: Point{X: end.X, Y: end.Y - 10},
		Max: Point{X: end.X + 20, Y: end.Y + 10},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("HeadRect mismatch (-want +got):\n%s", diff)
	}
}

func TestRadii(t *testing.T) {
	if got := RingRadius(300, 10); got != 120 {
		t.Fatalf("RingRadius = %v, want 120", got)
	}
	if got := ThumbRadius(300, 20); got != 140 {
		t.Fatalf("ThumbRadius = %v, want 140", got)
	}
}

func TestGeometryHelpers(t *testing.T) {
	if d := DistanceFromCenter(Pt(0, 0), Pt(3, 4)); d != 5 {
		t.Fatalf("distance = %v", d)
	}
	r := Rect{Min: Pt(10, 20), Max: Pt(30, 60)}
	if c := r.Center(); c != Pt(20, 40) {
		t.Fatalf("center = %v", c)
	}
	if !r.Contains(Pt(10, 60)) || r.Contains(Pt(9, 30)) {
		t.Fatalf("Contains wrong on edges")
	}
	rr := Rect{Min: Pt(0.5, 0.5), Max: Pt(9.2, 9.2)}.Rectangle()
	if rr.Min.X != 0 || rr.Max.X != 10 {
		t.Fatalf("Rectangle = %v", rr)
	}
	for _, a := range []float64{-7, -math.Pi, 0, math.Pi, 4, 100} {
		w := wrapAngle(a)
		if w <= -math.Pi || w > math.Pi {
			t.Fatalf("wrapAngle(%v) = %v", a, w)
		}
		if math.Abs(math.Sin(w)-math.Sin(a)) > 1e-9 || math.Abs(math.Cos(w)-math.Cos(a)) > 1e-9 {
			t.Fatalf("wrapAngle(%v) = %v changes direction", a, w)
		}
	}
}
