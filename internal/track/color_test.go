package track

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/frameval/internal/easing"
)

func TestColorTrack(t *testing.T) {
	red := colorful.Color{R: 1, G: 0, B: 0}
	blue := colorful.Color{R: 0, G: 0, B: 1}

	tr := NewColor([]ColorKeyframe{
		{Frame: 0, Value: red},
		{Frame: 30, Value: blue, Easing: easing.Linear()},
	})

	if got := tr.Evaluate(-5); got != red {
		t.Errorf("before start: got %v", got)
	}
	if got := tr.Evaluate(100); got != blue {
		t.Errorf("after end: got %v", got)
	}

	mid := tr.Evaluate(15)
	want := red.BlendLab(blue, 0.5)
	if math.Abs(mid.R-want.R) > 1e-9 || math.Abs(mid.G-want.G) > 1e-9 || math.Abs(mid.B-want.B) > 1e-9 {
		t.Errorf("midpoint blend: got %v, want %v", mid, want)
	}
	t.Logf("midpoint: %v", mid)
}

func TestColorTrackDegenerate(t *testing.T) {
	if got := NewColor(nil).Evaluate(0); got != (colorful.Color{}) {
		t.Errorf("empty track: got %v", got)
	}

	c := colorful.Color{R: 0.2, G: 0.4, B: 0.6}
	single := NewColor([]ColorKeyframe{{Frame: 10, Value: c}})
	if got := single.Evaluate(99); got != c {
		t.Errorf("single keyframe: got %v", got)
	}
}
