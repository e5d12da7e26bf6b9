package track

import (
	"math"
	"testing"

	"github.com/ivlev/frameval/internal/easing"
)

func TestDegenerateTracks(t *testing.T) {
	empty := New(nil)
	if v := empty.Evaluate(10); v != 0 {
		t.Errorf("empty track should return 0, got %g", v)
	}

	single := New([]Keyframe{{Frame: 5, Value: 42}})
	for _, f := range []float64{-100, 0, 5, 1000} {
		if v := single.Evaluate(f); v != 42 {
			t.Errorf("single-keyframe track at %g: got %g, want 42", f, v)
		}
	}
}

func TestHoldEnds(t *testing.T) {
	tr := New([]Keyframe{
		{Frame: 10, Value: 1},
		{Frame: 20, Value: 3},
	})

	if v := tr.Evaluate(0); v != 1 {
		t.Errorf("before first keyframe: got %g, want 1", v)
	}
	if v := tr.Evaluate(25); v != 3 {
		t.Errorf("after last keyframe: got %g, want 3", v)
	}
	if v := tr.Evaluate(10); v != 1 {
		t.Errorf("at first keyframe: got %g, want 1", v)
	}
	if v := tr.Evaluate(20); v != 3 {
		t.Errorf("at last keyframe: got %g, want 3", v)
	}
}

func TestLinearInterpolation(t *testing.T) {
	tr := New([]Keyframe{
		{Frame: 0, Value: 0},
		{Frame: 10, Value: 100, Easing: easing.Linear()},
	})

	tests := []struct {
		frame float64
		want  float64
	}{
		{2.5, 25},
		{5, 50},
		{7.5, 75},
	}
	for _, tt := range tests {
		if got := tr.Evaluate(tt.frame); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("frame %g: got %g, want %g", tt.frame, got, tt.want)
		}
	}
}

func TestUnsortedInputAndDuplicates(t *testing.T) {
	// Out-of-order declaration sorts; the later declaration at frame 10
	// shadows the earlier one.
	tr := New([]Keyframe{
		{Frame: 10, Value: 5, Easing: easing.Linear()},
		{Frame: 0, Value: 0},
		{Frame: 10, Value: 100, Easing: easing.Linear()},
	})

	if tr.Len() != 2 {
		t.Fatalf("expected 2 keyframes after collapsing, got %d", tr.Len())
	}
	if v := tr.Evaluate(10); v != 100 {
		t.Errorf("duplicate frame should keep last declared value: got %g", v)
	}
	if v := tr.Evaluate(5); math.Abs(v-50) > 1e-9 {
		t.Errorf("midpoint should use the surviving keyframe: got %g", v)
	}
}

func TestOvershootDescent(t *testing.T) {
	// Rise 0->100 arriving on a back-out curve, then fall back to 0.
	tr := New([]Keyframe{
		{Frame: 0, Value: 0},
		{Frame: 30, Value: 100, Easing: easing.Back(easing.Out, 0)},
		{Frame: 60, Value: 0},
	})

	// Mid-rise the overshoot carries past the target.
	if v := tr.Evaluate(15); v <= 100 {
		t.Errorf("expected overshoot above 100 at frame 15, got %g", v)
	}

	// Descending from the peak: strictly between the endpoints.
	v := tr.Evaluate(45)
	if v <= 0 || v >= 100 {
		t.Errorf("expected value strictly between 0 and 100 at frame 45, got %g", v)
	}
	t.Logf("frame 15: %.2f, frame 45: %.2f", tr.Evaluate(15), v)
}

func TestBinarySearchAgreesWithScan(t *testing.T) {
	// Enough keyframes to take the binary-search path; a short prefix of
	// the same data takes the scan path. Both must bracket identically.
	var keys []Keyframe
	for i := 0; i < 12; i++ {
		keys = append(keys, Keyframe{
			Frame:  float64(i * 10),
			Value:  float64(i * i),
			Easing: easing.Linear(),
		})
	}
	long := New(keys)
	short := New(keys[:4])

	for f := -5.0; f < 30; f += 0.5 {
		if a, b := long.Evaluate(f), short.Evaluate(f); a != b {
			t.Errorf("frame %g: binary search %g, scan %g", f, a, b)
		}
	}
	if got := long.Evaluate(115); got != 121 {
		t.Errorf("hold past end of long track: got %g, want 121", got)
	}
}
