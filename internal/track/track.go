package track

import (
	"sort"

	"github.com/ivlev/frameval/internal/easing"
)

// Keyframe is one control point of a track. Easing describes the transition
// arriving at this keyframe, i.e. it shapes the segment that ends here. The
// zero-value curve evaluates as the default ease.
type Keyframe struct {
	Frame  float64
	Value  float64
	Easing easing.Curve
}

// Track is an ordered, immutable per-property timeline. Build it once with
// New, then Evaluate from any goroutine.
type Track struct {
	keys []Keyframe
}

// Tracks at or above this size use binary search for bracketing.
const binarySearchMin = 8

// New builds a track from keyframes in any order. The input is copied and
// stable-sorted by frame; when two keyframes share a frame the last-declared
// one wins, matching how an author would expect a later line to override an
// earlier one.
func New(keys []Keyframe) *Track {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frame < sorted[j].Frame
	})

	// Collapse duplicate frames, keeping the last declared.
	out := sorted[:0]
	for i, kf := range sorted {
		if i > 0 && kf.Frame == out[len(out)-1].Frame {
			out[len(out)-1] = kf
			continue
		}
		out = append(out, kf)
	}
	return &Track{keys: out}
}

// Len returns the number of keyframes after duplicate collapsing.
func (t *Track) Len() int { return len(t.keys) }

// Start and End return the frame range covered by the track. Both are 0 for
// an empty track.
func (t *Track) Start() float64 {
	if len(t.keys) == 0 {
		return 0
	}
	return t.keys[0].Frame
}

func (t *Track) End() float64 {
	if len(t.keys) == 0 {
		return 0
	}
	return t.keys[len(t.keys)-1].Frame
}

// Evaluate returns the track value at the given frame. Before the first
// keyframe it holds the first value, after the last it holds the last value;
// in between it eases local progress with the arriving keyframe's curve and
// interpolates linearly. Pure: no state survives between calls.
func (t *Track) Evaluate(frame float64) float64 {
	switch len(t.keys) {
	case 0:
		return 0
	case 1:
		return t.keys[0].Value
	}

	if frame <= t.keys[0].Frame {
		return t.keys[0].Value
	}
	last := t.keys[len(t.keys)-1]
	if frame >= last.Frame {
		return last.Value
	}

	prev, next := t.bracket(frame)
	span := next.Frame - prev.Frame
	if span == 0 {
		return next.Value
	}
	p := (frame - prev.Frame) / span
	return lerp(prev.Value, next.Value, next.Easing.Evaluate(p))
}

// bracket finds the keyframes surrounding frame. The caller has already
// excluded frames outside the track range.
func (t *Track) bracket(frame float64) (prev, next Keyframe) {
	if len(t.keys) < binarySearchMin {
		for i := 0; i < len(t.keys)-1; i++ {
			if frame >= t.keys[i].Frame && frame < t.keys[i+1].Frame {
				return t.keys[i], t.keys[i+1]
			}
		}
		return t.keys[len(t.keys)-2], t.keys[len(t.keys)-1]
	}

	// First keyframe strictly past the frame.
	i := sort.Search(len(t.keys), func(i int) bool {
		return t.keys[i].Frame > frame
	})
	return t.keys[i-1], t.keys[i]
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
