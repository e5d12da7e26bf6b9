package track

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ivlev/frameval/internal/easing"
)

// ColorKeyframe is one control point of a color track.
type ColorKeyframe struct {
	Frame  float64
	Value  colorful.Color
	Easing easing.Curve
}

// ColorTrack interpolates keyframed colors in Lab space, which blends
// perceptually instead of channel-wise. Same bracketing and hold-ends rules
// as Track.
type ColorTrack struct {
	keys []ColorKeyframe
}

// NewColor builds a color track; see New for ordering and duplicate rules.
func NewColor(keys []ColorKeyframe) *ColorTrack {
	sorted := make([]ColorKeyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frame < sorted[j].Frame
	})

	out := sorted[:0]
	for i, kf := range sorted {
		if i > 0 && kf.Frame == out[len(out)-1].Frame {
			out[len(out)-1] = kf
			continue
		}
		out = append(out, kf)
	}
	return &ColorTrack{keys: out}
}

// Evaluate returns the blended color at the given frame.
func (t *ColorTrack) Evaluate(frame float64) colorful.Color {
	switch len(t.keys) {
	case 0:
		return colorful.Color{}
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

	var prev, next ColorKeyframe
	for i := 0; i < len(t.keys)-1; i++ {
		if frame >= t.keys[i].Frame && frame < t.keys[i+1].Frame {
			prev, next = t.keys[i], t.keys[i+1]
			break
		}
	}

	span := next.Frame - prev.Frame
	if span == 0 {
		return next.Value
	}
	p := (frame - prev.Frame) / span
	e := next.Easing.Evaluate(p)
	// BlendLab extrapolates poorly; clamp the eased progress for colors.
	if e < 0 {
		e = 0
	} else if e > 1 {
		e = 1
	}
	return prev.Value.BlendLab(next.Value, e)
}
