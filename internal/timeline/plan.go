package timeline

import (
	"math"
	"sort"

	"github.com/ivlev/frameval/internal/easing"
	"github.com/ivlev/frameval/internal/spring"
	"github.com/ivlev/frameval/internal/track"
)

type segmentKind int

const (
	segTween segmentKind = iota
	segSpring
	segTrack
)

// segment is one compiled per-property animation. All fields are resolved
// to the frame axis at build time; evaluation only reads.
type segment struct {
	kind     segmentKind
	start    float64 // absolute frame
	duration float64 // frames, tween only
	from, to float64
	curve    easing.Curve
	fill     FillMode
	spring   spring.Config
	fps      float64 // effective fps, spring only
	track    *track.Track
}

// Plan is the frozen output of Builder.Build. It carries no mutable state,
// so any number of goroutines may evaluate it concurrently over disjoint or
// overlapping frame ranges.
type Plan struct {
	fps      float64
	props    []string
	segments map[string][]segment
}

// freeze orders segments per property by start frame and fixes the property
// iteration order.
func (p *Plan) freeze() {
	p.props = p.props[:0]
	for prop, segs := range p.segments {
		sort.SliceStable(segs, func(i, j int) bool {
			return segs[i].start < segs[j].start
		})
		p.segments[prop] = segs
		p.props = append(p.props, prop)
	}
	sort.Strings(p.props)
}

// FPS returns the frame rate the plan was compiled for.
func (p *Plan) FPS() float64 { return p.fps }

// Properties returns the animated property names in stable order.
func (p *Plan) Properties() []string {
	out := make([]string, len(p.props))
	copy(out, p.props)
	return out
}

// DurationFrames reports the frame at which every segment has reached its
// end value. Spring segments use their settling estimate. Callers use this
// to size render jobs; evaluation past it simply holds.
func (p *Plan) DurationFrames() float64 {
	end := 0.0
	for _, segs := range p.segments {
		for _, s := range segs {
			var e float64
			switch s.kind {
			case segTween:
				e = s.start + s.duration
			case segSpring:
				settle := spring.SettlingFrames(s.spring, s.fps, 1e-3)
				if math.IsInf(settle, 1) {
					// An undamped spring never settles; report one
					// oscillation-heavy window instead of infinity.
					settle = 10 * s.fps
				}
				e = s.start + settle
			case segTrack:
				e = s.track.End()
			}
			if e > end {
				end = e
			}
		}
	}
	return end
}

// Evaluate returns every property's value at the given frame. It is total:
// any finite frame, fractional or far outside the authored range, yields a
// value per the fill-mode policy. Non-finite frames are clamped to the plan
// range rather than poisoning the output.
func (p *Plan) Evaluate(frame float64) PropertyValues {
	out := make(PropertyValues, len(p.props))
	p.EvaluateInto(frame, out)
	return out
}

// EvaluateInto is Evaluate writing into a caller-owned map, for render loops
// that want to avoid one allocation per frame.
func (p *Plan) EvaluateInto(frame float64, dst PropertyValues) {
	if math.IsNaN(frame) {
		frame = 0
	} else if math.IsInf(frame, 1) {
		frame = p.DurationFrames()
	} else if math.IsInf(frame, -1) {
		frame = 0
	}
	for _, prop := range p.props {
		dst[prop] = p.evaluateProperty(p.segments[prop], frame)
	}
}

// Property returns one property's value at a frame, and whether the plan
// animates that property at all.
func (p *Plan) Property(name string, frame float64) (float64, bool) {
	segs, ok := p.segments[name]
	if !ok {
		return 0, false
	}
	return p.evaluateProperty(segs, frame), true
}

// evaluateProperty picks the governing segment: the latest-starting segment
// at or before the frame, or the first segment when the frame precedes them
// all. Later instructions for the same property therefore take over from
// their start frame onward, deterministically.
func (p *Plan) evaluateProperty(segs []segment, frame float64) float64 {
	active := segs[0]
	for _, s := range segs[1:] {
		if s.start <= frame {
			active = s
		}
	}
	return active.evaluate(frame)
}

func (s *segment) evaluate(frame float64) float64 {
	switch s.kind {
	case segSpring:
		elapsed := frame - s.start
		if elapsed <= 0 {
			return s.from
		}
		return s.from + (s.to-s.from)*spring.Evaluate(s.spring, elapsed, s.fps)

	case segTrack:
		return s.track.Evaluate(frame)

	default:
		t := (frame - s.start) / s.duration
		switch s.fill {
		case FillForwards:
			if t > 1 {
				t = 1
			}
		case FillBackwards:
			if t < 0 {
				t = 0
			}
		case FillNone:
			// Unclamped: the curve extrapolates.
		default: // FillBoth
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		return s.from + (s.to-s.from)*s.curve.Evaluate(t)
	}
}
