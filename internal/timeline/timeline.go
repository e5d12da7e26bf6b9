// Package timeline turns an imperatively authored animation description into
// an immutable plan that can be evaluated at any frame, in any order, from
// any goroutine. Authoring happens once through a Builder; rendering calls
// Plan.Evaluate once per frame and never mutates anything.
package timeline

import (
	"math"

	"github.com/ivlev/frameval/internal/easing"
	"github.com/ivlev/frameval/internal/spring"
	"github.com/ivlev/frameval/internal/track"
)

// FillMode governs a duration-based animation's value outside its own
// [start, start+duration] window.
type FillMode int

const (
	// FillBoth holds the start value before the window and the end value
	// after it. This is the default.
	FillBoth FillMode = iota
	// FillForwards holds the end value after the window and extrapolates
	// before it.
	FillForwards
	// FillBackwards holds the start value before the window and
	// extrapolates after it.
	FillBackwards
	// FillNone extrapolates the easing curve on both sides, unclamped.
	FillNone
)

// ParseFillMode maps the authored names to fill modes. Unknown names fall
// back to FillBoth, the safe hold-everything policy.
func ParseFillMode(name string) FillMode {
	switch name {
	case "forwards":
		return FillForwards
	case "backwards":
		return FillBackwards
	case "none":
		return FillNone
	default:
		return FillBoth
	}
}

// PropertyValues holds one frame's evaluated value per property.
type PropertyValues map[string]float64

// TimedKeyframe is an explicit keyframe authored on the seconds axis.
// Build converts times to frames.
type TimedKeyframe struct {
	Time   float64
	Value  float64
	Easing easing.Curve
}

type instructionKind int

const (
	instrTween instructionKind = iota
	instrSpring
	instrKeyframes
)

type instruction struct {
	kind instructionKind
	prop string

	from, to    float64
	durationSec float64
	delaySec    float64
	timescale   float64
	startFrame  float64
	hasStart    bool
	curve       easing.Curve
	fill        FillMode
	spring      spring.Config
	keys        []TimedKeyframe
}

// Option adjusts a single authored instruction.
type Option func(*instruction)

// WithDelay postpones the start by sec seconds.
func WithDelay(sec float64) Option {
	return func(in *instruction) { in.delaySec = sec }
}

// WithEasing sets the segment's easing curve.
func WithEasing(c easing.Curve) Option {
	return func(in *instruction) { in.curve = c }
}

// WithEasingName resolves a preset name; unknown names use the default ease.
func WithEasingName(name string) Option {
	return func(in *instruction) { in.curve = easing.Preset(name) }
}

// WithFill sets the fill mode.
func WithFill(m FillMode) Option {
	return func(in *instruction) { in.fill = m }
}

// WithTimescale compresses (x > 1) or stretches (x < 1) the animation
// itself. Delay is kept in real time.
func WithTimescale(x float64) Option {
	return func(in *instruction) { in.timescale = x }
}

// WithStartFrame pins the start to an absolute frame, overriding delay.
func WithStartFrame(frame float64) Option {
	return func(in *instruction) { in.startFrame = frame; in.hasStart = true }
}

// Builder records animation instructions. It is the only mutable stage;
// Build freezes everything into a Plan and the Builder can be discarded.
type Builder struct {
	instructions []instruction
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Animate records a duration-based transition of one property.
func (b *Builder) Animate(prop string, from, to, durationSec float64, opts ...Option) *Builder {
	in := instruction{
		kind:        instrTween,
		prop:        prop,
		from:        from,
		to:          to,
		durationSec: durationSec,
		timescale:   1,
	}
	for _, opt := range opts {
		opt(&in)
	}
	b.instructions = append(b.instructions, in)
	return b
}

// AnimateSpring records a spring-driven transition of one property.
func (b *Builder) AnimateSpring(prop string, from, to float64, cfg spring.Config, opts ...Option) *Builder {
	in := instruction{
		kind:      instrSpring,
		prop:      prop,
		from:      from,
		to:        to,
		spring:    cfg,
		timescale: 1,
	}
	for _, opt := range opts {
		opt(&in)
	}
	b.instructions = append(b.instructions, in)
	return b
}

// Keyframes records an explicit keyframe sequence for one property. Times
// are seconds relative to the instruction's start and must be
// non-decreasing.
func (b *Builder) Keyframes(prop string, keys []TimedKeyframe, opts ...Option) *Builder {
	in := instruction{
		kind:      instrKeyframes,
		prop:      prop,
		keys:      keys,
		timescale: 1,
	}
	for _, opt := range opts {
		opt(&in)
	}
	b.instructions = append(b.instructions, in)
	return b
}

// Build validates every recorded instruction and freezes them into a Plan.
// All seconds are converted to frames here, once; nothing about the host
// (clock, randomness, evaluation order) can influence the result.
func (b *Builder) Build(fps float64) (*Plan, error) {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return nil, &InvalidDefinitionError{Reason: "fps must be a positive finite number"}
	}

	plan := &Plan{
		fps:      fps,
		segments: make(map[string][]segment),
	}

	for _, in := range b.instructions {
		seg, err := compile(in, fps)
		if err != nil {
			return nil, err
		}
		plan.segments[in.prop] = append(plan.segments[in.prop], seg)
	}

	plan.freeze()
	return plan, nil
}

// compile resolves one instruction into an immutable segment.
func compile(in instruction, fps float64) (segment, error) {
	if in.prop == "" {
		return segment{}, &InvalidDefinitionError{Reason: "property name must not be empty"}
	}
	if in.timescale <= 0 {
		return segment{}, &InvalidDefinitionError{Property: in.prop, Reason: "timescale must be positive"}
	}

	start := math.Round(in.delaySec * fps)
	if in.hasStart {
		start = in.startFrame
	}

	seg := segment{
		start: start,
		from:  in.from,
		to:    in.to,
		curve: in.curve,
		fill:  in.fill,
	}

	switch in.kind {
	case instrTween:
		if in.durationSec <= 0 {
			return segment{}, &InvalidDefinitionError{Property: in.prop, Reason: "duration must be positive"}
		}
		seg.kind = segTween
		seg.duration = math.Round(in.durationSec * fps / in.timescale)
		if seg.duration < 1 {
			seg.duration = 1
		}

	case instrSpring:
		if err := in.spring.Validate(); err != nil {
			return segment{}, &InvalidDefinitionError{Property: in.prop, Reason: err.Error()}
		}
		seg.kind = segSpring
		seg.spring = in.spring
		// Timescale folds into an effective fps so Evaluate stays a pure
		// two-argument lookup.
		seg.fps = fps / in.timescale

	case instrKeyframes:
		if len(in.keys) == 0 {
			return segment{}, &InvalidDefinitionError{Property: in.prop, Reason: "keyframe list must not be empty"}
		}
		keys := make([]track.Keyframe, len(in.keys))
		for i, kf := range in.keys {
			if i > 0 && kf.Time < in.keys[i-1].Time {
				return segment{}, &InvalidDefinitionError{Property: in.prop, Reason: "keyframe times must be non-decreasing"}
			}
			keys[i] = track.Keyframe{
				Frame:  start + math.Round(kf.Time*fps/in.timescale),
				Value:  kf.Value,
				Easing: kf.Easing,
			}
		}
		seg.kind = segTrack
		seg.track = track.New(keys)
	}

	return seg, nil
}
