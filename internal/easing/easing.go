package easing

import (
	"math"

	"github.com/fogleman/ease"
)

// Kind identifies an easing curve family.
type Kind int

const (
	// KindDefault is the zero value; it evaluates as ease-out-cubic, the
	// documented fallback for missing or unknown curves.
	KindDefault Kind = iota
	KindLinear
	KindQuad
	KindCubic
	KindQuart
	KindQuint
	KindSine
	KindExpo
	KindCirc
	KindBack
	KindElastic
	KindBounce
	KindBezier
)

// Direction selects the in/out/in-out variant of a family.
type Direction int

const (
	In Direction = iota
	Out
	InOut
)

// Curve describes one easing curve. It is a plain value: construct once,
// reuse across any number of Evaluate calls from any goroutine.
type Curve struct {
	Kind Kind
	Dir  Direction

	// Overshoot controls how far a back curve travels past its target.
	// Zero means the conventional 1.70158.
	Overshoot float64

	// Amplitude and Period parametrize elastic curves. Zero means the
	// conventional amplitude 1.0 and period 0.3.
	Amplitude float64
	Period    float64

	// X1, Y1, X2, Y2 are cubic-bezier control points for KindBezier.
	X1, Y1, X2, Y2 float64
}

// Linear returns the identity curve.
func Linear() Curve { return Curve{Kind: KindLinear} }

// Quad, Cubic, Quart, Quint, Sine, Expo and Circ return the fixed power and
// transcendental families in the requested direction.
func Quad(d Direction) Curve  { return Curve{Kind: KindQuad, Dir: d} }
func Cubic(d Direction) Curve { return Curve{Kind: KindCubic, Dir: d} }
func Quart(d Direction) Curve { return Curve{Kind: KindQuart, Dir: d} }
func Quint(d Direction) Curve { return Curve{Kind: KindQuint, Dir: d} }
func Sine(d Direction) Curve  { return Curve{Kind: KindSine, Dir: d} }
func Expo(d Direction) Curve  { return Curve{Kind: KindExpo, Dir: d} }
func Circ(d Direction) Curve  { return Curve{Kind: KindCirc, Dir: d} }

// Back returns a back curve with the given overshoot factor (0 = default).
func Back(d Direction, overshoot float64) Curve {
	return Curve{Kind: KindBack, Dir: d, Overshoot: overshoot}
}

// Elastic returns an elastic curve with the given amplitude and period
// (0 = defaults).
func Elastic(d Direction, amplitude, period float64) Curve {
	return Curve{Kind: KindElastic, Dir: d, Amplitude: amplitude, Period: period}
}

// Bounce returns the piecewise bounce curve.
func Bounce(d Direction) Curve { return Curve{Kind: KindBounce, Dir: d} }

// Bezier returns a cubic-bezier curve through (0,0), (x1,y1), (x2,y2), (1,1).
func Bezier(x1, y1, x2, y2 float64) Curve {
	return Curve{Kind: KindBezier, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Default returns the fallback curve used for unknown names and zero values.
func Default() Curve { return Cubic(Out) }

const defaultBackOvershoot = 1.70158

// Evaluate computes the curve value at t. Pure and total: it never fails,
// and evaluating an unknown or zero-value curve uses the default. Callers
// normally pass t in [0,1]; values outside that range extrapolate the
// underlying formula, which fill-mode "none" relies on.
func (c Curve) Evaluate(t float64) float64 {
	switch c.Kind {
	case KindLinear:
		return t
	case KindQuad:
		return c.direct(t, ease.InQuad, ease.OutQuad, ease.InOutQuad)
	case KindCubic:
		return c.direct(t, ease.InCubic, ease.OutCubic, ease.InOutCubic)
	case KindQuart:
		return c.direct(t, ease.InQuart, ease.OutQuart, ease.InOutQuart)
	case KindQuint:
		return c.direct(t, ease.InQuint, ease.OutQuint, ease.InOutQuint)
	case KindSine:
		return c.direct(t, ease.InSine, ease.OutSine, ease.InOutSine)
	case KindExpo:
		return c.direct(t, ease.InExpo, ease.OutExpo, ease.InOutExpo)
	case KindCirc:
		return c.direct(t, ease.InCirc, ease.OutCirc, ease.InOutCirc)
	case KindBack:
		return c.back(t)
	case KindElastic:
		return c.elastic(t)
	case KindBounce:
		return c.direct(t, ease.InBounce, ease.OutBounce, ease.InOutBounce)
	case KindBezier:
		return bezierSolve(t, c.X1, c.Y1, c.X2, c.Y2)
	default:
		return ease.OutCubic(t)
	}
}

func (c Curve) direct(t float64, in, out, inOut func(float64) float64) float64 {
	switch c.Dir {
	case Out:
		return out(t)
	case InOut:
		return inOut(t)
	default:
		return in(t)
	}
}

func (c Curve) back(t float64) float64 {
	s := c.Overshoot
	if s == 0 {
		s = defaultBackOvershoot
	}
	switch c.Dir {
	case Out:
		u := t - 1
		return u*u*((s+1)*u+s) + 1
	case InOut:
		s *= 1.525
		t *= 2
		if t < 1 {
			return (t * t * ((s+1)*t - s)) / 2
		}
		t -= 2
		return (t*t*((s+1)*t+s) + 2) / 2
	default:
		return t * t * ((s+1)*t - s)
	}
}

func (c Curve) elastic(t float64) float64 {
	a := c.Amplitude
	p := c.Period
	if p == 0 {
		p = 0.3
		if c.Dir == InOut {
			p = 0.45
		}
	}
	if a < 1 {
		a = 1
	}
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	s := p / (2 * math.Pi) * math.Asin(1/a)
	switch c.Dir {
	case Out:
		return a*math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p) + 1
	case InOut:
		t = t*2 - 1
		if t < 0 {
			return -0.5 * a * math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p)
		}
		return a*math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p)*0.5 + 1
	default:
		t--
		return -a * math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p)
	}
}

// bezierSolve finds the curve parameter u with x(u) == x by Newton iteration
// with a bisection fallback, then evaluates y(u). Standard CSS timing
// function behavior; x is clamped to [0,1] because x(u) only covers that
// interval.
func bezierSolve(x, x1, y1, x2, y2 float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	sampleX := func(u float64) float64 { return bezierAxis(u, x1, x2) }
	sampleY := func(u float64) float64 { return bezierAxis(u, y1, y2) }

	u := x
	for i := 0; i < 8; i++ {
		dx := sampleX(u) - x
		if math.Abs(dx) < 1e-7 {
			return sampleY(u)
		}
		d := bezierAxisDeriv(u, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		u -= dx / d
	}

	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 32 && hi-lo > 1e-7; i++ {
		if sampleX(u) < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return sampleY(u)
}

// bezierAxis evaluates one axis of a cubic bezier with endpoints 0 and 1.
func bezierAxis(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierAxisDeriv(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}
