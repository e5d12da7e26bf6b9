package spring

import (
	"fmt"
	"math"
)

// Config describes a damped harmonic oscillator released from rest at
// displacement 1 toward 0. Evaluate reports how far it has traveled, so the
// returned value starts at 0 and settles at 1.
type Config struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	// OvershootClamp clips the result to [0,1], removing bounce.
	OvershootClamp bool
}

// Validate reports whether the config describes a physical spring.
func (c Config) Validate() error {
	if c.Stiffness <= 0 {
		return fmt.Errorf("spring stiffness must be positive, got %g", c.Stiffness)
	}
	if c.Damping < 0 {
		return fmt.Errorf("spring damping must be non-negative, got %g", c.Damping)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("spring mass must be positive, got %g", c.Mass)
	}
	return nil
}

// DampingRatio returns ζ = damping / (2·sqrt(stiffness·mass)). ζ < 1
// oscillates, ζ = 1 is critically damped, ζ > 1 approaches monotonically.
func (c Config) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Damping regimes within this tolerance of ζ=1 are treated as critical to
// keep the under-damped closed form away from its ωd→0 singularity.
const criticalTolerance = 1e-9

// Evaluate returns the spring's progress toward its target after
// elapsedFrames at the given fps. It is a pure function of its arguments:
// the closed-form solution of the oscillator is computed fresh on every
// call, so evaluation order never matters and identical calls are
// bit-identical. Negative elapsed time returns the rest value 0.
func Evaluate(cfg Config, elapsedFrames, fps float64) float64 {
	if elapsedFrames <= 0 || fps <= 0 {
		return 0
	}
	t := elapsedFrames / fps

	omega := math.Sqrt(cfg.Stiffness / cfg.Mass)
	zeta := cfg.DampingRatio()

	// x(t) is the remaining displacement with x(0)=1, x'(0)=0.
	var x float64
	switch {
	case math.Abs(zeta-1) < criticalTolerance:
		x = math.Exp(-omega*t) * (1 + omega*t)
	case zeta < 1:
		wd := omega * math.Sqrt(1-zeta*zeta)
		x = math.Exp(-zeta*omega*t) * (math.Cos(wd*t) + (zeta*omega/wd)*math.Sin(wd*t))
	default:
		root := omega * math.Sqrt(zeta*zeta-1)
		r1 := -zeta*omega + root
		r2 := -zeta*omega - root
		x = (r2*math.Exp(r1*t) - r1*math.Exp(r2*t)) / (r2 - r1)
	}

	v := 1 - x
	if cfg.OvershootClamp {
		v = math.Min(1, math.Max(0, v))
	}
	return v
}

// SettlingFrames estimates the number of frames after which the spring stays
// within epsilon of its target, from the exponential decay envelope. For an
// undamped spring (damping 0) the oscillation never decays and the result is
// +Inf.
func SettlingFrames(cfg Config, fps, epsilon float64) float64 {
	if epsilon <= 0 {
		epsilon = 1e-3
	}
	omega := math.Sqrt(cfg.Stiffness / cfg.Mass)
	zeta := cfg.DampingRatio()

	var t float64
	switch {
	case zeta == 0:
		return math.Inf(1)

	case math.Abs(zeta-1) < criticalTolerance:
		// |x| = (1+ωt)e^{-ωt}; solve u = L + log(1+u) by two fixpoint steps.
		u := math.Log(1 / epsilon)
		u = math.Log(1/epsilon) + math.Log1p(u)
		u = math.Log(1/epsilon) + math.Log1p(u)
		t = u / omega

	case zeta < 1:
		// Envelope amplitude is ω/ωd, which grows without bound as ζ→1.
		wd := omega * math.Sqrt(1-zeta*zeta)
		t = math.Log(omega/wd/epsilon) / (zeta * omega)

	default:
		// The slow root dominates; its coefficient is r2/(r2-r1).
		root := omega * math.Sqrt(zeta*zeta-1)
		r1 := -zeta*omega + root
		r2 := -zeta*omega - root
		t = math.Log(r2/(r2-r1)/epsilon) / -r1
	}

	return math.Ceil(t * fps)
}
