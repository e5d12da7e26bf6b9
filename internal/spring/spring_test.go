package spring

import (
	"math"
	"testing"
)

func TestSettlesToOne(t *testing.T) {
	cfg := Config{Stiffness: 170, Damping: 26, Mass: 1}

	// Two seconds at 30fps is plenty for this config.
	v := Evaluate(cfg, 60, 30)
	if math.Abs(v-1) > 0.01 {
		t.Errorf("expected settled value within 0.01 of 1, got %g", v)
	}
	t.Logf("value after 60 frames: %.6f (zeta=%.4f)", v, cfg.DampingRatio())
}

func TestRestBeforeStart(t *testing.T) {
	cfg := Config{Stiffness: 100, Damping: 10, Mass: 1}
	if v := Evaluate(cfg, 0, 30); v != 0 {
		t.Errorf("expected 0 at elapsed 0, got %g", v)
	}
	if v := Evaluate(cfg, -10, 30); v != 0 {
		t.Errorf("expected 0 at negative elapsed, got %g", v)
	}
}

func TestDampingRegimes(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"critical", Config{Stiffness: 100, Damping: 20, Mass: 1}}, // zeta = 1
		{"over", Config{Stiffness: 100, Damping: 40, Mass: 1}},     // zeta = 2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := -1.0
			for f := 0.0; f <= 120; f++ {
				v := Evaluate(tt.cfg, f, 30)
				if v < prev-1e-12 {
					t.Fatalf("value decreased at frame %g: %g -> %g", f, prev, v)
				}
				if v < 0 || v > 1+1e-12 {
					t.Fatalf("value out of [0,1] at frame %g: %g", f, v)
				}
				prev = v
			}
		})
	}
}

func TestUnderDampedOscillates(t *testing.T) {
	cfg := Config{Stiffness: 170, Damping: 8, Mass: 1} // zeta ~ 0.31
	peak := 0.0
	for f := 0.0; f <= 90; f += 0.5 {
		if v := Evaluate(cfg, f, 30); v > peak {
			peak = v
		}
	}
	if peak <= 1 {
		t.Errorf("under-damped spring should overshoot, peaked at %g", peak)
	}

	clamped := cfg
	clamped.OvershootClamp = true
	for f := 0.0; f <= 90; f += 0.5 {
		if v := Evaluate(clamped, f, 30); v < 0 || v > 1 {
			t.Fatalf("clamped value out of [0,1] at frame %g: %g", f, v)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := Config{Stiffness: 170, Damping: 26, Mass: 1}
	b := Config{Stiffness: 80, Damping: 12, Mass: 2}

	// Record a pass, then re-evaluate in reverse order interleaved with
	// another config. Results must be bit-identical.
	frames := []float64{0.5, 3, 7.25, 12, 30, 59, 200}
	want := make([]float64, len(frames))
	for i, f := range frames {
		want[i] = Evaluate(a, f, 30)
	}

	for i := len(frames) - 1; i >= 0; i-- {
		Evaluate(b, frames[i]*1.3, 60)
		if got := Evaluate(a, frames[i], 30); got != want[i] {
			t.Errorf("frame %g: %g != %g", frames[i], got, want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{Stiffness: 0, Damping: 10, Mass: 1},
		{Stiffness: -5, Damping: 10, Mass: 1},
		{Stiffness: 100, Damping: -1, Mass: 1},
		{Stiffness: 100, Damping: 10, Mass: 0},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("config %d should be rejected: %+v", i, cfg)
		}
	}

	good := Config{Stiffness: 100, Damping: 0, Mass: 1}
	if err := good.Validate(); err != nil {
		t.Errorf("undamped spring is valid physics: %v", err)
	}
}

func TestSettlingFrames(t *testing.T) {
	cfg := Config{Stiffness: 170, Damping: 26, Mass: 1}
	frames := SettlingFrames(cfg, 30, 1e-3)
	if math.IsInf(frames, 1) || frames <= 0 {
		t.Fatalf("expected a finite positive settling estimate, got %g", frames)
	}

	// Past the estimate the spring stays near its target.
	for f := frames; f < frames+30; f++ {
		if v := Evaluate(cfg, f, 30); math.Abs(v-1) > 5e-3 {
			t.Errorf("frame %g past settling estimate: %g", f, v)
		}
	}

	undamped := Config{Stiffness: 100, Damping: 0, Mass: 1}
	if !math.IsInf(SettlingFrames(undamped, 30, 1e-3), 1) {
		t.Error("an undamped spring never settles")
	}
}
