package sequence

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/frameval/internal/easing"
	"github.com/ivlev/frameval/internal/spring"
	"github.com/ivlev/frameval/internal/timeline"
)

// Score is the authored YAML document describing a composition: scenes and
// beats on the time axis, each scene optionally carrying the animation
// definitions that run while it is live.
type Score struct {
	Version string     `yaml:"version"`
	FPS     float64    `yaml:"fps,omitempty"`
	Scenes  []SceneDef `yaml:"scenes"`
	Beats   []Beat     `yaml:"beats,omitempty"`
}

// SceneDef is a scene plus its animations.
type SceneDef struct {
	Scene      `yaml:",inline"`
	Animations []AnimationDef `yaml:"animations,omitempty"`
}

// AnimationDef is one authored property animation. Exactly one of the
// duration/spring/keyframes shapes should be used; a spring or keyframe
// list wins over a bare duration if both appear.
type AnimationDef struct {
	Property  string        `yaml:"property"`
	From      float64       `yaml:"from"`
	To        float64       `yaml:"to"`
	Duration  float64       `yaml:"duration,omitempty"` // seconds
	Delay     float64       `yaml:"delay,omitempty"`    // seconds after scene start
	Easing    string        `yaml:"easing,omitempty"`
	Fill      string        `yaml:"fill,omitempty"`
	Timescale float64       `yaml:"timescale,omitempty"`
	Spring    *SpringDef    `yaml:"spring,omitempty"`
	Keyframes []KeyframeDef `yaml:"keyframes,omitempty"`
}

// SpringDef mirrors spring.Config in YAML. Tension and friction are
// accepted as legacy aliases for stiffness and damping; files authored
// against either naming load identically.
type SpringDef struct {
	Stiffness float64 `yaml:"stiffness,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
	Mass      float64 `yaml:"mass,omitempty"`
	Tension   float64 `yaml:"tension,omitempty"`
	Friction  float64 `yaml:"friction,omitempty"`
	Clamp     bool    `yaml:"clamp,omitempty"`
}

// Config resolves the aliases into one parameter set.
func (d SpringDef) Config() spring.Config {
	cfg := spring.Config{
		Stiffness:      d.Stiffness,
		Damping:        d.Damping,
		Mass:           d.Mass,
		OvershootClamp: d.Clamp,
	}
	if cfg.Stiffness == 0 {
		cfg.Stiffness = d.Tension
	}
	if cfg.Damping == 0 {
		cfg.Damping = d.Friction
	}
	if cfg.Mass == 0 {
		cfg.Mass = 1
	}
	return cfg
}

// KeyframeDef is one explicit keyframe on the seconds axis.
type KeyframeDef struct {
	Time   float64 `yaml:"time"`
	Value  float64 `yaml:"value"`
	Easing string  `yaml:"easing,omitempty"`
}

// Load registers every scene and beat of the score into a fresh
// Orchestrator.
func (s *Score) Load() *Orchestrator {
	o := NewOrchestrator()
	for _, sc := range s.Scenes {
		o.RegisterScene(sc.Scene)
	}
	for _, b := range s.Beats {
		o.RegisterBeat(b)
	}
	return o
}

// BuildPlans compiles every scene's animations into plans, keyed by scene
// id. Animation delays are scene-relative; the scene's own start time is
// folded in here so the plans share one global frame axis. A malformed
// definition fails the whole build, scene id attached.
func (s *Score) BuildPlans(fps float64) (map[string]*timeline.Plan, error) {
	if fps <= 0 {
		fps = s.FPS
	}

	plans := make(map[string]*timeline.Plan, len(s.Scenes))
	for _, sc := range s.Scenes {
		if len(sc.Animations) == 0 {
			continue
		}

		b := timeline.NewBuilder()
		for _, a := range sc.Animations {
			opts := []timeline.Option{
				timeline.WithDelay(sc.At + a.Delay),
			}
			if a.Easing != "" {
				opts = append(opts, timeline.WithEasingName(a.Easing))
			}
			if a.Fill != "" {
				opts = append(opts, timeline.WithFill(timeline.ParseFillMode(a.Fill)))
			}
			if a.Timescale != 0 {
				opts = append(opts, timeline.WithTimescale(a.Timescale))
			}

			switch {
			case len(a.Keyframes) > 0:
				keys := make([]timeline.TimedKeyframe, len(a.Keyframes))
				for i, kf := range a.Keyframes {
					keys[i] = timeline.TimedKeyframe{Time: kf.Time, Value: kf.Value}
					if kf.Easing != "" {
						keys[i].Easing = easing.Preset(kf.Easing)
					}
				}
				b.Keyframes(a.Property, keys, opts...)
			case a.Spring != nil:
				b.AnimateSpring(a.Property, a.From, a.To, a.Spring.Config(), opts...)
			default:
				b.Animate(a.Property, a.From, a.To, a.Duration, opts...)
			}
		}

		plan, err := b.Build(fps)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", sc.ID, err)
		}
		plans[sc.ID] = plan
	}
	return plans, nil
}

// WriteScore writes a score to a YAML file.
func WriteScore(score *Score, path string) error {
	data, err := yaml.Marshal(score)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadScore reads a score from a YAML file.
func ReadScore(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var score Score
	if err := yaml.Unmarshal(data, &score); err != nil {
		return nil, err
	}
	return &score, nil
}
