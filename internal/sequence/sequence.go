// Package sequence coordinates named scenes and beats on a shared time axis.
// It decides when things happen, never what values they animate; rendering
// components query it to know whether a region is live at a given time.
package sequence

import "sync"

// Scene is a named time interval starting at At seconds and lasting
// Duration seconds.
type Scene struct {
	ID       string  `yaml:"id"`
	At       float64 `yaml:"at"`
	Duration float64 `yaml:"duration"`
}

// Beat is a named instant. It has no extent: IsActive never reports it, but
// Progress flips from 0 to 1 as time passes it.
type Beat struct {
	ID string  `yaml:"id"`
	At float64 `yaml:"at"`
}

// Orchestrator holds the registered scenes and beats. Registration normally
// happens during single-threaded setup; the mutex makes late registration
// safe against concurrent queries anyway.
type Orchestrator struct {
	mu     sync.RWMutex
	scenes map[string]Scene
	beats  map[string]Beat
}

// NewOrchestrator returns an empty Orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		scenes: make(map[string]Scene),
		beats:  make(map[string]Beat),
	}
}

// RegisterScene adds or replaces a scene. Registration is idempotent by id:
// re-registering the same id replaces its definition. Overlapping scenes
// are allowed.
func (o *Orchestrator) RegisterScene(s Scene) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.scenes[s.ID] = s
	delete(o.beats, s.ID)
}

// RegisterBeat adds or replaces a beat under the same idempotence rule.
func (o *Orchestrator) RegisterBeat(b Beat) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.beats[b.ID] = b
	delete(o.scenes, b.ID)
}

// IsActive reports whether the scene with the given id covers time t, using
// the half-open interval at <= t < at+duration. Unknown ids and beats
// (zero extent) are never active.
func (o *Orchestrator) IsActive(id string, t float64) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	s, ok := o.scenes[id]
	if !ok {
		return false
	}
	return t >= s.At && t < s.At+s.Duration
}

// Progress returns how far through its interval the scene or beat is at
// time t: 0 before the start, 1 at or after the end, linear in between.
// Unknown ids report 0.
func (o *Orchestrator) Progress(id string, t float64) float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if b, ok := o.beats[id]; ok {
		if t >= b.At {
			return 1
		}
		return 0
	}

	s, ok := o.scenes[id]
	if !ok {
		return 0
	}
	if t <= s.At {
		return 0
	}
	if s.Duration <= 0 || t >= s.At+s.Duration {
		return 1
	}
	return (t - s.At) / s.Duration
}

// TotalDuration returns the time at which the last scene ends or the last
// beat fires, whichever is later.
func (o *Orchestrator) TotalDuration() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()

	total := 0.0
	for _, s := range o.scenes {
		if end := s.At + s.Duration; end > total {
			total = end
		}
	}
	for _, b := range o.beats {
		if b.At > total {
			total = b.At
		}
	}
	return total
}

// IDs returns every registered scene and beat id, unordered.
func (o *Orchestrator) IDs() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]string, 0, len(o.scenes)+len(o.beats))
	for id := range o.scenes {
		out = append(out, id)
	}
	for id := range o.beats {
		out = append(out, id)
	}
	return out
}
