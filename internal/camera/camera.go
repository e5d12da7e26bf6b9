// Package camera keeps animated pan/zoom parameters inside safe limits and
// evaluates keyframed camera paths.
package camera

import (
	"math"

	"github.com/ivlev/frameval/internal/track"
)

// State is the camera at one frame. X and Y are pan offsets from center,
// Scale is the zoom factor, Rotation is in degrees.
type State struct {
	X        float64
	Y        float64
	Scale    float64
	Rotation float64
}

// MaxPan returns the largest pan offset along one axis that still keeps the
// scaled content covering the viewport: ((1 - 1/scale) / 2) * dimension.
// At scale 1 no pan is allowed.
func MaxPan(scale, dimension float64) float64 {
	if scale <= 1 {
		return 0
	}
	return (1 - 1/scale) / 2 * dimension
}

// Constrain clamps a raw (x, y, scale) triple so the content rectangle
// always covers the viewport. Scale is floored at minScale, then each pan
// axis is clamped to the exact closed-form bound; no iteration is needed.
// Rotation is never touched by the solver and is returned as zero here.
func Constrain(x, y, scale, viewportW, viewportH, minScale float64) State {
	if scale < minScale {
		scale = minScale
	}

	maxPanX := MaxPan(scale, viewportW)
	maxPanY := MaxPan(scale, viewportH)

	return State{
		X:     clamp(x, -maxPanX, maxPanX),
		Y:     clamp(y, -maxPanY, maxPanY),
		Scale: scale,
	}
}

// Path is a camera animation: one keyframe track per parameter. Nil tracks
// hold the neutral value (0 for pan and rotation, 1 for scale).
type Path struct {
	X        *track.Track
	Y        *track.Track
	Scale    *track.Track
	Rotation *track.Track
}

// StateAt evaluates the path at a frame and passes pan and scale through
// Constrain. Rotation bypasses the solver by contract.
func (p *Path) StateAt(frame, viewportW, viewportH, minScale float64) State {
	scale := 1.0
	if p.Scale != nil {
		scale = p.Scale.Evaluate(frame)
	}
	var x, y float64
	if p.X != nil {
		x = p.X.Evaluate(frame)
	}
	if p.Y != nil {
		y = p.Y.Evaluate(frame)
	}

	st := Constrain(x, y, scale, viewportW, viewportH, minScale)
	if p.Rotation != nil {
		st.Rotation = p.Rotation.Evaluate(frame)
	}
	return st
}

// FitZoom returns the zoom needed to fill the viewport with a content
// rectangle, using padding as the usable viewport fraction and capping at
// maxZoom. Degenerate content reports 1.
func FitZoom(contentW, contentH, viewportW, viewportH, padding, maxZoom float64) float64 {
	if contentW <= 0 || contentH <= 0 {
		return 1
	}
	if padding <= 0 || padding > 1 {
		padding = 0.9
	}

	scaleX := viewportW * padding / contentW
	scaleY := viewportH * padding / contentH

	// Use the smaller scale so the content fits on both axes.
	zoom := math.Min(scaleX, scaleY)
	if zoom < 1 {
		zoom = 1
	}
	if maxZoom > 0 && zoom > maxZoom {
		zoom = maxZoom
	}
	return zoom
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
