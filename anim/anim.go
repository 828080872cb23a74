// Package anim assembles rendered frames into a playable animation.
package anim

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/giboul/tsunami-benchmarks/render"
)

// Animation is an ordered sequence of frames. Playback order is insertion order.
type Animation struct {
	Frames   []*render.Frame
	Interval time.Duration // between frames
	Loop     bool
	ID       string // element id of the embedded player
}

var players atomic.Int64

// New returns an empty animation. Every animation gets its own player id so several
// can share a page.
func New(interval time.Duration, loop bool) *Animation {
	return &Animation{Interval: interval, Loop: loop, ID: fmt.Sprintf("transect-anim-%d", players.Add(1))}
}

// Add appends a frame.
func (a *Animation) Add(f *render.Frame) { a.Frames = append(a.Frames, f) }

func (a *Animation) Len() int { return len(a.Frames) }

// Times returns the time of every frame, in playback order.
func (a *Animation) Times() []float64 {
	ts := make([]float64, len(a.Frames))
	for i, f := range a.Frames {
		ts[i] = f.Time
	}
	return ts
}
