// This file is part of GPUTiming.
//
// GPUTiming is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GPUTiming is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GPUTiming.  If not, see <https://www.gnu.org/licenses/>.

// Package gpu is the top of the timing engine. The GPU type accepts drawing
// command descriptors, prices them through the cost model and tracks their
// progress through the command FIFO against the television's cycle counter.
//
// The engine is single threaded and cooperative. It is driven by repeated
// calls from a host loop, typically interleaved with instruction stepping of
// the emulated processor. Nothing in the engine is safe for concurrent use.
//
// Two cycle streams are modelled. Rasterizer work occupies a FIFO slot and
// blocks later commands; CPU-bus transfers run on a separate transfer path
// that shares the cycle counter but never contends for a slot.
package gpu

import (
	"fmt"

	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/gpu/fifo"
	"github.com/psxemu/gputiming/hardware/gpu/primitive"
	"github.com/psxemu/gputiming/hardware/gpu/raster"
	"github.com/psxemu/gputiming/hardware/gpu/texcache"
	"github.com/psxemu/gputiming/hardware/gpu/timing"
	"github.com/psxemu/gputiming/hardware/preferences"
	"github.com/psxemu/gputiming/hardware/television"
	"github.com/psxemu/gputiming/logger"
)

// a command on the transfer path. completion is tracked against the same
// cycle counter as FIFO slots but without occupying a slot.
type transfer struct {
	descriptor  primitive.Descriptor
	completesAt int64
}

// GPU is the timing engine for the rasterizer.
type GPU struct {
	Prefs *preferences.Preferences

	// the television the GPU is driving. frame geometry and the cycle
	// counter live here
	TV *television.Television

	// the command buffer between the issuing processor and the rasterizer
	Queue *fifo.Queue

	// the texture page/CLUT bookkeeping
	Cache *texcache.Tracker

	// pending transfers on the overlappable path, in issue order
	transfers []transfer

	// commands completed during an internal advancement (a blocking
	// submission or a VBlank wait). reported by the next AdvanceCycles()
	pending []primitive.Descriptor
}

// Submission is returned by Submit(). It records the resolved cost of the
// command and the absolute cycle at which the command will complete.
type Submission struct {
	Cost timing.CostEntry

	// measured against TotalCycles(), not against the cycle-in-frame
	CompletesAt int64

	// true if the command ran on the transfer path rather than through the
	// command FIFO
	Overlapped bool
}

// NewGPU is the preferred method of initialisation for the GPU type. A nil
// prefs argument selects the default preferences.
//
// The clock standard preference is applied at creation. The cache-miss
// policy and the FIFO blocking policy are read live on every submission.
func NewGPU(prefs *preferences.Preferences) (*GPU, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("gpu: %v", err)
		}
	}

	tv, err := television.NewTelevision(prefs.ClockStandard.String())
	if err != nil {
		return nil, curated.Errorf("gpu: %v", err)
	}

	logger.Logf(logger.Allow, "gpu", "clock standard: %s", tv.GetSpec().ID)

	return &GPU{
		Prefs: prefs,
		TV:    tv,
		Queue: &fifo.Queue{},
		Cache: texcache.NewTracker(),
	}, nil
}

func (g *GPU) String() string {
	return fmt.Sprintf("%v occupancy=%d", g.TV, g.Queue.Len())
}

// Reset the engine to its initial state. The FIFO is emptied, the texture
// bindings are forgotten and the frame state rewinds to the start of frame
// zero. Mirrors the hardware's reset command.
func (g *GPU) Reset() {
	g.TV.Reset()
	g.Queue.Clear()
	g.Cache.Reset()
	g.transfers = nil
	g.pending = nil
}

// Busy returns true while the rasterizer has work in the FIFO. Transfer-path
// activity does not make the rasterizer busy.
func (g *GPU) Busy() bool {
	return !g.Queue.IsEmpty()
}

// Occupancy returns the number of occupied FIFO slots.
func (g *GPU) Occupancy() int {
	return g.Queue.Len()
}

// Submit a command to the engine. The descriptor is validated and priced;
// rasterizer commands are then queued in the FIFO and transfer commands are
// placed on the transfer path.
//
// If the FIFO is full the behaviour depends on the FIFOBlockOnFull
// preference: either the engine clock advances until the head slot frees
// (the cooperative contract) or the FifoFull error is returned for the
// caller to retry. Commands completed during a blocking submission are
// reported by the next call to AdvanceCycles().
//
// Errors: raster.InvalidGeometry, fifo.Full, timing.UnsupportedKind,
// timing.UnsupportedBlendMode. A rejected command charges no cycles and
// mutates no state.
func (g *GPU) Submit(d primitive.Descriptor) (Submission, error) {
	// validation must precede any state mutation. kind and blend mode are
	// checked before the geometry so that an out-of-range kind is reported
	// as such and not as bad geometry
	err := timing.Validate(d)
	if err != nil {
		return Submission{}, curated.Errorf("gpu: %v", err)
	}
	area, err := raster.PixelArea(d)
	if err != nil {
		return Submission{}, curated.Errorf("gpu: %v", err)
	}

	// backpressure is resolved before the texture cache is touched so that
	// a rejected command leaves no trace
	if !d.Kind.Overlappable() && g.Queue.IsFull() {
		if !g.Prefs.FIFOBlockOnFull.Get().(bool) {
			return Submission{}, curated.Errorf("gpu: %v", curated.Errorf(fifo.Full))
		}
		err = g.blockUntilFree()
		if err != nil {
			return Submission{}, err
		}
	}

	g.applyCachePolicy()
	cache := g.Cache.Resolve(d)

	entry, err := timing.Estimate(d, area, cache)
	if err != nil {
		return Submission{}, curated.Errorf("gpu: %v", err)
	}

	now := g.TV.TotalCycles()

	if d.Kind.Overlappable() {
		completes := now + int64(entry.TotalCycles)
		g.transfers = append(g.transfers, transfer{descriptor: d, completesAt: completes})
		return Submission{Cost: entry, CompletesAt: completes, Overlapped: true}, nil
	}

	// the rasterizer starts the command when it reaches the head of the
	// queue, not at submission time
	start := now
	if last := g.Queue.LastCompletion(); last > start {
		start = last
	}
	completes := start + int64(entry.TotalCycles)

	err = g.Queue.Push(fifo.Slot{
		Descriptor:  d,
		Cost:        entry,
		IssuedAt:    now,
		CompletesAt: completes,
	})
	if err != nil {
		// a slot was freed above so this should be impossible
		return Submission{}, curated.Errorf("gpu: %v", err)
	}

	return Submission{Cost: entry, CompletesAt: completes}, nil
}

// AdvanceCycles moves the engine's notion of time forward and frees any
// FIFO slots and transfers whose completion time has been reached. Returns
// the descriptors of every command newly completed, including any that
// completed during an earlier blocking submission or VBlank wait.
func (g *GPU) AdvanceCycles(n int) ([]primitive.Descriptor, error) {
	if n < 0 {
		return nil, curated.Errorf("gpu: cannot advance by a negative number of cycles (%d)", n)
	}

	completed := g.pending
	g.pending = nil

	c, err := g.advance(n)
	if err != nil {
		return nil, err
	}

	return append(completed, c...), nil
}

// WaitForVBlank advances the engine to the start of the next VBlank period
// and returns the number of cycles that were skipped. The wait itself
// consumes no GPU resources; it is the scheduling point at which the
// caller's virtual time catches up with the display.
//
// The return value is always strictly positive: waiting while already in
// VBlank advances to the next frame's VBlank. Commands completed during the
// wait are reported by the next call to AdvanceCycles().
func (g *GPU) WaitForVBlank() (int, error) {
	skipped := g.TV.CyclesToVBlankStart()

	completed, err := g.advance(skipped)
	if err != nil {
		return 0, err
	}
	g.pending = append(g.pending, completed...)

	return skipped, nil
}

// advance the cycle counter, draining the FIFO and the transfer path.
func (g *GPU) advance(n int) ([]primitive.Descriptor, error) {
	err := g.TV.Advance(n)
	if err != nil {
		return nil, curated.Errorf("gpu: %v", err)
	}

	now := g.TV.TotalCycles()

	var completed []primitive.Descriptor
	for _, s := range g.Queue.Drain(now) {
		completed = append(completed, s.Descriptor)
	}

	// transfers complete independently of the FIFO
	remaining := g.transfers[:0]
	for _, t := range g.transfers {
		if t.completesAt <= now {
			completed = append(completed, t.descriptor)
		} else {
			remaining = append(remaining, t)
		}
	}
	g.transfers = remaining

	return completed, nil
}

// advance the clock to the completion of the head slot, freeing it.
func (g *GPU) blockUntilFree() error {
	head, ok := g.Queue.Peek()
	if !ok {
		return nil
	}

	logger.Logf(logger.Allow, "gpu", "fifo full: blocking until cycle %d", head.CompletesAt)

	delta := head.CompletesAt - g.TV.TotalCycles()
	if delta < 0 {
		delta = 0
	}

	completed, err := g.advance(int(delta))
	if err != nil {
		return err
	}
	g.pending = append(g.pending, completed...)

	return nil
}

// the texture cache policy preference is read live so that a change takes
// effect on the next submission.
func (g *GPU) applyCachePolicy() {
	switch g.Prefs.CacheMissPolicy.String() {
	case "disabled":
		g.Cache.SetPolicy(texcache.Disabled)
	default:
		g.Cache.SetPolicy(texcache.PageSwitchOnly)
	}
}
