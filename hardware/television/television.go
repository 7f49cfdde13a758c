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

package television

import (
	"fmt"

	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/television/coords"
	"github.com/psxemu/gputiming/hardware/television/specification"
)

// NotASpecification is returned when a requested specification ID is not
// recognised.
const NotASpecification = "television: unsupported specification (%s)"

// Phase describes which part of the display the television is currently
// tracing.
type Phase int

// List of valid Phase values. HBlank and VBlank overlap on the final
// scanlines of the frame; VBlank wins in that case.
const (
	PhaseActive Phase = iota
	PhaseHBlank
	PhaseVBlank
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseHBlank:
		return "hblank"
	case PhaseVBlank:
		return "vblank"
	}
	return "unknown"
}

// FrameInfo records the details of the frame that has just completed. A copy
// is sent to every FrameTrigger at the frame boundary.
type FrameInfo struct {
	Spec specification.Spec

	// the number of the frame that has just finished
	FrameNum int

	// cycles consumed by the frame. always equal to the specification's
	// CyclesPerFrame for this television implementation
	FrameCycles int
}

// FrameTrigger implementations are notified at the end of every frame.
type FrameTrigger interface {
	NewFrame(FrameInfo) error
}

// Television tracks the GPU cycle counter against the geometry of the frame:
// which scanline the raster is on, whether the display is in a blanking
// period and when the frame wraps.
//
// The cycle-in-frame counter is monotonic within a frame and wraps to zero
// when the per-frame budget is reached, which is the end of the VBlank
// period.
type Television struct {
	// the specification that was requested on creation. the "AUTO" id
	// resolves to NTSC
	reqSpecID string

	spec specification.Spec

	frameNum     int
	cycleInFrame int

	// total number of cycles advanced since creation or the last Reset().
	// never wraps
	totalCycles int64

	frameTriggers []FrameTrigger
}

// NewTelevision creates a new instance of Television for the specification
// with the given ID.
func NewTelevision(spec string) (*Television, error) {
	s, ok := specification.SearchSpec(spec)
	if !ok {
		return nil, curated.Errorf(NotASpecification, spec)
	}

	return &Television{
		reqSpecID: spec,
		spec:      s,
	}, nil
}

func (tv *Television) String() string {
	c := tv.GetCoords()
	return fmt.Sprintf("%s %v (%v)", tv.spec.ID, c, tv.Phase())
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	tv.frameTriggers = append(tv.frameTriggers, f)
}

// Reset the television to an initial state.
func (tv *Television) Reset() {
	tv.frameNum = 0
	tv.cycleInFrame = 0
	tv.totalCycles = 0
}

// SetSpec sets the television's specification. Also resets the frame state;
// cycle counts under different clocks are not comparable.
func (tv *Television) SetSpec(spec string) error {
	s, ok := specification.SearchSpec(spec)
	if !ok {
		return curated.Errorf(NotASpecification, spec)
	}
	tv.spec = s
	tv.Reset()
	return nil
}

// GetSpec returns the television's current specification.
func (tv *Television) GetSpec() specification.Spec {
	return tv.spec
}

// GetReqSpecID returns the specification that was requested on creation.
func (tv *Television) GetReqSpecID() string {
	return tv.reqSpecID
}

// Advance the television state by the given number of cycles. FrameTriggers
// are notified at every frame boundary the advancement crosses.
func (tv *Television) Advance(cycles int) error {
	if cycles < 0 {
		return curated.Errorf("television: cannot advance by a negative number of cycles (%d)", cycles)
	}

	tv.totalCycles += int64(cycles)
	tv.cycleInFrame += cycles

	for tv.cycleInFrame >= tv.spec.CyclesPerFrame {
		tv.cycleInFrame -= tv.spec.CyclesPerFrame
		tv.frameNum++

		for _, f := range tv.frameTriggers {
			err := f.NewFrame(FrameInfo{
				Spec:        tv.spec,
				FrameNum:    tv.frameNum - 1,
				FrameCycles: tv.spec.CyclesPerFrame,
			})
			if err != nil {
				return curated.Errorf("television: %v", err)
			}
		}
	}

	return nil
}

// GetCoords returns an instance of coords.Coords for the current moment.
func (tv *Television) GetCoords() coords.Coords {
	return coords.Coords{
		Frame:    tv.frameNum,
		Scanline: tv.cycleInFrame / tv.spec.CyclesPerScanline,
		Cycle:    tv.cycleInFrame % tv.spec.CyclesPerScanline,
	}
}

// CycleInFrame returns the number of cycles consumed by the current frame so
// far.
func (tv *Television) CycleInFrame() int {
	return tv.cycleInFrame
}

// TotalCycles returns the total number of cycles advanced since creation or
// the most recent Reset(). Unlike CycleInFrame() the value never wraps.
func (tv *Television) TotalCycles() int64 {
	return tv.totalCycles
}

// Phase returns which part of the display the television is currently
// tracing.
func (tv *Television) Phase() Phase {
	if tv.cycleInFrame >= tv.spec.CycleVBlankStart {
		return PhaseVBlank
	}
	if tv.cycleInFrame%tv.spec.CyclesPerScanline >= tv.spec.CycleHBlankStart {
		return PhaseHBlank
	}
	return PhaseActive
}

// CyclesToVBlankStart returns the number of cycles between now and the start
// of the next VBlank period. The result is always strictly positive: if the
// television is at, or past, the VBlank start for the current frame then the
// distance to the next frame's VBlank is returned.
func (tv *Television) CyclesToVBlankStart() int {
	d := tv.spec.CycleVBlankStart - tv.cycleInFrame
	if d <= 0 {
		d += tv.spec.CyclesPerFrame
	}
	return d
}

// TelevisionState is a deliberately opaque type returned by Snapshot() and
// used by RestoreSnapshot().
type TelevisionState interface{}

type televisionState struct {
	spec         specification.Spec
	frameNum     int
	cycleInFrame int
	totalCycles  int64
}

// Snapshot makes a copy of the television state.
func (tv *Television) Snapshot() TelevisionState {
	return &televisionState{
		spec:         tv.spec,
		frameNum:     tv.frameNum,
		cycleInFrame: tv.cycleInFrame,
		totalCycles:  tv.totalCycles,
	}
}

// RestoreSnapshot copies a previously snapshotted state back into the
// television.
func (tv *Television) RestoreSnapshot(state TelevisionState) error {
	s, ok := state.(*televisionState)
	if !ok {
		return curated.Errorf("television: not a valid television state")
	}
	tv.spec = s.spec
	tv.frameNum = s.frameNum
	tv.cycleInFrame = s.cycleInFrame
	tv.totalCycles = s.totalCycles
	return nil
}
