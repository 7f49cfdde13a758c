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

// Package specification defines the two video standards the GPU can drive.
// All values are in GPU clock cycles, not video dot-clock cycles. The GPU
// clock runs faster than the dot clock so the number of GPU cycles in a
// scanline is fixed by the hardware at 3688 regardless of standard.
//
// The per-frame cycle budget is the canonical value. The scanline count is
// derived from it: the budget divided by the cycles in a scanline, rounded
// down. This keeps the cycle counter consistent with the refresh rate, which
// is what the driving emulation loop synchronises against.
package specification

import "time"

// Spec is used to define the properties of a video standard.
type Spec struct {
	ID string

	// the GPU clock rate in Hz
	ClockRate int

	// nominal screen refresh rate
	RefreshRate float64

	CyclesPerScanline int
	CyclesPerHBlank   int
	CyclesPerFrame    int

	ScanlinesTotal     int
	ScanlinesPerVBlank int

	// the first scanline of the VBlank period
	ScanlineVBlankStart int

	// the cycle-in-frame at which the VBlank period begins
	CycleVBlankStart int

	// the cycle-in-scanline at which the HBlank period begins
	CycleHBlankStart int
}

// the number of GPU cycles in one scanline is a property of the GPU clock,
// not of the video standard.
const CyclesPerScanline = 3688

// the HBlank window at the end of every scanline.
const CyclesPerHBlank = 900

// the VBlank window at the end of every frame.
const ScanlinesPerVBlank = 60

// SpecNTSC is the specification for NTSC-clocked GPUs.
var SpecNTSC Spec

// SpecPAL is the specification for PAL-clocked GPUs.
var SpecPAL Spec

func init() {
	SpecNTSC = Spec{
		ID:                 "NTSC",
		ClockRate:          53222400,
		RefreshRate:        60.0,
		CyclesPerScanline:  CyclesPerScanline,
		CyclesPerHBlank:    CyclesPerHBlank,
		ScanlinesPerVBlank: ScanlinesPerVBlank,
	}
	SpecNTSC.derive()

	SpecPAL = Spec{
		ID:                 "PAL",
		ClockRate:          53693175,
		RefreshRate:        50.0,
		CyclesPerScanline:  CyclesPerScanline,
		CyclesPerHBlank:    CyclesPerHBlank,
		ScanlinesPerVBlank: ScanlinesPerVBlank,
	}
	SpecPAL.derive()
}

// fill in the fields that follow from the clock rate and refresh rate. the
// frame is a whole number of scanlines so the per-frame budget is the largest
// multiple of the scanline length that fits in one refresh period.
func (spec *Spec) derive() {
	cyclesPerRefresh := int(float64(spec.ClockRate) / spec.RefreshRate)
	spec.ScanlinesTotal = cyclesPerRefresh / spec.CyclesPerScanline
	spec.CyclesPerFrame = spec.ScanlinesTotal * spec.CyclesPerScanline
	spec.ScanlineVBlankStart = spec.ScanlinesTotal - spec.ScanlinesPerVBlank
	spec.CycleVBlankStart = spec.ScanlineVBlankStart * spec.CyclesPerScanline
	spec.CycleHBlankStart = spec.CyclesPerScanline - spec.CyclesPerHBlank
}

// CyclesToDuration converts a cycle count to wall-clock time under the
// specification's clock rate.
func (spec Spec) CyclesToDuration(cycles int64) time.Duration {
	return time.Duration(cycles * int64(time.Second) / int64(spec.ClockRate))
}

// DurationToCycles converts wall-clock time to the number of whole cycles
// that elapse in that time under the specification's clock rate.
func (spec Spec) DurationToCycles(d time.Duration) int64 {
	return int64(d) * int64(spec.ClockRate) / int64(time.Second)
}

// SearchSpec looks for a specification with the given ID. The search is case
// insensitive. Returns false if the ID does not match a specification.
func SearchSpec(id string) (Spec, bool) {
	switch id {
	case "NTSC", "ntsc":
		return SpecNTSC, true
	case "PAL", "pal":
		return SpecPAL, true
	case "AUTO", "auto", "":
		// NTSC is the default for consoles sold in most regions
		return SpecNTSC, true
	}
	return Spec{}, false
}
