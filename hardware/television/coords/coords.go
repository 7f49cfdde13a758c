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

// Package coords represents and can work with television coordinates.
//
// Coordinates are a measurement of time from the point of view of the
// television. They define *when* something happened (a command completed,
// a blanking period began, etc.) relative to the start of the emulation.
package coords

import "fmt"

// Coords represents the state of the television at any moment in time.
type Coords struct {
	Frame    int
	Scanline int

	// the cycle within the current scanline
	Cycle int
}

func (c Coords) String() string {
	return fmt.Sprintf("Frame: %d  Scanline: %03d  Cycle: %04d", c.Frame, c.Scanline, c.Cycle)
}

// Equal compares two instances of Coords and returns true if both are equal.
func Equal(A, B Coords) bool {
	return A.Frame == B.Frame && A.Scanline == B.Scanline && A.Cycle == B.Cycle
}

// GreaterThan compares two instances of Coords and returns true if A is
// later than B.
func GreaterThan(A, B Coords) bool {
	return A.Frame > B.Frame ||
		(A.Frame == B.Frame && A.Scanline > B.Scanline) ||
		(A.Frame == B.Frame && A.Scanline == B.Scanline && A.Cycle > B.Cycle)
}

// GreaterThanOrEqual compares two instances of Coords and returns true if A
// is later than or the same as B.
func GreaterThanOrEqual(A, B Coords) bool {
	return GreaterThan(A, B) || Equal(A, B)
}

// Sum converts the coordinates to a single cycle count. The cyclesPerFrame
// and cyclesPerScanline arguments should be taken from the specification in
// use.
func Sum(c Coords, cyclesPerFrame int, cyclesPerScanline int) int64 {
	return int64(c.Frame)*int64(cyclesPerFrame) + int64(c.Scanline)*int64(cyclesPerScanline) + int64(c.Cycle)
}
