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

package random

import (
	"math/rand"
	"time"

	"github.com/psxemu/gputiming/hardware/television/coords"
	"github.com/psxemu/gputiming/hardware/television/specification"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// TelevisionCoords is how the Random type acquires the current coordinates.
type TelevisionCoords interface {
	GetCoords() coords.Coords
}

// Random is a random number generator that is sensitive to time within the
// emulation. Two emulations at the same point in the same frame draw the
// same numbers, which is what allows parallel and repeated runs to agree.
type Random struct {
	tv TelevisionCoords

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be
	// predictable between processes
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(tv TelevisionCoords) *Random {
	return &Random{tv: tv}
}

// translate television coordinates into a single value. the NTSC frame is
// used as the multiplier for both standards; only stability matters here,
// not the exact cycle count.
func coordsSum(c coords.Coords) int64 {
	return coords.Sum(c, specification.SpecNTSC.CyclesPerFrame, specification.CyclesPerScanline)
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(coordsSum(rnd.tv.GetCoords())))
	}
	return rand.New(rand.NewSource(baseSeed + coordsSum(rnd.tv.GetCoords())))
}

// Intn returns a random integer in the range 0 to n.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
