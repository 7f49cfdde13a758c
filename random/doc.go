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

// Package random should be used in preference to the math/rand package when
// a random number is required inside the emulation.
//
// Numbers are drawn from a source seeded by the current television
// coordinates. The same coordinates always produce the same number, so a
// synthetic workload generated this way is identical across repeated runs
// and across parallel engine instances.
//
// If the same random numbers are required every single time, across
// processes, then set ZeroSeed to true. This is useful for testing purposes.
package random
