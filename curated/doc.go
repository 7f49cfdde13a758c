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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern string doubles as the identity of the error. The Is() function
// checks whether an error was created from a specific pattern:
//
//	e := curated.Errorf(fifo.Full)
//
//	if curated.Is(e, fifo.Full) {
//		// retry or block
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, which is useful when the error has been wrapped by an
// intermediate function:
//
//	e := curated.Errorf("gpu: %v", curated.Errorf(fifo.Full))
//
//	curated.Is(e, fifo.Full)   // false
//	curated.Has(e, fifo.Full)  // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'. An uncurated error
// arriving at a package boundary should be treated as unexpected.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors: wrapping twice with
// the same package prefix does not produce a stuttering message.
package curated
