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

package curated_test

import (
	"errors"
	"testing"

	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/test"
)

const testPattern = "test: %v"
const otherPattern = "other: %v"

func TestIsAny(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")
	test.Equate(t, curated.IsAny(err), true)

	plain := errors.New("plain error")
	test.Equate(t, curated.IsAny(plain), false)
	test.Equate(t, curated.IsAny(nil), false)
}

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")
	test.Equate(t, curated.Is(err, testPattern), true)
	test.Equate(t, curated.Is(err, otherPattern), false)
	test.Equate(t, curated.Is(nil, testPattern), false)

	// Is() does not look into the error chain
	wrapped := curated.Errorf(otherPattern, err)
	test.Equate(t, curated.Is(wrapped, testPattern), false)
	test.Equate(t, curated.Is(wrapped, otherPattern), true)
}

func TestHas(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")
	wrapped := curated.Errorf(otherPattern, err)

	// Has() finds the pattern anywhere in the chain
	test.Equate(t, curated.Has(wrapped, testPattern), true)
	test.Equate(t, curated.Has(wrapped, otherPattern), true)
	test.Equate(t, curated.Has(wrapped, "not in the chain: %v"), false)
}

func TestDeduplication(t *testing.T) {
	// duplicate adjacent message parts are removed when the error message is
	// formatted
	inner := curated.Errorf("segment: %v", "detail")
	outer := curated.Errorf("segment: %v", inner)
	test.Equate(t, outer.Error(), "segment: detail")

	// distinct parts are preserved
	distinct := curated.Errorf("outer: %v", inner)
	test.Equate(t, distinct.Error(), "outer: segment: detail")
}
