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

package preferences_test

import (
	"testing"

	"github.com/psxemu/gputiming/hardware/preferences"
	"github.com/psxemu/gputiming/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.ExpectedSuccess(t, err)

	test.Equate(t, p.ClockStandard.String(), "NTSC")
	test.Equate(t, p.CacheMissPolicy.String(), "pageSwitchOnly")
	test.Equate(t, p.FIFOBlockOnFull.Get().(bool), true)
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.ExpectedSuccess(t, err)

	// unsupported values are refused and the previous value kept
	err = p.ClockStandard.Set("SECAM")
	test.ExpectedFailure(t, err)
	test.Equate(t, p.ClockStandard.String(), "NTSC")

	err = p.ClockStandard.Set("PAL")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.ClockStandard.String(), "PAL")

	err = p.CacheMissPolicy.Set("sometimes")
	test.ExpectedFailure(t, err)
	test.Equate(t, p.CacheMissPolicy.String(), "pageSwitchOnly")
}

func TestReset(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.ExpectedSuccess(t, err)

	err = p.ClockStandard.Set("PAL")
	test.ExpectedSuccess(t, err)
	err = p.FIFOBlockOnFull.Set(false)
	test.ExpectedSuccess(t, err)

	err = p.Reset()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.ClockStandard.String(), "NTSC")
	test.Equate(t, p.FIFOBlockOnFull.Get().(bool), true)
}
