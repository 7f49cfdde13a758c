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

// Package preferences collects the recognised engine options. Values can be
// changed while the engine is running; the engine reads them on every
// submission.
package preferences

import (
	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/television/specification"
	"github.com/psxemu/gputiming/prefs"
)

// Preferences for the timing engine.
type Preferences struct {
	// the video standard driving the clock rate and frame geometry.
	// recognised values: NTSC, PAL
	ClockStandard prefs.String

	// how the texture cache-miss surcharge is applied. recognised values:
	// pageSwitchOnly, disabled
	CacheMissPolicy prefs.String

	// whether a submission to a full command FIFO blocks (advancing the
	// engine clock until a slot frees) or returns the FifoFull error for
	// the caller to retry
	FIFOBlockOnFull prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. All values start at their defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.ClockStandard.SetHookPre(func(v prefs.Value) error {
		if _, ok := specification.SearchSpec(v.(string)); !ok {
			return curated.Errorf("preferences: unsupported clock standard (%s)", v.(string))
		}
		return nil
	})

	p.CacheMissPolicy.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case "pageSwitchOnly", "disabled":
			return nil
		}
		return curated.Errorf("preferences: unsupported cache miss policy (%s)", v.(string))
	})

	err := p.Reset()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Reset all preferences to their default values.
func (p *Preferences) Reset() error {
	err := p.ClockStandard.Set("NTSC")
	if err != nil {
		return err
	}
	err = p.CacheMissPolicy.Set("pageSwitchOnly")
	if err != nil {
		return err
	}
	return p.FIFOBlockOnFull.Set(true)
}
