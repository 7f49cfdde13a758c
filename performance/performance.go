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

// Package performance measures how fast the timing engine can price and
// drain a plausible stream of drawing commands. The usefulness of the
// number is in comparison: between versions of the engine and between
// machines.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/gpu"
	"github.com/psxemu/gputiming/hardware/preferences"
)

// number of commands to submit between checks of the wall clock. checking
// the clock is relatively expensive.
const performanceBrake = 1000

// Check the performance of the engine. A synthetic command stream is
// submitted for the given wall-clock duration and the achieved emulated
// frame rate is reported, with profiles produced according to the profile
// argument.
func Check(output io.Writer, profile Profile, spec string, duration string) error {
	prefs, err := preferences.NewPreferences()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	err = prefs.ClockStandard.Set(spec)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	eng, err := gpu.NewGPU(prefs)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	wl := NewWorkload(eng.TV)

	var commands int64

	runner := func() error {
		start := time.Now()
		brake := 0

		for {
			brake++
			if brake >= performanceBrake {
				brake = 0
				if time.Since(start) >= dur {
					return nil
				}
			}

			sub, err := eng.Submit(wl.Next())
			if err != nil {
				return err
			}
			commands++

			// let the engine catch up with the rasterizer so that the FIFO
			// drains and the frame counter moves
			_, err = eng.AdvanceCycles(sub.Cost.TotalCycles)
			if err != nil {
				return err
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	coords := eng.TV.GetCoords()
	tvspec := eng.TV.GetSpec()
	seconds := dur.Seconds()

	fps := float64(coords.Frame) / seconds
	accuracy := 100 * fps / tvspec.RefreshRate

	output.Write([]byte(fmt.Sprintf("%d commands in %.2fs (%.1f/s)\n", commands, seconds, float64(commands)/seconds)))
	output.Write([]byte(fmt.Sprintf("%.1f fps (%d frames) %.1f%% of %s realtime\n", fps, coords.Frame, accuracy, tvspec.ID)))

	return nil
}
