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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/psxemu/gputiming/curated"
)

// Profile selects which profiles the Check() function should produce.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// ParseProfile converts a command line string to a Profile value.
func ParseProfile(s string) (Profile, bool) {
	switch s {
	case "none", "NONE", "":
		return ProfileNone, true
	case "cpu", "CPU":
		return ProfileCPU, true
	case "mem", "MEM":
		return ProfileMem, true
	case "all", "ALL":
		return ProfileAll, true
	}
	return ProfileNone, false
}

// RunProfiler runs the supplied function, producing the profiles requested
// by the profile argument. Profile files are named after the tag argument.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile == ProfileCPU || profile == ProfileAll {
		f, err := os.Create(tag + "_cpu.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileAll {
		f, err := os.Create(tag + "_mem.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
