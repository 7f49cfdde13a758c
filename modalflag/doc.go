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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes). Modes are specified as the first argument after flags for the
// current mode:
//
//	gputiming -log performance -duration 10s
//
// In the example above, "performance" is the mode and "-duration" is a flag
// belonging to that mode, while "-log" belongs to the top level.
//
// The basic pattern of usage is to create a Modes struct, call NewArgs() with
// the command line arguments, list the available sub-modes and Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE", "DEBUG", "VERSION")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		...
//	}
//
// Each mode then calls NewMode(), adds the flags relevant to it and calls
// Parse() again.
package modalflag
