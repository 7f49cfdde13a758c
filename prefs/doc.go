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

// Package prefs provides the basic types for live configuration values.
// Types implement the pref interface and can be set from their native Go
// type or from a string, which is convenient for command line handling.
//
// Validation is performed through the pre-hook mechanism. A hook that
// returns an error prevents the new value from being stored:
//
//	var standard prefs.String
//	standard.SetHookPre(func(v prefs.Value) error {
//		switch v.(string) {
//		case "NTSC", "PAL":
//			return nil
//		}
//		return fmt.Errorf("not a valid standard")
//	})
//
// The post-hook is called after a successful store and is useful for
// propagating the new value to dependent systems.
package prefs
