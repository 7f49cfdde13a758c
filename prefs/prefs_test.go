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

package prefs_test

import (
	"fmt"
	"testing"

	"github.com/psxemu/gputiming/prefs"
	"github.com/psxemu/gputiming/test"
)

func TestBool(t *testing.T) {
	var p prefs.Bool

	// zero value reads as false
	test.Equate(t, p.Get().(bool), false)
	test.Equate(t, p.String(), "false")

	err := p.Set(true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(bool), true)

	// string values are converted
	err = p.Set("false")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(bool), false)

	err = p.Set("TRUE")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(bool), true)

	// unsupported types are an error
	err = p.Set(1.0)
	test.ExpectedFailure(t, err)

	err = p.Reset()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(bool), false)
}

func TestInt(t *testing.T) {
	var p prefs.Int

	test.Equate(t, p.Get().(int), 0)

	err := p.Set(99)
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(int), 99)
	test.Equate(t, p.String(), "99")

	err = p.Set("123")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(int), 123)

	err = p.Set("not a number")
	test.ExpectedFailure(t, err)
	test.Equate(t, p.Get().(int), 123)

	err = p.Reset()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(int), 0)
}

func TestString(t *testing.T) {
	var p prefs.String

	test.Equate(t, p.String(), "")

	err := p.Set("hello")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.String(), "hello")

	// any type is accepted and formatted with the %v verb
	err = p.Set(100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.String(), "100")

	// max length truncates on set
	p.SetMaxLen(3)
	err = p.Set("abcdef")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.String(), "abc")

	// and truncates the existing value when the limit shrinks
	p.SetMaxLen(0)
	err = p.Set("abcdef")
	test.ExpectedSuccess(t, err)
	p.SetMaxLen(2)
	test.Equate(t, p.String(), "ab")
}

func TestHooks(t *testing.T) {
	var p prefs.Int

	err := p.Set(1)
	test.ExpectedSuccess(t, err)

	// a failing pre hook leaves the value unchanged
	p.SetHookPre(func(v prefs.Value) error {
		if v.(int) > 10 {
			return fmt.Errorf("too big")
		}
		return nil
	})

	err = p.Set(100)
	test.ExpectedFailure(t, err)
	test.Equate(t, p.Get().(int), 1)

	err = p.Set(5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(int), 5)

	// the post hook sees the value after it has been stored
	var seen int
	p.SetHookPost(func(v prefs.Value) error {
		seen = v.(int)
		return nil
	})

	err = p.Set(7)
	test.ExpectedSuccess(t, err)
	test.Equate(t, seen, 7)
}
