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

package logger

import (
	"strings"
	"testing"

	"github.com/psxemu/gputiming/test"
)

func TestLogger(t *testing.T) {
	log := newLogger(100)
	w := &strings.Builder{}

	ok := log.write(w)
	test.Equate(t, ok, false)
	test.Equate(t, w.String(), "")

	log.log("test", "this is a test")
	ok = log.write(w)
	test.Equate(t, ok, true)
	test.Equate(t, w.String(), "test: this is a test\n")

	// clear the strings.Builder buffer before continuing, makes comparisons
	// easier to manage
	w.Reset()

	log.log("test2", "this is another test")
	log.write(w)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a tail() should be okay
	w.Reset()
	log.tail(w, 100)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.tail(w, 2)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.tail(w, 1)
	test.Equate(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.tail(w, 0)
	test.Equate(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := newLogger(100)
	w := &strings.Builder{}

	log.log("test", "same detail")
	log.log("test", "same detail")
	log.log("test", "same detail")
	log.write(w)
	test.Equate(t, w.String(), "test: same detail (repeat x3)\n")

	// a different tag breaks the run
	w.Reset()
	log.log("test2", "same detail")
	log.write(w)
	test.Equate(t, w.String(), "test: same detail (repeat x3)\ntest2: same detail\n")
}

func TestMaxEntries(t *testing.T) {
	log := newLogger(2)
	w := &strings.Builder{}

	log.log("a", "1")
	log.log("b", "2")
	log.log("c", "3")
	log.write(w)
	test.Equate(t, w.String(), "b: 2\nc: 3\n")
}

func TestWriteRecent(t *testing.T) {
	log := newLogger(100)
	w := &strings.Builder{}

	log.log("a", "1")
	log.writeRecent(w)
	test.Equate(t, w.String(), "a: 1\n")

	// writeRecent() only reports entries made since the last call
	w.Reset()
	log.writeRecent(w)
	test.Equate(t, w.String(), "")

	w.Reset()
	log.log("b", "2")
	log.writeRecent(w)
	test.Equate(t, w.String(), "b: 2\n")
}

func TestEcho(t *testing.T) {
	log := newLogger(100)
	w := &strings.Builder{}

	log.log("before", "echo")
	log.setEcho(w, true)
	test.Equate(t, w.String(), "before: echo\n")

	// subsequent entries arrive as they are made
	log.log("after", "echo")
	test.Equate(t, w.String(), "before: echo\nafter: echo\n")

	// echo can be turned off
	log.setEcho(nil, false)
	log.log("silent", "entry")
	test.Equate(t, w.String(), "before: echo\nafter: echo\n")
}
