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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/psxemu/gputiming/debugger/easyterm"
	"github.com/psxemu/gputiming/test"
)

func TestInitialiseRequiresFiles(t *testing.T) {
	trm := easyterm.Terminal{}
	test.ExpectedFailure(t, trm.Initialise(nil, os.Stdout))
	test.ExpectedFailure(t, trm.Initialise(os.Stdin, nil))
}

// terminal attributes can only be read from a real terminal. a pipe is
// rejected at initialisation rather than failing later when the mode is
// changed
func TestInitialiseRequiresTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	test.ExpectedSuccess(t, err)
	defer r.Close()
	defer w.Close()

	trm := easyterm.Terminal{}
	test.ExpectedFailure(t, trm.Initialise(r, w))
}
