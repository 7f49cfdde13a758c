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

// Package debugger is a simple interactive monitor for the timing engine.
// single keypresses step the engine a scanline or a frame at a time, submit
// synthetic commands and inspect the state of the queue and the clock.
package debugger

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/debugger/easyterm"
	"github.com/psxemu/gputiming/hardware/gpu"
	"github.com/psxemu/gputiming/hardware/gpu/fifo"
	"github.com/psxemu/gputiming/hardware/preferences"
	"github.com/psxemu/gputiming/logger"
	"github.com/psxemu/gputiming/performance"
)

// filename the state graph is written to by the dump command
const dumpFile = "gputiming_state.dot"

// Debugger is the front-end for the interactive monitor
type Debugger struct {
	eng *gpu.GPU
	wl  *performance.Workload
	trm easyterm.Terminal

	// checkpoint taken with the mark command, restored with the undo command
	mark    gpu.State
	hasMark bool

	running bool
}

// NewDebugger prepares a new monitor around a fresh engine instance
func NewDebugger(spec string) (*Debugger, error) {
	prefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	err = prefs.ClockStandard.Set(spec)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	eng, err := gpu.NewGPU(prefs)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg := &Debugger{
		eng: eng,
		wl:  performance.NewWorkload(eng.TV),
	}

	err = dbg.trm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the monitor loop. returns when the user quits.
func (dbg *Debugger) Start() error {
	dbg.trm.CBreakMode()
	defer dbg.trm.CleanUp()

	dbg.printState()
	dbg.printHelp()

	dbg.running = true
	for dbg.running {
		r, err := dbg.trm.ReadRune()
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}

		// engine errors are reported to the user and the monitor carries on.
		// only terminal failures end the session.
		err = dbg.command(r)
		if err != nil {
			dbg.trm.Print("* %v\n", err)
		}
	}

	return nil
}

func (dbg *Debugger) command(r rune) error {
	switch r {
	case 's':
		spec := dbg.eng.TV.GetSpec()
		_, err := dbg.eng.AdvanceCycles(spec.CyclesPerScanline)
		if err != nil {
			return err
		}
		dbg.printState()

	case 'f':
		spec := dbg.eng.TV.GetSpec()
		_, err := dbg.eng.AdvanceCycles(spec.CyclesPerFrame - dbg.eng.TV.CycleInFrame())
		if err != nil {
			return err
		}
		dbg.printState()

	case 'v':
		n, err := dbg.eng.WaitForVBlank()
		if err != nil {
			return err
		}
		dbg.trm.Print("advanced %d cycles to vblank\n", n)
		dbg.printState()

	case 'c':
		d := dbg.wl.Next()
		sub, err := dbg.eng.Submit(d)
		if err != nil {
			return err
		}
		dbg.trm.Print("%s: %d cycles (completes at cycle %d)\n", d.Kind, sub.Cost.TotalCycles, sub.CompletesAt)

	case 'p':
		dbg.trm.Print("%s\n", dbg.eng.String())

	case 'd':
		err := dbg.dump()
		if err != nil {
			return err
		}
		dbg.trm.Print("state graph written to %s\n", dumpFile)

	case 'm':
		dbg.mark = dbg.eng.Snapshot()
		dbg.hasMark = true
		dbg.trm.Print("marked\n")

	case 'u':
		if !dbg.hasMark {
			dbg.trm.Print("nothing marked\n")
			break
		}
		err := dbg.eng.RestoreSnapshot(dbg.mark)
		if err != nil {
			return err
		}
		dbg.printState()

	case 'l':
		logger.Tail(os.Stdout, 10)

	case 'r':
		dbg.eng.Reset()
		dbg.printState()

	case 'q':
		dbg.running = false

	case 'h', '?':
		dbg.printHelp()
	}

	return nil
}

func (dbg *Debugger) printState() {
	co := dbg.eng.TV.GetCoords()
	dbg.trm.Print("frame %d scanline %d cycle %d [%s] fifo %d/%d\n",
		co.Frame, co.Scanline, co.Cycle,
		dbg.eng.TV.Phase(), dbg.eng.Occupancy(), fifo.Capacity)
}

func (dbg *Debugger) printHelp() {
	dbg.trm.Print("(s)canline (f)rame (v)blank (c)ommand (p)rint (d)ump (m)ark (u)ndo (l)og (r)eset (q)uit\n")
}

// dump writes a graphviz rendering of the engine state to the dump file
func (dbg *Debugger) dump() error {
	f, err := os.Create(dumpFile)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Logf(logger.Allow, "debugger", "%v", err)
		}
	}()

	st := dbg.eng.Snapshot()
	memviz.Map(f, &st)

	return nil
}
