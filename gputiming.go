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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/psxemu/gputiming/debugger"
	"github.com/psxemu/gputiming/hardware/gpu"
	"github.com/psxemu/gputiming/hardware/preferences"
	"github.com/psxemu/gputiming/hardware/television"
	"github.com/psxemu/gputiming/logger"
	"github.com/psxemu/gputiming/modalflag"
	"github.com/psxemu/gputiming/performance"
	"github.com/psxemu/gputiming/statsview"
	"github.com/psxemu/gputiming/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		vrsn, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", vrsn, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// frameReport prints a summary line at every frame boundary during RUN mode.
// satisfies the television.FrameTrigger interface.
type frameReport struct {
	commands int
}

func (fr *frameReport) NewFrame(info television.FrameInfo) error {
	fmt.Printf("frame %03d: %d commands in %d cycles\n", info.FrameNum, fr.commands, info.FrameCycles)
	fr.commands = 0
	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	spec := md.AddString("tv", "AUTO", "television specification: NTSC, PAL")
	frames := md.AddInt("frames", 60, "number of frames to run")
	block := md.AddBool("block", true, "block on a full command buffer rather than error")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	err = prefs.ClockStandard.Set(*spec)
	if err != nil {
		return err
	}
	err = prefs.FIFOBlockOnFull.Set(*block)
	if err != nil {
		return err
	}

	eng, err := gpu.NewGPU(prefs)
	if err != nil {
		return err
	}

	report := &frameReport{}
	eng.TV.AddFrameTrigger(report)

	wl := performance.NewWorkload(eng.TV)

	// ctrl-c ends the run early
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for eng.TV.GetCoords().Frame < *frames {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		default:
		}

		sub, err := eng.Submit(wl.Next())
		if err != nil {
			return err
		}
		report.commands++

		_, err = eng.AdvanceCycles(sub.Cost.TotalCycles)
		if err != nil {
			return err
		}
	}

	fmt.Println(eng.String())

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	spec := md.AddString("tv", "AUTO", "television specification: NTSC, PAL")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	dbg, err := debugger.NewDebugger(*spec)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	spec := md.AddString("tv", "AUTO", "television specification: NTSC, PAL")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run through the profiler: CPU, MEM, ALL")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			return fmt.Errorf("statsview is not available in this build (use the statsview build tag)")
		}
	}

	prf, ok := performance.ParseProfile(*profile)
	if !ok {
		return fmt.Errorf("unrecognised profile argument (%s)", *profile)
	}

	return performance.Check(md.Output, prf, *spec, *duration)
}
