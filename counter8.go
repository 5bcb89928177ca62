// This file is part of Counter8.
//
// Counter8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Counter8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Counter8.  If not, see <https://www.gnu.org/licenses/>.

// Counter8 simulates an 8-bit counter with asynchronous reset, synchronous
// parallel load, free-running increment and a tri-stated output bus.
package main

import (
	"fmt"
	"os"

	"counter8/debugger"
	"counter8/hardware"
	"counter8/logger"
	"counter8/modalflag"
	"counter8/monitor"
	"counter8/performance"
	"counter8/statsview"
	"counter8/stimulus"
	"counter8/vcdwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddInt("cycles", 256, "number of clock cycles to run")
	stim := md.AddString("stim", "", "stimulus script to drive the control lines")
	trace := md.AddBool("trace", false, "print signal changes as they happen")
	vcd := md.AddString("vcd", "", "write a VCD waveform of the run to the named file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	sys := hardware.NewSystem()

	if *vcd != "" {
		w, err := vcdwriter.NewVCDWriter(*vcd)
		if err != nil {
			return err
		}
		sys.AttachTracer(w)
	}
	if *trace {
		sys.AttachTracer(monitor.NewMonitor(md.Output))
	}

	if *stim != "" {
		stm, err := stimulus.NewStimulus(*stim)
		if err != nil {
			return err
		}
		if err := stm.Run(sys, *cycles); err != nil {
			return err
		}
	} else {
		// without a stimulus script the counter free-runs with the output
		// bus enabled, after an initial reset pulse
		sys.Pins.OutputEnable = true
		if err := sys.SetReset(true); err != nil {
			return err
		}
		if err := sys.SetReset(false); err != nil {
			return err
		}
		if err := sys.RunForCycles(*cycles, nil); err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "%s\n", sys)

	return sys.End()
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dbg, err := debugger.NewDebugger(os.Stdin, md.Output)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run with profiling: NONE, CPU, MEM, ALL")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "* stats server not available in this build")
		}
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	err = performance.Check(md.Output, prf, *duration)

	// dump the log to stderr at the end of a performance run. any entry in
	// the log is of interest when measuring performance
	logger.Write(os.Stderr)

	return err
}
