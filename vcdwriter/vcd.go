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

// Package vcdwriter allows writing of the simulation's signal activity to
// disk as a VCD (value change dump) file, suitable for viewing in a waveform
// viewer. Note that signal activity is buffered in memory in its entirety,
// and written to disk on program end. It is therefore probably only suitable
// for testing purposes.
package vcdwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"counter8/curated"
	"counter8/hardware"
	"counter8/logger"
)

// each clock cycle occupies ten units of the one nanosecond timescale. an
// asynchronous reset between clock edges lands on the intervening units
const clockPeriod = 10

// VCD identifier codes for each signal in the dump.
const (
	idClk          = '!'
	idReset        = '"'
	idLoadEnable   = '#'
	idLoadValue    = '$'
	idOutputEnable = '%'
	idValue        = '&'
	idBusOut       = '\''
)

// VCDWriter implements the hardware.Tracer interface.
type VCDWriter struct {
	filename string
	buffer   []hardware.Evaluation
}

// NewVCDWriter is the preferred method of initialisation for the VCDWriter
// type.
func NewVCDWriter(filename string) (*VCDWriter, error) {
	vcd := &VCDWriter{
		filename: filename,
		buffer:   make([]hardware.Evaluation, 0),
	}

	return vcd, nil
}

// Trace implements the hardware.Tracer interface.
func (vcd *VCDWriter) Trace(ev hardware.Evaluation) error {
	vcd.buffer = append(vcd.buffer, ev)
	return nil
}

// End implements the hardware.Tracer interface. The buffered signal activity
// is written to the VCD file.
func (vcd *VCDWriter) End() (rerr error) {
	f, err := os.Create(vcd.filename)
	if err != nil {
		return curated.Errorf("vcdwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("vcdwriter: %v", err)
		}
	}()

	logger.Logf("vcdwriter", "writing waveform to %s", vcd.filename)

	return vcd.Write(f)
}

// Write the buffered signal activity in VCD format.
func (vcd *VCDWriter) Write(w io.Writer) error {
	s := &strings.Builder{}

	s.WriteString("$version counter8 $end\n")
	s.WriteString("$timescale 1ns $end\n")
	s.WriteString("$scope module counter8 $end\n")
	s.WriteString(fmt.Sprintf("$var wire 1 %c clk $end\n", idClk))
	s.WriteString(fmt.Sprintf("$var wire 1 %c reset $end\n", idReset))
	s.WriteString(fmt.Sprintf("$var wire 1 %c load_enable $end\n", idLoadEnable))
	s.WriteString(fmt.Sprintf("$var wire 8 %c load_value [7:0] $end\n", idLoadValue))
	s.WriteString(fmt.Sprintf("$var wire 1 %c output_enable $end\n", idOutputEnable))
	s.WriteString(fmt.Sprintf("$var wire 8 %c value [7:0] $end\n", idValue))
	s.WriteString(fmt.Sprintf("$var wire 8 %c bus_out [7:0] $end\n", idBusOut))
	s.WriteString("$upscope $end\n")
	s.WriteString("$enddefinitions $end\n")

	// most recent emission for each signal. changes are emitted only when
	// they differ from this
	last := map[rune]string{}

	scalarChange := func(id rune, v string) string {
		if last[id] == v {
			return ""
		}
		last[id] = v
		return fmt.Sprintf("%s%c\n", v, id)
	}

	vectorChange := func(id rune, v string) string {
		if last[id] == v {
			return ""
		}
		last[id] = v
		return fmt.Sprintf("%s %c\n", v, id)
	}

	// everything is undefined until the first evaluation
	s.WriteString("$dumpvars\n")
	s.WriteString(scalarChange(idClk, "x"))
	s.WriteString(scalarChange(idReset, "x"))
	s.WriteString(scalarChange(idLoadEnable, "x"))
	s.WriteString(vectorChange(idLoadValue, "bxxxxxxxx"))
	s.WriteString(scalarChange(idOutputEnable, "x"))
	s.WriteString(vectorChange(idValue, "bxxxxxxxx"))
	s.WriteString(vectorChange(idBusOut, "bxxxxxxxx"))
	s.WriteString("$end\n")

	// time of the most recent emission
	t := int64(-1)

	for _, ev := range vcd.buffer {
		var tm int64

		if ev.Event == hardware.ClockTick {
			tm = int64(ev.Cycle) * clockPeriod
		} else {
			// asynchronous events land between clock edges
			tm = t + 1
		}
		if tm <= t {
			tm = t + 1
		}

		changes := &strings.Builder{}
		if ev.Event == hardware.ClockTick {
			changes.WriteString(scalarChange(idClk, "1"))
		}
		changes.WriteString(scalarChange(idReset, scalar(ev.Inputs.Reset)))
		changes.WriteString(scalarChange(idLoadEnable, scalar(ev.Inputs.LoadEnable)))
		changes.WriteString(vectorChange(idLoadValue, vector(ev.Inputs.LoadValue)))
		changes.WriteString(scalarChange(idOutputEnable, scalar(ev.Inputs.OutputEnable)))
		changes.WriteString(vectorChange(idValue, vector(ev.Value)))
		if ev.Bus.Driven {
			changes.WriteString(vectorChange(idBusOut, vector(ev.Bus.Value)))
		} else {
			changes.WriteString(vectorChange(idBusOut, "bzzzzzzzz"))
		}

		if changes.Len() > 0 {
			s.WriteString(fmt.Sprintf("#%d\n", tm))
			s.WriteString(changes.String())
		}
		t = tm

		// the falling edge of the clock carries no other signal activity
		if ev.Event == hardware.ClockTick {
			t = tm + clockPeriod/2
			s.WriteString(fmt.Sprintf("#%d\n", t))
			s.WriteString(scalarChange(idClk, "0"))
		}
	}

	if _, err := io.WriteString(w, s.String()); err != nil {
		return curated.Errorf("vcdwriter: %v", err)
	}

	return nil
}

func scalar(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func vector(v uint8) string {
	return fmt.Sprintf("b%08b", v)
}
