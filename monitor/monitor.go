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

// Package monitor prints the signal activity of a simulation as it happens,
// one line per change of observed state. Nothing is printed for an
// evaluation that leaves every observed signal unchanged.
package monitor

import (
	"fmt"
	"io"

	"counter8/curated"
	"counter8/hardware"
)

// Monitor implements the hardware.Tracer interface.
type Monitor struct {
	output io.Writer

	// the observed state most recently printed. an evaluation that renders
	// identically is not printed again
	last string
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(output io.Writer) *Monitor {
	return &Monitor{
		output: output,
	}
}

// Trace implements the hardware.Tracer interface.
func (mon *Monitor) Trace(ev hardware.Evaluation) error {
	s := fmt.Sprintf("%s count=%#02x bus=%s", ev.Inputs, ev.Value, ev.Bus)
	if s == mon.last {
		return nil
	}
	mon.last = s

	if _, err := fmt.Fprintf(mon.output, "%8d %s %s\n", ev.Cycle, ev.Event, s); err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	return nil
}

// End implements the hardware.Tracer interface.
func (mon *Monitor) End() error {
	return nil
}
