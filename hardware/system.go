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

package hardware

import (
	"fmt"

	"counter8/curated"
	"counter8/hardware/counter"
	"counter8/hardware/signal"
)

// Event distinguishes what caused an evaluation of the counter.
type Event int

// List of valid Event values.
const (
	// a rising edge of the clock
	ClockTick Event = iota

	// a rising transition of the reset line, between clock edges
	AsyncReset
)

func (ev Event) String() string {
	switch ev {
	case ClockTick:
		return "clk"
	case AsyncReset:
		return "rst"
	}
	panic("unknown evaluation event")
}

// Evaluation is a snapshot of one evaluation of the counter, as passed to
// attached tracers: the inputs that were sampled, the register value they
// produced and the resulting bus state.
type Evaluation struct {
	// number of rising clock edges since power-on. an AsyncReset evaluation
	// carries the cycle number of the most recent clock edge
	Cycle uint64

	Event  Event
	Inputs signal.ControlInputs
	Value  uint8
	Bus    signal.BusOutput
}

// Tracer implementations are notified of every evaluation of the counter.
// The vcdwriter and monitor packages both implement the interface.
type Tracer interface {
	// Trace is called once per evaluation, after the new register value has
	// been committed
	Trace(ev Evaluation) error

	// End is called when the simulation is finished, as an opportunity to
	// flush any buffered output
	End() error
}

// System is the counter and the control lines that drive it.
type System struct {
	Counter *counter.Counter

	// Pins are the control lines as currently driven by the stimulus source.
	// they are sampled by the counter on every evaluation. drive the reset
	// line through SetReset() so that asynchronous semantics are preserved
	Pins signal.ControlInputs

	// number of rising clock edges since power-on
	Cycle uint64

	tracers []Tracer
}

// NewSystem is the preferred method of initialisation for the System type.
func NewSystem() *System {
	return &System{
		Counter: counter.NewCounter(),
	}
}

func (sys *System) String() string {
	return fmt.Sprintf("cycle=%d %s bus=%s", sys.Cycle, sys.Counter, sys.Counter.ReadBus(sys.Pins))
}

// AttachTracer adds a tracer to the list of tracers notified on every
// evaluation.
func (sys *System) AttachTracer(trc Tracer) {
	sys.tracers = append(sys.tracers, trc)
}

// Step advances the system one rising clock edge: the pins are sampled, the
// counter applies its transition policy and the bus is recomputed. Strictly
// in that order.
func (sys *System) Step() error {
	sys.Cycle++
	v := sys.Counter.ClockEdge(sys.Pins)
	return sys.trace(ClockTick, v)
}

// SetReset drives the asynchronous reset line. A rising transition takes
// effect immediately, without waiting for a clock edge. While the line is
// held high any subsequent clock edges also yield a value of zero; reset
// dominates load and increment.
func (sys *System) SetReset(high bool) error {
	rising := high && !sys.Pins.Reset
	sys.Pins.Reset = high

	if !rising {
		return nil
	}

	v := sys.Counter.ClockEdge(sys.Pins)
	return sys.trace(AsyncReset, v)
}

func (sys *System) trace(event Event, value uint8) error {
	if len(sys.tracers) == 0 {
		return nil
	}

	ev := Evaluation{
		Cycle:  sys.Cycle,
		Event:  event,
		Inputs: sys.Pins,
		Value:  value,
		Bus:    sys.Counter.ReadBus(sys.Pins),
	}

	for _, trc := range sys.tracers {
		if err := trc.Trace(ev); err != nil {
			return curated.Errorf("system: %v", err)
		}
	}

	return nil
}

// End the simulation, giving attached tracers the chance to flush any
// buffered output.
func (sys *System) End() error {
	for _, trc := range sys.tracers {
		if err := trc.End(); err != nil {
			return curated.Errorf("system: %v", err)
		}
	}
	return nil
}
