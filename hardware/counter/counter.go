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

package counter

import (
	"fmt"

	"counter8/hardware/signal"
)

// Counter is the 8-bit counter register.
type Counter struct {
	// Value is the current register contents. In real hardware the register
	// is undefined until the first reset. The zero value here is a
	// convenience of the model and must not be relied upon; drive the reset
	// line before asserting on Value.
	Value uint8
}

// NewCounter is the preferred method of initialisation for the Counter type.
func NewCounter() *Counter {
	return &Counter{}
}

func (ct *Counter) String() string {
	return fmt.Sprintf("value=%#02x", ct.Value)
}

// ClockEdge advances the register one rising clock edge. Exactly one of the
// three possible actions is applied, in priority order: reset, load,
// increment. Returns the new register value.
//
// ClockEdge is also invoked, independently of the clock, on the rising
// transition of the reset line. The simulation driver is responsible for
// that; see System.SetReset().
func (ct *Counter) ClockEdge(inp signal.ControlInputs) uint8 {
	if inp.Reset {
		ct.Value = 0
	} else if inp.LoadEnable {
		ct.Value = inp.LoadValue
	} else {
		// uint8 arithmetic wraps at 0xff
		ct.Value++
	}
	return ct.Value
}

// ReadBus returns the state the counter is driving onto the output bus. It
// is a pure function of the current register value and the output_enable
// line; it is not gated by the clock and may be called at any time.
func (ct *Counter) ReadBus(inp signal.ControlInputs) signal.BusOutput {
	if inp.OutputEnable {
		return signal.Drive(ct.Value)
	}
	return signal.Undriven
}
