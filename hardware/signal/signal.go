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

package signal

import "fmt"

// ControlInputs are the control lines into the counter. They are sampled once
// per evaluation and are never retained by the counter beyond that
// evaluation.
type ControlInputs struct {
	// Reset is asynchronous. a rising transition takes effect immediately,
	// without waiting for a clock edge. see System.SetReset()
	Reset bool

	// LoadEnable requests that LoadValue is copied into the register on the
	// next clock edge. Reset has priority
	LoadEnable bool
	LoadValue  uint8

	// OutputEnable gates whether the counter drives the output bus
	OutputEnable bool
}

func (inp ControlInputs) String() string {
	return fmt.Sprintf("reset=%d load=%d lv=%#02x oe=%d",
		b2i(inp.Reset), b2i(inp.LoadEnable), inp.LoadValue, b2i(inp.OutputEnable))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// BusOutput is the state of the 8-bit output bus. The bus is either driven
// with a value or it is in the high-impedance state, in which case the
// counter contributes nothing to the bus and the Value field is meaningless.
//
// BusOutput is always a derived value. It is recomputed on every evaluation
// and never stored as persistent state.
type BusOutput struct {
	Driven bool
	Value  uint8
}

// Undriven is the high-impedance bus state.
var Undriven = BusOutput{}

// Drive returns a BusOutput asserting the specified value.
func Drive(value uint8) BusOutput {
	return BusOutput{Driven: true, Value: value}
}

// String renders the bus the way a waveform viewer would print a tri-state
// line. "ZZ" indicating high-impedance.
func (bus BusOutput) String() string {
	if !bus.Driven {
		return "ZZ"
	}
	return fmt.Sprintf("%02x", bus.Value)
}
