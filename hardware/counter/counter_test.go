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

package counter_test

import (
	"testing"

	"counter8/hardware/counter"
	"counter8/hardware/signal"
	"counter8/test"
)

func TestResetDominance(t *testing.T) {
	ct := counter.NewCounter()

	// reset wins whatever the other control lines are doing
	v := ct.ClockEdge(signal.ControlInputs{Reset: true, LoadEnable: true, LoadValue: 0xa5})
	test.ExpectEquality(t, v, uint8(0))
	test.ExpectEquality(t, ct.Value, uint8(0))

	// and from any starting value
	ct.ClockEdge(signal.ControlInputs{LoadEnable: true, LoadValue: 0xff})
	test.DemandEquality(t, ct.Value, uint8(0xff))
	v = ct.ClockEdge(signal.ControlInputs{Reset: true})
	test.ExpectEquality(t, v, uint8(0))
}

func TestLoad(t *testing.T) {
	ct := counter.NewCounter()
	ct.ClockEdge(signal.ControlInputs{Reset: true})

	// load is an unconditional overwrite for every possible load value
	for i := 0; i <= 255; i++ {
		v := ct.ClockEdge(signal.ControlInputs{LoadEnable: true, LoadValue: uint8(i)})
		test.ExpectEquality(t, v, uint8(i))
	}

	// a held load line keeps reloading the same value
	ct.ClockEdge(signal.ControlInputs{LoadEnable: true, LoadValue: 0x2a})
	v := ct.ClockEdge(signal.ControlInputs{LoadEnable: true, LoadValue: 0x2a})
	test.ExpectEquality(t, v, uint8(0x2a))
}

func TestIncrement(t *testing.T) {
	ct := counter.NewCounter()
	ct.ClockEdge(signal.ControlInputs{Reset: true})

	for i := 1; i <= 10; i++ {
		v := ct.ClockEdge(signal.ControlInputs{})
		test.ExpectEquality(t, v, uint8(i))
	}
}

func TestIncrementWraparound(t *testing.T) {
	ct := counter.NewCounter()

	ct.ClockEdge(signal.ControlInputs{LoadEnable: true, LoadValue: 0xff})
	test.DemandEquality(t, ct.Value, uint8(0xff))

	// 0xff + 1 wraps to 0x00
	v := ct.ClockEdge(signal.ControlInputs{})
	test.ExpectEquality(t, v, uint8(0))

	// and the bus shows the wrapped value when enabled
	bus := ct.ReadBus(signal.ControlInputs{OutputEnable: true})
	test.ExpectEquality(t, bus, signal.Drive(0x00))
}

func TestBusTriState(t *testing.T) {
	ct := counter.NewCounter()
	ct.ClockEdge(signal.ControlInputs{LoadEnable: true, LoadValue: 0x5c})

	// driven if and only if output_enable is high. reset and load have no
	// bearing on the bus
	bus := ct.ReadBus(signal.ControlInputs{OutputEnable: true, Reset: true, LoadEnable: true})
	test.ExpectEquality(t, bus, signal.Drive(0x5c))

	bus = ct.ReadBus(signal.ControlInputs{Reset: true, LoadEnable: true})
	test.ExpectEquality(t, bus, signal.Undriven)

	// ReadBus is combinational. repeated calls do not disturb the register
	test.ExpectEquality(t, ct.Value, uint8(0x5c))
}

// the load-count-reset scenario: load 0x2a, count for three edges, then
// reset.
func TestLoadCountReset(t *testing.T) {
	ct := counter.NewCounter()
	ct.ClockEdge(signal.ControlInputs{Reset: true})

	v := ct.ClockEdge(signal.ControlInputs{LoadEnable: true, LoadValue: 0x2a})
	test.ExpectEquality(t, v, uint8(0x2a))

	for i := 0; i < 3; i++ {
		v = ct.ClockEdge(signal.ControlInputs{})
	}
	test.ExpectEquality(t, v, uint8(0x2d))

	v = ct.ClockEdge(signal.ControlInputs{Reset: true})
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestString(t *testing.T) {
	ct := counter.NewCounter()
	ct.ClockEdge(signal.ControlInputs{LoadEnable: true, LoadValue: 0x2a})
	test.ExpectEquality(t, ct.String(), "value=0x2a")
}
