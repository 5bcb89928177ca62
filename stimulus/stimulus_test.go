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

package stimulus_test

import (
	"strings"
	"testing"

	"counter8/curated"
	"counter8/hardware"
	"counter8/stimulus"
	"counter8/test"
)

func TestStimulusRun(t *testing.T) {
	script := `counter8stim
# load 0x2a and let the counter run
1 reset=1
2 reset=0
3 load=1 lv=0x2a oe=1
4 load=0
`

	stm, err := stimulus.ReadStimulus(strings.NewReader(script))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, stm.LastCycle(), uint64(4))

	sys := hardware.NewSystem()

	// cycle 1: reset. cycle 2: increment to 1. cycle 3: load 0x2a.
	// cycles 4-6: increment
	test.DemandSuccess(t, stm.Run(sys, 6))
	test.ExpectEquality(t, sys.Counter.Value, uint8(0x2d))
	test.ExpectEquality(t, sys.Pins.OutputEnable, true)
}

func TestStimulusAsyncReset(t *testing.T) {
	script := `counter8stim
1 reset=1
2 reset=0
5 reset=1
`

	stm, err := stimulus.ReadStimulus(strings.NewReader(script))
	test.DemandSuccess(t, err)

	sys := hardware.NewSystem()
	trc := &countingTracer{}
	sys.AttachTracer(trc)

	test.DemandSuccess(t, stm.Run(sys, 5))

	// two asynchronous reset events, five clock edges
	test.ExpectEquality(t, trc.resets, 2)
	test.ExpectEquality(t, trc.ticks, 5)
	test.ExpectEquality(t, sys.Counter.Value, uint8(0))
}

type countingTracer struct {
	ticks  int
	resets int
}

func (trc *countingTracer) Trace(ev hardware.Evaluation) error {
	switch ev.Event {
	case hardware.ClockTick:
		trc.ticks++
	case hardware.AsyncReset:
		trc.resets++
	}
	return nil
}

func (trc *countingTracer) End() error {
	return nil
}

func TestStimulusHeader(t *testing.T) {
	_, err := stimulus.ReadStimulus(strings.NewReader("1 reset=1\n"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "stimulus: %v"))
}

func TestStimulusErrors(t *testing.T) {
	// unrecognised signal name, with the line number in the error
	_, err := stimulus.ReadStimulus(strings.NewReader("counter8stim\n1 ena=1\n"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "stimulus: line 2: unrecognised signal: ena")

	// bad logic level
	_, err = stimulus.ReadStimulus(strings.NewReader("counter8stim\n1 reset=2\n"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "stimulus: line 2: bad value for reset: 2")

	// load value out of range
	_, err = stimulus.ReadStimulus(strings.NewReader("counter8stim\n1 lv=0x100\n"))
	test.ExpectFailure(t, err)

	// directives out of cycle order
	_, err = stimulus.ReadStimulus(strings.NewReader("counter8stim\n5 reset=1\n2 reset=0\n"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "stimulus: line 3: cycle 2 is out of order")

	// cycle numbers begin at 1
	_, err = stimulus.ReadStimulus(strings.NewReader("counter8stim\n0 reset=1\n"))
	test.ExpectFailure(t, err)
}
