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
	"counter8/curated"
)

// State is returned by the continueCheck callbacks of the Run() functions,
// telling the loop whether the simulation should carry on.
type State int

// List of valid State values.
const (
	Running State = iota
	Paused
	Ending
)

// A full continue check on every clock edge can be expensive. The
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	brake++
//	if brake >= hardware.PerformanceBrake {
//		brake = 0
//		if endCondition {
//			return hardware.Ending, nil
//		}
//	}
//	return hardware.Running, nil
const PerformanceBrake = 100

// Run drives the system as quickly as possible, consulting continueCheck
// after every clock edge.
func (sys *System) Run(continueCheck func() (State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (State, error) { return Running, nil }
	}

	state := Running
	for state != Ending {
		switch state {
		case Running:
			if err := sys.Step(); err != nil {
				return err
			}
		case Paused:
		default:
			return curated.Errorf("system: unsupported state (%d) in Run() function", state)
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles drives the system for the specified number of clock edges.
// Useful for scripted runs and for tests.
func (sys *System) RunForCycles(numCycles int, continueCheck func(cycle uint64) (State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ uint64) (State, error) { return Running, nil }
	}

	target := sys.Cycle + uint64(numCycles)

	state := Running
	for sys.Cycle != target && state != Ending {
		if err := sys.Step(); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(sys.Cycle)
		if err != nil {
			return err
		}
	}

	return nil
}
