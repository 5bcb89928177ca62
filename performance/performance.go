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

// Package performance measures the simulation rate of the counter system:
// how many clock cycles can be stepped per second of wall-clock time. The
// measurement can be combined with CPU and memory profiling.
package performance

import (
	"fmt"
	"io"
	"time"

	"counter8/curated"
	"counter8/hardware"
)

// Check the performance of the simulation. The system free-runs for the
// specified duration and the resulting simulation rate is written to output.
// A profile is created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	sys := hardware.NewSystem()
	sys.Pins.OutputEnable = true

	// the register is undefined until the first reset
	if err := sys.SetReset(true); err != nil {
		return curated.Errorf("performance: %v", err)
	}
	if err := sys.SetReset(false); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	runner := func() error {
		deadline := time.Now().Add(dur)

		// checking the deadline is relatively expensive so it is only
		// consulted every PerformanceBrake cycles
		brake := 0

		return sys.Run(func() (hardware.State, error) {
			brake++
			if brake >= hardware.PerformanceBrake {
				brake = 0
				if !time.Now().Before(deadline) {
					return hardware.Ending, nil
				}
			}
			return hardware.Running, nil
		})
	}

	start := time.Now()
	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}
	elapsed := time.Since(start).Seconds()

	fmt.Fprintf(output, "%d cycles in %.2fs (%.0f cycles/sec)\n",
		sys.Cycle, elapsed, float64(sys.Cycle)/elapsed)

	return nil
}
