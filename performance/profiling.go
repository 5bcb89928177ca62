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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"counter8/curated"
	"counter8/logger"
)

// Profile selects which profiles are created during a performance run.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// ParseProfileString converts a string to a Profile value.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "ALL":
		return ProfileAll, nil
	}
	return ProfileNone, curated.Errorf("performance: unrecognised profile (%s)", s)
}

// RunProfiler runs the supplied function with the profiles selected by the
// Profile argument. Profiles are written to the working directory with the
// supplied tag as the filename stem.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile == ProfileCPU || profile == ProfileAll {
		f, err := os.Create(tag + "_cpu.profile")
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer pprof.StopCPUProfile()

		logger.Logf("profiling", "writing CPU profile to %s", f.Name())
	}

	if err := run(); err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileAll {
		f, err := os.Create(tag + "_mem.profile")
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("profiling: %v", err)
		}

		logger.Logf("profiling", "writing memory profile to %s", f.Name())
	}

	return nil
}
