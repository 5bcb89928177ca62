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

// Package stimulus drives a simulation from a script of timed signal
// changes. A stimulus script is a plain text file: the first line is the
// header, every other line is either a comment (prefixed with the #
// character), a blank line, or a directive of the form:
//
//	<cycle> <signal>=<value> ...
//
// Recognised signals are reset, load, lv and oe. For example:
//
//	counter8stim
//	# load 0x2a and let the counter run
//	1 reset=1
//	2 reset=0
//	3 load=1 lv=0x2a oe=1
//	4 load=0
//
// A directive takes effect before the clock edge of the named cycle.
// Directives must be listed in cycle order. Changes to the reset signal are
// applied through System.SetReset(), preserving the asynchronous semantics
// of the reset line.
package stimulus

import (
	"io"
	"os"
	"strconv"
	"strings"

	"counter8/curated"
	"counter8/hardware"
	"counter8/logger"
)

const headerID = "counter8stim"

const commentLine = "#"

// directive is one line of the script: the control line changes to apply
// before the clock edge of the named cycle.
type directive struct {
	line  int
	cycle uint64

	hasReset bool
	reset    bool

	hasLoadEnable bool
	loadEnable    bool

	hasLoadValue bool
	loadValue    uint8

	hasOutputEnable bool
	outputEnable    bool
}

// Stimulus is a parsed stimulus script.
type Stimulus struct {
	filename   string
	directives []directive
}

// NewStimulus is the preferred method of initialisation for the Stimulus
// type. The named file is read and parsed in its entirety before the
// simulation begins; a script error means no part of it runs.
func NewStimulus(filename string) (*Stimulus, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("stimulus: %v", err)
	}
	defer f.Close()

	stm, err := ReadStimulus(f)
	if err != nil {
		return nil, err
	}
	stm.filename = filename

	return stm, nil
}

// ReadStimulus parses a stimulus script from an io.Reader.
func ReadStimulus(r io.Reader) (*Stimulus, error) {
	buffer, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("stimulus: %v", err)
	}

	lines := strings.Split(string(buffer), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != headerID {
		return nil, curated.Errorf("stimulus: %v", "not a stimulus script (missing header)")
	}

	stm := &Stimulus{
		directives: make([]directive, 0, len(lines)),
	}

	for i, l := range lines[1:] {
		// line numbers reported in errors are 1-based and include the header
		num := i + 2

		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, commentLine) {
			continue
		}

		d, err := parseDirective(num, l)
		if err != nil {
			return nil, err
		}

		// directives must arrive in cycle order
		if len(stm.directives) > 0 && d.cycle < stm.directives[len(stm.directives)-1].cycle {
			return nil, curated.Errorf("stimulus: line %d: cycle %d is out of order", num, d.cycle)
		}

		stm.directives = append(stm.directives, d)
	}

	return stm, nil
}

func parseDirective(num int, l string) (directive, error) {
	d := directive{line: num}

	toks := strings.Fields(l)

	cycle, err := strconv.ParseUint(toks[0], 10, 64)
	if err != nil {
		return d, curated.Errorf("stimulus: line %d: unrecognised cycle number: %s", num, toks[0])
	}
	if cycle == 0 {
		return d, curated.Errorf("stimulus: line %d: cycle numbers begin at 1", num)
	}
	d.cycle = cycle

	for _, tok := range toks[1:] {
		sig, val, ok := strings.Cut(tok, "=")
		if !ok {
			return d, curated.Errorf("stimulus: line %d: unrecognised directive: %s", num, tok)
		}

		switch sig {
		case "reset":
			d.hasReset = true
			d.reset, err = parseLevel(val)
		case "load":
			d.hasLoadEnable = true
			d.loadEnable, err = parseLevel(val)
		case "lv":
			var v uint64
			v, err = strconv.ParseUint(val, 0, 8)
			d.hasLoadValue = true
			d.loadValue = uint8(v)
		case "oe":
			d.hasOutputEnable = true
			d.outputEnable, err = parseLevel(val)
		default:
			return d, curated.Errorf("stimulus: line %d: unrecognised signal: %s", num, sig)
		}

		if err != nil {
			return d, curated.Errorf("stimulus: line %d: bad value for %s: %s", num, sig, val)
		}
	}

	return d, nil
}

func parseLevel(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, curated.Errorf("not a logic level: %s", s)
}

func (d directive) apply(sys *hardware.System) error {
	// the reset line goes through SetReset() so that a rising transition
	// takes effect immediately
	if d.hasReset {
		if err := sys.SetReset(d.reset); err != nil {
			return err
		}
	}
	if d.hasLoadEnable {
		sys.Pins.LoadEnable = d.loadEnable
	}
	if d.hasLoadValue {
		sys.Pins.LoadValue = d.loadValue
	}
	if d.hasOutputEnable {
		sys.Pins.OutputEnable = d.outputEnable
	}
	return nil
}

// LastCycle returns the cycle number of the final directive in the script.
func (stm *Stimulus) LastCycle() uint64 {
	if len(stm.directives) == 0 {
		return 0
	}
	return stm.directives[len(stm.directives)-1].cycle
}

// Run the stimulus against the system for the specified number of clock
// cycles. Directives beyond numCycles are never applied.
func (stm *Stimulus) Run(sys *hardware.System, numCycles int) error {
	if stm.filename != "" {
		logger.Logf("stimulus", "running %s for %d cycles", stm.filename, numCycles)
	}

	idx := 0
	for c := uint64(1); c <= uint64(numCycles); c++ {
		for idx < len(stm.directives) && stm.directives[idx].cycle == c {
			if err := stm.directives[idx].apply(sys); err != nil {
				return err
			}
			idx++
		}

		if err := sys.Step(); err != nil {
			return err
		}
	}

	return nil
}
