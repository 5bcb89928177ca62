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

package debugger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"counter8/curated"
	"counter8/hardware"
)

const help = `   c, space   step the clock one cycle
   r          pulse the reset line (asynchronous)
   R          hold/release the reset line
   l          toggle the load_enable line
   v          set the load value
   o          toggle the output_enable line
   p          print the current state
   h          this help
   q          quit`

// Debugger is an interactive console for a counter system.
type Debugger struct {
	sys *hardware.System

	input  *os.File
	output io.Writer

	// terminal attributes for canonical mode (how we found the terminal) and
	// cbreak mode (single keypresses, no echo)
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The supplied input file must be a terminal.
func NewDebugger(input *os.File, output io.Writer) (*Debugger, error) {
	dbg := &Debugger{
		sys:    hardware.NewSystem(),
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(input.Fd(), &dbg.canAttr); err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg.cbreakAttr = dbg.canAttr
	termios.Cfmakecbreak(&dbg.cbreakAttr)

	return dbg, nil
}

// Start the interactive session. The terminal is returned to canonical mode
// when the session ends.
func (dbg *Debugger) Start() (rerr error) {
	if err := termios.Tcsetattr(dbg.input.Fd(), termios.TCSANOW, &dbg.cbreakAttr); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer func() {
		if err := termios.Tcsetattr(dbg.input.Fd(), termios.TCSANOW, &dbg.canAttr); err != nil && rerr == nil {
			rerr = curated.Errorf("debugger: %v", err)
		}
	}()

	fmt.Fprintln(dbg.output, help)
	dbg.printState()

	b := make([]byte, 1)
	for {
		if _, err := dbg.input.Read(b); err != nil {
			return curated.Errorf("debugger: %v", err)
		}

		var err error

		switch b[0] {
		case 'c', ' ':
			err = dbg.sys.Step()
			dbg.printState()

		case 'r':
			// a pulse is a rising transition immediately followed by a
			// release. the rising transition is what resets the register
			if err = dbg.sys.SetReset(true); err == nil {
				err = dbg.sys.SetReset(false)
			}
			dbg.printState()

		case 'R':
			err = dbg.sys.SetReset(!dbg.sys.Pins.Reset)
			dbg.printState()

		case 'l':
			dbg.sys.Pins.LoadEnable = !dbg.sys.Pins.LoadEnable
			dbg.printState()

		case 'v':
			err = dbg.readLoadValue()
			dbg.printState()

		case 'o':
			dbg.sys.Pins.OutputEnable = !dbg.sys.Pins.OutputEnable
			dbg.printState()

		case 'p':
			dbg.printState()

		case 'h':
			fmt.Fprintln(dbg.output, help)

		case 'q':
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (dbg *Debugger) printState() {
	fmt.Fprintf(dbg.output, "%s %s\n", dbg.sys, dbg.sys.Pins)
}

// readLoadValue prompts for a new load value. Input is gathered a keypress
// at a time because the terminal is in cbreak mode.
func (dbg *Debugger) readLoadValue() error {
	fmt.Fprint(dbg.output, "load value: ")

	s := strings.Builder{}
	b := make([]byte, 1)
	for {
		if _, err := dbg.input.Read(b); err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		if b[0] == '\n' || b[0] == '\r' {
			break // for loop
		}
		dbg.output.Write(b)
		s.WriteByte(b[0])
	}
	fmt.Fprintln(dbg.output)

	v, err := strconv.ParseUint(strings.TrimSpace(s.String()), 0, 8)
	if err != nil {
		fmt.Fprintf(dbg.output, "not an 8-bit value: %s\n", s.String())
		return nil
	}

	dbg.sys.Pins.LoadValue = uint8(v)
	return nil
}
