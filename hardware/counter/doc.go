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

// Package counter implements the counter register itself: an 8-bit value
// with asynchronous reset, synchronous parallel load, free-running increment
// and a tri-stated output bus.
//
// The three possible actions on a clock edge are mutually exclusive and
// strictly prioritised:
//
//	reset      value <- 0
//	load       value <- load_value
//	increment  value <- value + 1 (wrapping at 0xff)
//
// The output bus is purely combinational and is not gated by the clock. It
// is driven with the register value if and only if the output_enable line is
// high.
package counter
