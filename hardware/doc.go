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

// Package hardware assembles the counter and its control lines into a
// runnable system. The System type is the simulation driver: it owns the
// input pins, advances the counter one clock edge at a time and applies the
// asynchronous reset line between clock edges.
//
// Observers of the simulation implement the Tracer interface and are
// notified of every evaluation of the counter, whether caused by a clock
// edge or by a reset transition.
package hardware
