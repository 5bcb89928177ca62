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

// Package test contains helper functions to remove some of the tedium of
// basic test procedures.
//
// The Expect functions mark the test as having failed but allow it to
// continue. The corresponding Demand functions end the test immediately; they
// are useful when later parts of the test would be meaningless if the tested
// condition does not hold.
package test
