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

// Package curated provides the error type used throughout the project. A
// curated error keeps hold of the pattern string it was created with, meaning
// that errors can be compared against the pattern without resorting to string
// matching of the formatted message.
//
// Creation of a curated error is through the Errorf() function, which works
// just like fmt.Errorf():
//
//	err := curated.Errorf("vcdwriter: %v", err)
//
// The Is() function then compares an error against a pattern:
//
//	if curated.Is(err, "vcdwriter: %v") {
//		...
//	}
//
// Has() walks the chain of wrapped curated errors looking for the pattern at
// any depth.
package curated
