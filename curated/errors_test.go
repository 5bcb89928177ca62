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

package curated_test

import (
	"errors"
	"testing"

	"counter8/curated"
	"counter8/test"
)

func TestPatternMatching(t *testing.T) {
	err := curated.Errorf("vcdwriter: %v", "file error")

	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, "vcdwriter: %v"))
	test.ExpectFailure(t, curated.Is(err, "stimulus: %v"))

	// plain errors are not curated errors
	plain := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(plain))
	test.ExpectFailure(t, curated.Is(plain, "plain error"))

	// nor is nil
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestWrappedErrors(t *testing.T) {
	inner := curated.Errorf("stimulus: %v", "bad line")
	outer := curated.Errorf("system: %v", inner)

	test.ExpectSuccess(t, curated.Has(outer, "stimulus: %v"))
	test.ExpectSuccess(t, curated.Has(outer, "system: %v"))
	test.ExpectFailure(t, curated.Has(outer, "vcdwriter: %v"))

	test.ExpectEquality(t, outer.Error(), "system: stimulus: bad line")
}

func TestDeduplication(t *testing.T) {
	// duplicate adjacent message parts are removed
	inner := curated.Errorf("system: %v", "bad state")
	outer := curated.Errorf("system: %v", inner)
	test.ExpectEquality(t, outer.Error(), "system: bad state")
}
