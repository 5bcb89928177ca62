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

package test

import "testing"

// ExpectEquality is used to test equality between one value and another.
//
// The expected value is the second of the two value arguments, meaning the
// idiomatic usage is:
//
//	test.ExpectEquality(t, result, 10)
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expectedValue)
		return false
	}
	return true
}

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a test fatality.
//
// This is particularly useful if the value being tested is used in further
// tests and so must be correct for those tests to be meaningful.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expectedValue)
	}
}

// expect tests argument v for a success condition suitable for its type.
//
//	bool -> bool == true
//	error -> error == nil
//
// a value of nil is considered to be a success.
func expect(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}

	return false
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If the type is nil then the test succeeds.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("expected success (%T)", v)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == false
//	error -> error != nil
//
// If the type is nil then the test fails.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("expected failure (%T)", v)
		return false
	}
	return true
}

// DemandSuccess is the same as ExpectSuccess except that a failure ends the
// test immediately.
func DemandSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !expect(t, v) {
		t.Fatalf("a success value is demanded for type %T", v)
	}
}
