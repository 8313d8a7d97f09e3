// This file is part of Gopher8563.
//
// Gopher8563 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8563 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8563.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles functions useful for testing, particularly in
// conjunction with the standard go test harness.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions are fatal and should be used when the value being
// tested is needed for the remainder of the test. For example, testing that
// the length of a palette is correct before iterating over it.
//
// Success and failure values depend on the type of the value being tested:
//
//	bool -> true is success
//	error -> nil is success
//
// The untyped nil value is considered a success. This is because of how errors
// usually work (nil to indicate no error) and means that ExpectSuccess(t, nil)
// passes and ExpectFailure(t, nil) fails.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
