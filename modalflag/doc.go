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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, where each mode has its own set of flags.
//
// Arguments are given with NewArgs() and flags for the top level are added
// before calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PALETTE", "SCRIPT")
//	log := md.AddBool("log", false, "echo log to stdout")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode in
// the list is the default and is selected if the first argument after the
// flags is not a sub-mode. Sub-mode names are not case sensitive.
//
// Each mode can then add its own flags and sub-modes after a call to
// NewMode(). Parse() continues with the arguments that follow the mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 1, "number of frames to run")
//		if r, err := md.Parse(); r != modalflag.ParseContinue {
//			return err
//		}
//		run(*frames, md.RemainingArgs())
//	}
//
// A -help flag is always available. Parse() prints the help for the current
// mode to the Output writer and returns ParseHelp.
package modalflag
