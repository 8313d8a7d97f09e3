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

// Package resources contains functions to prepare paths for gopher8563
// resources, such as the preferences file and palette files.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// The base path depends on how the binary was built. For builds with the
// "release" build tag, the path is rooted in the user's configuration
// directory. On modern Linux systems that would be something like:
//
//	/home/user/.config/gopher8563/
//
// For non-"release" builds, the path is rooted in the current working
// directory:
//
//	.gopher8563
//
// In both cases the GOPHER8563_RESOURCES environment variable can be used to
// specify a different base path. This is useful for testing.
package resources
