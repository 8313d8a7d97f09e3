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
package logger

// Permission implementations indicate whether the caller making a log request
// is allowed to create new entries. A chip can implement Permission and pass
// itself to Log() so that a silenced instance adds nothing to the log.
type Permission interface {
	AllowLogging() bool
}

type permission bool

func (p permission) AllowLogging() bool {
	return bool(p)
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = permission(true)

// Deny indicates that the logging request should be ignored.
var Deny Permission = permission(false)
