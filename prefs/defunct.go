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
package prefs

// preference keys that have been renamed. a value stored under the old key is
// used for the new key if the file has no value for the new key. the old key
// is dropped the next time the file is saved.
var renamed = map[string]string{
	"vdc.color.delayloop":      "vdc.color.artifact",
	"vdc.color.oddlinesoffset": "vdc.color.oddlinesphase",
}

// preference keys that are no longer used and have no replacement.
var defunct = map[string]bool{
	"vdc.color.videostandard": true,
}

// returns true if the key should not be written to the preferences file.
func isDefunct(key string) bool {
	_, ok := renamed[key]
	return ok || defunct[key]
}

// migrate moves values stored under renamed keys to their new key.
func migrate(data map[string]string) {
	for old, key := range renamed {
		v, ok := data[old]
		if !ok {
			continue
		}
		if _, ok := data[key]; !ok {
			data[key] = v
		}
	}
}
