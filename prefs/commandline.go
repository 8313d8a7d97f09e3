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

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack allows preference values to be specified for a single
// run of the program without them being written to disk. for example:
//
//	gopher8563 -prefs "vdc.color.gamma::2200; vdc.color.artifact::true"
//
// values are consumed as they are read by Disk.Load().
type commandLine struct {
	crit  sync.Mutex
	stack []map[string]Value
}

var cmdline commandLine

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	return len(cmdline.stack)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the "unused" preferences of the stack entry, sorted by key.
func PopCommandLineStack() string {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return ""
	}

	popped := cmdline.stack[len(cmdline.stack)-1]
	cmdline.stack = cmdline.stack[:len(cmdline.stack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, key := range keys {
		s = append(s, fmt.Sprintf("%s::%v", key, popped[key]))
	}

	return strings.Join(s, "; ")
}

// PushCommandLineStack parses a preferences string and adds it as a new group.
// Entries are separated by semi-colons and keys are separated from values by
// a double colon. Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	cl := make(map[string]Value)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	cmdline.stack = append(cmdline.stack, cl)
}

// GetCommandLinePref value from current group. The value is deleted when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return false, nil
	}

	cl := cmdline.stack[len(cmdline.stack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, nil
}
