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
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value    atomic.Bool
	def      bool
	hookPost func(value Value) error
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}

	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// SetDefault sets the value used by Reset(). The current value is not
// changed.
func (p *Bool) SetDefault(v bool) {
	p.def = v
}

// Reset sets the boolean value to the default, which is false unless
// SetDefault() has been called.
func (p *Bool) Reset() error {
	return p.Set(p.def)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// String implements a string type in the prefs system.
type String struct {
	maxLen   int
	value    atomic.Value // string
	def      string
	hookPost func(value Value) error
}

func (p *String) String() string {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. Note that the existing string
// will be cropped if necessary - cropped string information will be lost.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max

	s := p.String()
	if p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Values of other types are converted with the
// %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}

	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// SetDefault sets the value used by Reset(). The current value is not
// changed.
func (p *String) SetDefault(v string) {
	p.def = v
}

// Reset sets the string value to the default, which is the empty string
// unless SetDefault() has been called.
func (p *String) Reset() error {
	return p.Set(p.def)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (p *String) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Int implements an integer type in the prefs system. The value can be
// limited to a range with SetLimits(), in which case values outside of the
// range are clamped rather than rejected.
type Int struct {
	value    atomic.Int64
	limited  bool
	min      int
	max      int
	def      int
	hookPost func(value Value) error
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.value.Load())
}

// SetLimits sets the minimum and maximum values of the Int. The existing value
// is clamped to the new range if necessary. The hook function is not called
// for this clamping.
func (p *Int) SetLimits(min, max int) {
	p.limited = true
	p.min = min
	p.max = max
	p.value.Store(int64(p.clamp(int(p.value.Load()))))
}

func (p *Int) clamp(v int) int {
	if !p.limited {
		return v
	}
	if v < p.min {
		return p.min
	}
	if v > p.max {
		return p.max
	}
	return v
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	nv = p.clamp(nv)
	p.value.Store(int64(nv))

	if p.hookPost != nil {
		return p.hookPost(nv)
	}

	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// Value returns the value as an int. Convenient for callers that would
// otherwise need a type assertion on the result of Get().
func (p *Int) Value() int {
	return int(p.value.Load())
}

// SetDefault sets the value used by Reset(). The current value is not
// changed.
func (p *Int) SetDefault(v int) {
	p.def = v
}

// Reset sets the int value to the default, which is zero unless SetDefault()
// has been called. The default is clamped if the Int is limited.
func (p *Int) Reset() error {
	return p.Set(p.clamp(p.def))
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}
