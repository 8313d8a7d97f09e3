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

package scheduler_test

import (
	"testing"

	"github.com/jetsetilly/gopher8563/hardware/scheduler"
	"github.com/jetsetilly/gopher8563/test"
)

func TestOrdering(t *testing.T) {
	s := scheduler.NewScheduler()

	var order []int
	s.Schedule(10, func(_ int64) { order = append(order, 10) })
	s.Schedule(5, func(_ int64) { order = append(order, 5) })
	s.Schedule(5, func(_ int64) { order = append(order, 6) })
	s.Schedule(0, func(_ int64) { order = append(order, 0) })
	test.ExpectEquality(t, s.Pending(), 4)

	n := s.Advance(20)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, len(order), 4)
	test.ExpectEquality(t, order[0], 0)
	test.ExpectEquality(t, order[1], 5)
	test.ExpectEquality(t, order[2], 6)
	test.ExpectEquality(t, order[3], 10)
	test.ExpectEquality(t, s.Pending(), 0)
}

func TestOffset(t *testing.T) {
	s := scheduler.NewScheduler()

	var offset int64 = -1
	s.Schedule(7, func(o int64) { offset = o })

	s.Advance(5)
	test.ExpectEquality(t, offset, int64(-1))

	s.Advance(5)
	test.ExpectEquality(t, offset, int64(3))
	test.ExpectEquality(t, s.Now(), int64(10))
}

func TestStep(t *testing.T) {
	s := scheduler.NewScheduler()
	test.ExpectFailure(t, s.Step())

	var fired int64 = -1
	s.Schedule(100, func(o int64) { fired = o })
	test.ExpectSuccess(t, s.Step())
	test.ExpectEquality(t, fired, int64(0))
	test.ExpectEquality(t, s.Now(), int64(100))
}

// an alarm that reschedules itself must be able to correct for lateness and
// keep to its period
func TestRescheduling(t *testing.T) {
	s := scheduler.NewScheduler()

	const period = 63
	var times []int64

	var tick func(offset int64)
	tick = func(offset int64) {
		times = append(times, s.Now()-offset)
		s.Schedule(period-offset, tick)
	}
	s.Schedule(0, tick)

	for range 100 {
		s.Advance(50)
	}

	test.DemandEquality(t, len(times) > 1, true)
	for i := 1; i < len(times); i++ {
		test.ExpectEquality(t, times[i]-times[i-1], int64(period))
	}
}

func TestReset(t *testing.T) {
	s := scheduler.NewScheduler()
	s.Schedule(10, func(_ int64) {})
	s.Advance(3)
	s.Reset()
	test.ExpectEquality(t, s.Now(), int64(0))
	test.ExpectEquality(t, s.Pending(), 0)
	_, ok := s.Next()
	test.ExpectFailure(t, ok)
}

func TestNegativeDelay(t *testing.T) {
	s := scheduler.NewScheduler()
	s.Advance(100)

	var offset int64 = -1
	s.Schedule(-30, func(o int64) { offset = o })

	next, ok := s.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, next, int64(70))

	// stepping does not move the clock backwards
	test.ExpectSuccess(t, s.Step())
	test.ExpectEquality(t, s.Now(), int64(100))
	test.ExpectEquality(t, offset, int64(30))
}

// a ticker that reschedules itself every period cycles, compensating for
// lateness, fires the same number of times however the clock is advanced
func TestAdvanceGranularity(t *testing.T) {
	const period = 63
	const cycles = 6350

	count := func(s *scheduler.Scheduler) *int {
		var n int
		var tick func(int64)
		tick = func(offset int64) {
			n++
			s.Schedule(period-offset, tick)
		}
		s.Schedule(0, tick)
		return &n
	}

	coarse := scheduler.NewScheduler()
	nc := count(coarse)
	coarse.Advance(cycles)

	fine := scheduler.NewScheduler()
	nf := count(fine)
	for range cycles {
		fine.Advance(1)
	}

	test.ExpectEquality(t, *nc, *nf)
	test.ExpectEquality(t, *nc, cycles/period+1)
}
