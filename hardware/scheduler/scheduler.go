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

// Package scheduler implements a cycle counting alarm queue. It stands in for
// the host machine's CPU clock and is used to drive the VDC one scanline at a
// time.
//
// An alarm is scheduled with a delay in cycles. When the clock is advanced
// past the time an alarm is due the alarm's function is called with the
// number of cycles the alarm is late by. For a scheduler that is advanced
// one cycle at a time the offset is always zero, but a scheduler advanced in
// larger steps will deliver non-zero offsets and the receiver must account for
// them when it schedules its next alarm.
package scheduler

import (
	"container/heap"
)

// Scheduler is a cycle counting alarm queue. The zero value is ready to use.
type Scheduler struct {
	// number of cycles since the scheduler was created or reset
	now int64

	// sequence number assigned to the next alarm. used to keep alarms that
	// are due on the same cycle in the order they were scheduled
	seq uint64

	queue alarms
}

type alarm struct {
	due  int64
	seq  uint64
	tick func(offset int64)
}

// alarms implements heap.Interface
type alarms []alarm

func (a alarms) Len() int { return len(a) }

func (a alarms) Less(i, j int) bool {
	if a[i].due == a[j].due {
		return a[i].seq < a[j].seq
	}
	return a[i].due < a[j].due
}

func (a alarms) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

func (a *alarms) Push(x any) { *a = append(*a, x.(alarm)) }

func (a *alarms) Pop() any {
	old := *a
	n := len(old)
	x := old[n-1]
	old[n-1] = alarm{}
	*a = old[:n-1]
	return x
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule the tick function to be called after delay cycles. A delay of zero
// or less means the alarm is due immediately and will be fired on the next
// call to Advance() or Step().
//
// A negative delay is not clamped. The alarm is due in the past and the
// offset passed to the tick function includes the cycles before now.
func (s *Scheduler) Schedule(delay int64, tick func(offset int64)) {
	heap.Push(&s.queue, alarm{
		due:  s.now + delay,
		seq:  s.seq,
		tick: tick,
	})
	s.seq++
}

// Now returns the current cycle count.
func (s *Scheduler) Now() int64 {
	return s.now
}

// Pending returns the number of alarms that have not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Next returns the cycle on which the next alarm is due. Returns false if
// there are no alarms pending.
func (s *Scheduler) Next() (int64, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}

// Advance the clock by the number of cycles, firing all alarms that become
// due. Alarms are fired once the clock has been advanced, which means the
// offset passed to the tick function is the number of cycles the alarm was
// late by. Alarms scheduled by a tick function that become due inside the
// advanced period are also fired. Returns the number of alarms fired.
func (s *Scheduler) Advance(cycles int64) int {
	if cycles > 0 {
		s.now += cycles
	}
	return s.fire()
}

// Step advances the clock to the next alarm and fires it, along with any
// other alarms due on the same cycle. Returns false if there are no alarms
// pending.
func (s *Scheduler) Step() bool {
	due, ok := s.Next()
	if !ok {
		return false
	}
	if due > s.now {
		s.now = due
	}
	s.fire()
	return true
}

func (s *Scheduler) fire() int {
	var n int
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		a := heap.Pop(&s.queue).(alarm)
		a.tick(s.now - a.due)
		n++
	}
	return n
}

// Reset the clock to zero and remove all pending alarms.
func (s *Scheduler) Reset() {
	s.now = 0
	s.seq = 0
	s.queue = s.queue[:0]
}
