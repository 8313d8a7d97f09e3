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
// Package limiter paces a free running emulation to the frame rate of the
// chip being emulated.
package limiter

import (
	"sync/atomic"
	"time"
)

// DefaultRefreshRate is used until SetRefreshRate() is called with a usable
// value.
const DefaultRefreshRate float32 = 60.0

// Limiter waits at the end of each frame so that frames are produced no
// faster than the refresh rate.
type Limiter struct {
	// whether to wait in CheckFrame()
	Active bool

	// the rate requested by the most recent call to SetRefreshRate()
	RefreshRate atomic.Value // float32

	// pulse that performs the limiting. the ticker fires once every
	// pulseCtLimit frames so that very short durations are avoided
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A refreshRate of zero or less selects DefaultRefreshRate.
func NewLimiter(refreshRate float32) *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Millisecond * 16),
		measuringPulse: time.NewTicker(time.Second),
		measureTime:    time.Now(),
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.SetRefreshRate(refreshRate)
	return lmtr
}

// SetRefreshRate changes the rate the limiter works to. The rate will change
// whenever the chip geometry changes.
func (lmtr *Limiter) SetRefreshRate(refreshRate float32) {
	if refreshRate <= 0.0 {
		refreshRate = DefaultRefreshRate
	}

	if r, ok := lmtr.RefreshRate.Load().(float32); ok && r == refreshRate {
		return
	}
	lmtr.RefreshRate.Store(refreshRate)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(refreshRate/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / refreshRate * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++
	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual updates the Measured field once every second. It is
// otherwise a no-op.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.Measured.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop releases the tickers. The Limiter should not be used afterwards.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
