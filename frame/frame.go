/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package frame is the process-wide loop and frame timer. A program calls
// Init once, then runs
//
//	for frame.Poll() {
//		if frame.Ready(60) {
//			render()
//		}
//	}
//
// and stops the loop with Destroy, typically from an event handler.
package frame

import (
	"log/slog"
	"sync"
	"time"
)

// Event is one platform message drained by Poll.
type Event struct {
	Window  uintptr
	Msg     uint32
	WParam  uintptr
	LParam  uintptr
	Payload []byte
}

// Filter narrows which pending events a Poll drains. The zero Filter drains
// everything. Max == 0 means no upper bound on Msg.
type Filter struct {
	Window uintptr
	Min    uint32
	Max    uint32
	// Keep leaves matching events queued after dispatch.
	Keep bool
}

// Match reports whether e passes f.
func (f Filter) Match(e Event) bool {
	if f.Window != 0 && e.Window != f.Window {
		return false
	}
	if e.Msg < f.Min {
		return false
	}
	return f.Max == 0 || e.Msg <= f.Max
}

// Source is the platform message queue. Drain dispatches every pending
// event matching f synchronously and returns the last one and the count.
type Source interface {
	Drain(f Filter) (last Event, n int)
}

// Observer receives loop and frame timings.
type Observer interface {
	Loop(d time.Duration)
	Frame(d time.Duration)
}

var (
	mu       sync.Mutex
	clock    Clock = Monotonic()
	source   Source
	observer Observer

	running   bool
	freq      int64 // ticks per second captured at Init
	lastLoop  int64
	lastFrame int64
	perLoop   int64 // ticks
	perFrame  int64 // ticks
	message   Event
)

// SetClock replaces the tick source and returns the previous one. A nil c
// restores the monotonic clock.
func SetClock(c Clock) Clock {
	if c == nil {
		c = Monotonic()
	}
	mu.Lock()
	defer mu.Unlock()
	prev := clock
	clock = c
	return prev
}

// SetSource installs the event queue drained by Poll and returns the
// previous one.
func SetSource(s Source) Source {
	mu.Lock()
	defer mu.Unlock()
	prev := source
	source = s
	return prev
}

// SetObserver installs o and returns the previous observer.
func SetObserver(o Observer) Observer {
	mu.Lock()
	defer mu.Unlock()
	prev := observer
	observer = o
	return prev
}

// Init starts the timer: it captures the clock frequency and sets both the
// loop and frame boundaries to now.
func Init() {
	mu.Lock()
	defer mu.Unlock()

	freq = clock.Frequency()
	now := clock.Ticks()
	lastLoop, lastFrame = now, now
	perLoop, perFrame = 0, 0
	message = Event{}
	running = true
	slog.Debug("frame: init", "frequency", freq)
}

// Destroy stops the loop. Later Polls still drain events but return false.
func Destroy() {
	mu.Lock()
	defer mu.Unlock()
	if running {
		slog.Debug("frame: destroy")
	}
	running = false
}

// Running reports whether Init was called and Destroy was not.
func Running() bool {
	mu.Lock()
	defer mu.Unlock()
	return running
}

// Poll drains pending events (all of them, or those matching any of
// filters), dispatching each one, then records the time spent since the
// previous Poll. It returns whether the loop is still running.
func Poll(filters ...Filter) bool {
	mu.Lock()
	src := source
	mu.Unlock()

	if len(filters) == 0 {
		filters = []Filter{{}}
	}
	var last Event
	drained := 0
	if src != nil {
		// Handlers run without the lock so they may call Destroy.
		for _, f := range filters {
			if e, n := src.Drain(f); n > 0 {
				last, drained = e, drained+n
			}
		}
	}

	mu.Lock()
	if drained > 0 {
		message = last
	}
	now := clock.Ticks()
	perLoop = now - lastLoop
	lastLoop = now
	ok, obs, d := running, observer, toDuration(perLoop)
	mu.Unlock()

	if obs != nil {
		obs.Loop(d)
	}
	return ok
}

// Ready reports whether a frame at the given rate is due. When the time since
// the last frame boundary is at least 1/fps it moves the boundary to now and
// returns true; otherwise it returns false and leaves the boundary alone.
// fps == 0 means unthrottled.
func Ready(fps uint) bool {
	mu.Lock()
	now := clock.Ticks()
	perFrame = now - lastFrame
	// 1/elapsed <= fps, in whole ticks: elapsed*fps >= freq.
	due := fps == 0 || (freq > 0 && perFrame > 0 && perFrame*int64(fps) >= freq)
	if due {
		lastFrame = now
	}
	obs, d := observer, toDuration(perFrame)
	mu.Unlock()

	if due && obs != nil {
		obs.Frame(d)
	}
	return due
}

// Current returns the clock's counter now.
func Current() int64 {
	mu.Lock()
	defer mu.Unlock()
	return clock.Ticks()
}

// Frequency returns the clock's ticks per second.
func Frequency() int64 {
	mu.Lock()
	defer mu.Unlock()
	return clock.Frequency()
}

// LastLoop returns the counter at the last Poll.
func LastLoop() int64 {
	mu.Lock()
	defer mu.Unlock()
	return lastLoop
}

// LastFrame returns the counter at the last frame boundary.
func LastFrame() int64 {
	mu.Lock()
	defer mu.Unlock()
	return lastFrame
}

// TimePerLoop returns the time between the last two Polls.
func TimePerLoop() time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return toDuration(perLoop)
}

// TimePerFrame returns the elapsed time measured by the last Ready call.
func TimePerFrame() time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return toDuration(perFrame)
}

// Message returns the last event drained by Poll.
func Message() Event {
	mu.Lock()
	defer mu.Unlock()
	return message
}

// toDuration converts a tick delta using the frequency captured at Init.
// Callers hold mu.
func toDuration(ticks int64) time.Duration {
	if freq <= 0 {
		return 0
	}
	whole, rest := ticks/freq, ticks%freq
	return time.Duration(whole)*time.Second + time.Duration(rest*int64(time.Second)/freq)
}
