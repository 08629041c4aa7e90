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

package frame_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/facet/frame"
)

// fakeClock ticks in microseconds and only moves when told to.
type fakeClock struct {
	mu sync.Mutex
	t  int64
}

func (c *fakeClock) Ticks() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Frequency() int64 { return 1_000_000 }

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t += d.Microseconds()
}

// queue is an in-memory Source.
type queue struct {
	events  []frame.Event
	handled []frame.Event
	onEvent func(frame.Event)
}

func (q *queue) Drain(f frame.Filter) (frame.Event, int) {
	var last frame.Event
	n := 0
	rest := q.events[:0]
	for _, e := range q.events {
		if !f.Match(e) {
			rest = append(rest, e)
			continue
		}
		q.handled = append(q.handled, e)
		if q.onEvent != nil {
			q.onEvent(e)
		}
		last = e
		n++
		if f.Keep {
			rest = append(rest, e)
		}
	}
	q.events = rest
	return last, n
}

type recorder struct {
	loops, frames []time.Duration
}

func (r *recorder) Loop(d time.Duration)  { r.loops = append(r.loops, d) }
func (r *recorder) Frame(d time.Duration) { r.frames = append(r.frames, d) }

func setup(t *testing.T) (*fakeClock, *queue) {
	t.Helper()
	c := &fakeClock{t: 5_000}
	q := &queue{}
	prevClock := frame.SetClock(c)
	prevSource := frame.SetSource(q)
	t.Cleanup(func() {
		frame.Destroy()
		frame.SetClock(prevClock)
		frame.SetSource(prevSource)
	})
	frame.Init()
	return c, q
}

func TestInit(t *testing.T) {
	c, _ := setup(t)

	assert.True(t, frame.Running())
	assert.Equal(t, int64(1_000_000), frame.Frequency())
	assert.Equal(t, c.Ticks(), frame.LastLoop())
	assert.Equal(t, c.Ticks(), frame.LastFrame())
	assert.Equal(t, c.Ticks(), frame.Current())
}

func TestReady_60fps_TrueFalseTrue(t *testing.T) {
	c, _ := setup(t)

	c.Advance(20 * time.Millisecond)
	assert.True(t, frame.Ready(60))
	boundary := frame.LastFrame()

	c.Advance(5 * time.Millisecond)
	assert.False(t, frame.Ready(60))
	assert.Equal(t, boundary, frame.LastFrame(), "boundary must not advance")
	assert.Equal(t, 5*time.Millisecond, frame.TimePerFrame())

	c.Advance(12 * time.Millisecond)
	assert.True(t, frame.Ready(60))
	assert.Equal(t, c.Ticks(), frame.LastFrame())
}

func TestReady_ZeroElapsedNeverPasses(t *testing.T) {
	setup(t)
	assert.False(t, frame.Ready(1))
	assert.False(t, frame.Ready(1_000_000))
}

func TestReady_Unthrottled(t *testing.T) {
	setup(t)
	assert.True(t, frame.Ready(0))
	assert.True(t, frame.Ready(0))
}

func TestPoll_TimesLoopsAndDrains(t *testing.T) {
	c, q := setup(t)
	q.events = []frame.Event{{Msg: 1}, {Msg: 2}}

	c.Advance(3 * time.Millisecond)
	require.True(t, frame.Poll())
	assert.Equal(t, 3*time.Millisecond, frame.TimePerLoop())
	assert.Equal(t, c.Ticks(), frame.LastLoop())
	assert.Len(t, q.handled, 2)
	assert.Empty(t, q.events)
	assert.Equal(t, uint32(2), frame.Message().Msg)

	// Nothing pending: last message is kept.
	c.Advance(time.Millisecond)
	require.True(t, frame.Poll())
	assert.Equal(t, time.Millisecond, frame.TimePerLoop())
	assert.Equal(t, uint32(2), frame.Message().Msg)
}

func TestPoll_Filters(t *testing.T) {
	_, q := setup(t)
	q.events = []frame.Event{
		{Window: 7, Msg: 10},
		{Window: 8, Msg: 10},
		{Window: 7, Msg: 99},
	}

	frame.Poll(frame.Filter{Window: 7, Min: 5, Max: 20})
	assert.Equal(t, []frame.Event{{Window: 7, Msg: 10}}, q.handled)
	assert.Len(t, q.events, 2)

	frame.Poll(frame.Filter{Min: 50, Keep: true})
	assert.Len(t, q.handled, 2)
	assert.Len(t, q.events, 2, "Keep leaves events queued")
}

func TestDestroy_FromHandler(t *testing.T) {
	_, q := setup(t)
	q.onEvent = func(e frame.Event) {
		if e.Msg == 0x12 {
			frame.Destroy()
		}
	}
	q.events = []frame.Event{{Msg: 0x12}}

	assert.False(t, frame.Poll(), "handler stopped the loop")
	assert.False(t, frame.Running())

	// Still drains after Destroy.
	q.events = []frame.Event{{Msg: 1}}
	assert.False(t, frame.Poll())
	assert.Empty(t, q.events)
}

func TestObserver(t *testing.T) {
	c, _ := setup(t)
	rec := &recorder{}
	prev := frame.SetObserver(rec)
	defer frame.SetObserver(prev)

	c.Advance(2 * time.Millisecond)
	frame.Poll()
	c.Advance(18 * time.Millisecond)
	frame.Ready(60)
	frame.Ready(60)

	assert.Equal(t, []time.Duration{2 * time.Millisecond}, rec.loops)
	assert.Equal(t, []time.Duration{20 * time.Millisecond}, rec.frames, "only due frames are reported")
}

func TestMonotonicClock(t *testing.T) {
	c := frame.Monotonic()
	a := c.Ticks()
	b := c.Ticks()
	assert.GreaterOrEqual(t, b, a)
	assert.Equal(t, int64(time.Second), c.Frequency())
}
