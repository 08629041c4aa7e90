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

package frame

import "time"

// Clock is a monotonic tick counter. Tests inject a fake clock via SetClock
// to control frame timing deterministically.
type Clock interface {
	// Ticks returns the current counter value.
	Ticks() int64
	// Frequency returns ticks per second.
	Frequency() int64
}

// monotonic counts nanoseconds since process start.
type monotonic struct {
	start time.Time
}

func (m monotonic) Ticks() int64     { return int64(time.Since(m.start)) }
func (m monotonic) Frequency() int64 { return int64(time.Second) }

// Monotonic returns the default clock, backed by the runtime's monotonic
// time source.
func Monotonic() Clock {
	return monotonic{start: processStart}
}

var processStart = time.Now()
