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

// Package notify delivers synchronous user notifications (message boxes on a
// desktop platform) through a replaceable Notifier.
package notify

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Level distinguishes informational notifications from errors.
type Level uint8

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// Notifier shows a titled message and returns once it was delivered.
type Notifier interface {
	Notify(title, body string)
	Error(title, body string)
}

var def atomic.Pointer[Notifier]

func init() {
	var n Notifier = Logger{}
	def.Store(&n)
}

// Default returns the process-wide notifier.
func Default() Notifier {
	return *def.Load()
}

// SetDefault installs n and returns the previous notifier. A nil n restores
// the slog-backed Logger.
func SetDefault(n Notifier) Notifier {
	if n == nil {
		n = Logger{}
	}
	return *def.Swap(&n)
}

// Notify shows an informational message through the default notifier.
func Notify(title, body string) {
	Default().Notify(title, body)
}

// Error shows an error message through the default notifier.
func Error(title, body string) {
	Default().Error(title, body)
}

// Logger writes notifications to slog. A nil L uses slog.Default().
type Logger struct {
	L *slog.Logger
}

func (l Logger) logger() *slog.Logger {
	if l.L != nil {
		return l.L
	}
	return slog.Default()
}

func (l Logger) Notify(title, body string) {
	l.logger().Info(body, "title", title)
}

func (l Logger) Error(title, body string) {
	l.logger().Error(body, "title", title)
}

// Message is one recorded notification.
type Message struct {
	Level Level
	Title string
	Body  string
}

// Recorder keeps every notification in memory. Safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	msgs []Message
}

func (r *Recorder) Notify(title, body string) { r.add(LevelInfo, title, body) }
func (r *Recorder) Error(title, body string)  { r.add(LevelError, title, body) }

func (r *Recorder) add(l Level, title, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, Message{Level: l, Title: title, Body: body})
}

// Messages returns a snapshot of the recorded notifications.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.msgs...)
}
