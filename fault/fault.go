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

// Package fault provides reference-counted fault objects and the top-level
// guard that surfaces them to the user.
package fault

import (
	"errors"
	"log/slog"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/notify"
	"dirpx.dev/facet/ref"
	"dirpx.dev/facet/text"
)

const (
	titleFault   = "Exception"
	titleInvalid = "InvalidObject"
	titleError   = "Error"
	unknownBody  = "Unknown Exception"
)

// InvalidObject is the facet view of a fault raised when an object handed to
// a factory or setter does not expose the implementation it needs.
type InvalidObject interface {
	apis.Ref
	error
	Message() string
	invalidObject()
}

var (
	// FaultFacet identifies every fault.
	FaultFacet = facet.MustRegister[*Fault](apis.NewFacet("fault"))
	// InvalidObjectFacet identifies invalid-object faults.
	InvalidObjectFacet = facet.MustRegister[InvalidObject](apis.NewFacet("fault.invalid_object"))

	faultChain   = ref.Chain(FaultFacet)
	invalidChain = ref.Chain(InvalidObjectFacet, FaultFacet)
)

// Fault is a counted error value. It implements error so it can travel
// through ordinary error returns; whoever ends up holding it calls Dec.
type Fault struct {
	ref.Object
	msg   *text.String
	title string
}

// New returns a generic fault with count 1.
func New(msg string) *Fault {
	return newFault(msg, titleFault, faultChain)
}

// Invalid returns an invalid-object fault with count 1.
func Invalid(msg string) *Fault {
	return newFault(msg, titleInvalid, invalidChain)
}

func newFault(msg, title string, chain apis.Chain) *Fault {
	f := &Fault{msg: text.NewString(msg), title: title}
	f.Init(f, chain, ref.WithDestroy(func() {
		f.msg.Dec()
	}))
	return f
}

// Message returns the fault text.
func (f *Fault) Message() string {
	return f.msg.String()
}

// Title returns the notification title used by Show.
func (f *Fault) Title() string {
	return f.title
}

func (f *Fault) Error() string {
	return f.Message()
}

// IsInvalid reports whether f carries the invalid-object facet.
func (f *Fault) IsInvalid() bool {
	return ref.Supports(f, InvalidObjectFacet, apis.MatchPointer)
}

// Show delivers the fault synchronously through the default notifier.
func (f *Fault) Show() {
	notify.Error(f.title, f.Message())
}

func (f *Fault) invalidObject() {}

// Throw panics with f. Main recovers it.
func Throw(f *Fault) {
	panic(f)
}

// Main runs fn as the top-level body of a program and returns its exit
// status. A fault, returned or thrown, is shown and released. Any other
// panic produces the generic "Unknown Exception" notification. Other errors
// are shown under the title "Error".
func Main(fn func() error) (code int) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		code = 1
		if f, ok := r.(*Fault); ok && f != nil {
			f.Show()
			f.Dec()
			return
		}
		slog.Error("facet(fault): unhandled panic", "panic", r)
		notify.Error(titleFault, unknownBody)
	}()

	err := fn()
	if err == nil {
		return 0
	}
	var f *Fault
	if errors.As(err, &f) && f != nil {
		f.Show()
		f.Dec()
		return 1
	}
	notify.Error(titleError, err.Error())
	return 1
}
