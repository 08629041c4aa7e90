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

// Package input tracks keyboard and mouse state sampled from the window
// platform once per loop iteration.
package input

import (
	"fmt"

	"dirpx.dev/facet"
	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/ref"
	"dirpx.dev/facet/window"
)

var (
	// KeyboardFacet identifies keyboard trackers.
	KeyboardFacet = facet.MustRegister[*Keyboard](apis.NewFacet("input.keyboard"))
	keyboardChain = ref.Chain(KeyboardFacet)
)

// Action is the edge observed for a key since it was last asked about.
type Action uint8

const (
	NoAction Action = iota
	Press
	Release
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return "none"
	}
}

const keyDown = 0x80

// Keyboard holds the last snapshot of the 256 virtual-key states. It is not
// safe for concurrent use.
type Keyboard struct {
	ref.Object
	states    [256]byte
	lastPress [256]bool
}

// NewKeyboard returns a tracker with every key up.
func NewKeyboard() *Keyboard {
	k := &Keyboard{}
	k.Init(k, keyboardChain)
	return k
}

// Update snapshots the key states from the installed platform.
func (k *Keyboard) Update() error {
	p, err := window.Current()
	if err != nil {
		return err
	}
	if err := p.KeyboardState(&k.states); err != nil {
		return fmt.Errorf("facet(input): keyboard state: %w", err)
	}
	return nil
}

// Action reports Press the first time vk is seen down after being up, and
// Release the first time it is seen up after being down.
func (k *Keyboard) Action(vk uint8) Action {
	down := k.states[vk]&keyDown != 0
	switch {
	case down && !k.lastPress[vk]:
		k.lastPress[vk] = true
		return Press
	case !down && k.lastPress[vk]:
		k.lastPress[vk] = false
		return Release
	}
	return NoAction
}

// IsPressed reports whether vk was down in the last snapshot.
func (k *Keyboard) IsPressed(vk uint8) bool {
	return k.states[vk]&keyDown != 0
}
