// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window and keyboard events delivered by
// a platform driver to the event loop, and the queue that carries them.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/lyra/events/key"
)

// Event is the interface for all window events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time
}

// Base is the base type for events, embedded in all other event types.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// GenTime records the time when the event was generated.
	GenTime time.Time
}

// NewBase returns a [Base] of the given type, stamped with the current time.
func NewBase(typ Types) Base {
	return Base{Typ: typ, GenTime: time.Now()}
}

func (ev Base) Type() Types {
	return ev.Typ
}

func (ev Base) Time() time.Time {
	return ev.GenTime
}

func (ev Base) String() string {
	return ev.Typ.String()
}

// Resize reports a new framebuffer size in physical pixels.
type Resize struct {
	Base

	// Size is the new framebuffer size.
	Size image.Point
}

// NewResize returns a new [Resize] event for the given size.
func NewResize(sz image.Point) *Resize {
	return &Resize{Base: NewBase(WindowResize), Size: sz}
}

func (ev *Resize) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Typ, ev.Size)
}

// Paint is a redraw request.
type Paint struct {
	Base
}

// NewPaint returns a new [Paint] event.
func NewPaint() *Paint {
	return &Paint{Base: NewBase(WindowPaint)}
}

// Close is a request to close the window.
type Close struct {
	Base
}

// NewClose returns a new [Close] event.
func NewClose() *Close {
	return &Close{Base: NewBase(WindowClose)}
}

// Key is a KeyDown or KeyUp event.
type Key struct {
	Base

	// Code is the physical key.
	Code key.Codes

	// Mods are the modifier keys held when the event happened.
	Mods key.Modifiers

	// Repeat is true for OS-generated repeats of a held key.
	// Only KeyDown events repeat.
	Repeat bool
}

// NewKey returns a new [Key] event of the given type.
func NewKey(typ Types, code key.Codes, mods key.Modifiers, repeat bool) *Key {
	return &Key{Base: NewBase(typ), Code: code, Mods: mods, Repeat: repeat}
}

// IsPress reports whether the event is a key press transition,
// not a repeat.
func (ev *Key) IsPress() bool {
	return ev.Typ == KeyDown && !ev.Repeat
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Mods: %v, Repeat: %v}", ev.Typ, ev.Code, ev.Mods, ev.Repeat)
}
