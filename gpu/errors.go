// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"strings"

	"cogentcore.org/lyra/base/errors"
)

var (
	// ErrNoAdapter is returned when no adapter compatible with the
	// surface can be found.
	ErrNoAdapter = errors.New("gpu: no compatible adapter")

	// ErrNoDevice is returned when the adapter refuses to create a device.
	ErrNoDevice = errors.New("gpu: device request failed")

	// ErrNoSurfaceFormats is returned when the surface reports no
	// supported texture formats for the adapter.
	ErrNoSurfaceFormats = errors.New("gpu: surface reports no supported formats")

	// ErrFormatMismatch is returned when a pipeline output format does
	// not match the format the surface is configured with.
	ErrFormatMismatch = errors.New("gpu: pipeline target format does not match surface format")

	// ErrMissingEntry is returned when a shader does not define a
	// required entry point.
	ErrMissingEntry = errors.New("gpu: shader entry point not found")

	// ErrIndexRange is returned when an index refers past the end of
	// the vertex list.
	ErrIndexRange = errors.New("gpu: index out of vertex range")
)

// Kinds classifies errors by how the caller must respond to them.
type Kinds int32

const (
	// KindSetup is an unrecoverable failure while creating the
	// instance, adapter, device, surface or pipeline.
	KindSetup Kinds = iota

	// KindSurface is a recoverable per-frame failure, such as an
	// outdated or temporarily unavailable surface. The surface is
	// reconfigured and the frame retried.
	KindSurface

	// KindFatal is a per-frame failure the renderer cannot recover from,
	// such as a lost device or out of memory.
	KindFatal
)

func (k Kinds) String() string {
	switch k {
	case KindSetup:
		return "setup"
	case KindSurface:
		return "surface"
	}
	return "fatal"
}

// Error is an error from a GPU operation, with its [Kinds].
type Error struct {
	// Kind is how the error must be handled.
	Kind Kinds

	// Op is the operation that failed, such as "request adapter".
	Op string

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return "gpu: " + e.Op + " (" + e.Kind.String() + "): " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func setupError(op string, err error) error {
	return &Error{Kind: KindSetup, Op: op, Err: err}
}

// KindOf returns the [Kinds] of the first [Error] in the chain of err.
// Errors that are not from this package are fatal.
func KindOf(err error) Kinds {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindFatal
}

// IsRecoverable returns true if err is a [KindSurface] error that
// is handled by reconfiguring the surface.
func IsRecoverable(err error) bool {
	return err != nil && KindOf(err) == KindSurface
}

// fatalSurfaceMessages are substrings of surface acquisition errors
// that indicate the device itself is unusable.
var fatalSurfaceMessages = []string{"out of memory", "outofmemory", "device lost", "devicelost"}

// surfaceError wraps an error from acquiring the surface texture.
// It is recoverable unless the message reports out of memory or a
// lost device.
func surfaceError(op string, err error) error {
	msg := strings.ToLower(err.Error())
	for _, fm := range fatalSurfaceMessages {
		if strings.Contains(msg, fm) {
			return &Error{Kind: KindFatal, Op: op, Err: err}
		}
	}
	return &Error{Kind: KindSurface, Op: op, Err: err}
}
