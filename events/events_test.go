// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"
	"testing"

	"cogentcore.org/lyra/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrder(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.NextEvent())
	q.Send(NewResize(image.Pt(800, 600)))
	q.Send(NewKey(KeyDown, key.CodeSpacebar, 0, false))
	q.Send(NewClose())

	var got []Types
	q.Drain(func(ev Event) bool {
		got = append(got, ev.Type())
		return true
	})
	assert.Equal(t, []Types{WindowResize, KeyDown, WindowClose}, got)
	assert.Nil(t, q.NextEvent())
}

func TestQueueDrainStop(t *testing.T) {
	q := NewQueue()
	q.Send(NewClose())
	q.Send(NewPaint())
	n := 0
	q.Drain(func(ev Event) bool {
		n++
		return ev.Type() != WindowClose
	})
	assert.Equal(t, 1, n)
	ev := q.NextEvent()
	require.NotNil(t, ev, "events after the stop stay queued")
	assert.Equal(t, WindowPaint, ev.Type())
	assert.Nil(t, q.NextEvent())
}

func TestQueueConcurrentSend(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Send(NewPaint())
			}
		}()
	}
	wg.Wait()
	n := 0
	for q.NextEvent() != nil {
		n++
	}
	assert.Equal(t, 800, n)
}

func TestKeyEvent(t *testing.T) {
	down := NewKey(KeyDown, key.CodeSpacebar, key.Shift, false)
	assert.True(t, down.IsPress())
	assert.Equal(t, "KeyDown{Code: Spacebar, Mods: Shift, Repeat: false}", down.String())
	assert.False(t, NewKey(KeyDown, key.CodeSpacebar, 0, true).IsPress())
	assert.False(t, NewKey(KeyUp, key.CodeSpacebar, 0, false).IsPress())
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "WindowResize", WindowResize.String())
	assert.Equal(t, "Types(42)", Types(42).String())
	assert.Equal(t, "WindowResize{Size: (1024,768)}", NewResize(image.Pt(1024, 768)).String())
}
