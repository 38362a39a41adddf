// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO freelist-based event queue.
// It must be initialized using [Queue.Init] (or created with
// [NewQueue]) before use. Platform callbacks Send into it and
// the event loop drains it with [Queue.NextEvent].
type Queue struct {
	head atomic.Pointer[queueEvent]
	tail atomic.Pointer[queueEvent]
}

// NewQueue returns a new initialized [Queue].
func NewQueue() *Queue {
	q := &Queue{}
	q.Init()
	return q
}

// Init initializes the queue.
func (q *Queue) Init() {
	head := &queueEvent{}
	q.head.Store(head)
	q.tail.Store(head)
}

type queueEvent struct {
	next atomic.Pointer[queueEvent]
	v    Event
}

var queueEventPool = sync.Pool{
	New: func() any { return &queueEvent{} },
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	for {
		first := q.head.Load()
		last := q.tail.Load()
		next := first.next.Load()
		if first != q.head.Load() {
			continue
		}
		if first == last {
			if next == nil {
				return nil
			}
			q.tail.CompareAndSwap(last, next)
			continue
		}
		v := next.v
		if q.head.CompareAndSwap(first, next) {
			first.v = nil
			queueEventPool.Put(first)
			return v
		}
	}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	it := queueEventPool.Get().(*queueEvent)
	it.next.Store(nil)
	it.v = ev

	for {
		last := q.tail.Load()
		next := last.next.Load()
		if q.tail.Load() != last {
			continue
		}
		if next != nil {
			q.tail.CompareAndSwap(last, next)
			continue
		}
		if last.next.CompareAndSwap(nil, it) {
			q.tail.CompareAndSwap(last, it)
			return
		}
	}
}

// Drain calls fun on each queued event in order until the queue is
// empty or fun returns false. Events sent by fun are also delivered.
func (q *Queue) Drain(fun func(ev Event) bool) {
	for {
		ev := q.NextEvent()
		if ev == nil || !fun(ev) {
			return
		}
	}
}
