// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"sync"

	"github.com/gogpu/paper"
)

// queue is the message queue shared by an App and its Senders.
type queue[M any] struct {
	mu      sync.Mutex
	pending []M
	closed  bool
	wake    chan struct{}
}

func newQueue[M any]() *queue[M] {
	return &queue[M]{wake: make(chan struct{}, 1)}
}

func (q *queue[M]) push(msg M) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, msg)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
		// A wake-up is already pending.
	}
	return true
}

func (q *queue[M]) drain() []M {
	q.mu.Lock()
	defer q.mu.Unlock()
	msgs := q.pending
	q.pending = nil
	return msgs
}

func (q *queue[M]) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.pending = nil
}

// Sender posts messages to a running App from any goroutine. Each
// message wakes the event loop, which applies it once no ink is in
// progress.
type Sender[M any] struct {
	q *queue[M]
}

// Send enqueues msg. It reports false if the App has stopped.
func (s Sender[M]) Send(msg M) bool {
	if s.q.push(msg) {
		return true
	}
	paper.Logger().Warn("app: message sent after stop dropped")
	return false
}
