// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"sync"

	"github.com/gogpu/paper"
)

// Worker runs a function on a single background goroutine and posts each
// result to an App as a message. Requests are processed one at a time;
// a request submitted while another is waiting replaces it, since only
// the newest input matters for the result shown.
type Worker[In, M any] struct {
	requests chan In
	cancel   context.CancelFunc
	done     chan struct{}
	once     sync.Once
}

// NewWorker starts a worker calling fn for every request and sending its
// result through sender. The worker stops when ctx is done or Close is
// called.
func NewWorker[In, M any](ctx context.Context, sender Sender[M], fn func(context.Context, In) M) *Worker[In, M] {
	ctx, cancel := context.WithCancel(ctx)
	w := &Worker[In, M]{
		requests: make(chan In, 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case in := <-w.requests:
				out := fn(ctx, in)
				if ctx.Err() != nil {
					return
				}
				sender.Send(out)
			}
		}
	}()
	return w
}

// Submit queues in for processing, replacing any request not yet
// started.
func (w *Worker[In, M]) Submit(in In) {
	for {
		select {
		case w.requests <- in:
			return
		default:
		}
		select {
		case <-w.requests:
			paper.Logger().Debug("app: worker request superseded")
		default:
		}
	}
}

// Close stops the worker and waits for it to exit. A result being
// computed is discarded.
func (w *Worker[In, M]) Close() {
	w.once.Do(w.cancel)
	<-w.done
}
