// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Executor runs submitted functions.
type Executor interface {
	Execute(fn func())
}

// Inline runs each function immediately on the calling goroutine.
type Inline struct{}

// Execute calls fn.
func (Inline) Execute(fn func()) { fn() }

// defaultLoopCapacity is the task ring size used when NewLoop is given a
// non-positive capacity.
const defaultLoopCapacity = 64

// parker is implemented by executors that can hold an operation which
// would block and retry it later on the executor's goroutine.
type parker interface {
	park(retry func() bool)
}

// Loop is a single-owner run loop.
//
// Execute, Poll and Run must be called from the goroutine that owns the
// loop; only Stop may be called from elsewhere. Tasks run in submission
// order and never inside Execute. Tasks beyond the ring capacity wait in
// an overflow list. A Loop must be created with NewLoop.
type Loop struct {
	tasks    lfq.SPSC[func()]
	overflow []func()
	queued   int
	parked   []func() bool
	stopped  atomix.Uint32
}

// NewLoop returns a loop whose task ring holds capacity entries.
func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = defaultLoopCapacity
	}
	l := &Loop{}
	l.tasks.Init(capacity)
	return l
}

// Execute queues fn to run on a later Poll.
func (l *Loop) Execute(fn func()) {
	if fn == nil {
		panic("trait: nil task")
	}
	l.queued++
	if len(l.overflow) == 0 {
		if err := l.tasks.Enqueue(&fn); err == nil {
			return
		}
	}
	l.overflow = append(l.overflow, fn)
}

func (l *Loop) park(retry func() bool) {
	l.parked = append(l.parked, retry)
}

// Pending returns the number of queued tasks and parked operations.
func (l *Loop) Pending() int {
	return l.queued + len(l.parked)
}

// Poll runs the tasks queued before the call, then retries each parked
// operation once. Work submitted during Poll waits for the next call.
// It returns the number of tasks run and parked operations completed.
func (l *Loop) Poll() int {
	done := 0
	for n := l.queued; n > 0; n-- {
		fn, ok := l.next()
		if !ok {
			break
		}
		l.queued--
		fn()
		done++
	}
	if len(l.parked) == 0 {
		return done
	}
	parked := l.parked
	l.parked = nil
	kept := parked[:0]
	for _, retry := range parked {
		if retry() {
			done++
			continue
		}
		kept = append(kept, retry)
	}
	clear(parked[len(kept):])
	l.parked = append(kept, l.parked...)
	return done
}

func (l *Loop) next() (func(), bool) {
	if fn, err := l.tasks.Dequeue(); err == nil {
		return fn, true
	}
	if len(l.overflow) == 0 {
		return nil, false
	}
	fn := l.overflow[0]
	l.overflow[0] = nil
	l.overflow = l.overflow[1:]
	return fn, true
}

// Run polls until no work is pending, ctx is done, or Stop is called.
// Between polls that make no progress it waits with adaptive backoff.
func (l *Loop) Run(ctx context.Context) error {
	var bo iox.Backoff
	for l.stopped.Load() == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.Pending() == 0 {
			return nil
		}
		if l.Poll() > 0 {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
	return nil
}

// Stop makes Run return after the current poll. A stopped loop stays
// stopped; Poll still works.
func (l *Loop) Stop() {
	l.stopped.Add(1)
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	return l.stopped.Load() != 0
}
