// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"errors"
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// ErrNotStream is returned by [ReadFull] and [WriteAll] for a value that
// is neither a synchronous nor an asynchronous stream in that direction.
var ErrNotStream = errors.New("trait: not a stream")

// maxZeroTransfers bounds the consecutive (0, nil) results tolerated
// before giving up with io.ErrNoProgress.
const maxZeroTransfers = 100

// Mode is the code path selected for a stream type.
type Mode uint8

const (
	// ModeNone means the type offers neither path.
	ModeNone Mode = iota
	// ModeSync uses ReadSome or WriteSome.
	ModeSync
	// ModeAsync uses AsyncReadSome or AsyncWriteSome on the stream's
	// executor.
	ModeAsync
)

func (m Mode) String() string {
	switch m {
	case ModeSync:
		return "sync"
	case ModeAsync:
		return "async"
	}
	return "none"
}

// ReadMode returns the path ReadFull takes for T.
func ReadMode[T any]() Mode {
	switch {
	case IsSyncReadStream[T]():
		return ModeSync
	case IsAsyncReadStream[T]():
		return ModeAsync
	}
	return ModeNone
}

// WriteMode returns the path WriteAll takes for T.
func WriteMode[T any]() Mode {
	switch {
	case IsSyncWriteStream[T]():
		return ModeSync
	case IsAsyncWriteStream[T]():
		return ModeAsync
	}
	return ModeNone
}

// Strategy returns the read and write paths for T.
func Strategy[T any]() (read, write Mode) {
	return ReadMode[T](), WriteMode[T]()
}

// ReadFull reads exactly b.Len() bytes from s. It prefers the synchronous
// path and falls back to the asynchronous one. The error is io.EOF only
// if no bytes were read, and io.ErrUnexpectedEOF if the stream ended
// early.
//
// On the asynchronous path a [*Loop] executor is polled by the caller, so
// ReadFull must not run inside a task of that loop.
func ReadFull[T any](s T, b MutableBuffers) (int, error) {
	switch v := any(s).(type) {
	case SyncReadStream:
		return transfer(b.Len(), func(n int) (int, error) {
			return v.ReadSome(advanceMutable(b, n))
		}, true)
	case AsyncReadStream:
		ex := v.Executor()
		return transfer(b.Len(), func(n int) (int, error) {
			rest := advanceMutable(b, n)
			return await(ex, func(h Handler) { v.AsyncReadSome(rest, h) })
		}, true)
	}
	return 0, ErrNotStream
}

// WriteAll writes every byte of b to s, preferring the synchronous path.
func WriteAll[T any](s T, b ConstBuffers) (int, error) {
	switch v := any(s).(type) {
	case SyncWriteStream:
		return transfer(b.Len(), func(n int) (int, error) {
			return v.WriteSome(advanceConst(b, n))
		}, false)
	case AsyncWriteStream:
		ex := v.Executor()
		return transfer(b.Len(), func(n int) (int, error) {
			rest := advanceConst(b, n)
			return await(ex, func(h Handler) { v.AsyncWriteSome(rest, h) })
		}, false)
	}
	return 0, ErrNotStream
}

// transfer calls op with the running total until want bytes have moved.
func transfer(want int, op func(done int) (int, error), read bool) (int, error) {
	total, zeros := 0, 0
	for total < want {
		n, err := op(total)
		total += n
		if err != nil {
			if read && errors.Is(err, io.EOF) && total > 0 && total < want {
				return total, io.ErrUnexpectedEOF
			}
			if total >= want && errors.Is(err, io.EOF) {
				return total, nil
			}
			return total, err
		}
		if n > 0 {
			zeros = 0
			continue
		}
		if zeros++; zeros >= maxZeroTransfers {
			if read {
				return total, io.ErrNoProgress
			}
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

// await initiates an asynchronous operation and waits for its handler.
// A [*Loop] executor is polled meanwhile; a loop with nothing left to run
// before the handler fires yields io.ErrNoProgress.
func await(ex Executor, start func(Handler)) (int, error) {
	var (
		done atomix.Uint32
		n    int
		err  error
	)
	start(func(n0 int, err0 error) {
		n, err = n0, err0
		done.Add(1)
	})
	loop, _ := ex.(*Loop)
	var bo iox.Backoff
	for done.Load() == 0 {
		if loop != nil {
			if loop.Poll() > 0 {
				bo.Reset()
				continue
			}
			if loop.Pending() == 0 {
				return 0, io.ErrNoProgress
			}
		}
		bo.Wait()
	}
	return n, err
}
