// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"io"

	"code.hybscloud.com/kont"
)

// streamContext is the stream effects are dispatched on.
type streamContext struct {
	s      SyncStream
	try    NonblockingStream
	closer io.Closer
}

func newStreamContext(s SyncStream) *streamContext {
	ctx := &streamContext{s: s}
	ctx.try, _ = s.(NonblockingStream)
	ctx.closer, _ = s.(io.Closer)
	return ctx
}

// streamDispatcher is the structural interface for stream operations.
// With wait unset, DispatchStream uses the non-blocking entry points when
// the stream has them and returns iox.ErrWouldBlock at the I/O boundary.
type streamDispatcher interface {
	DispatchStream(ctx *streamContext, wait bool) (kont.Resumed, error)
}

// ReadSome is the effect operation for reading into Buffers.
// Perform(ReadSome{Buffers: b}) resumes with the number of bytes read,
// which is at least one.
type ReadSome struct {
	kont.Phantom[int]
	Buffers MutableBuffers
}

// DispatchStream handles ReadSome on the stream.
// A read that moved bytes succeeds; its error, if any, recurs on the
// next read.
func (op ReadSome) DispatchStream(ctx *streamContext, wait bool) (kont.Resumed, error) {
	var (
		n   int
		err error
	)
	if !wait && ctx.try != nil {
		n, err = ctx.try.TryReadSome(op.Buffers)
	} else {
		n, err = ctx.s.ReadSome(op.Buffers)
	}
	if n > 0 {
		return n, nil
	}
	if err == nil && op.Buffers.Len() > 0 {
		err = io.ErrNoProgress
	}
	if err != nil {
		return nil, err
	}
	return 0, nil
}

// WriteSome is the effect operation for writing Buffers.
// Perform(WriteSome{Buffers: b}) resumes with the number of bytes written.
type WriteSome struct {
	kont.Phantom[int]
	Buffers ConstBuffers
}

// DispatchStream handles WriteSome on the stream.
func (op WriteSome) DispatchStream(ctx *streamContext, wait bool) (kont.Resumed, error) {
	var (
		n   int
		err error
	)
	if !wait && ctx.try != nil {
		n, err = ctx.try.TryWriteSome(op.Buffers)
	} else {
		n, err = ctx.s.WriteSome(op.Buffers)
	}
	if n > 0 {
		return n, nil
	}
	if err == nil && op.Buffers.Len() > 0 {
		err = io.ErrShortWrite
	}
	if err != nil {
		return nil, err
	}
	return 0, nil
}

// Close is the effect operation for closing the stream.
// Perform(Close{}) closes streams implementing io.Closer and is a no-op
// for the rest. Never blocks.
type Close struct {
	kont.Phantom[struct{}]
}

// DispatchStream handles Close on the stream.
func (Close) DispatchStream(ctx *streamContext, _ bool) (kont.Resumed, error) {
	if ctx.closer != nil {
		if err := ctx.closer.Close(); err != nil {
			return nil, err
		}
	}
	return struct{}{}, nil
}
