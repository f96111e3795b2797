// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// errorDispatcher is the structural interface of kont error operations.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// streamHandler handles both stream and error effects.
// Stream ops use the blocking entry points. A failed stream op, like a
// Throw, short-circuits with Left.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type streamHandler[A any] struct {
	ctx    *streamContext
	errCtx *kont.ErrorContext[error]
}

// Dispatch implements kont.Handler for the composed Stream+Error handler.
// Dispatch order: Stream → Error.
func (h streamHandler[A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if sop, ok := op.(streamDispatcher); ok {
		v, err := sop.DispatchStream(h.ctx, true)
		if err != nil {
			return kont.Left[error, A](err), false
		}
		return v, true
	}
	if eop, ok := op.(errorDispatcher); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[error, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("trait: unhandled effect in streamHandler")
}

// advance dispatches one suspended operation. Stream ops respect wait;
// on iox.ErrWouldBlock the suspension is returned unconsumed with the
// error. Any other failure, and any Throw, discards the suspension and
// returns Left.
func advance[R any](ctx *streamContext, susp *kont.Suspension[kont.Either[error, R]], wait bool) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]], error) {
	// Stream ops: non-blocking unless wait is set
	if sop, ok := susp.Op().(streamDispatcher); ok {
		v, err := sop.DispatchStream(ctx, wait)
		if err != nil {
			if iox.IsWouldBlock(err) {
				var zero kont.Either[error, R]
				return zero, susp, err
			}
			susp.Discard()
			return kont.Left[error, R](err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	// Error ops: eager dispatch
	if eop, ok := susp.Op().(errorDispatcher); ok {
		var errCtx kont.ErrorContext[error]
		v, _ := eop.DispatchError(&errCtx)
		if errCtx.HasErr {
			susp.Discard()
			return kont.Left[error, R](errCtx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("trait: unhandled effect in Advance")
}
