// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a stream protocol until the first effect suspension.
// Returns (Either[error, R], nil) on completion or error, or
// (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.StepExpr(wrapped)
}

// Advance dispatches the suspended operation on s.
// When s is a [NonblockingStream] its Try entry points are used: on
// iox.ErrWouldBlock the suspension is returned unconsumed with the error
// and may be retried after the peer makes progress. Other streams block.
//
// A failed stream operation or Throw discards the suspension and returns
// Left with a nil error.
func Advance[R any](s SyncStream, susp *kont.Suspension[kont.Either[error, R]]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]], error) {
	return advance(newStreamContext(s), susp, false)
}
