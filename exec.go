// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"code.hybscloud.com/kont"
)

// Exec runs a Cont-world stream protocol on s.
// Returns Either[error, R]: Right on success, Left on the first failed
// stream operation or Throw. Stream operations use the blocking entry
// points of s, without spawning goroutines or creating channels.
func Exec[S SyncStream, R any](s S, protocol kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := streamHandler[R]{ctx: newStreamContext(s), errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecExpr runs an Expr-world stream protocol on s. See Exec.
func ExecExpr[S SyncStream, R any](s S, protocol kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := streamHandler[R]{ctx: newStreamContext(s), errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}
