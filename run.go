// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"errors"

	"code.hybscloud.com/kont"
)

// ErrDeadlock is the Left of every protocol still pending when neither
// side of [Run] can make progress.
var ErrDeadlock = errors.New("trait: both protocols blocked")

// Run creates a pipe pair, runs both Cont-world protocols, and returns
// both results as Either values. Interleaves execution of both sides on
// the calling goroutine. Does not spawn goroutines or create channels.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (kont.Either[error, A], kont.Either[error, B]) {
	return RunExpr(Reify(a), Reify(b))
}

// RunExpr creates a pipe pair, runs both Expr-world protocols, and
// returns both results. Interleaves execution of both sides on the
// calling goroutine. The pair is private to the call, so a round in
// which both sides would block ends both with [ErrDeadlock].
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (kont.Either[error, A], kont.Either[error, B]) {
	pa, pb := NewPipe(nil)
	ctxA, ctxB := newStreamContext(pa), newStreamContext(pb)
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = advance(ctxA, suspA, false)
			if err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = advance(ctxB, suspB, false)
			if err == nil {
				progress = true
			}
		}
		if !progress {
			if suspA != nil {
				suspA.Discard()
				resultA, suspA = kont.Left[error, A](ErrDeadlock), nil
			}
			if suspB != nil {
				suspB.Discard()
				resultB, suspB = kont.Left[error, B](ErrDeadlock), nil
			}
		}
	}
	return resultA, resultB
}
