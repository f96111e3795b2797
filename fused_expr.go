// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased operations and frames to eliminate heap escapes
// when boxing empty structs into any/kont.Frame during Expr-world execution.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprClose       kont.Erased = Close{}
)

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

func countBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(int) kont.Expr[B])
	result := f(current.(int))
	return kont.Erased(result.Value), result.Frame
}

// ExprReadSomeBind reads into b and passes the byte count to f.
// Fuses ExprPerform(ReadSome{Buffers: b}) + ExprBind.
func ExprReadSomeBind[B any](b MutableBuffers, f func(n int) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = countBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = ReadSome{Buffers: b}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprWriteSomeBind writes b and passes the byte count to f.
// Fuses ExprPerform(WriteSome{Buffers: b}) + ExprBind.
func ExprWriteSomeBind[B any](b ConstBuffers, f func(n int) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = countBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = WriteSome{Buffers: b}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprWriteSomeThen writes b and then continues with next.
// Fuses ExprPerform(WriteSome{Buffers: b}) + ExprThen.
func ExprWriteSomeThen[B any](b ConstBuffers, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = WriteSome{Buffers: b}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprCloseDone closes the stream and returns a.
// Fuses ExprPerform(Close{}) + ExprThen + ExprReturn.
func ExprCloseDone[A any](a A) kont.Expr[A] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprClose
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[A](ef)
}
