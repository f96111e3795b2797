// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"code.hybscloud.com/kont"
)

// ReadSomeBind reads into b and passes the byte count to f.
// Fuses Perform(ReadSome{Buffers: b}) + Bind.
func ReadSomeBind[B any](b MutableBuffers, f func(n int) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(ReadSome{Buffers: b}), f)
}

// WriteSomeBind writes b and passes the byte count to f.
// Fuses Perform(WriteSome{Buffers: b}) + Bind.
func WriteSomeBind[B any](b ConstBuffers, f func(n int) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(WriteSome{Buffers: b}), f)
}

// WriteSomeThen writes b and then continues with next, discarding the
// byte count.
// Fuses Perform(WriteSome{Buffers: b}) + Then.
func WriteSomeThen[B any](b ConstBuffers, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(WriteSome{Buffers: b}), next)
}

// CloseDone closes the stream and returns a.
// Fuses Perform(Close{}) + Then + Pure.
func CloseDone[A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Close{}), kont.Pure(a))
}

// ReadFullBind reads until b is full and passes b.Len() to f.
// Built from ReadSome effects, so end of stream before b is full
// short-circuits with io.EOF.
func ReadFullBind[B any](b MutableBuffers, f func(n int) kont.Eff[B]) kont.Eff[B] {
	want := b.Len()
	return kont.Bind(Repeat(0, func(done int) kont.Eff[kont.Either[int, int]] {
		if done >= want {
			return kont.Pure(kont.Right[int, int](done))
		}
		return kont.Bind(kont.Perform(ReadSome{Buffers: advanceMutable(b, done)}), func(n int) kont.Eff[kont.Either[int, int]] {
			return kont.Pure(kont.Left[int, int](done + n))
		})
	}), f)
}

// WriteAllThen writes every byte of b and then continues with next.
func WriteAllThen[B any](b ConstBuffers, next kont.Eff[B]) kont.Eff[B] {
	want := b.Len()
	return kont.Then(Repeat(0, func(done int) kont.Eff[kont.Either[int, struct{}]] {
		if done >= want {
			return kont.Pure(kont.Right[int, struct{}](struct{}{}))
		}
		return kont.Bind(kont.Perform(WriteSome{Buffers: advanceConst(b, done)}), func(n int) kont.Eff[kont.Either[int, struct{}]] {
			return kont.Pure(kont.Left[int, struct{}](done + n))
		})
	}), next)
}
