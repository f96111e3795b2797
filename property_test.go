// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait_test

import (
	"bytes"
	"io"
	"testing"
	"testing/quick"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/trait"
)

// TestPropertyPipeFIFO proves that for any arbitrarily generated sequence
// of chunks, the pipe delivers the concatenated bytes in order without
// loss or duplication, followed by end of stream.
func TestPropertyPipeFIFO(t *testing.T) {
	propertyFIFO := func(chunks [][]byte) bool {
		var want []byte
		for _, c := range chunks {
			want = append(want, c...)
		}

		// Sender: writes each chunk in full, then closes.
		sender := trait.Repeat(chunks, func(rest [][]byte) kont.Eff[kont.Either[[][]byte, struct{}]] {
			if len(rest) == 0 {
				return trait.CloseDone(kont.Right[[][]byte, struct{}](struct{}{}))
			}
			return trait.WriteAllThen(trait.ConstBuffers{rest[0]},
				kont.Pure(kont.Left[[][]byte, struct{}](rest[1:])))
		})

		// Receiver: collects bytes until end of stream.
		var got []byte
		buf := make([]byte, 3)
		receiver := trait.Repeat(struct{}{}, func(struct{}) kont.Eff[kont.Either[struct{}, struct{}]] {
			return trait.ReadSomeBind(trait.MutableBuffers{buf}, func(n int) kont.Eff[kont.Either[struct{}, struct{}]] {
				got = append(got, buf[:n]...)
				return kont.Pure(kont.Left[struct{}, struct{}](struct{}{}))
			})
		})

		sent, received := trait.Run[struct{}, struct{}](sender, receiver)
		if !sent.IsRight() {
			return false
		}
		if err, ok := received.GetLeft(); !ok || err != io.EOF {
			return false
		}
		return bytes.Equal(want, got)
	}

	if err := quick.Check(propertyFIFO, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyCopyBuffers proves that CopyBuffers moves exactly the common
// prefix of the source and destination regardless of how either is split.
func TestPropertyCopyBuffers(t *testing.T) {
	propertyCopy := func(src [][]byte, sizes []uint8) bool {
		dst := make(trait.MutableBuffers, len(sizes))
		room := 0
		for i, n := range sizes {
			dst[i] = make([]byte, n%16)
			room += len(dst[i])
		}
		srcBufs := trait.ConstBuffers(src)
		n := trait.CopyBuffers(dst, srcBufs)
		if n != min(room, srcBufs.Len()) {
			return false
		}
		var flatDst, flatSrc []byte
		for _, p := range dst {
			flatDst = append(flatDst, p...)
		}
		for _, p := range src {
			flatSrc = append(flatSrc, p...)
		}
		return bytes.Equal(flatDst[:n], flatSrc[:n])
	}

	if err := quick.Check(propertyCopy, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyErrorShortCircuit proves that an error thrown at any arbitrary
// point in a stream protocol always short-circuits and returns the exact
// error value as the Left branch of the Either result.
func TestPropertyErrorShortCircuit(t *testing.T) {
	propertyError := func(throwAt uint) bool {
		n := throwAt % 3

		protocol := trait.ExprRepeat(uint(0), func(i uint) kont.Expr[kont.Either[uint, string]] {
			if i == n {
				return kont.ExprThrowError[error, kont.Either[uint, string]](errBoom)
			}
			return trait.ExprWriteSomeThen(bufs("x"), kont.ExprReturn(kont.Left[uint, string](i+1)))
		})

		m := &memStream{}
		result := execExpr(m, protocol)
		err, isErr := result.GetLeft()
		return isErr && err == errBoom && len(m.out) == int(n)
	}

	if err := quick.Check(propertyError, nil); err != nil {
		t.Error(err)
	}
}
