// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait_test

import (
	"io"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/trait"
)

// execExpr drives a protocol to completion on s via Step+Advance loop.
// Retries on iox.ErrWouldBlock (peer not ready yet).
// Used by stepping tests to exercise the non-blocking path.
func execExpr[R any](s trait.SyncStream, protocol kont.Expr[R]) kont.Either[error, R] {
	result, susp := trait.Step[R](protocol)
	if susp == nil {
		return result
	}
	result, _ = drive(s, susp)
	return result
}

// drive advances susp on s until the protocol completes.
func drive[R any](s trait.SyncStream, susp *kont.Suspension[kont.Either[error, R]]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]]) {
	var (
		result kont.Either[error, R]
		bo     iox.Backoff
	)
	for susp != nil {
		var err error
		result, susp, err = trait.Advance(s, susp)
		if err != nil {
			bo.Wait()
			continue
		}
		bo.Reset()
	}
	return result, nil
}

// memStream is a blocking-only SyncStream over in-memory bytes.
// Reads drain in and then report io.EOF; writes append to out.
type memStream struct {
	in  []byte
	out []byte
}

func (m *memStream) ReadSome(b trait.MutableBuffers) (int, error) {
	if b.Len() == 0 {
		return 0, nil
	}
	if len(m.in) == 0 {
		return 0, io.EOF
	}
	n := trait.CopyBuffers(b, trait.ConstBuffers{m.in})
	m.in = m.in[n:]
	return n, nil
}

func (m *memStream) ReadSomeSlot(b trait.MutableBuffers, ec *trait.ErrorSlot) int {
	if ec.Failed() {
		return 0
	}
	n, err := m.ReadSome(b)
	ec.SetError(err)
	return n
}

func (m *memStream) WriteSome(b trait.ConstBuffers) (int, error) {
	for _, p := range b {
		m.out = append(m.out, p...)
	}
	return b.Len(), nil
}

func (m *memStream) WriteSomeSlot(b trait.ConstBuffers, ec *trait.ErrorSlot) int {
	if ec.Failed() {
		return 0
	}
	n, err := m.WriteSome(b)
	ec.SetError(err)
	return n
}

// asyncReader exposes only the asynchronous read side of a pipe.
type asyncReader struct{ p *trait.Pipe }

func (r asyncReader) Executor() trait.Executor { return r.p.Executor() }

func (r asyncReader) AsyncReadSome(b trait.MutableBuffers, h trait.Handler) {
	r.p.AsyncReadSome(b, h)
}

// asyncWriter exposes only the asynchronous write side of a pipe.
type asyncWriter struct{ p *trait.Pipe }

func (w asyncWriter) Executor() trait.Executor { return w.p.Executor() }

func (w asyncWriter) AsyncWriteSome(b trait.ConstBuffers, h trait.Handler) {
	w.p.AsyncWriteSome(b, h)
}

// dropReader accepts reads and never completes them.
type dropReader struct{ ex trait.Executor }

func (d dropReader) Executor() trait.Executor { return d.ex }

func (d dropReader) AsyncReadSome(trait.MutableBuffers, trait.Handler) {}

func bufs(s ...string) trait.ConstBuffers {
	out := make(trait.ConstBuffers, len(s))
	for i, p := range s {
		out[i] = []byte(p)
	}
	return out
}

// right returns the Right of e, failing the test on Left.
func right[T any](tb testing.TB, e kont.Either[error, T]) T {
	tb.Helper()
	v, ok := e.GetRight()
	if !ok {
		err, _ := e.GetLeft()
		tb.Fatalf("expected Right, got Left(%v)", err)
	}
	return v
}

// left returns the Left of e, failing the test on Right.
func left[T any](tb testing.TB, e kont.Either[error, T]) error {
	tb.Helper()
	err, ok := e.GetLeft()
	if !ok {
		v, _ := e.GetRight()
		tb.Fatalf("expected Left, got Right(%v)", v)
	}
	return err
}
