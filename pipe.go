// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import (
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// pipeCapacity is the bounded number of chunks in flight per direction.
const pipeCapacity = 4

// pipeEnd holds the lock-free transport for one end of a pipe.
// Each direction is a single-producer single-consumer bounded queue.
type pipeEnd struct {
	sendQ      *lfq.SPSC[[]byte]
	recvQ      *lfq.SPSC[[]byte]
	closed     *atomix.Uint32
	peerClosed *atomix.Uint32
	rest       []byte
}

// Pipe is one end of an in-process byte stream.
//
// A Pipe satisfies [AsyncStream], [SyncStream] and [NonblockingStream].
// Reads on an end may run concurrently with writes on the same end, but
// two reads, or two writes, on one end must not overlap.
//
//trait:require AsyncStream SyncStream
type Pipe struct {
	end    pipeEnd
	ex     Executor
	serial Serial
}

var (
	_ = AssertAsyncStream((*Pipe)(nil))
	_ = AssertSyncStream((*Pipe)(nil))
	_ = AssertNonblockingStream((*Pipe)(nil))
)

// pipePair holds both ends, queues, and close flags in a single
// allocation. Only the ring buffers are separate heap objects.
type pipePair struct {
	a       Pipe
	b       Pipe
	closedA atomix.Uint32
	closedB atomix.Uint32
	dataAB  lfq.SPSC[[]byte]
	dataBA  lfq.SPSC[[]byte]
}

// NewPipe creates a connected pair of pipe ends whose asynchronous
// operations run on ex. A nil ex means [Inline].
func NewPipe(ex Executor) (*Pipe, *Pipe) {
	if ex == nil {
		ex = Inline{}
	}
	s := nextSerial()

	pair := &pipePair{}
	pair.dataAB.Init(pipeCapacity)
	pair.dataBA.Init(pipeCapacity)

	pair.a = Pipe{
		end: pipeEnd{
			sendQ:      &pair.dataAB,
			recvQ:      &pair.dataBA,
			closed:     &pair.closedA,
			peerClosed: &pair.closedB,
		},
		ex:     ex,
		serial: s,
	}
	pair.b = Pipe{
		end: pipeEnd{
			sendQ:      &pair.dataBA,
			recvQ:      &pair.dataAB,
			closed:     &pair.closedB,
			peerClosed: &pair.closedA,
		},
		ex:     ex,
		serial: s,
	}
	return &pair.a, &pair.b
}

// Serial returns the serial number shared by both ends of the pair.
func (p *Pipe) Serial() Serial {
	return p.serial
}

// Executor returns the executor asynchronous operations run on.
func (p *Pipe) Executor() Executor {
	return p.ex
}

// TryReadSome reads at least one byte into b, or returns
// iox.ErrWouldBlock when no data is queued. It returns io.EOF once the
// peer has closed and every queued byte has been read, and
// io.ErrClosedPipe after Close.
func (p *Pipe) TryReadSome(b MutableBuffers) (int, error) {
	e := &p.end
	if e.closed.Load() != 0 {
		return 0, io.ErrClosedPipe
	}
	if b.Len() == 0 {
		return 0, nil
	}
	if len(e.rest) == 0 {
		// Load the close flag first: a chunk queued before the peer
		// closed is then visible to the dequeue below.
		eof := e.peerClosed.Load() != 0
		chunk, err := e.recvQ.Dequeue()
		if err != nil {
			if eof {
				return 0, io.EOF
			}
			return 0, err
		}
		e.rest = chunk
	}
	n := scatter(b, e.rest)
	e.rest = e.rest[n:]
	return n, nil
}

// TryWriteSome queues a copy of b for the peer, or returns
// iox.ErrWouldBlock when the queue is full. It returns io.ErrClosedPipe
// when either end is closed.
func (p *Pipe) TryWriteSome(b ConstBuffers) (int, error) {
	e := &p.end
	if e.closed.Load() != 0 || e.peerClosed.Load() != 0 {
		return 0, io.ErrClosedPipe
	}
	if b.Len() == 0 {
		return 0, nil
	}
	chunk := flatten(b)
	if err := e.sendQ.Enqueue(&chunk); err != nil {
		return 0, err
	}
	return len(chunk), nil
}

// ReadSome reads at least one byte into b, waiting with adaptive backoff
// while the pipe is empty.
func (p *Pipe) ReadSome(b MutableBuffers) (int, error) {
	var bo iox.Backoff
	for {
		n, err := p.TryReadSome(b)
		if !iox.IsWouldBlock(err) {
			return n, err
		}
		bo.Wait()
	}
}

// WriteSome writes b, waiting with adaptive backoff while the pipe is
// full.
func (p *Pipe) WriteSome(b ConstBuffers) (int, error) {
	var bo iox.Backoff
	for {
		n, err := p.TryWriteSome(b)
		if !iox.IsWouldBlock(err) {
			return n, err
		}
		bo.Wait()
	}
}

// ReadSomeSlot is ReadSome reporting failure through ec.
func (p *Pipe) ReadSomeSlot(b MutableBuffers, ec *ErrorSlot) int {
	if ec.Failed() {
		return 0
	}
	n, err := p.ReadSome(b)
	ec.SetError(err)
	return n
}

// WriteSomeSlot is WriteSome reporting failure through ec.
func (p *Pipe) WriteSomeSlot(b ConstBuffers, ec *ErrorSlot) int {
	if ec.Failed() {
		return 0
	}
	n, err := p.WriteSome(b)
	ec.SetError(err)
	return n
}

// AsyncReadSome initiates a read into b. h is invoked once, on the
// executor, when data, end of stream, or an error is available.
//
// The executor decides how an operation that would block is resumed. A
// [*Loop] parks it and retries on later polls, so AsyncReadSome returns
// immediately. [Inline] runs on the calling goroutine, so AsyncReadSome
// blocks until h has run; the peer must then be driven from another
// goroutine. Any other executor gets the retry re-posted through Execute
// with adaptive backoff, and must run tasks off the posting goroutine.
func (p *Pipe) AsyncReadSome(b MutableBuffers, h Handler) {
	h = once(h)
	p.ex.Execute(func() {
		p.attempt(func() bool {
			n, err := p.TryReadSome(b)
			if iox.IsWouldBlock(err) {
				return false
			}
			h(n, err)
			return true
		})
	})
}

// AsyncWriteSome initiates a write from b. See AsyncReadSome.
func (p *Pipe) AsyncWriteSome(b ConstBuffers, h Handler) {
	h = once(h)
	p.ex.Execute(func() {
		p.attempt(func() bool {
			n, err := p.TryWriteSome(b)
			if iox.IsWouldBlock(err) {
				return false
			}
			h(n, err)
			return true
		})
	})
}

// attempt runs try once and, if it would block, hands it back to the
// executor.
func (p *Pipe) attempt(try func() bool) {
	if try() {
		return
	}
	switch ex := p.ex.(type) {
	case parker:
		ex.park(try)
	case Inline:
		var bo iox.Backoff
		for !try() {
			bo.Wait()
		}
	default:
		p.repost(try, new(iox.Backoff))
	}
}

// repost schedules try on the executor until it completes. Rounds run
// one after another, so bo is never shared between goroutines.
func (p *Pipe) repost(try func() bool, bo *iox.Backoff) {
	p.ex.Execute(func() {
		if try() {
			return
		}
		bo.Wait()
		p.repost(try, bo)
	})
}

// Close closes this end. The peer reads io.EOF once it has drained the
// queued data. Close is idempotent.
func (p *Pipe) Close() error {
	p.end.closed.Add(1)
	return nil
}
