// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

// Handler is the completion handler of an asynchronous stream operation.
// It is invoked exactly once with the number of bytes transferred and the
// error, if any.
type Handler = func(n int, err error)

// HasExecutor is satisfied by types that expose the executor their
// asynchronous operations complete on.
type HasExecutor interface {
	Executor() Executor
}

// HasAsyncReadSome is satisfied by types that can initiate a read into a
// mutable buffer sequence.
type HasAsyncReadSome interface {
	AsyncReadSome(b MutableBuffers, h Handler)
}

// HasAsyncWriteSome is satisfied by types that can initiate a write from a
// read-only buffer sequence.
type HasAsyncWriteSome interface {
	AsyncWriteSome(b ConstBuffers, h Handler)
}

// HasReadSome is satisfied by types with both synchronous read entry
// points: one returning its error and one reporting it through a slot.
type HasReadSome interface {
	ReadSome(b MutableBuffers) (int, error)
	ReadSomeSlot(b MutableBuffers, ec *ErrorSlot) int
}

// HasWriteSome is the write counterpart of [HasReadSome].
type HasWriteSome interface {
	WriteSome(b ConstBuffers) (int, error)
	WriteSomeSlot(b ConstBuffers, ec *ErrorSlot) int
}

// AsyncReadStream reads asynchronously on its executor.
type AsyncReadStream interface {
	HasExecutor
	HasAsyncReadSome
}

// AsyncWriteStream writes asynchronously on its executor.
type AsyncWriteStream interface {
	HasExecutor
	HasAsyncWriteSome
}

// AsyncStream is both an [AsyncReadStream] and an [AsyncWriteStream].
type AsyncStream interface {
	HasExecutor
	HasAsyncReadSome
	HasAsyncWriteSome
}

// SyncReadStream reads synchronously.
type SyncReadStream interface {
	HasReadSome
}

// SyncWriteStream writes synchronously.
type SyncWriteStream interface {
	HasWriteSome
}

// SyncStream is both a [SyncReadStream] and a [SyncWriteStream].
type SyncStream interface {
	HasReadSome
	HasWriteSome
}

// NonblockingStream offers read and write entry points that return
// [code.hybscloud.com/iox.ErrWouldBlock] instead of waiting.
type NonblockingStream interface {
	TryReadSome(b MutableBuffers) (int, error)
	TryWriteSome(b ConstBuffers) (int, error)
}
