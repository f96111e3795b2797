// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trait states the stream concepts of asynchronous I/O as Go
// interfaces and checks them before the program runs.
//
// A stream is classified by the members it offers: an executor, initiating
// functions that complete through a handler, and synchronous entry points
// that report failure either as a returned error or through an
// [ErrorSlot]. The concepts compose those members:
//
//   - [AsyncReadStream], [AsyncWriteStream], [AsyncStream]
//   - [SyncReadStream], [SyncWriteStream], [SyncStream]
//
// The structural form of the same predicates over go/types lives in
// [code.hybscloud.com/trait/shape]; the traitcheck analyzer reports them
// on //trait: directives.
//
// # Assertions
//
// Assert functions fail to compile when their argument does not satisfy
// the concept:
//
//	var _ = trait.AssertAsyncStream((*Conn)(nil))
//
// [Satisfies] and the Is functions answer the same question as a value, for
// code that selects a strategy by capability. [ReadFull] and [WriteAll]
// pick the synchronous path when it is available and the asynchronous one
// otherwise.
//
// # Collaborators
//
//   - Buffers: [MutableBuffers] and [ConstBuffers], the latter marked read-only.
//   - Executors: [Inline] and [Loop], a single-owner run loop on a lock-free
//     queue from [code.hybscloud.com/lfq].
//   - [Pipe]: an in-process stream pair satisfying every concept. Its
//     TryReadSome and TryWriteSome return [code.hybscloud.com/iox.ErrWouldBlock]
//     at the queue boundary.
//
// # Effects
//
// Stream I/O is also available as effects on [code.hybscloud.com/kont]:
// [ReadSome], [WriteSome] and [Close], dispatched on any [SyncStream] by
// [Exec], stepped with [Step] and [Advance], and paired over a [Pipe] by
// [Run]. I/O errors short-circuit to the Left of a
// [code.hybscloud.com/kont.Either].
//
// # Example
//
//	a, b := trait.NewPipe(nil)
//	go b.WriteSome(trait.ConstBuffers{[]byte("ping")})
//	buf := make([]byte, 4)
//	n, err := trait.ReadFull(a, trait.MutableBuffers{buf})
package trait
