// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shape evaluates structural capability predicates over [go/types]
// descriptors.
//
// A type satisfies a concept by the shape of its method set alone: method
// name, arity, and parameter/result compatibility. Declared interfaces,
// embedding, and naming conventions beyond the method name play no part.
//
// # Predicates
//
//   - Invocability: [Invocable] decides whether a callable type accepts a
//     [Signature]. A nil result list admits any result, which is then
//     discarded.
//   - Completion handlers: [CompletionHandler] applies [Invocable] to the
//     literal parameter list with the result dropped.
//   - Member capabilities: [HasExecutor], [HasAsyncReadSome],
//     [HasAsyncWriteSome], [HasReadSome], [HasWriteSome].
//   - Concepts: [AsyncReadStream], [AsyncWriteStream], [AsyncStream],
//     [SyncReadStream], [SyncWriteStream], [SyncStream], composed with [All].
//
// # Receivers
//
// [Addressable] evaluates the method set of *T, the view of a mutable
// variable. [Value] evaluates the method set of T as given, so methods
// declared on a pointer receiver are unavailable on a non-pointer T. A
// pointer type keeps its full method set under either receiver.
//
// Every predicate is a pure function of its arguments: evaluating the same
// type twice yields the same [Result].
package shape
