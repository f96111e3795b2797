// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

// Compile time assertions: these fail to compile if the argument type does
// not satisfy the concept.
//
//	var _ = trait.AssertSyncStream((*Conn)(nil))

type nothing *struct{}

// AssertHasExecutor fails to compile if T has no Executor method.
func AssertHasExecutor[T HasExecutor](T) nothing { return nil }

// AssertAsyncReadStream fails to compile if T is not an [AsyncReadStream].
func AssertAsyncReadStream[T AsyncReadStream](T) nothing { return nil }

// AssertAsyncWriteStream fails to compile if T is not an [AsyncWriteStream].
func AssertAsyncWriteStream[T AsyncWriteStream](T) nothing { return nil }

// AssertAsyncStream fails to compile if T is not an [AsyncStream].
func AssertAsyncStream[T AsyncStream](T) nothing { return nil }

// AssertSyncReadStream fails to compile if T is not a [SyncReadStream].
func AssertSyncReadStream[T SyncReadStream](T) nothing { return nil }

// AssertSyncWriteStream fails to compile if T is not a [SyncWriteStream].
func AssertSyncWriteStream[T SyncWriteStream](T) nothing { return nil }

// AssertSyncStream fails to compile if T is not a [SyncStream].
func AssertSyncStream[T SyncStream](T) nothing { return nil }

// AssertNonblockingStream fails to compile if T is not a [NonblockingStream].
func AssertNonblockingStream[T NonblockingStream](T) nothing { return nil }

// Satisfies reports whether values of type T implement C.
// It depends only on the method set of T. An interface T reports false,
// since its zero value carries no dynamic type.
func Satisfies[C, T any]() bool {
	var zero T
	_, ok := any(zero).(C)
	return ok
}

// IsAsyncReadStream reports whether T is an [AsyncReadStream].
func IsAsyncReadStream[T any]() bool { return Satisfies[AsyncReadStream, T]() }

// IsAsyncWriteStream reports whether T is an [AsyncWriteStream].
func IsAsyncWriteStream[T any]() bool { return Satisfies[AsyncWriteStream, T]() }

// IsAsyncStream reports whether T is an [AsyncStream].
func IsAsyncStream[T any]() bool { return Satisfies[AsyncStream, T]() }

// IsSyncReadStream reports whether T is a [SyncReadStream].
func IsSyncReadStream[T any]() bool { return Satisfies[SyncReadStream, T]() }

// IsSyncWriteStream reports whether T is a [SyncWriteStream].
func IsSyncWriteStream[T any]() bool { return Satisfies[SyncWriteStream, T]() }

// IsSyncStream reports whether T is a [SyncStream].
func IsSyncStream[T any]() bool { return Satisfies[SyncStream, T]() }
