package streams

type Executor interface{ Execute(fn func()) }

type MutableBuffers [][]byte

type ConstBuffers [][]byte

func (ConstBuffers) ReadOnly() {}

type ErrorSlot struct{ err error }

func (s *ErrorSlot) SetError(err error) {
	if s.err == nil {
		s.err = err
	}
}

//trait:require AsyncStream SyncStream
type Socket struct{}

func (*Socket) Executor() Executor                                 { return nil }
func (*Socket) AsyncReadSome(b MutableBuffers, h func(int, error)) {}
func (*Socket) AsyncWriteSome(b ConstBuffers, h func(int, error))  {}
func (*Socket) ReadSome(b MutableBuffers) (int, error)             { return 0, nil }
func (*Socket) ReadSomeSlot(b MutableBuffers, ec *ErrorSlot) int   { return 0 }
func (*Socket) WriteSome(b ConstBuffers) (int, error)              { return 0, nil }
func (*Socket) WriteSomeSlot(b ConstBuffers, ec *ErrorSlot) int    { return 0 }

//trait:require value SyncStream
type ValueSocket struct{} // want `ValueSocket does not satisfy SyncStream: SyncReadStream: HasReadSome: missing method ReadSome\(mutable-buffers\) \(count, error\)`

func (*ValueSocket) ReadSome(b MutableBuffers) (int, error)           { return 0, nil }
func (*ValueSocket) ReadSomeSlot(b MutableBuffers, ec *ErrorSlot) int { return 0 }
func (*ValueSocket) WriteSome(b ConstBuffers) (int, error)            { return 0, nil }
func (*ValueSocket) WriteSomeSlot(b ConstBuffers, ec *ErrorSlot) int  { return 0 }

//trait:require AsyncReadStream
//trait:reject AsyncWriteStream AsyncStream SyncReadStream
type NotAStream struct{} // want `NotAStream does not satisfy AsyncReadStream: HasExecutor: missing method Executor\(\) executor`

func (NotAStream) IOService() {}

//trait:require AsyncReadStream
//trait:reject AsyncWriteStream AsyncStream
type ReadHalf struct{}

func (ReadHalf) Executor() Executor                          { return nil }
func (ReadHalf) AsyncReadSome(b [][]byte, h func(int, error)) {}

//trait:reject AsyncReadStream
type WrongHandler struct{}

func (WrongHandler) Executor() Executor                           { return nil }
func (WrongHandler) AsyncReadSome(b MutableBuffers, h func(error)) {}

//trait:require AsyncReadStream
type Stale struct{} // want `Stale does not satisfy AsyncReadStream: HasExecutor: Executor has shape func\(\), want Executor\(\) executor`

func (Stale) Executor()                                           {}
func (Stale) AsyncReadSome(b MutableBuffers, h func(int, error)) {}

//trait:reject SyncReadStream
type Claims struct{} // want `Claims unexpectedly satisfies SyncReadStream`

func (Claims) ReadSome(b []byte) (int, error)       { return 0, nil }
func (Claims) ReadSomeSlot(b []byte, ec *error) int { return 0 }

//trait:require BogusStream
type Bogus struct{} // want `unknown concept "BogusStream"`

//trait:expect SyncStream
type Typo struct{} // want `unknown directive //trait:expect`

//trait:require
type Empty struct{} // want `//trait:require lists no concepts`

//trait:require SyncStream
type Generic[T any] struct{} // want `Generic: generic types are not checked`

type (
	//trait:require HasExecutor
	Grouped struct{} // want `Grouped does not satisfy HasExecutor: missing method Executor\(\) executor`

	// Plain has no directive.
	Plain struct{}
)
