package values

type ErrorSlot struct{ err error }

func (s *ErrorSlot) SetError(err error) { s.err = err }

//trait:require SyncReadStream
type Pointer struct{} // want `Pointer does not satisfy SyncReadStream: HasReadSome: missing method ReadSome\(mutable-buffers\) \(count, error\)`

func (*Pointer) ReadSome(b []byte) (int, error)          { return 0, nil }
func (*Pointer) ReadSomeSlot(b []byte, ec *ErrorSlot) int { return 0 }

//trait:require addressable SyncReadStream
type Explicit struct{}

func (*Explicit) ReadSome(b []byte) (int, error)          { return 0, nil }
func (*Explicit) ReadSomeSlot(b []byte, ec *ErrorSlot) int { return 0 }
