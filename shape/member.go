// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import (
	"go/types"
)

var (
	intType = types.Typ[types.Int]

	// ioHandler is the completion signature of asynchronous stream
	// operations: bytes transferred, then the failure if any.
	ioHandler = []types.Type{intType, errorType}
)

// Op is one required method: its name and call shape.
type Op struct {
	Method string
	Sig    Signature
}

func (op Op) String() string { return op.Method + op.Sig.String() }

// Predicate is a primitive member-capability check. It holds when the
// method set has every one of its operations with an admissible shape.
type Predicate struct {
	name string
	ops  []Op
}

// NewPredicate returns a predicate named name requiring ops.
func NewPredicate(name string, ops ...Op) *Predicate {
	return &Predicate{name: name, ops: ops}
}

// Name implements Check.
func (p *Predicate) Name() string { return p.name }

// Ops returns the operations p requires.
func (p *Predicate) Ops() []Op { return append([]Op(nil), p.ops...) }

// Eval implements Check.
func (p *Predicate) Eval(t types.Type, recv Receiver) Result {
	r := Result{Check: p.name, Type: t, Recv: recv}
	for _, op := range p.ops {
		m := method(t, op.Method, recv)
		if m == nil {
			r.Reason = "missing method " + op.String()
			return r
		}
		if !op.Sig.admits(m) {
			r.Reason = op.Method + " has shape " + TypeString(m) + ", want " + op.String()
			return r
		}
	}
	r.OK = true
	return r
}

// Member-capability predicates for stream-like types.
var (
	// HasExecutor requires Executor() yielding a value with Execute(func()).
	HasExecutor = NewPredicate("HasExecutor",
		Op{"Executor", Signature{Results: []Matcher{ExecutorLike()}}},
	)

	// HasAsyncReadSome requires an asynchronous read into a mutable
	// buffer sequence completing through func(int, error).
	HasAsyncReadSome = NewPredicate("HasAsyncReadSome",
		Op{"AsyncReadSome", Signature{Params: []Matcher{MutableBuffers(), Handler(ioHandler...)}}},
	)

	// HasAsyncWriteSome requires an asynchronous write from a read-only
	// buffer sequence completing through func(int, error).
	HasAsyncWriteSome = NewPredicate("HasAsyncWriteSome",
		Op{"AsyncWriteSome", Signature{Params: []Matcher{ConstBuffers(), Handler(ioHandler...)}}},
	)

	// HasReadSome requires both synchronous read entry points: one
	// returning the failure, one recording it in an error slot.
	HasReadSome = NewPredicate("HasReadSome",
		Op{"ReadSome", Signature{Params: []Matcher{MutableBuffers()}, Results: []Matcher{Count(), Error()}}},
		Op{"ReadSomeSlot", Signature{Params: []Matcher{MutableBuffers(), ErrorSlot()}, Results: []Matcher{Count()}}},
	)

	// HasWriteSome is the write direction of HasReadSome.
	HasWriteSome = NewPredicate("HasWriteSome",
		Op{"WriteSome", Signature{Params: []Matcher{ConstBuffers()}, Results: []Matcher{Count(), Error()}}},
		Op{"WriteSomeSlot", Signature{Params: []Matcher{ConstBuffers(), ErrorSlot()}, Results: []Matcher{Count()}}},
	)
)
