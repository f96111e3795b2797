// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import (
	"go/types"
)

// Check is a named predicate over a type descriptor.
// Both [*Predicate] and [*Concept] implement it.
type Check interface {
	Name() string
	Eval(t types.Type, recv Receiver) Result
}

// Result is the outcome of evaluating a Check against a type.
// Cause points at the failed part of a concept; Reason describes the
// failed primitive.
type Result struct {
	Check  string
	Type   types.Type
	Recv   Receiver
	OK     bool
	Reason string
	Cause  *Result
}

// Explain renders the chain of failed checks, e.g.
// "AsyncReadStream: HasExecutor: missing method Executor() executor".
// It is empty for a satisfied result.
func (r Result) Explain() string {
	if r.OK {
		return ""
	}
	if r.Cause == nil {
		return r.Reason
	}
	return r.Cause.Check + ": " + r.Cause.Explain()
}

func (r Result) String() string {
	name := TypeString(r.Type)
	if r.OK {
		return name + " satisfies " + r.Check
	}
	return name + " does not satisfy " + r.Check + ": " + r.Explain()
}

// Concept is a named conjunction of checks.
type Concept struct {
	name  string
	parts []Check
}

// All returns the concept name that holds when every part holds.
// Parts are evaluated in order; the first failure is the Cause.
func All(name string, parts ...Check) *Concept {
	return &Concept{name: name, parts: parts}
}

// Name implements Check.
func (c *Concept) Name() string { return c.name }

// Parts returns the checks c is composed of.
func (c *Concept) Parts() []Check { return append([]Check(nil), c.parts...) }

// Eval implements Check.
func (c *Concept) Eval(t types.Type, recv Receiver) Result {
	for _, p := range c.parts {
		r := p.Eval(t, recv)
		if !r.OK {
			return Result{Check: c.name, Type: t, Recv: recv, Cause: &r}
		}
	}
	return Result{Check: c.name, Type: t, Recv: recv, OK: true}
}

// Stream concepts.
var (
	AsyncReadStream  = All("AsyncReadStream", HasExecutor, HasAsyncReadSome)
	AsyncWriteStream = All("AsyncWriteStream", HasExecutor, HasAsyncWriteSome)
	AsyncStream      = All("AsyncStream", AsyncReadStream, AsyncWriteStream)
	SyncReadStream   = All("SyncReadStream", HasReadSome)
	SyncWriteStream  = All("SyncWriteStream", HasWriteSome)
	SyncStream       = All("SyncStream", SyncReadStream, SyncWriteStream)
)

var checks = []Check{
	HasExecutor,
	HasAsyncReadSome,
	HasAsyncWriteSome,
	HasReadSome,
	HasWriteSome,
	AsyncReadStream,
	AsyncWriteStream,
	AsyncStream,
	SyncReadStream,
	SyncWriteStream,
	SyncStream,
}

// Checks returns the built-in predicates followed by the built-in
// concepts, in declaration order.
func Checks() []Check { return append([]Check(nil), checks...) }

// Concepts returns the built-in concepts.
func Concepts() []Check {
	var out []Check
	for _, c := range checks {
		if _, ok := c.(*Concept); ok {
			out = append(out, c)
		}
	}
	return out
}

// Lookup returns the built-in check named name.
func Lookup(name string) (Check, bool) {
	for _, c := range checks {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Satisfies reports whether t, held in an addressable variable, satisfies c.
func Satisfies(c Check, t types.Type) bool {
	return c.Eval(t, Addressable).OK
}
