// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"go/types"
)

// InvokeMethod is the method through which a non-func type is called.
const InvokeMethod = "Invoke"

// Receiver selects which method set a predicate evaluates.
type Receiver uint8

const (
	// Addressable evaluates the method set of *T: the view of a mutable
	// variable of type T.
	Addressable Receiver = iota
	// Value evaluates the method set of T as given. Methods declared on a
	// pointer receiver are not available on a non-pointer T; a pointer T
	// keeps them.
	Value
)

func (r Receiver) String() string {
	switch r {
	case Addressable:
		return "addressable"
	case Value:
		return "value"
	}
	return fmt.Sprintf("Receiver(%d)", uint8(r))
}

// ParseReceiver parses the String form of a Receiver.
func ParseReceiver(s string) (Receiver, error) {
	switch s {
	case "addressable", "":
		return Addressable, nil
	case "value":
		return Value, nil
	}
	return 0, fmt.Errorf("shape: unknown receiver %q", s)
}

// Invocable reports whether a value of type c, held through recv, can be
// called with arguments admitted by sig.Params and yields results admitted
// by sig.Results.
//
// c is callable when its underlying type is a func type, or when its
// method set holds [InvokeMethod]. Invocable never fails: a call shape that
// cannot be formed yields false.
func Invocable(c types.Type, sig Signature, recv Receiver) bool {
	call := callShape(c, recv)
	return call != nil && sig.admits(call)
}

// CompletionHandler reports whether h can be invoked as a completion
// handler for sig: the parameter list is matched literally, and any
// result h yields is discarded.
func CompletionHandler(h types.Type, sig Signature) bool {
	return Invocable(h, Signature{Params: sig.Params}, Addressable)
}

func callShape(c types.Type, recv Receiver) *types.Signature {
	if c == nil {
		return nil
	}
	if s, ok := c.Underlying().(*types.Signature); ok {
		return s
	}
	return method(c, InvokeMethod, recv)
}

// hasCall reports whether t has a method name accepting sig under recv.
func hasCall(t types.Type, name string, sig Signature, recv Receiver) bool {
	m := method(t, name, recv)
	return m != nil && sig.admits(m)
}

// method returns the signature of the method name of t under recv, or nil.
func method(t types.Type, name string, recv Receiver) *types.Signature {
	if t == nil {
		return nil
	}
	sel := methodSet(t, recv).Lookup(nil, name)
	if sel == nil {
		return nil
	}
	sig, _ := sel.Type().(*types.Signature)
	return sig
}

func methodSet(t types.Type, recv Receiver) *types.MethodSet {
	if recv == Addressable && addressable(t) {
		t = types.NewPointer(t)
	}
	return types.NewMethodSet(t)
}

// addressable reports whether taking the address of a T widens its
// method set.
func addressable(t types.Type) bool {
	switch types.Unalias(t).(type) {
	case *types.Pointer, *types.Signature:
		return false
	}
	return !types.IsInterface(t)
}
