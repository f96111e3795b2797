// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import (
	"go/token"
	"go/types"
)

var (
	errorType  = types.Universe.Lookup("error").Type()
	errorIface = errorType.Underlying().(*types.Interface)
	thunkType  = types.NewSignatureType(nil, nil, nil, nil, nil, false)
)

// readOnlyMarker is the method a buffer sequence type declares to promise
// that callees only read from it.
const readOnlyMarker = "ReadOnly"

// Arg passes an argument of type t. The formal parameter must be
// assignable from t. Arguments are moved in, so types that must not be
// copied are accepted by value.
func Arg(t types.Type) Matcher { return argMatcher{t} }

type argMatcher struct{ t types.Type }

func (m argMatcher) Match(formal types.Type) bool { return types.AssignableTo(m.t, formal) }
func (m argMatcher) String() string             { return TypeString(m.t) }

// Yield requires a result assignable to t.
func Yield(t types.Type) Matcher { return yieldMatcher{t} }

type yieldMatcher struct{ t types.Type }

func (m yieldMatcher) Match(actual types.Type) bool { return types.AssignableTo(actual, m.t) }
func (m yieldMatcher) String() string             { return TypeString(m.t) }

// MutableBuffers accepts a formal parameter that can receive a writable
// buffer sequence: a byte slice or a slice of byte slices without the
// read-only marker.
func MutableBuffers() Matcher { return mutableBuffers{} }

type mutableBuffers struct{}

func (mutableBuffers) Match(formal types.Type) bool {
	return byteSequence(formal) && !readOnly(formal)
}
func (mutableBuffers) String() string { return "mutable-buffers" }

// ConstBuffers accepts a formal parameter that can receive a read-only
// buffer sequence: a string, an unnamed byte sequence, or a byte sequence
// type carrying the read-only marker.
func ConstBuffers() Matcher { return constBuffers{} }

type constBuffers struct{}

func (constBuffers) Match(formal types.Type) bool {
	if isString(formal) {
		return true
	}
	if !byteSequence(formal) {
		return false
	}
	return !isNamed(formal) || readOnly(formal)
}
func (constBuffers) String() string { return "const-buffers" }

// Handler accepts a formal parameter to which a completion handler of the
// plain func type func(params...) can be passed.
func Handler(params ...types.Type) Matcher {
	vars := make([]*types.Var, len(params))
	for i, p := range params {
		vars[i] = types.NewParam(token.NoPos, nil, "", p)
	}
	return handlerMatcher{types.NewSignatureType(nil, nil, nil, types.NewTuple(vars...), nil, false)}
}

type handlerMatcher struct{ sig *types.Signature }

func (m handlerMatcher) Match(formal types.Type) bool { return types.AssignableTo(m.sig, formal) }
func (m handlerMatcher) String() string             { return TypeString(m.sig) }

// ErrorSlot accepts a formal parameter through which the callee reports
// failure: *error, or a type with a SetError(error) method.
func ErrorSlot() Matcher { return errorSlot{} }

type errorSlot struct{}

func (errorSlot) Match(formal types.Type) bool {
	if p, ok := types.Unalias(formal).(*types.Pointer); ok && types.Identical(p.Elem(), errorType) {
		return true
	}
	return hasCall(formal, "SetError", Sig(nil, errorType), Value)
}
func (errorSlot) String() string { return "error-slot" }

// ExecutorLike admits a result whose value method set has Execute(func()).
func ExecutorLike() Matcher { return executorLike{} }

type executorLike struct{}

func (executorLike) Match(actual types.Type) bool {
	return hasCall(actual, "Execute", Sig(nil, thunkType), Value)
}
func (executorLike) String() string { return "executor" }

// Count admits an integer result.
func Count() Matcher { return count{} }

type count struct{}

func (count) Match(actual types.Type) bool {
	b, ok := actual.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsInteger != 0
}
func (count) String() string { return "count" }

// Error admits a result implementing error.
func Error() Matcher { return errorResult{} }

type errorResult struct{}

func (errorResult) Match(actual types.Type) bool { return types.Implements(actual, errorIface) }
func (errorResult) String() string             { return "error" }

func byteSequence(t types.Type) bool {
	s, ok := t.Underlying().(*types.Slice)
	if !ok {
		return false
	}
	if isByte(s.Elem()) {
		return true
	}
	inner, ok := s.Elem().Underlying().(*types.Slice)
	return ok && isByte(inner.Elem())
}

func isByte(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Kind() == types.Byte
}

func isString(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsString != 0
}

func isNamed(t types.Type) bool {
	_, ok := types.Unalias(t).(*types.Named)
	return ok
}

func readOnly(t types.Type) bool {
	return hasCall(t, readOnlyMarker, Signature{Results: []Matcher{}}, Value)
}

// TypeString renders t with package-local names unqualified.
func TypeString(t types.Type) string {
	if t == nil {
		return "<nil>"
	}
	return types.TypeString(t, func(p *types.Package) string {
		if p == nil || isLocal(t, p) {
			return ""
		}
		return p.Name()
	})
}

// isLocal reports whether p declares the outermost named type of t.
func isLocal(t types.Type, p *types.Package) bool {
	for {
		switch u := types.Unalias(t).(type) {
		case *types.Pointer:
			t = u.Elem()
		case *types.Named:
			return u.Obj().Pkg() == p
		default:
			return false
		}
	}
}
