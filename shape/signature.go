// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import (
	"go/types"
	"strings"
)

// Matcher admits one parameter or result type of a candidate call.
// For parameters Match receives the formal parameter type; for results it
// receives the type the callee yields.
type Matcher interface {
	Match(t types.Type) bool
	String() string
}

// Signature is an ordered parameter list plus a result constraint.
// A nil Results admits any result list, including none.
// A non-nil empty Results requires the callee to yield nothing.
type Signature struct {
	Params  []Matcher
	Results []Matcher
}

// Sig builds a Signature from concrete argument types.
// A nil result leaves the result unconstrained.
func Sig(result types.Type, params ...types.Type) Signature {
	s := Signature{Params: make([]Matcher, len(params))}
	for i, p := range params {
		s.Params[i] = Arg(p)
	}
	if result != nil {
		s.Results = []Matcher{Yield(result)}
	}
	return s
}

// String renders s as a call shape, e.g. "(mutable-buffers) (count, error)".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	switch len(s.Results) {
	case 0:
	case 1:
		b.WriteByte(' ')
		b.WriteString(s.Results[0].String())
	default:
		b.WriteString(" (")
		for i, r := range s.Results {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(r.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}

// admits reports whether call accepts the parameters of s and yields
// results admitted by s.
func (s Signature) admits(call *types.Signature) bool {
	params := call.Params()
	n := params.Len()
	variadic := call.Variadic()
	if variadic {
		if len(s.Params) < n-1 {
			return false
		}
	} else if len(s.Params) != n {
		return false
	}
	for i, m := range s.Params {
		formal := params.At(min(i, n-1)).Type()
		if variadic && i >= n-1 {
			slice, ok := formal.Underlying().(*types.Slice)
			if !ok {
				return false
			}
			formal = slice.Elem()
		}
		if !m.Match(formal) {
			return false
		}
	}
	if s.Results == nil {
		return true
	}
	results := call.Results()
	if results.Len() != len(s.Results) {
		return false
	}
	for i, m := range s.Results {
		if !m.Match(results.At(i).Type()) {
			return false
		}
	}
	return true
}
