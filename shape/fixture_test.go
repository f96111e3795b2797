// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtureSrc declares the candidate types the predicates are checked against.
const fixtureSrc = `package fixture

type udt1 struct{}

func (udt1) Invoke(int) {}

type udt2 struct{}

func (udt2) Invoke(int) int { return 0 }

type udt3 struct{}

func (*udt3) Invoke(int) int { return 0 }

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type unique struct {
	_ noCopy
	p *int
}

type udt4 struct{}

func (udt4) Invoke(unique) {}

type owner struct{}

func (owner) Invoke(p *unique) {}

type H struct{}

func (*H) Invoke(int) {}

type adder func(a, b int) int

type cb func(int)

type cbErr func(n int) error

type completer interface{ Invoke(n int) }

type errCompleter interface{ Invoke(err error) }

type logf func(format string, args ...any)

type Executor interface{ Execute(fn func()) }

type strand struct{}

func (*strand) Execute(fn func()) { fn() }

type MutableBuffers [][]byte

type ConstBuffers [][]byte

func (ConstBuffers) ReadOnly() {}

type ErrorSlot struct{ err error }

func (s *ErrorSlot) SetError(err error) {
	if s.err == nil {
		s.err = err
	}
}

type socket struct{}

func (*socket) Executor() Executor                                  { return nil }
func (*socket) AsyncReadSome(b MutableBuffers, h func(int, error))  {}
func (*socket) AsyncWriteSome(b ConstBuffers, h func(int, error))   {}
func (*socket) ReadSome(b MutableBuffers) (int, error)              { return 0, nil }
func (*socket) ReadSomeSlot(b MutableBuffers, ec *ErrorSlot) int    { return 0 }
func (*socket) WriteSome(b ConstBuffers) (int, error)               { return 0, nil }
func (*socket) WriteSomeSlot(b ConstBuffers, ec *ErrorSlot) int     { return 0 }

type notAStream struct{}

func (notAStream) IOService() {}

type readOnlyAsync struct{}

func (readOnlyAsync) Executor() Executor                              { return nil }
func (readOnlyAsync) AsyncReadSome(b [][]byte, h func(n int, err error)) {}

type staleExecutor struct{}

func (staleExecutor) Executor()                                           {}
func (staleExecutor) AsyncReadSome(b MutableBuffers, h func(int, error)) {}

type strandOnly struct{}

func (strandOnly) Executor() strand { return strand{} }

type wrongHandler struct{}

func (wrongHandler) Executor() Executor                           { return nil }
func (wrongHandler) AsyncReadSome(b MutableBuffers, h func(error)) {}

type readIntoConst struct{}

func (readIntoConst) Executor() Executor                                { return nil }
func (readIntoConst) AsyncReadSome(b ConstBuffers, h func(int, error)) {}

type writeFromMutable struct{}

func (writeFromMutable) Executor() Executor                                   { return nil }
func (writeFromMutable) AsyncWriteSome(b MutableBuffers, h func(int, error)) {}

type returnOnly struct{}

func (returnOnly) ReadSome(b MutableBuffers) (int, error) { return 0, nil }
func (returnOnly) WriteSome(b ConstBuffers) (int, error)  { return 0, nil }

type plainSync struct{}

func (plainSync) ReadSome(b []byte) (int, error)           { return 0, nil }
func (plainSync) ReadSomeSlot(b []byte, ec *error) int     { return 0 }
func (plainSync) WriteSome(s string) (int, error)          { return 0, nil }
func (plainSync) WriteSomeSlot(s string, ec *error) int    { return 0 }

type extraArg struct{}

func (extraArg) ReadSome(b MutableBuffers, off int) (int, error)      { return 0, nil }
func (extraArg) ReadSomeSlot(b MutableBuffers, ec *ErrorSlot) int     { return 0 }
`

type fixture struct {
	pkg *types.Package
}

func loadFixture(t *testing.T) fixture {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "fixture.go", fixtureSrc, parser.SkipObjectResolution)
	require.NoError(t, err)
	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("fixture", fset, []*ast.File{f}, nil)
	require.NoError(t, err)
	return fixture{pkg: pkg}
}

func (f fixture) typ(t *testing.T, name string) types.Type {
	t.Helper()
	obj := f.pkg.Scope().Lookup(name)
	require.NotNil(t, obj, "fixture type %s", name)
	return obj.Type()
}

func (f fixture) ptr(t *testing.T, name string) types.Type {
	return types.NewPointer(f.typ(t, name))
}

var (
	tInt    = types.Typ[types.Int]
	tString = types.Typ[types.String]
	tAny    = types.Universe.Lookup("any").Type()
)
