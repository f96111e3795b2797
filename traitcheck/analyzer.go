// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package traitcheck defines an analyzer that checks stream concepts
// declared on type declarations.
//
// A type opts in with a directive in its doc comment:
//
//	//trait:require AsyncStream SyncStream
//	type Conn struct{ ... }
//
//	//trait:reject value AsyncWriteStream
//	type Reader struct{ ... }
//
// require reports every listed concept the type does not satisfy; reject
// reports every listed concept it does satisfy. An optional leading
// "value" or "addressable" selects the receiver; the -receiver flag sets
// the default. Any name accepted by [shape.Lookup] may be listed.
package traitcheck

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"code.hybscloud.com/trait/shape"
)

const doc = `check stream concepts declared with //trait: directives

Type declarations annotated with //trait:require or //trait:reject are
evaluated against the named concepts. A mismatch is reported at the type
name with the failed predicate chain.`

// Analyzer checks //trait: directives.
var Analyzer = &analysis.Analyzer{
	Name:     "traitcheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var receiverFlag = shape.Addressable.String()

func init() {
	Analyzer.Flags.StringVar(&receiverFlag, "receiver", receiverFlag, "default receiver for directives: addressable or value")
}

const directivePrefix = "//trait:"

type directive struct {
	want  bool
	recv  shape.Receiver
	names []string
	bad   string
}

func run(pass *analysis.Pass) (any, error) {
	recv, err := shape.ParseReceiver(receiverFlag)
	if err != nil {
		return nil, err
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.GenDecl)(nil)}, func(n ast.Node) {
		gd := n.(*ast.GenDecl)
		if gd.Tok != token.TYPE {
			return
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			cg := ts.Doc
			if cg == nil && len(gd.Specs) == 1 {
				cg = gd.Doc
			}
			for _, d := range parseDirectives(cg, recv) {
				checkType(pass, ts, d)
			}
		}
	})
	return nil, nil
}

func checkType(pass *analysis.Pass, ts *ast.TypeSpec, d directive) {
	if d.bad != "" {
		pass.Reportf(ts.Name.Pos(), "%s", d.bad)
		return
	}
	obj, ok := pass.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return
	}
	if ts.TypeParams != nil {
		pass.Reportf(ts.Name.Pos(), "%s: generic types are not checked", obj.Name())
		return
	}
	for _, name := range d.names {
		c, ok := shape.Lookup(name)
		if !ok {
			pass.Reportf(ts.Name.Pos(), "unknown concept %q", name)
			continue
		}
		r := c.Eval(obj.Type(), d.recv)
		switch {
		case d.want && !r.OK:
			pass.Reportf(ts.Name.Pos(), "%s", r)
		case !d.want && r.OK:
			pass.Reportf(ts.Name.Pos(), "%s unexpectedly satisfies %s", shape.TypeString(r.Type), r.Check)
		}
	}
}

// parseDirectives extracts //trait: directives from cg. Directive lines
// are kept out of CommentGroup.Text, so the raw comments are scanned.
func parseDirectives(cg *ast.CommentGroup, recv shape.Receiver) []directive {
	if cg == nil {
		return nil
	}
	var out []directive
	for _, c := range cg.List {
		text, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		verb, rest, _ := strings.Cut(text, " ")
		d := directive{recv: recv}
		switch verb {
		case "require":
			d.want = true
		case "reject":
		default:
			d.bad = "unknown directive " + directivePrefix + verb
			out = append(out, d)
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) > 0 {
			if r, err := shape.ParseReceiver(fields[0]); err == nil {
				d.recv = r
				fields = fields[1:]
			}
		}
		if len(fields) == 0 {
			d.bad = directivePrefix + verb + " lists no concepts"
		}
		d.names = fields
		out = append(out, d)
	}
	return out
}
