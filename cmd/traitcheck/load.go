// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"go/types"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/tools/go/packages"
)

// loadPackages type-checks the packages matched by patterns. Test variants
// replace their base package when tests are included.
func loadPackages(dir string, tests bool, patterns ...string) ([]*types.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedImports |
			packages.NeedDeps,
		Dir:   dir,
		Env:   append(os.Environ(), "GOWORK=off"),
		Tests: tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	var errs []string
	byPath := make(map[string]*packages.Package)
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", pkg.PkgPath, e.Msg))
		}
		if strings.HasSuffix(pkg.ID, ".test") || pkg.Types == nil {
			continue
		}
		if prev, ok := byPath[pkg.PkgPath]; ok && prev.ID != prev.PkgPath {
			continue
		}
		byPath[pkg.PkgPath] = pkg
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors:\n  %s", strings.Join(errs, "\n  "))
	}

	out := make([]*types.Package, 0, len(byPath))
	for _, pkg := range byPath {
		logrus.Debugf("loaded %s (%s)", pkg.PkgPath, pkg.ID)
		out = append(out, pkg.Types)
	}
	slices.SortFunc(out, func(a, b *types.Package) int { return strings.Compare(a.Path(), b.Path()) })
	return out, nil
}

// namedTypes returns the non-generic defined types declared at package
// scope, in name order.
func namedTypes(pkg *types.Package) []*types.TypeName {
	scope := pkg.Scope()
	var out []*types.TypeName
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		if named, ok := tn.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
			continue
		}
		out = append(out, tn)
	}
	return out
}

// lookupType finds name in the first package that declares it.
func lookupType(pkgs []*types.Package, name string) (*types.TypeName, error) {
	for _, pkg := range pkgs {
		if tn, ok := pkg.Scope().Lookup(name).(*types.TypeName); ok {
			return tn, nil
		}
	}
	return nil, fmt.Errorf("type %s not found", name)
}
