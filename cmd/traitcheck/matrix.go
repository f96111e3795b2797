// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"go/types"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"code.hybscloud.com/trait/shape"
)

var (
	conceptNames []string
	withPreds    bool
)

func newMatrixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix [package]...",
		Short: "Print concept results for every named type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recv, err := shape.ParseReceiver(receiver)
			if err != nil {
				return err
			}
			checks, err := resolveChecks(conceptNames, withPreds)
			if err != nil {
				return err
			}
			pkgs, err := loadPackages(workDir, includeTests, args...)
			if err != nil {
				return err
			}
			var names []*types.TypeName
			for _, pkg := range pkgs {
				names = append(names, namedTypes(pkg)...)
			}
			return writeMatrix(cmd.OutOrStdout(), names, checks, recv)
		},
	}
	cmd.Flags().StringSliceVarP(&conceptNames, "concept", "c", nil, "concepts to evaluate (default all)")
	cmd.Flags().BoolVarP(&withPreds, "predicates", "p", false, "include member predicates")
	return cmd
}

// resolveChecks maps names to built-in checks. No names selects every
// concept, and every predicate too when preds is set.
func resolveChecks(names []string, preds bool) ([]shape.Check, error) {
	if len(names) == 0 {
		if preds {
			return shape.Checks(), nil
		}
		return shape.Concepts(), nil
	}
	out := make([]shape.Check, 0, len(names))
	for _, name := range names {
		c, ok := shape.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown concept %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}

// writeMatrix prints one row per type and one column per check.
func writeMatrix(w io.Writer, names []*types.TypeName, checks []shape.Check, recv shape.Receiver) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := make([]string, 0, len(checks)+1)
	header = append(header, "TYPE")
	for _, c := range checks {
		header = append(header, c.Name())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, tn := range names {
		row := make([]string, 0, len(checks)+1)
		row = append(row, qualifiedName(tn))
		for _, c := range checks {
			r := c.Eval(tn.Type(), recv)
			if r.OK {
				row = append(row, "yes")
				continue
			}
			logrus.Debug(r.String())
			row = append(row, "no")
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func qualifiedName(tn *types.TypeName) string {
	if tn.Pkg() == nil {
		return tn.Name()
	}
	return tn.Pkg().Name() + "." + tn.Name()
}
