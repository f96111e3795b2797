// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"go/types"
	"io"

	"github.com/spf13/cobra"

	"code.hybscloud.com/trait/shape"
)

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <package> <type> [concept]...",
		Short: "Evaluate concepts for one type",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recv, err := shape.ParseReceiver(receiver)
			if err != nil {
				return err
			}
			checks, err := resolveChecks(args[2:], false)
			if err != nil {
				return err
			}
			pkgs, err := loadPackages(workDir, includeTests, args[0])
			if err != nil {
				return err
			}
			tn, err := lookupType(pkgs, args[1])
			if err != nil {
				return err
			}
			return evaluate(cmd.OutOrStdout(), tn, checks, recv)
		},
	}
}

// evaluate prints one line per check and fails when any check fails.
func evaluate(w io.Writer, tn *types.TypeName, checks []shape.Check, recv shape.Receiver) error {
	failed := 0
	for _, c := range checks {
		r := c.Eval(tn.Type(), recv)
		if !r.OK {
			failed++
		}
		fmt.Fprintln(w, r.String())
	}
	if failed > 0 {
		return fmt.Errorf("%s: %d of %d concepts not satisfied", qualifiedName(tn), failed, len(checks))
	}
	return nil
}
