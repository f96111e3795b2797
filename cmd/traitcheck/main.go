// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command traitcheck evaluates stream concepts against the named types of
// Go packages.
//
//	traitcheck matrix ./...
//	traitcheck eval ./net Conn AsyncStream SyncStream
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"code.hybscloud.com/trait/shape"
)

var (
	verbose      bool
	receiver     string
	includeTests bool
	workDir      string
)

func main() {
	command := &cobra.Command{
		Use:          "traitcheck",
		Short:        "Evaluate stream concepts against Go types",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	command.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log package loading and evaluation")
	command.PersistentFlags().StringVarP(&receiver, "receiver", "r", shape.Addressable.String(), "receiver: addressable or value")
	command.PersistentFlags().BoolVar(&includeTests, "tests", false, "include test files")
	command.PersistentFlags().StringVarP(&workDir, "dir", "C", "", "directory to resolve package patterns in")
	command.AddCommand(newMatrixCommand(), newEvalCommand())
	if err := command.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
