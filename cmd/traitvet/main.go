// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command traitvet runs the traitcheck analyzer, standalone or as
// go vet -vettool=$(which traitvet).
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"code.hybscloud.com/trait/traitcheck"
)

func main() {
	singlechecker.Main(traitcheck.Analyzer)
}
