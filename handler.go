// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

import "code.hybscloud.com/atomix"

// once wraps h so that a second invocation panics.
func once(h Handler) Handler {
	if h == nil {
		panic("trait: nil completion handler")
	}
	var calls atomix.Uint32
	return func(n int, err error) {
		if calls.Add(1) != 1 {
			panic("trait: completion handler invoked twice")
		}
		h(n, err)
	}
}
