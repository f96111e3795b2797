// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

// MutableBuffers is a sequence of writable byte buffers.
// Reads scatter into the buffers in order.
type MutableBuffers [][]byte

// Len returns the total number of bytes in b.
func (b MutableBuffers) Len() int {
	n := 0
	for _, p := range b {
		n += len(p)
	}
	return n
}

// Const returns a read-only view of b.
func (b MutableBuffers) Const() ConstBuffers { return ConstBuffers(b) }

// ConstBuffers is a sequence of byte buffers the callee only reads.
// Writes gather from the buffers in order.
type ConstBuffers [][]byte

// ReadOnly marks b as a read-only buffer sequence.
func (ConstBuffers) ReadOnly() {}

// Len returns the total number of bytes in b.
func (b ConstBuffers) Len() int {
	n := 0
	for _, p := range b {
		n += len(p)
	}
	return n
}

// CopyBuffers copies from src into dst and returns the number of bytes
// copied, the smaller of dst.Len() and src.Len().
func CopyBuffers(dst MutableBuffers, src ConstBuffers) int {
	n := 0
	i, j := 0, 0
	var d, s []byte
	for {
		for len(d) == 0 && i < len(dst) {
			d = dst[i]
			i++
		}
		for len(s) == 0 && j < len(src) {
			s = src[j]
			j++
		}
		if len(d) == 0 || len(s) == 0 {
			return n
		}
		c := copy(d, s)
		d, s = d[c:], s[c:]
		n += c
	}
}

// flatten copies b into a single new slice.
func flatten(b ConstBuffers) []byte {
	out := make([]byte, 0, b.Len())
	for _, p := range b {
		out = append(out, p...)
	}
	return out
}

// scatter copies p into b and returns the number of bytes copied.
func scatter(b MutableBuffers, p []byte) int {
	return CopyBuffers(b, ConstBuffers{p})
}

// advanceMutable drops the first n bytes of b.
func advanceMutable(b MutableBuffers, n int) MutableBuffers {
	for len(b) > 0 && n >= len(b[0]) {
		n -= len(b[0])
		b = b[1:]
	}
	if n > 0 && len(b) > 0 {
		out := make(MutableBuffers, len(b))
		copy(out, b)
		out[0] = out[0][n:]
		return out
	}
	return b
}

// advanceConst drops the first n bytes of b.
func advanceConst(b ConstBuffers, n int) ConstBuffers {
	return ConstBuffers(advanceMutable(MutableBuffers(b), n))
}
