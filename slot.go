// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trait

// ErrorSlot receives the failure of slot-style operations.
// It keeps the first error reported until Reset; operations given a slot
// that already holds an error do no work and return 0.
//
// An ErrorSlot is not safe for concurrent use.
type ErrorSlot struct {
	err error
}

// SetError records err unless the slot already holds an error.
// A nil err is ignored.
func (s *ErrorSlot) SetError(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the recorded error.
func (s *ErrorSlot) Err() error { return s.err }

// Failed reports whether an error has been recorded.
func (s *ErrorSlot) Failed() bool { return s.err != nil }

// Reset clears the slot.
func (s *ErrorSlot) Reset() { s.err = nil }
