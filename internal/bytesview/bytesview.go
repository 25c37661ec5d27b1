// Package bytesview aliases byte slices as strings without copying.
//
// The borrowed element family references text living in an externally
// owned buffer. Its accessors return string views of those bytes rather
// than copies, which is only sound because the family is read-only: a
// caller must never mutate a slice after handing it to a borrowed
// constructor. Keeping the unsafe conversion here, in one place, keeps
// that contract auditable.
package bytesview

import "unsafe"

// String returns s aliasing the bytes of b. The result shares b's backing
// array, so the array stays reachable for as long as the string does; b
// must not be mutated afterwards.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
