// Package borrowed implements the element contracts over text borrowed
// from an externally owned buffer.
//
// # Overview
//
// A producer (typically a decoder) that already holds document bytes in
// memory can build an element tree here without copying any text: symbol
// token text, import source table names and string payloads are all
// sub-slices of the producer's buffer. Only the structural containers
// (annotation lists, sequence children, struct field slices) are owned by
// the tree itself.
//
// # Lifetime
//
// Every borrowed value retains the byte slices it was built from, so the
// garbage collector keeps the backing buffer alive for at least as long
// as any view into it. Use after the buffer is gone is therefore not
// expressible. The flip side is the usual pinning caveat: a small token
// borrowed from a large buffer keeps the whole buffer reachable; copy
// into an owned tree when that matters.
//
// Text accessors alias the buffer directly (no copy), so the buffer must
// not be mutated once views into it exist.
//
// # Construction
//
// Trees are built bottom-up from values. Construction is total and
// performs no validation: unresolved symbol tokens, tokens with no facets
// at all, and duplicate struct field names are all accepted and preserved
// exactly as given. Enforcing anything stronger is the producer's job.
//
//	buf := []byte("annpayload")
//	e := borrowed.New(
//		borrowed.FromString(buf[3:]),
//		borrowed.TokenFromText(buf[:3]),
//	)
//
// Values and elements are immutable once built; the With* methods on
// SymbolToken configure a token during construction and must not be used
// after the token is shared.
//
// # Related packages
//
//   - github.com/iondoc/iondoc/element - the contracts this satisfies
package borrowed
