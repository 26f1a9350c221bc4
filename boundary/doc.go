// Package boundary is the Go-native form of the documented C ABI surface
// (original_source/include/fst.h): opaque uint32 handles over package
// handle, dispatching to package ops and the fst/frozen/stringfst/textio/
// binio data-model packages. The cgo wrappers that would actually expose
// this surface across a language boundary are themselves out of scope
// (spec.md §1); this package stops at the Go-native call signatures and
// status-code contract fst.h documents.
//
// The documented FstArc carries a plain `double weight` with no
// discriminator, so this surface is instantiated over a single concrete
// semiring — TropicalWeight — rather than being generic; callers who need
// the log semiring use package ops directly.
package boundary
