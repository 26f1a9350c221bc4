package frozen

import "errors"

// Sentinel errors for Frozen FST construction from bytes.
var (
	// ErrInvalidMagic indicates the buffer's magic number did not match.
	ErrInvalidMagic = errors.New("frozen: invalid magic")
	// ErrUnsupportedVersion indicates the buffer's version field is not
	// one this package can decode.
	ErrUnsupportedVersion = errors.New("frozen: unsupported version")
	// ErrWeightTypeMismatch indicates the buffer's weight-type
	// discriminator does not match the caller's requested semiring.
	ErrWeightTypeMismatch = errors.New("frozen: weight type mismatch")
	// ErrInvalidFormat indicates a structural inconsistency: a declared
	// length that does not match the buffer's actual size, an out-of-range
	// start state, or an arc_offset sequence that isn't monotonic.
	ErrInvalidFormat = errors.New("frozen: invalid format")
	// ErrUnexpectedEOF indicates the buffer is shorter than its header
	// declares.
	ErrUnexpectedEOF = errors.New("frozen: unexpected end of buffer")
)
