package boundary

import (
	"github.com/ontypehq/libfst/handle"
	"github.com/ontypehq/libfst/stringfst"
)

// CompileString returns a new handle to the linear-chain acceptor for s.
func CompileString(s string) handle.Handle {
	return mutable.Insert(stringfst.Compile[Weight](s))
}

// CompileStringIO returns a new handle to the linear-chain transducer
// mapping in to out, or StatusInvalidArg if the two strings differ in byte
// length.
func CompileStringIO(in, out string) (handle.Handle, Status) {
	m, err := stringfst.CompileIO[Weight](in, out)
	if err != nil {
		return handle.Invalid, StatusInvalidArg
	}
	return mutable.Insert(m), StatusOK
}

// PrintString reads h's FST as a linear input-label chain and returns the
// decoded string.
func PrintString(h handle.Handle) (string, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return "", StatusInvalidArg
	}
	s, perr := stringfst.PrintString[Weight](m)
	if perr != nil {
		return "", StatusInvalidState
	}
	return s, StatusOK
}

// PrintOutputString reads h's FST as a linear output-label chain and
// returns the decoded string.
func PrintOutputString(h handle.Handle) (string, Status) {
	m, err := mutable.Get(h)
	if err != nil {
		return "", StatusInvalidArg
	}
	s, perr := stringfst.PrintOutputString[Weight](m)
	if perr != nil {
		return "", StatusInvalidState
	}
	return s, StatusOK
}
