package binio

import (
	"errors"
	"io"
	"os"

	"github.com/ontypehq/libfst/frozen"
	"github.com/ontypehq/libfst/semiring"
)

// ErrShortWrite indicates fewer bytes were written than the snapshot's
// length, without the underlying io.Writer reporting an error.
var ErrShortWrite = errors.New("binio: short write")

// Write serializes fz's exact wire bytes to w.
func Write[W semiring.Weight[W]](w io.Writer, fz *frozen.FrozenFst[W]) error {
	buf := fz.Bytes()
	n, err := w.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return ErrShortWrite
	}
	return nil
}

// Read reads all of r and parses it as a native container for semiring
// kind want, returning the resulting Frozen FST.
func Read[W semiring.Weight[W]](r io.Reader, want semiring.Kind) (*frozen.FrozenFst[W], error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return frozen.FromBytes[W](buf, want)
}

// SaveFile writes fz to path, truncating/creating it as needed (mirrors
// fst_save in the documented boundary surface).
func SaveFile[W semiring.Weight[W]](path string, fz *frozen.FrozenFst[W]) error {
	return os.WriteFile(path, fz.Bytes(), 0o644)
}

// LoadFile reads path and parses it as a native container for semiring
// kind want (mirrors fst_load in the documented boundary surface).
func LoadFile[W semiring.Weight[W]](path string, want semiring.Kind) (*frozen.FrozenFst[W], error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return frozen.FromBytes[W](buf, want)
}
