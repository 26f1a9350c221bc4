package frozen

// Byte layout constants for the native container. Changing any of these
// changes the on-disk format; see package binio for the container that
// persists this layout to an io.Writer/io.Reader.
const (
	// Magic is the 4-byte little-endian magic number identifying the
	// native container: the bytes on disk are '!' 'T' 'S' 'F', which read
	// as a little-endian u32 give the value below.
	Magic uint32 = 0x46535421
	// Version is the only wire format version this package emits/accepts.
	Version uint16 = 1

	headerSize = 24 // magic(4)+version(2)+weight_type(1)+flags(1)+num_states(4)+num_arcs(4)+start_state(4)+padding(4)
	stateSize  = 16 // arc_offset(4)+num_arcs(4)+final_weight(8)
	arcSize    = 20 // ilabel(4)+olabel(4)+weight(8)+nextstate(4)
)

// NoState is the u32 sentinel meaning "no state" on the wire, matching
// fst.NoStateId's bit pattern (both are math.MaxUint32).
const NoState uint32 = 0xFFFFFFFF
