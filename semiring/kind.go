package semiring

// Kind discriminates concrete weight types for the binary container header
// and the frozen FST's weight-type field. It is a single byte
// on the wire.
type Kind uint8

const (
	// KindTropical selects TropicalWeight: ⊕=min, ⊗=+, 0=+Inf, 1=0.
	KindTropical Kind = 0
	// KindLog selects LogWeight: ⊕=-log(e^-a+e^-b), ⊗=+, 0=+Inf, 1=0.
	KindLog Kind = 1
)

// String renders the discriminator for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case KindTropical:
		return "tropical"
	case KindLog:
		return "log"
	default:
		return "unknown"
	}
}
