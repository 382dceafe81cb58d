package sequence

import "fmt"

// Kind identifies which model explained a prefix.
type Kind int

const (
	KindAffine Kind = iota
	KindLookup
)

func (k Kind) String() string {
	switch k {
	case KindAffine:
		return "affine"
	case KindLookup:
		return "lookup"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "affine":
		*k = KindAffine
	case "lookup":
		*k = KindLookup
	default:
		return fmt.Errorf("unknown model kind %q", b)
	}
	return nil
}

// Model generates the continuation of a prefix. It is implemented only by
// Affine and Candidate.
type Model interface {
	Kind() Kind
	// Generate returns the terms starting at the beginning of prefix and
	// stopping before the first term >= end.
	Generate(prefix []int64, end int64) ([]int64, error)

	model()
}

func (Affine) model()    {}
func (Candidate) model() {}
