package hepnos

import "fmt"

// ObjectKind is the kind of HEPnOS object a database stores.
type ObjectKind string

const (
	KindDataset ObjectKind = "dataset"
	KindRun     ObjectKind = "run"
	KindSubrun  ObjectKind = "subrun"
	KindEvent   ObjectKind = "event"
	KindProduct ObjectKind = "product"
)

// ObjectKinds returns all kinds in kind-major order.
func ObjectKinds() []ObjectKind {
	return []ObjectKind{KindDataset, KindRun, KindSubrun, KindEvent, KindProduct}
}

// ParseObjectKind validates s as an object kind.
func ParseObjectKind(s string) (ObjectKind, error) {
	k := ObjectKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q should be dataset, run, subrun, event, or product", ErrInvalidObjectKind, s)
	}
	return k, nil
}

// Valid reports whether k is one of the recognized kinds.
func (k ObjectKind) Valid() bool {
	switch k {
	case KindDataset, KindRun, KindSubrun, KindEvent, KindProduct:
		return true
	}
	return false
}

// DefaultBackend is the storage discipline used when no database type is requested.
// Datasets and products map keys to blobs; runs, subruns and events are
// collections of identifiers.
func (k ObjectKind) DefaultBackend() string {
	switch k {
	case KindDataset, KindProduct:
		return "map"
	default:
		return "set"
	}
}

// DatabaseName returns the canonical name of the index-th database of kind k.
func (k ObjectKind) DatabaseName(index int) string {
	return fmt.Sprintf("hepnos-%ss-%d", k, index)
}
