package partition

import "fmt"

// Scheme names a partitioning strategy.
type Scheme string

const (
	// SchemeHoare selects Hoare's two-cursor scheme.
	SchemeHoare Scheme = "hoare"

	// SchemeLomuto selects Lomuto's single-walk scheme.
	SchemeLomuto Scheme = "lomuto"
)

// Func is the shape shared by HoareFunc and LomutoFunc.
type Func[T any] func(s []T, lo, hi, pivotIndex int, cmp func(a, b T) int) int

// ByScheme returns the comparator-based partition function for scheme, or
// false if scheme is unknown.
func ByScheme[T any](scheme Scheme) (Func[T], bool) {
	switch scheme {
	case SchemeHoare:
		return HoareFunc[T], true
	case SchemeLomuto:
		return LomutoFunc[T], true
	default:
		return nil, false
	}
}

// checkRange panics unless 0 <= lo <= pivotIndex <= hi < n.
func checkRange(n, lo, hi, pivotIndex int) {
	if lo < 0 || hi >= n || lo > hi {
		panic(fmt.Sprintf("partition: range [%d, %d] invalid for length %d", lo, hi, n))
	}
	if pivotIndex < lo || pivotIndex > hi {
		panic(fmt.Sprintf("partition: pivot index %d outside [%d, %d]", pivotIndex, lo, hi))
	}
}
