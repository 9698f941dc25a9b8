package rangesum

// Number is the set of built-in types whose + and zero value form a sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Ops describes how elements of T are summed.
//
// Zero must return the additive identity and Add must be associative and
// commutative; SumRange combines slots in tree order, not element order.
type Ops[T any] struct {
	Zero func() T
	Add  func(a, b T) T
}

// NumberOps returns the Ops of a built-in numeric type.
func NumberOps[T Number]() Ops[T] {
	return Ops[T]{
		Zero: func() T { return 0 },
		Add:  func(a, b T) T { return a + b },
	}
}
