package rangesum

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DecimalOps sums decimal.Decimal values exactly.
var DecimalOps = Ops[decimal.Decimal]{
	Zero: func() decimal.Decimal { return decimal.Zero },
	Add:  func(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) },
}

// NewDecimal builds a Tree of exact decimal values, suited to monetary
// amounts where float rounding is unacceptable.
func NewDecimal(values []decimal.Decimal) *Tree[decimal.Decimal] {
	return NewWith(values, DecimalOps)
}

// ParseDecimals converts decimal strings such as "12.50" into values for
// NewDecimal. The first malformed entry is reported with its index.
func ParseDecimals(raw []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(raw))
	for i, s := range raw {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("rangesum: value %d (%q): %w", i, s, err)
		}
		out[i] = d
	}

	return out, nil
}
