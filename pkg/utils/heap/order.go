package heap

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Order selects which element sits at the root.
type Order uint8

const (
	MaxOrder Order = iota
	MinOrder
)

func (o Order) String() string {
	switch o {
	case MaxOrder:
		return "max"
	case MinOrder:
		return "min"
	default:
		return "unknown"
	}
}

// ParseOrder maps "max" or "min" (any case) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return MaxOrder, nil
	case "min":
		return MinOrder, nil
	default:
		return 0, ErrInvalidOrder
	}
}

// comparator reports whether a must sit above b.
func comparator[T constraints.Ordered](o Order) (func(a, b T) bool, error) {
	switch o {
	case MaxOrder:
		return func(a, b T) bool { return a > b }, nil
	case MinOrder:
		return func(a, b T) bool { return a < b }, nil
	default:
		return nil, ErrInvalidOrder
	}
}
