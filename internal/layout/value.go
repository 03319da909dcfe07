package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto     Unit = iota // Size determined by content
	UnitFixed                // Absolute terminal cells
	UnitPercent              // Percentage of parent's content region
	UnitFraction             // Share of space left over after siblings
)

// Value represents a dimension that can be fixed, percentage, fractional or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Fraction returns a Value that takes f shares of the remaining space.
func Fraction(f float64) Value {
	return Value{Amount: f, Unit: UnitFraction}
}

// Resolve computes the actual integer value given available space.
// For UnitAuto and UnitFraction, returns the fallback value.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsFraction returns true if this value takes a share of remaining space.
func (v Value) IsFraction() bool {
	return v.Unit == UnitFraction
}

// String formats the value the way ParseValue reads it.
func (v Value) String() string {
	amount := strconv.FormatFloat(v.Amount, 'f', -1, 64)
	switch v.Unit {
	case UnitFixed:
		return amount
	case UnitPercent:
		return amount + "%"
	case UnitFraction:
		return amount + "fr"
	default:
		return "auto"
	}
}

// ParseValue reads "auto", "N", "N%" or "Nfr".
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "auto" {
		return Auto(), nil
	}

	unit := UnitFixed
	num := s
	switch {
	case strings.HasSuffix(s, "%"):
		unit, num = UnitPercent, strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "fr"):
		unit, num = UnitFraction, strings.TrimSuffix(s, "fr")
	}

	amount, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid dimension %q", s)
	}
	if amount < 0 {
		return Value{}, fmt.Errorf("negative dimension %q", s)
	}
	if unit == UnitFixed && amount != float64(int(amount)) {
		return Value{}, fmt.Errorf("fixed dimension must be whole cells: %q", s)
	}
	return Value{Amount: amount, Unit: unit}, nil
}
