// Package money provides a decimal amount type that carries an explicit
// "unavailable" state for values that could not be read as a finite number.
package money

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Placeholder is the display value for an unavailable amount.
const Placeholder = "—"

// Amount is a decimal number that may be unavailable. The zero value is
// unavailable, so a missing field never reads as 0.
type Amount struct {
	d     decimal.Decimal
	valid bool
}

// New wraps a decimal as an available amount.
func New(d decimal.Decimal) Amount {
	return Amount{d: d, valid: true}
}

// FromInt creates an available amount from an integer.
func FromInt(v int64) Amount {
	return New(decimal.NewFromInt(v))
}

// FromFloat creates an amount from a float64. NaN and infinities are unavailable.
func FromFloat(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unavailable()
	}
	return New(decimal.NewFromFloat(v))
}

// Unavailable returns the sentinel for a value that is not a finite number.
func Unavailable() Amount {
	return Amount{}
}

// groupedNumber matches "," thousands grouping such as "16,528.07".
var groupedNumber = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// Parse reads a numeric string. Surrounding whitespace and "," thousands
// grouping are tolerated; anything else that is not a number, including the
// empty string and a "," in any other position ("12,34"), yields the
// unavailable sentinel.
func Parse(s string) Amount {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		if !groupedNumber.MatchString(s) {
			return Unavailable()
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	if s == "" {
		return Unavailable()
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Unavailable()
	}
	return New(d)
}

// Coerce converts a number or numeric-looking text into an Amount.
func Coerce(v any) Amount {
	switch x := v.(type) {
	case nil:
		return Unavailable()
	case Amount:
		return x
	case decimal.Decimal:
		return New(x)
	case float64:
		return FromFloat(x)
	case float32:
		return FromFloat(float64(x))
	case int:
		return FromInt(int64(x))
	case int8:
		return FromInt(int64(x))
	case int16:
		return FromInt(int64(x))
	case int32:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x))
	case uint16:
		return FromInt(int64(x))
	case uint32:
		return FromInt(int64(x))
	case uint64:
		return fromUint(x)
	case json.Number:
		return Parse(string(x))
	case string:
		return Parse(x)
	case *string:
		if x == nil {
			return Unavailable()
		}
		return Parse(*x)
	default:
		return Unavailable()
	}
}

func fromUint(v uint64) Amount {
	return New(decimal.RequireFromString(strconv.FormatUint(v, 10)))
}

// IsAvailable reports whether the amount holds a finite number.
func (a Amount) IsAvailable() bool { return a.valid }

// Decimal returns the underlying value and whether it is available.
func (a Amount) Decimal() (decimal.Decimal, bool) { return a.d, a.valid }

// Float64 returns the value as a float64 and whether it is available.
func (a Amount) Float64() (float64, bool) {
	if !a.valid {
		return 0, false
	}
	f, _ := a.d.Float64()
	return f, true
}

// Int returns the value as an integer when it is available and whole.
func (a Amount) Int() (int64, bool) {
	if !a.valid || !a.d.Equal(a.d.Truncate(0)) {
		return 0, false
	}
	return a.d.IntPart(), true
}

// Add adds two amounts; the result is unavailable if either operand is.
func (a Amount) Add(other Amount) Amount {
	if !a.valid || !other.valid {
		return Unavailable()
	}
	return New(a.d.Add(other.d))
}

// Sub subtracts another amount.
func (a Amount) Sub(other Amount) Amount {
	if !a.valid || !other.valid {
		return Unavailable()
	}
	return New(a.d.Sub(other.d))
}

// Mul multiplies two amounts.
func (a Amount) Mul(other Amount) Amount {
	if !a.valid || !other.valid {
		return Unavailable()
	}
	return New(a.d.Mul(other.d))
}

// Div divides by another amount. Division by zero is unavailable.
func (a Amount) Div(other Amount) Amount {
	if !a.valid || !other.valid || other.d.IsZero() {
		return Unavailable()
	}
	return New(a.d.Div(other.d))
}

// Neg returns the negated amount.
func (a Amount) Neg() Amount {
	if !a.valid {
		return a
	}
	return New(a.d.Neg())
}

// Round rounds to cents.
func (a Amount) Round() Amount {
	if !a.valid {
		return a
	}
	return New(a.d.Round(2))
}

// Equal reports whether both amounts are available and numerically equal,
// or both are unavailable.
func (a Amount) Equal(other Amount) bool {
	if a.valid != other.valid {
		return false
	}
	return !a.valid || a.d.Equal(other.d)
}

// String returns the plain decimal representation, or Placeholder.
func (a Amount) String() string {
	if !a.valid {
		return Placeholder
	}
	return a.d.String()
}

// Sum adds amounts; any unavailable input makes the sum unavailable.
func Sum(amounts ...Amount) Amount {
	total := FromInt(0)
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// MarshalJSON writes a JSON number, or null when unavailable.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return []byte("null"), nil
	}
	return []byte(a.d.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string. Any other value
// decodes to the unavailable sentinel rather than failing the document.
func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*a = Unavailable()
			return nil
		}
		*a = Parse(s)
		return nil
	}
	if raw == "null" {
		*a = Unavailable()
		return nil
	}
	*a = Parse(raw)
	return nil
}

// MarshalYAML writes a plain scalar, or null when unavailable.
func (a Amount) MarshalYAML() (any, error) {
	if !a.valid {
		return nil, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: a.d.String()}, nil
}

// UnmarshalYAML accepts numeric scalars, quoted or not.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		*a = Unavailable()
		return nil
	}
	*a = Parse(node.Value)
	return nil
}
