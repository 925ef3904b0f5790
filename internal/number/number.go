package number

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
)

// ToFloat64 converts supported numeric values to float64.
func ToFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case int:
		return float64(current), true
	case int8:
		return float64(current), true
	case int16:
		return float64(current), true
	case int32:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint:
		return float64(current), true
	case uint8:
		return float64(current), true
	case uint16:
		return float64(current), true
	case uint32:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float32:
		return float64(current), true
	case float64:
		return current, true
	case json.Number:
		parsed, err := current.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// IsNumber reports whether value is one of the numeric types ToFloat64 accepts.
func IsNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	default:
		return false
	}
}

// Equal compares two numeric values by magnitude, so 1, 1.0 and
// json.Number("1") are equal. Integers compare exactly at any size.
// Non-numeric operands are never equal.
func Equal(a, b any) bool {
	left, leftInt := toBigInt(a)
	right, rightInt := toBigInt(b)
	switch {
	case leftInt && rightInt:
		return left.Cmp(right) == 0
	case leftInt:
		return equalIntFloat(left, b)
	case rightInt:
		return equalIntFloat(right, a)
	}

	lf, lok := ToFloat64(a)
	rf, rok := ToFloat64(b)
	if lok && rok {
		return lf == rf
	}

	// out of float64 range: only identical literals match
	ln, lnum := a.(json.Number)
	rn, rnum := b.(json.Number)
	return !lok && !rok && lnum && rnum && ln == rn
}

func equalIntFloat(i *big.Int, other any) bool {
	f, ok := ToFloat64(other)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return new(big.Float).SetInt(i).Cmp(big.NewFloat(f)) == 0
}

// toBigInt returns value as an exact integer when it is an integer type or
// a json.Number holding an integer literal.
func toBigInt(value any) (*big.Int, bool) {
	switch current := value.(type) {
	case int:
		return big.NewInt(int64(current)), true
	case int8:
		return big.NewInt(int64(current)), true
	case int16:
		return big.NewInt(int64(current)), true
	case int32:
		return big.NewInt(int64(current)), true
	case int64:
		return big.NewInt(current), true
	case uint:
		return new(big.Int).SetUint64(uint64(current)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(current)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(current)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(current)), true
	case uint64:
		return new(big.Int).SetUint64(current), true
	case json.Number:
		return new(big.Int).SetString(string(current), 10)
	default:
		return nil, false
	}
}

// Canonical renders a numeric value in its shortest decimal form.
// Integral values never carry an exponent or a fractional part, and integer
// literals keep every digit.
func Canonical(value any) (string, bool) {
	if i, ok := toBigInt(value); ok {
		return i.String(), true
	}

	f, ok := ToFloat64(value)
	if !ok {
		if n, isNumber := value.(json.Number); isNumber {
			return string(n), true
		}
		return "", false
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return strconv.FormatFloat(f, 'g', -1, 64), true
}
