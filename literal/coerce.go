package literal

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Coerce converts a Go value into a Value. Integers become Int32 when they
// fit and Int64 otherwise, []byte becomes Binary, a time.Time at exactly
// midnight UTC becomes a Date and any other time.Time a DateTime. Values
// are passed through after validation.
func Coerce(x any) (Value, error) {
	var v Value
	switch x := x.(type) {
	case nil:
		v = Null()
	case Value:
		v = x
	case bool:
		v = Bool(x)
	case int8:
		v = Int32(int32(x))
	case int16:
		v = Int32(int32(x))
	case int32:
		v = Int32(x)
	case uint8:
		v = Int32(int32(x))
	case uint16:
		v = Int32(int32(x))
	case int:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			v = Int32(int32(x))
		} else {
			v = Int64(int64(x))
		}
	case int64:
		v = Int64(x)
	case uint32:
		v = Int64(int64(x))
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d overflows a long", ErrCoerce, x)
		}
		v = Int64(int64(x))
	case uint64:
		if x > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d overflows a long", ErrCoerce, x)
		}
		v = Int64(int64(x))
	case float32:
		v = Float32(x)
	case float64:
		v = Float64(x)
	case decimal.Decimal:
		v = Decimal(x)
	case *decimal.Decimal:
		if x == nil {
			return Null(), nil
		}
		v = Decimal(*x)
	case string:
		v = String(x)
	case []byte:
		v = Binary(x)
	case time.Time:
		v = fromTime(x)
	case time.Duration:
		v = FromDuration(FromStd(x))
	case Duration:
		v = FromDuration(x)
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrCoerce, x)
	}
	if err := Validate(v); err != nil {
		return Value{}, err
	}
	return v, nil
}

func fromTime(t time.Time) Value {
	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return Date(t.Year(), t.Month(), t.Day())
	}
	return DateTime(t, zoneDesignator(t))
}
