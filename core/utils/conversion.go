package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts a decoded document value to an int.
// It accepts integer and float types holding whole numbers, json.Number,
// numeric strings and byte slices. Anything else is an error.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint8:
		return int(v), nil
	case float64:
		return wholeNumber(v)
	case float32:
		return wholeNumber(float64(v))
	case json.Number:
		return ToInt(string(v))
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", v)
		}
		return i, nil
	case []byte:
		return ToInt(string(v))
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// ToIntDefault is ToInt with a fallback for absent values.
func ToIntDefault(val any, def int) (int, error) {
	if val == nil {
		return def, nil
	}
	return ToInt(val)
}

func wholeNumber(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return int(f), nil
}
