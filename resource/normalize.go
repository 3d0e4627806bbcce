package resource

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/crmarques/driftscan/faults"
)

// Normalize rewrites an arbitrary decoded payload into the canonical value
// shapes the comparison engine dispatches on: map[string]any, []any, nil,
// bool, string, int64, or float64. Integral numbers always normalize to
// int64, so equal literals compare equal whether they came from JSON or YAML.
func Normalize(value Value) (Value, error) {
	return normalizeValue(value)
}

func normalizeValue(value any) (any, error) {
	switch typed := value.(type) {
	case nil, bool, string:
		return typed, nil
	case int:
		return int64(typed), nil
	case int8:
		return int64(typed), nil
	case int16:
		return int64(typed), nil
	case int32:
		return int64(typed), nil
	case int64:
		return typed, nil
	case uint:
		return normalizeUint(uint64(typed))
	case uint8:
		return normalizeUint(uint64(typed))
	case uint16:
		return normalizeUint(uint64(typed))
	case uint32:
		return normalizeUint(uint64(typed))
	case uint64:
		return normalizeUint(typed)
	case float32:
		return normalizeFloat(float64(typed))
	case float64:
		return normalizeFloat(typed)
	case json.Number:
		return normalizeNumber(typed)
	case []any:
		return normalizeList(typed)
	case map[string]any:
		return normalizeObject(typed)
	}

	return normalizeReflectValue(value)
}

func normalizeFloat(value float64) (any, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, faults.NewTypedError(faults.ValidationError, "resource contains non-finite float", nil)
	}
	if value == math.Trunc(value) && math.Abs(value) < math.MaxInt64 {
		return int64(value), nil
	}
	return value, nil
}

func normalizeUint(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, faults.NewTypedError(faults.ValidationError, "resource contains integer out of range", nil)
	}
	return int64(value), nil
}

func normalizeNumber(value json.Number) (any, error) {
	if asInt, err := value.Int64(); err == nil {
		return asInt, nil
	}
	if asBig, ok := new(big.Int).SetString(value.String(), 10); ok {
		if asBig.IsInt64() {
			return asBig.Int64(), nil
		}
		return nil, faults.NewTypedError(faults.ValidationError, "resource contains integer out of range", nil)
	}

	asFloat, err := value.Float64()
	if err != nil {
		return nil, faults.NewTypedError(faults.ValidationError, "resource contains invalid number", err)
	}
	return normalizeFloat(asFloat)
}

func normalizeList(values []any) ([]any, error) {
	normalized := make([]any, len(values))
	for idx, item := range values {
		itemValue, err := normalizeValue(item)
		if err != nil {
			return nil, err
		}
		normalized[idx] = itemValue
	}
	return normalized, nil
}

func normalizeObject(values map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(values))
	for key, item := range values {
		itemValue, err := normalizeValue(item)
		if err != nil {
			return nil, err
		}
		normalized[key] = itemValue
	}
	return normalized, nil
}

// normalizeReflectValue handles decoder-specific map and slice types, such as
// YAML mappings with non-string key types.
func normalizeReflectValue(value any) (any, error) {
	reflectValue := reflect.ValueOf(value)
	switch reflectValue.Kind() {
	case reflect.Map:
		normalized := make(map[string]any, reflectValue.Len())
		iter := reflectValue.MapRange()
		for iter.Next() {
			key, ok := mapKeyString(iter.Key())
			if !ok {
				return nil, faults.NewTypedError(faults.ValidationError, "resource map keys must be strings", nil)
			}
			itemValue, err := normalizeValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			normalized[key] = itemValue
		}
		return normalized, nil
	case reflect.Slice, reflect.Array:
		length := reflectValue.Len()
		normalized := make([]any, length)
		for idx := 0; idx < length; idx++ {
			itemValue, err := normalizeValue(reflectValue.Index(idx).Interface())
			if err != nil {
				return nil, err
			}
			normalized[idx] = itemValue
		}
		return normalized, nil
	default:
		return nil, faults.NewTypedError(
			faults.ValidationError,
			fmt.Sprintf("unsupported resource value type %T", value),
			nil,
		)
	}
}

func mapKeyString(key reflect.Value) (string, bool) {
	if key.Kind() == reflect.Interface {
		key = key.Elem()
	}
	if key.Kind() != reflect.String {
		return "", false
	}
	return key.String(), true
}
