package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumFeatures is the width of the vector the crop model was trained on.
const NumFeatures = 7

// FeatureFields lists the required reading fields in model input order.
// The order is load-bearing: it must match the training column order.
var FeatureFields = [NumFeatures]string{"N", "P", "K", "temperature", "humidity", "ph", "rainfall"}

// FeatureVector is a fixed-order numeric tuple consumed by the classifier.
type FeatureVector [NumFeatures]float64

// InvalidInputError reports a sensor reading that cannot be turned into a
// feature vector.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

// DecodeFeatures converts a raw sensor reading into a FeatureVector. Every
// field in FeatureFields must be present and convertible to a finite number;
// values may arrive as JSON numbers, numeric strings or Go numeric types.
// No range checks beyond finiteness are applied.
func DecodeFeatures(record map[string]any) (FeatureVector, error) {
	var vec FeatureVector
	for i, field := range FeatureFields {
		raw, ok := record[field]
		if !ok {
			return FeatureVector{}, &InvalidInputError{Field: field, Reason: "is missing"}
		}
		v, err := toFloat(raw)
		if err != nil {
			return FeatureVector{}, &InvalidInputError{Field: field, Reason: err.Error()}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return FeatureVector{}, &InvalidInputError{Field: field, Reason: "is not a finite number"}
		}
		vec[i] = v
	}
	return vec, nil
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("has non-numeric value %q", t.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("has non-numeric value %q", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("has non-numeric value of type %T", v)
	}
}
