package domain

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Amount is a number decoded leniently: JSON numbers and numeric strings are
// accepted, null, booleans and anything unparsable decode to 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = 0
		return nil
	}
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := cast.ToFloat64E(strings.TrimSpace(v))
		if err != nil {
			*a = 0
			return nil
		}
		f = parsed
	default:
		*a = 0
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}
