// Package model defines the row view-models reconstructed from API
// responses. Nothing here has server-independent identity; rows live only
// for the duration of a command.
package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value as transmitted by the API. The upstream
// mixes JSON numbers, numeric strings, and nulls for the same fields, so
// every monetary field decodes through this type. Unparsable values
// normalize to 0, never NaN, and negatives clamp to 0.
type Amount float64

// UnmarshalJSON implements the defensive normalization path.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0

	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return nil
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	if v < 0 {
		v = 0
	}

	*a = Amount(v)
	return nil
}

// Float64 returns the normalized value.
func (a Amount) Float64() float64 {
	return float64(a)
}

// String formats the amount with the fixed two decimals used in tables,
// exports, and receipts.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}
