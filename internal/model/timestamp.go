package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the creation-timestamp encodings observed across
// endpoints, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a creation time as transmitted by the API: RFC3339,
// a bare datetime, a bare date, or unix seconds. Absent and unparsable
// values decode to the zero time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON accepts the observed encodings.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}

	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}

	if !strings.HasPrefix(s, `"`) {
		// Unix seconds.
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil
		}
		t.Time = time.Unix(secs, 0).UTC()
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return nil
	}
	str = strings.TrimSpace(str)

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, str); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return nil
}

// DisplayDate formats the timestamp the way tables and receipts show it.
func (t Timestamp) DisplayDate() string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006 15:04")
}
