package model

import "strings"

// Status is the transaction status vocabulary used by the API.
type Status string

// Known statuses. StatusAll is the sentinel that disables status
// filtering; it never appears on a row.
const (
	StatusSuccess Status = "SUCCESS"
	StatusPending Status = "PENDING"
	StatusFailed  Status = "FAILED"
	StatusAll     Status = "ALL"
)

// ParseStatus normalizes a wire status. Comparison is case-insensitive
// and FAILURE is accepted as an alias for FAILED; unknown values are
// kept upper-cased so they still display and filter exactly.
func ParseStatus(s string) Status {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "FAILURE" {
		return StatusFailed
	}
	return Status(upper)
}

// UnmarshalJSON normalizes the status on decode.
func (s *Status) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" {
		raw = ""
	}
	*s = ParseStatus(raw)
	return nil
}
