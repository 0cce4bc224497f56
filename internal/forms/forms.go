// Package forms implements the client-side draft validation layer.
// Validation runs synchronously on submit; any failing field blocks the
// network call and the rule violations never reach the server. A server
// rejection preserves the draft so the user can correct and resubmit.
package forms

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/paydesk/paydesk/internal/common"
)

// Draft maps field name to the entered value.
type Draft map[string]string

// Errors maps field name to its validation message. An empty map means
// the draft may be submitted.
type Errors map[string]string

// OK reports whether the draft passed validation.
func (e Errors) OK() bool {
	return len(e) == 0
}

// Summary flattens the error map into one user-facing message, fields
// in stable order.
func (e Errors) Summary() string {
	if len(e) == 0 {
		return ""
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// AsError converts a non-empty error map into a UserError.
func (e Errors) AsError() error {
	if e.OK() {
		return nil
	}
	return common.NewUserError(e.Summary(), nil)
}

// Field-specific patterns. IFSC is the 11-character bank routing code:
// four letters, a zero, six alphanumerics.
var (
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	mobilePattern  = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	accountPattern = regexp.MustCompile(`^[0-9]{9,18}$`)
)

func (d Draft) value(field string) string {
	return strings.TrimSpace(d[field])
}

func requireField(d Draft, errs Errors, field string) string {
	v := d.value(field)
	if v == "" {
		errs[field] = "is required"
	}
	return v
}

func requireAmount(d Draft, errs Errors, field string) {
	v := requireField(d, errs, field)
	if v == "" {
		return
	}
	amount, err := strconv.ParseFloat(v, 64)
	if err != nil {
		errs[field] = "must be a number"
		return
	}
	if amount <= 0 {
		errs[field] = "must be greater than zero"
	}
}
