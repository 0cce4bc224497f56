// Package session manages the locally stored bearer token and the
// claims snapshot decoded from it.
//
// The decode is deliberately unverified: no signature check is performed,
// so the snapshot is a UI hint only and must never gate anything the
// backend does not independently re-check on every request.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/paydesk/paydesk/internal/common"
)

// Claims is the decoded (unverified) payload of the session token.
type Claims struct {
	ExpiresAt   time.Time
	SubjectID   string
	DisplayName string
	Role        string
}

type tokenClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeClaims extracts the claims snapshot from a raw token without
// verifying its signature.
func DecodeClaims(token string) (*Claims, error) {
	parsed := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if parsed.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", common.ErrInvalidToken)
	}
	if parsed.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing expiry claim", common.ErrInvalidToken)
	}

	return &Claims{
		SubjectID:   parsed.Subject,
		DisplayName: parsed.Name,
		Role:        parsed.Role,
		ExpiresAt:   parsed.ExpiresAt.Time,
	}, nil
}

// Valid reports whether the session is still live at now. The token's
// exp claim is in seconds; the comparison is performed in milliseconds
// and is strict, so a token expiring exactly at now is already expired.
func (c *Claims) Valid(now time.Time) bool {
	return now.UnixMilli() < c.ExpiresAt.UnixMilli()
}
