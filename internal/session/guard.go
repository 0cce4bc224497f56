package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/service"
)

// Guard gates a protected command. It loads the stored token, decodes
// its claims, and checks expiry and the required role. Every failure
// clears the store: the caller must tell the user to log in again and
// render nothing.
//
// requiredRole may be empty to accept any role.
func Guard(store service.SessionStore, requiredRole string, now time.Time) (*Claims, string, error) {
	token, err := store.Token()
	if err != nil {
		return nil, "", err
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		_ = store.Clear()
		return nil, "", err
	}

	if !claims.Valid(now) {
		_ = store.Clear()
		return nil, "", fmt.Errorf("%w at %s", common.ErrSessionExpired,
			claims.ExpiresAt.Format(time.RFC3339))
	}

	if requiredRole != "" && !strings.EqualFold(claims.Role, requiredRole) {
		_ = store.Clear()
		return nil, "", fmt.Errorf("%w: have %q, need %q",
			common.ErrRoleMismatch, claims.Role, requiredRole)
	}

	return claims, token, nil
}
