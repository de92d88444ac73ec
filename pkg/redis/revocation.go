package redis

import (
	"context"
	"time"
)

const revokedPrefix = "revoked:"

var (
	setRevokedValue    = Set
	existsRevokedValue = Exists
)

// RevocationList denylists session token ids until their natural expiry.
// Without a configured client every call is a no-op and nothing is revoked.
type RevocationList struct{}

// NewRevocationList creates a revocation list on the shared client
func NewRevocationList() *RevocationList {
	return &RevocationList{}
}

// Revoke stores tokenID for ttl. Already expired tokens are ignored.
func (r *RevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if !Enabled() || tokenID == "" || ttl <= 0 {
		return nil
	}
	return setRevokedValue(ctx, revokedPrefix+tokenID, "1", ttl)
}

// IsRevoked reports whether tokenID has been revoked.
func (r *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if !Enabled() || tokenID == "" {
		return false, nil
	}
	return existsRevokedValue(ctx, revokedPrefix+tokenID)
}
