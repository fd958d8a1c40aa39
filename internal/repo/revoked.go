package repo

import (
	"sync"
	"time"
)

// RevokedTokens is the denylist consulted before signature verification.
// It grows for the whole process lifetime: the recorded expiry would let a
// pruning sweep drop tokens that are past their own exp, but no sweep runs.
type RevokedTokens struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{tokens: make(map[string]time.Time)}
}

// Revoke is idempotent, revoking the same token twice is fine.
func (r *RevokedTokens) Revoke(token string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = expiresAt
}

func (r *RevokedTokens) IsRevoked(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tokens[token]
	return ok
}
