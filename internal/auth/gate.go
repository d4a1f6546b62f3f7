// Package auth holds the admin gate: a single static shared secret
// checked on catalog mutations. There are no sessions, tokens, or
// per-user identities; every administrator shares the one credential.
package auth

import (
	"github.com/rs/zerolog"
)

// Gate verifies a supplied secret against the configured value.
type Gate struct {
	secret string
	logger zerolog.Logger
}

// NewGate creates a gate for the configured admin secret. The secret is
// guaranteed non-empty by config validation.
func NewGate(secret string, logger zerolog.Logger) *Gate {
	return &Gate{
		secret: secret,
		logger: logger.With().Str("component", "admin-gate").Logger(),
	}
}

// Verify reports whether the supplied secret exactly equals the
// configured value. Anything else, including empty or whitespace
// variants, is rejected.
func (g *Gate) Verify(supplied string) bool {
	if supplied != g.secret {
		g.logger.Warn().Msg("admin secret mismatch")
		return false
	}
	return true
}
