package service

import (
	"crypto/subtle"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
)

// ErrTokenNotConfigured signals that the service was started without a
// bearer token. This is a deployment fault, not a client fault; it
// surfaces as a 500, never as a 401.
var ErrTokenNotConfigured = errors.New("api bearer token is not configured")

// AuthService verifies the shared API credential. There is one secret
// for the whole service; no per-token identity exists.
type AuthService struct {
	expectedToken string
	log           *zerolog.Logger
}

// NewAuthService constructs the verifier with the secret loaded at
// startup. The secret is never re-read from the environment afterward.
func NewAuthService(expectedToken string, log *zerolog.Logger) *AuthService {
	return &AuthService{
		expectedToken: expectedToken,
		log:           log,
	}
}

// Verify compares a presented credential against the configured secret.
// The comparison is exact: no trimming, no normalization.
func (s *AuthService) Verify(candidate string) error {
	if s.expectedToken == "" {
		s.log.Error().Msg("bearer token verification attempted without a configured secret")
		return ErrTokenNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(candidate), []byte(s.expectedToken)) != 1 {
		s.log.Warn().Msg("invalid bearer token attempt")
		return errs.NewUnauthorizedError("Invalid authentication credentials")
	}

	return nil
}
