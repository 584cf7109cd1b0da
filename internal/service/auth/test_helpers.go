package auth

import "time"

// NewTestTokenService creates a token service with an injectable clock for
// deterministic expiry tests. Intended for use from _test files only.
func NewTestTokenService(
	secret string,
	lifetime time.Duration,
	timeFunc func() time.Time,
) TokenService {
	return &hmacTokenService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
