package app

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bft-labs/scoreship/pkg/log"
)

// tokenExpiry reads the exp claim of a JWT session token without verifying
// it. ok is false for opaque tokens or tokens without an expiry.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (s *Session) logTokenExpiry(token string) {
	exp, ok := tokenExpiry(token)
	if !ok {
		return
	}
	left := exp.Sub(s.now())
	if left <= 0 {
		s.logger.Warn("session token already expired", log.Time("expires_at", exp))
		return
	}
	if left < s.cfg.WaitWindow {
		s.logger.Warn("session token expires before the next day window",
			log.Time("expires_at", exp),
			log.Duration("left", left),
		)
		return
	}
	s.logger.Debug("session token valid", log.Time("expires_at", exp))
}
