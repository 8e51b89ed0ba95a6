package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/msomdec/practice-demos/internal/domain"
)

const shareAudience = "run-transcript"

// ShareService issues and verifies signed links to run transcripts.
type ShareService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewShareService creates a ShareService signing with secret. Links expire
// after ttl.
func NewShareService(secret string, ttl time.Duration) *ShareService {
	return &ShareService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token granting read access to run runID.
func (s *ShareService) Issue(runID string) (string, time.Time, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: run id must be a UUID", domain.ErrInvalidInput)
	}

	now := s.now()
	expires := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   runID,
		Audience:  jwt.ClaimStrings{shareAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign share token: %w", err)
	}
	return token, expires, nil
}

// Resolve verifies token and returns the run ID it grants access to.
// Any malformed, tampered or expired token yields domain.ErrUnauthorized.
func (s *ShareService) Resolve(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithAudience(shareAudience),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
