package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "hive"

type tokenSigner struct {
	key []byte
	now func() time.Time
}

func (s tokenSigner) sign(userID, sessionID string, issued, expires time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(issued),
		NotBefore: jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// parse verifies the signature and issuer. Expiry is checked unless
// allowExpired is set, which sign-out uses so stale tokens can still be revoked.
func (s tokenSigner) parse(token string, allowExpired bool) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	}
	if allowExpired {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing session token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, fmt.Errorf("session token is missing claims")
	}
	return claims, nil
}
