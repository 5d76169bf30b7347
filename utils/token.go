package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Session tokens are valid for one day; the server-side session outlives the
// token only until the process restarts anyway.
const sessionTokenTTL = 24 * time.Hour

// SessionClaim carries the server-side session id inside the signed token.
type SessionClaim struct {
	SessionID string `json:"session_id"`
	jwt.StandardClaims
}

// SignSession wraps a session id in a signed token.
func SignSession(secret []byte, sessionID string) (string, error) {
	claims := &SessionClaim{
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(sessionTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSession validates a session token and returns the session id it names.
func ParseSession(secret []byte, signedToken string) (string, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SessionClaim{},
		func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		},
	)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*SessionClaim)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return "", errors.New("session token expired")
	}
	return claims.SessionID, nil
}
