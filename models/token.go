package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPair holds the credential pair issued by the authentication
// backend: a short-lived access token attached to every API call and a
// longer-lived refresh token used to obtain a new access token without
// re-authentication.
type TokenPair struct {
	// AccessToken is the bearer token for the Authorization header.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived token for POST /api/auth/refresh.
	RefreshToken string `json:"refresh_token"`
}

// Empty reports whether no credentials are held.
func (p TokenPair) Empty() bool {
	return p.AccessToken == "" && p.RefreshToken == ""
}

// AccessExpiresAt extracts the expiry of the access token from its "exp"
// claim. The token is parsed without signature verification — the client
// only needs the timestamp to decide whether a proactive refresh is due;
// validity is the server's concern.
//
// Returns an error if the token cannot be parsed or carries no expiry.
func (p TokenPair) AccessExpiresAt() (time.Time, error) {
	if p.AccessToken == "" {
		return time.Time{}, errors.New("no access token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(p.AccessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}

	return exp.Time, nil
}

// AccessExpired reports whether the access token is absent, unparseable,
// or expires within leeway from now. Unparseable tokens count as expired
// so the client falls back to a refresh instead of sending garbage.
func (p TokenPair) AccessExpired(leeway time.Duration) bool {
	exp, err := p.AccessExpiresAt()
	if err != nil {
		return true
	}
	return time.Now().Add(leeway).After(exp)
}
