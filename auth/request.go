package auth

import (
	"chat-relay/errors"
	"net/http"
)

// FromRequest authenticates a plain HTTP request, typically a websocket
// upgrade. Browsers cannot set headers on upgrades so the token may also
// travel in the "token" query parameter.
func FromRequest(tokens *TokenManager, r *http.Request, role string) (*CustomClaims, error) {
	token := BearerToken(r.Header.Get("Authorization"))
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	claims, err := tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	if !claims.HasRole(role) {
		return nil, errors.ErrForbidden
	}
	return claims, nil
}
