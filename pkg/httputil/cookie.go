package httputil

import (
	"errors"
	"net/http"
	"strings"
)

const AuthCookieName = "auth_token"

// GetTokenFromCookie extracts the JWT token from the auth cookie
func GetTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil {
		return "", errors.New("auth cookie not found")
	}

	if cookie.Value == "" {
		return "", errors.New("auth cookie is empty")
	}

	return cookie.Value, nil
}

// GetTokenFromRequest prefers the Authorization header and falls back to
// the auth cookie, which is what browsers send on websocket upgrades.
func GetTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return token, nil
		}
		return authHeader, nil
	}

	token, err := GetTokenFromCookie(r)
	if err == nil {
		return token, nil
	}

	return "", errors.New("no auth token found in header or cookie")
}
