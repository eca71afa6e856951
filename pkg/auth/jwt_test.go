package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken("s3cret", "ci", []string{ScopeSimulate}, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ValidateAccessToken("s3cret", tok)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.Client != "ci" || !claims.HasScope(ScopeSimulate) || claims.HasScope("admin") {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestAccessTokenRejected(t *testing.T) {
	tok, _ := GenerateAccessToken("s3cret", "ci", nil, time.Minute)
	if _, err := ValidateAccessToken("other", tok); err == nil {
		t.Error("token accepted with the wrong secret")
	}

	expired, _ := GenerateAccessToken("s3cret", "ci", nil, -time.Minute)
	if _, err := ValidateAccessToken("s3cret", expired); err == nil {
		t.Error("expired token accepted")
	}

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Client: "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := ValidateAccessToken("s3cret", none); err == nil {
		t.Error("unsigned token accepted")
	}

	if _, err := GenerateAccessToken("", "ci", nil, time.Minute); err == nil {
		t.Error("empty secret accepted")
	}
}
