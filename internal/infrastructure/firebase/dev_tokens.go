package firebase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateLongLivedToken mints a token for development use. With an API key
// configured it exchanges a Firebase custom token for a real ID token;
// otherwise it falls back to a locally signed HS256 token so the API can be
// exercised without live Firebase credentials.
func (f *FirebaseAuthClient) GenerateLongLivedToken(ctx context.Context, uid string) (string, error) {
	customToken, err := f.client.CustomToken(ctx, uid)
	if err != nil {
		return "", err
	}

	if f.apiKey != "" {
		idToken, err := f.exchangeCustomTokenForIDToken(customToken)
		if err != nil {
			return "", err
		}
		return idToken, nil
	}

	return customToken, nil
}

// GenerateLocalToken signs a development-only HS256 token with the server
// secret. The auth middleware honors these only when it was handed the same
// secret, which main does for ENVIRONMENT=development.
func GenerateLocalToken(uid, secret string, expirySeconds int64) (string, error) {
	claims := jwt.MapClaims{
		"uid": uid,
		"exp": time.Now().Add(time.Duration(expirySeconds) * time.Second).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
