package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"hanaplokal/internal/infrastructure/firebase"
)

const testDevSecret = "dev-secret-key"

func TestAuthenticateAcceptsLocalDevToken(t *testing.T) {
	token, err := firebase.GenerateLocalToken("dev-user", testDevSecret, 60)
	assert.NoError(t, err)

	m := NewAuthMiddleware(nil, testDevSecret)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUID string
	next := func(c echo.Context) error {
		gotUID = c.Get("uid").(string)
		return c.NoContent(http.StatusOK)
	}

	err = m.Authenticate(next)(c)
	assert.NoError(t, err)
	assert.Equal(t, "dev-user", gotUID)
}

func TestAuthenticateWebSocketAcceptsLocalDevTokenFromQuery(t *testing.T) {
	token, err := firebase.GenerateLocalToken("dev-user", testDevSecret, 60)
	assert.NoError(t, err)

	m := NewAuthMiddleware(nil, testDevSecret)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/ws?token="+token, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUID string
	next := func(c echo.Context) error {
		gotUID = c.Get("uid").(string)
		return c.NoContent(http.StatusOK)
	}

	err = m.AuthenticateWebSocket(next)(c)
	assert.NoError(t, err)
	assert.Equal(t, "dev-user", gotUID)
}

func TestVerifyLocalTokenRejectsWrongSecret(t *testing.T) {
	token, err := firebase.GenerateLocalToken("dev-user", "some-other-secret", 60)
	assert.NoError(t, err)

	m := NewAuthMiddleware(nil, testDevSecret)

	_, err = m.verifyLocalToken(token)
	assert.Error(t, err)
}

func TestVerifyLocalTokenRejectsExpired(t *testing.T) {
	token, err := firebase.GenerateLocalToken("dev-user", testDevSecret, -60)
	assert.NoError(t, err)

	m := NewAuthMiddleware(nil, testDevSecret)

	_, err = m.verifyLocalToken(token)
	assert.Error(t, err)
}
