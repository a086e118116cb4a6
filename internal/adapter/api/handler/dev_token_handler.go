package handler

import (
	"github.com/labstack/echo/v4"

	"hanaplokal/internal/domain/repository"
	"hanaplokal/internal/infrastructure/firebase"
	"hanaplokal/pkg/config"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/response"
)

// DevTokenHandler mints long-lived tokens for local testing. Wired only when
// ENVIRONMENT=development.
type DevTokenHandler struct {
	firebaseAuth *firebase.FirebaseAuthClient
	userRepo     repository.UserRepository
	cfg          *config.Config
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, userRepo repository.UserRepository, cfg *config.Config) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
		userRepo:     userRepo,
		cfg:          cfg,
	}
}

func SetupDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, userRepo repository.UserRepository, cfg *config.Config) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth, userRepo, cfg)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

func (h *DevTokenHandler) GenerateUserToken(c echo.Context) error {
	return h.generateTokenForRole(c, "user")
}

func (h *DevTokenHandler) GenerateAdminToken(c echo.Context) error {
	return h.generateTokenForRole(c, "admin")
}

func (h *DevTokenHandler) generateTokenForRole(c echo.Context, role string) error {
	users, err := h.userRepo.ListByRole(c.Request().Context(), role, 1)
	if err != nil {
		return response.Error(c, err)
	}
	if len(users) == 0 {
		return response.Error(c, errors.NotFound("No "+role+" account found", nil))
	}
	user := users[0]

	var token string
	if h.cfg.FirebaseApiKey != "" {
		token, err = h.firebaseAuth.GenerateLongLivedToken(c.Request().Context(), user.ID)
	} else {
		// No Identity Toolkit key configured, fall back to a locally signed
		// token the dev auth path accepts.
		token, err = firebase.GenerateLocalToken(user.ID, h.cfg.JWTSecret, h.cfg.JWTExpiry)
	}
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
