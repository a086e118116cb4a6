package usecase

import (
	"context"
	"log"
	"time"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/i18n"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	authClient FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, authClient FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
	Phone    string
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.Conflict("Email already registered")
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		log.Printf("Register Error: Failed to create auth user for %s: %v", input.Email, err)
		return nil, errors.Internal("Failed to create user", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Username:  input.Username,
		Phone:     input.Phone,
		Role:      "user",
		Status:    "active",
		Language:  i18n.DefaultLanguage,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Roll back the auth record so the email is not left unusable.
		if delErr := uc.authClient.DeleteUser(ctx, uid); delErr != nil {
			log.Printf("Register Error: Failed to roll back auth user %s: %v", uid, delErr)
		}
		return nil, err
	}

	token, err := uc.authClient.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		log.Printf("Register Warning: User %s created but sign-in failed: %v", uid, err)
		return &AuthResult{User: user}, nil
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.authClient.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("Login Error: Auth succeeded but user doc missing for %s: %v", email, err)
		return nil, errors.NotFound("User profile not found", err)
	}
	if user.Status == "suspended" {
		return nil, errors.Forbidden("Account suspended", nil)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// LoginAsGuest creates an anonymous session so browsing works before sign-up.
func (uc *AuthUseCase) LoginAsGuest(ctx context.Context) (*AuthResult, error) {
	uid, token, err := uc.authClient.SignInAnonymously()
	if err != nil {
		log.Printf("Guest Login Error: %v", err)
		return nil, errors.Internal("Failed to start guest session", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Username:  "Guest",
		Role:      "user",
		Status:    "active",
		IsGuest:   true,
		Language:  i18n.DefaultLanguage,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	// Always succeed from the caller's perspective so the endpoint does not
	// leak which emails are registered.
	if _, err := uc.userRepo.GetByEmail(ctx, email); err != nil {
		log.Printf("ForgotPassword: no user for %s", email)
		return nil
	}

	if err := uc.authClient.SendPasswordResetEmail(email); err != nil {
		log.Printf("ForgotPassword Error: Failed to send reset email to %s: %v", email, err)
		return errors.Internal("Failed to send password reset email", err)
	}

	return nil
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, uid, newPassword string) error {
	if err := uc.authClient.UpdateUserPassword(ctx, uid, newPassword); err != nil {
		log.Printf("ChangePassword Error: User %s: %v", uid, err)
		return errors.Internal("Failed to change password", err)
	}

	return nil
}
