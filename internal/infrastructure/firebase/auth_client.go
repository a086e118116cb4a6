package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"firebase.google.com/go/v4/auth"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) GenerateToken(ctx context.Context, uid string) (string, error) {
	token, err := f.client.CustomToken(ctx, uid)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (f *FirebaseAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).
		Password(newPassword)

	_, err := f.client.UpdateUser(ctx, uid, params)
	if err != nil {
		return err
	}

	return nil
}

// SignInWithEmailPassword exchanges credentials for an ID token through the
// Identity Toolkit REST API. The admin SDK cannot mint ID tokens directly.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var result struct {
		IDToken string `json:"idToken"`
		LocalID string `json:"localId"`
	}
	if err := f.postIdentityToolkit("accounts:signInWithPassword", payload, &result); err != nil {
		return "", err
	}

	return result.IDToken, nil
}

// SignInAnonymously creates a guest session and returns its uid and ID token.
func (f *FirebaseAuthClient) SignInAnonymously() (uid, idToken string, err error) {
	payload := map[string]interface{}{
		"returnSecureToken": true,
	}

	var result struct {
		IDToken string `json:"idToken"`
		LocalID string `json:"localId"`
	}
	if err := f.postIdentityToolkit("accounts:signUp", payload, &result); err != nil {
		return "", "", err
	}

	return result.LocalID, result.IDToken, nil
}

// SendPasswordResetEmail asks the auth provider to email a reset link.
func (f *FirebaseAuthClient) SendPasswordResetEmail(email string) error {
	payload := map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}

	return f.postIdentityToolkit("accounts:sendOobCode", payload, nil)
}

func (f *FirebaseAuthClient) exchangeCustomTokenForIDToken(customToken string) (string, error) {
	payload := map[string]interface{}{
		"token":             customToken,
		"returnSecureToken": true,
	}

	var result struct {
		IDToken string `json:"idToken"`
	}
	if err := f.postIdentityToolkit("accounts:signInWithCustomToken", payload, &result); err != nil {
		return "", err
	}

	return result.IDToken, nil
}

func (f *FirebaseAuthClient) postIdentityToolkit(endpoint string, payload interface{}, out interface{}) error {
	if f.apiKey == "" {
		return fmt.Errorf("firebase API key is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", identityToolkitURL, endpoint, f.apiKey)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("identity toolkit %s failed: %s: %s", endpoint, resp.Status, string(respBody))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
