package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/castingdesk/casting-api/internal/core/domain"
	"github.com/castingdesk/casting-api/internal/core/ports"
)

type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginResult  *ports.AuthResult
	loginErr     error
	verifyResult *ports.AuthResult
	verifyErr    error
	googleResult *ports.AuthResult
	googleErr    error

	gotAssertion string
}

func (s *stubAuthService) Register(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
	return s.registerUser, s.registerErr
}

func (s *stubAuthService) VerifyOTP(_ context.Context, _, _ string) (*ports.AuthResult, error) {
	return s.verifyResult, s.verifyErr
}

func (s *stubAuthService) ResendOTP(context.Context, string) error { return nil }

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*ports.AuthResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) GoogleLogin(_ context.Context, assertion string) (*ports.AuthResult, error) {
	s.gotAssertion = assertion
	return s.googleResult, s.googleErr
}

func (s *stubAuthService) ResetPassword(context.Context, string, string, string) error { return nil }
func (s *stubAuthService) SendPasswordResetLink(context.Context, string) error         { return nil }

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{registerUser: &domain.User{
		ID:          "user-1",
		FirstName:   "Alice",
		Email:       "alice@example.com",
		AccountType: domain.AccountPerformer,
	}}
	h := NewAuthHandler(svc)

	body := `{"firstName":"Alice","lastName":"Smith","email":"alice@example.com",` +
		`"password":"Str0ng!pass","confirmPassword":"Str0ng!pass","accountType":"performer"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/user/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID != "user-1" {
		t.Fatalf("expected user id in response, got %q", resp.UserID)
	}
}

func TestAuthHandler_Register_RejectsUnknownAccountType(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"firstName":"Alice","lastName":"Smith","email":"alice@example.com",` +
		`"password":"Str0ng!pass","confirmPassword":"Str0ng!pass","accountType":"director"}`
	c, _ := newJSONContext(t, http.MethodPost, "/api/user/register", body)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Unverified(t *testing.T) {
	svc := &stubAuthService{loginErr: &domain.VerificationRequiredError{
		UserID: "user-1",
		Email:  "alice@example.com",
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/user/login",
		`{"email":"alice@example.com","password":"Str0ng!pass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["needsVerification"] != true {
		t.Fatalf("expected needsVerification flag, got %v", resp)
	}
	if resp["userId"] != "user-1" || resp["email"] != "alice@example.com" {
		t.Fatalf("expected identity in response, got %v", resp)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{loginResult: &ports.AuthResult{
		Token: "signed-token",
		User:  &domain.User{ID: "user-1", Email: "alice@example.com", IsVerified: true},
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/user/login",
		`{"email":"alice@example.com","password":"Str0ng!pass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected token, got %q", resp.Token)
	}
	if resp.User == nil || resp.User.ID != "user-1" {
		t.Fatalf("expected user in response, got %+v", resp.User)
	}
}

func TestAuthHandler_Login_ErrorsPropagate(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newJSONContext(t, http.MethodPost, "/api/user/login",
		`{"email":"alice@example.com","password":"Wr0ng!pass1"}`)

	// Domain errors bubble to the central error handler untouched.
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_GoogleAuth_AssertionKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"tokenId", `{"tokenId":"a"}`, "a"},
		{"token", `{"token":"b"}`, "b"},
		{"idToken", `{"idToken":"c"}`, "c"},
		{"tokenId wins", `{"tokenId":"a","token":"b","idToken":"c"}`, "a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{googleResult: &ports.AuthResult{
				Token: "signed-token",
				User:  &domain.User{ID: "user-1"},
			}}
			h := NewAuthHandler(svc)

			c, rec := newJSONContext(t, http.MethodPost, "/api/user/google", tc.body)
			if err := h.GoogleAuth(c); err != nil {
				t.Fatalf("GoogleAuth returned error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if svc.gotAssertion != tc.want {
				t.Fatalf("expected assertion %q, got %q", tc.want, svc.gotAssertion)
			}
		})
	}
}

func TestAuthHandler_VerifyOTP_Success(t *testing.T) {
	svc := &stubAuthService{verifyResult: &ports.AuthResult{
		Token: "signed-token",
		User:  &domain.User{ID: "user-1", IsVerified: true},
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/user/verify-otp",
		`{"userId":"user-1","otp":"123456"}`)

	if err := h.VerifyOTP(c); err != nil {
		t.Fatalf("VerifyOTP returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_VerifyOTP_RejectsShortCode(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/user/verify-otp",
		`{"userId":"user-1","otp":"123"}`)

	err := h.VerifyOTP(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
