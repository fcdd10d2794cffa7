package handler

import (
	"github.com/castingdesk/casting-api/internal/core/domain"
)

type registerRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	AccountType     string `json:"accountType" validate:"required,oneof=performer casting-director agent producer"`
	Newsletter      bool   `json:"newsletter"`
}

type verifyOTPRequest struct {
	UserID string `json:"userId" validate:"required"`
	OTP    string `json:"otp" validate:"required,len=6"`
}

type resendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// googleAuthRequest accepts the assertion under any of the three keys clients
// have historically used.
type googleAuthRequest struct {
	TokenID string `json:"tokenId"`
	Token   string `json:"token"`
	IDToken string `json:"idToken"`
}

func (r googleAuthRequest) assertion() string {
	switch {
	case r.TokenID != "":
		return r.TokenID
	case r.Token != "":
		return r.Token
	default:
		return r.IDToken
	}
}

type resetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type resetLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type userResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	AccountType  string `json:"accountType"`
	IsVerified   bool   `json:"isVerified"`
	IsGoogleUser bool   `json:"isGoogleUser"`
	Newsletter   bool   `json:"newsletter"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type authResponse struct {
	Message string        `json:"message,omitempty"`
	Token   string        `json:"token"`
	User    *userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u *domain.User) *userResponse {
	return &userResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		AccountType:  string(u.AccountType),
		IsVerified:   u.IsVerified,
		IsGoogleUser: u.IsGoogleUser,
		Newsletter:   u.Newsletter,
	}
}
