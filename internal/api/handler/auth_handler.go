package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/castingdesk/casting-api/internal/api/metrics"
	"github.com/castingdesk/casting-api/internal/core/domain"
	"github.com/castingdesk/casting-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an unverified account and emails a verification code.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AccountType:     req.AccountType,
		Newsletter:      req.Newsletter,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(user.AccountType)).Inc()
	metrics.OTPIssuedTotal.WithLabelValues("register").Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "OTP sent to email. Please verify your account.",
		UserID:  user.ID,
	})
}

// VerifyOTP confirms the emailed code and activates the account.
//
// @Summary      Verify the emailed one-time code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "User id and code"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/user/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.VerifyOTP(c.Request().Context(), req.UserID, req.OTP)
	if err != nil {
		metrics.OTPVerificationsTotal.WithLabelValues(otpResultLabel(err)).Inc()
		return err
	}

	metrics.OTPVerificationsTotal.WithLabelValues("verified").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Email verified successfully",
		Token:   result.Token,
		User:    toUserResponse(result.User),
	})
}

// ResendOTP issues a fresh code for an unverified account.
//
// @Summary      Resend the verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resendOTPRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/user/resend-otp [post]
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req resendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResendOTP(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.OTPIssuedTotal.WithLabelValues("resend").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "OTP resent successfully"})
}

// Login authenticates with email and password.
//
// The unverified case gets its own response shape here instead of the shared
// error envelope: clients redirect to the verification screen and need the
// user id and email to do so.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var verr *domain.VerificationRequiredError
		if errors.As(err, &verr) {
			metrics.LoginsTotal.WithLabelValues("password", "failure").Inc()
			return c.JSON(http.StatusForbidden, echo.Map{
				"message":           "Please verify your email before logging in",
				"needsVerification": true,
				"userId":            verr.UserID,
				"email":             verr.Email,
			})
		}
		metrics.LoginsTotal.WithLabelValues("password", "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("password", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    toUserResponse(result.User),
	})
}

// GoogleAuth signs a user in with a Google assertion, creating the account on
// first sight.
//
// @Summary      Login or register via Google
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleAuthRequest  true  "Google token"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/user/google [post]
func (h *AuthHandler) GoogleAuth(c echo.Context) error {
	var req googleAuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.GoogleLogin(c.Request().Context(), req.assertion())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("google", "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("google", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// ResetPassword sets a new password for the account.
//
// @Summary      Reset the account password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Email and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/user/forget-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Email, req.Password, req.ConfirmPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password reset successfully"})
}

// SendResetLink emails the password reset link.
//
// @Summary      Email a password reset link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetLinkRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/user/send-forget-password [post]
func (h *AuthHandler) SendResetLink(c echo.Context) error {
	var req resetLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.SendPasswordResetLink(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password reset link sent to your email"})
}

func otpResultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrOTPExpired):
		return "expired"
	case errors.Is(err, domain.ErrOTPMismatch):
		return "mismatch"
	default:
		return "error"
	}
}
