package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/castingdesk/casting-api/internal/core/domain"
	"github.com/castingdesk/casting-api/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour
const defaultBcryptCost = 10

// AuthConfig carries the tunables of the auth lifecycle.
type AuthConfig struct {
	JWTSecret        string
	TokenTTL         time.Duration
	BcryptCost       int
	ResetPasswordURL string
}

// AuthService implements the account lifecycle: registration with email OTP
// verification, password and Google login, and password reset.
type AuthService struct {
	repo    ports.UserRepository
	google  ports.IdentityResolver
	mail    ports.MailDispatcher
	limiter ports.ResendLimiter

	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
	resetURL   string
	logger     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, google ports.IdentityResolver, mail ports.MailDispatcher, limiter ports.ResendLimiter, cfg AuthConfig, logger zerolog.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = defaultBcryptCost
	}
	return &AuthService{
		repo:       repo,
		google:     google,
		mail:       mail,
		limiter:    limiter,
		jwtSecret:  cfg.JWTSecret,
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
		resetURL:   cfg.ResetPasswordURL,
		logger:     logger,
	}
}

// Register creates an unverified account and queues the verification code
// email. The code itself is stored only as a digest; the plaintext exists in
// the one outbound message and nowhere else.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.Password == "" || input.ConfirmPassword == "" || input.AccountType == "" {
		return nil, domain.ErrMissingFields
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	accountType := domain.AccountType(input.AccountType)
	if !accountType.Valid() {
		return nil, domain.ErrInvalidAccountType
	}

	email := normalizeEmail(input.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	code, err := generateOTP()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expires := now.Add(otpTTL)
	user := &domain.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: string(hash),
		AccountType:  accountType,
		Newsletter:   input.Newsletter,
		IsVerified:   false,
		OTPHash:      hashOTP(code),
		OTPExpires:   &expires,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The repository turns a duplicate-key insert into ErrEmailTaken, which
	// covers registrations racing past the find-by-email check above.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.mail.Enqueue(verificationMail(email, code))
	s.logger.Info().Str("user_id", created.ID).Str("account_type", string(accountType)).Msg("user registered, verification code queued")

	return created, nil
}

// VerifyOTP checks the submitted code against the stored digest and, on
// success, flips the account to verified and issues a session token.
func (s *AuthService) VerifyOTP(ctx context.Context, userID, code string) (*ports.AuthResult, error) {
	if userID == "" || code == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return nil, domain.ErrAlreadyVerified
	}
	if !user.HasPendingOTP() {
		return nil, domain.ErrOTPNotIssued
	}
	if time.Now().UTC().After(user.OTPExpires.UTC()) {
		return nil, domain.ErrOTPExpired
	}
	if hashOTP(code) != user.OTPHash {
		return nil, domain.ErrOTPMismatch
	}

	user.IsVerified = true
	user.ClearOTP()
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("account verified")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// ResendOTP replaces any pending code and queues a fresh email. A 60-second
// cooldown per address is enforced through the limiter; a limiter outage
// fails open so a cache incident cannot block verification.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrMissingFields
	}
	email = normalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return domain.ErrAlreadyVerified
	}

	reserved := false
	ok, err := s.limiter.Reserve(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("resend limiter unavailable, allowing resend")
	} else if !ok {
		return domain.ErrResendCooldown
	} else {
		reserved = true
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	expires := time.Now().UTC().Add(otpTTL)
	user.OTPHash = hashOTP(code)
	user.OTPExpires = &expires
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		// Give the slot back: no code went out, so the user's retry should
		// not sit out the full window.
		if reserved {
			if rerr := s.limiter.Release(ctx, email); rerr != nil {
				s.logger.Warn().Err(rerr).Str("email", email).Msg("could not release resend slot")
			}
		}
		return err
	}

	s.mail.Enqueue(verificationMail(email, code))
	s.logger.Info().Str("user_id", user.ID).Msg("verification code re-issued")
	return nil
}

// Login authenticates with email and password. Unknown accounts and wrong
// passwords produce the same error; Google-federated accounts are bounced
// before any password comparison; unverified accounts get a distinguishable
// error carrying their identity so the client can route to code entry.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsGoogleUser {
		return nil, domain.ErrGoogleAccount
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, &domain.VerificationRequiredError{UserID: user.ID, Email: user.Email}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// GoogleLogin validates the third-party assertion and maps it onto a local
// account, creating or promoting one as needed. This is the only path that
// marks an account verified without an OTP: the issuer has already vouched
// for the email.
func (s *AuthService) GoogleLogin(ctx context.Context, assertion string) (*ports.AuthResult, error) {
	if assertion == "" {
		return nil, domain.ErrInvalidAssertion
	}

	identity, err := s.google.Resolve(ctx, assertion)
	if err != nil {
		return nil, err
	}
	if identity.Email == "" {
		return nil, domain.ErrInvalidAssertion
	}
	if !identity.EmailVerified {
		return nil, domain.ErrIdentityUnverified
	}

	email := normalizeEmail(identity.Email)
	user, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		first, last := splitName(identity)
		now := time.Now().UTC()
		user, err = s.repo.Create(ctx, &domain.User{
			FirstName:    first,
			LastName:     last,
			Email:        email,
			AccountType:  domain.AccountPerformer,
			IsGoogleUser: true,
			IsVerified:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return nil, err
		}
		s.logger.Info().Str("user_id", user.ID).Msg("google account created")
	case err != nil:
		return nil, err
	case !user.IsVerified:
		user.IsVerified = true
		user.ClearOTP()
		user.UpdatedAt = time.Now().UTC()
		if err := s.repo.Update(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info().Str("user_id", user.ID).Msg("account promoted to verified via google")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// ResetPassword replaces the stored hash after re-validating the policy.
func (s *AuthService) ResetPassword(ctx context.Context, email, password, confirmPassword string) error {
	if email == "" || password == "" || confirmPassword == "" {
		return domain.ErrMissingFields
	}
	if password != confirmPassword {
		return domain.ErrPasswordMismatch
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

// SendPasswordResetLink queues the reset-link email for an existing account.
func (s *AuthService) SendPasswordResetLink(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	s.mail.Enqueue(resetLinkMail(user.Email, user.FirstName, s.resetURL))
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// splitName derives first/last name from the issuer's claims, falling back to
// a best-effort split of the display name.
func splitName(id *ports.GoogleIdentity) (string, string) {
	first := strings.TrimSpace(id.GivenName)
	last := strings.TrimSpace(id.FamilyName)
	if first != "" || last != "" {
		if first == "" {
			first = "User"
		}
		return first, last
	}

	parts := strings.Fields(id.Name)
	if len(parts) == 0 {
		return "User", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func verificationMail(to, code string) ports.MailMessage {
	return ports.MailMessage{
		To:      to,
		Subject: "Verify your account - OTP",
		Text:    fmt.Sprintf("Your verification code is %s. It will expire in 10 minutes.", code),
		HTML:    fmt.Sprintf("<p>Your verification code is <strong>%s</strong>. It will expire in 10 minutes.</p>", code),
	}
}

func resetLinkMail(to, firstName, resetURL string) ports.MailMessage {
	return ports.MailMessage{
		To:      to,
		Subject: "Reset Password Link",
		Text:    fmt.Sprintf("Hello %s, here is your password reset link: %s", firstName, resetURL),
		HTML:    fmt.Sprintf("<p>Hello %s,</p><p>Here is your password reset link:</p><a href=%q target=\"_blank\">%s</a>", firstName, resetURL, resetURL),
	}
}
