package users

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/platform/logger"
	"pawfam-api/internal/ports/auth"
	mailport "pawfam-api/internal/ports/mail"

	"github.com/google/uuid"
)

const (
	ResetCodeTTL       = 10 * time.Minute
	resetCodeLength    = 6
	resetCodeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	minPasswordLength  = 6
	minResetPwdLength  = 8
	errBadCredentials  = "Invalid credentials"
	errNotVendorLogin  = "Invalid credentials or not a vendor account"
	errResetCodeAbsent = "No OTP found. Please request a new OTP."
)

type Service struct {
	repo   Repository
	codes  ResetCodeStore
	hasher PasswordHasher
	tokens auth.TokenIssuer
	mailer mailport.Sender
	now    func() time.Time
	newOTP func() (string, error)
}

func NewService(repo Repository, codes ResetCodeStore, hasher PasswordHasher, tokens auth.TokenIssuer, mailer mailport.Sender) *Service {
	return &Service{
		repo:   repo,
		codes:  codes,
		hasher: hasher,
		tokens: tokens,
		mailer: mailer,
		now:    time.Now,
		newOTP: generateResetCode,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s *Service) Register(ctx context.Context, role auth.Role, in RegisterInput) (Session, error) {
	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return Session{}, apperr.Invalid("Please provide username, email, and password")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Session{}, apperr.Invalid("Please provide a valid email")
	}
	if len(in.Password) < minPasswordLength {
		return Session{}, apperr.Invalid("Password must be at least 6 characters long")
	}
	if !role.Valid() {
		return Session{}, apperr.Invalid("Invalid role")
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Session{}, apperr.Conflict("User already exists with this email")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Session{}, err
	}
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return Session{}, apperr.Conflict("Username is already taken")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Session{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Session{}, err
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// el índice único del store cubre la carrera entre el chequeo y el insert
	if err := s.repo.Create(ctx, u); err != nil {
		return Session{}, err
	}
	return s.session(ctx, u)
}

// Login autentica por email. Con requireRole != "" además exige ese rol.
func (s *Service) Login(ctx context.Context, email, password string, requireRole auth.Role) (Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, apperr.Invalid("Please provide email and password")
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		if requireRole != "" {
			return Session{}, apperr.Invalid(errNotVendorLogin)
		}
		return Session{}, apperr.Invalid(errBadCredentials)
	}
	if err != nil {
		return Session{}, err
	}
	if requireRole != "" && u.Role != requireRole {
		return Session{}, apperr.Invalid(errNotVendorLogin)
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return Session{}, apperr.Invalid(errBadCredentials)
	}
	return s.session(ctx, u)
}

func (s *Service) Me(ctx context.Context, userID string) (User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return User{}, apperr.Unauthorized("Token is not valid")
	}
	return u, err
}

func (s *Service) SendResetCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return apperr.Invalid("Please provide email address")
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("No account found with this email address")
	}
	if err != nil {
		return err
	}

	code, err := s.newOTP()
	if err != nil {
		return err
	}
	if err := s.codes.Save(ctx, email, code, ResetCodeTTL); err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, resetCodeMessage(u, code)); err != nil {
		// sin mail el código no sirve
		_ = s.codes.Delete(ctx, email)
		return err
	}
	return nil
}

func (s *Service) VerifyResetCode(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	if email == "" || strings.TrimSpace(code) == "" {
		return apperr.Invalid("Please provide email and OTP")
	}
	if _, err := s.repo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	return s.checkCode(ctx, email, code)
}

func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)
	if email == "" || strings.TrimSpace(code) == "" || newPassword == "" {
		return apperr.Invalid("Please provide email, OTP, and new password")
	}
	if len(newPassword) < minResetPwdLength {
		return apperr.Invalid("Password must be at least 8 characters long")
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	if err != nil {
		return err
	}
	if err := s.checkCode(ctx, email, code); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, u.ID, hash, s.now()); err != nil {
		return err
	}
	_ = s.codes.Delete(ctx, email)

	if err := s.mailer.Send(ctx, passwordChangedMessage(u)); err != nil {
		logger.FromContext(ctx).Warn("password changed mail failed", map[string]any{
			"user_id": u.ID,
			"error":   err.Error(),
		})
	}
	return nil
}

func (s *Service) checkCode(ctx context.Context, email, code string) error {
	stored, err := s.codes.Get(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.Invalid(errResetCodeAbsent)
	}
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(code), stored) {
		return apperr.Invalid("Invalid OTP. Please try again.")
	}
	return nil
}

func (s *Service) session(ctx context.Context, u User) (Session, error) {
	token, err := s.tokens.Issue(ctx, auth.Claims{UserID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: u}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func generateResetCode() (string, error) {
	max := big.NewInt(int64(len(resetCodeAlphabet)))
	b := make([]byte, resetCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = resetCodeAlphabet[n.Int64()]
	}
	return string(b), nil
}
