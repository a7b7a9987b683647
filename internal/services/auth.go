package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/sbilibin2017/pass-vault/internal/jwt"
	"github.com/sbilibin2017/pass-vault/internal/logger"
	"github.com/sbilibin2017/pass-vault/internal/models"
	"github.com/sbilibin2017/pass-vault/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrInvalidInput       = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
)

// MinPasswordLength is the minimum accepted account password length.
const MinPasswordLength = 8

// bcryptCost is deliberately above the library default to keep offline
// brute force expensive.
const bcryptCost = 12

// Identity is a verified token identity.
type Identity struct {
	UserID int64
	Email  string
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string) (*models.UserDB, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// SessionWriter mirrors issued tokens for revocation and audit.
type SessionWriter interface {
	Save(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	DeactivateByTokenHash(ctx context.Context, tokenHash string) error
}

// TokenProvider issues and verifies signed session tokens.
type TokenProvider interface {
	Generate(ctx context.Context, userID int64, email string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	Exp() time.Duration
}

// AuthService handles signup, login, token verification and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionWriter
	tokens   TokenProvider
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionWriter, tokens TokenProvider) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// HashToken returns the one-way fingerprint of a token stored in the
// session mirror. The token itself is never persisted.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// issueSession generates a signed token for the user and mirrors its
// fingerprint in the session store.
func (svc *AuthService) issueSession(ctx context.Context, user *models.UserDB) (string, error) {
	token, err := svc.tokens.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	expiresAt := time.Now().Add(svc.tokens.Exp())
	if err := svc.sessions.Save(ctx, user.ID, HashToken(token), expiresAt); err != nil {
		// The mirror is for revocation and audit; its failure does not
		// invalidate the issued token.
		logger.Log.Warnw("failed to mirror session", "user_id", user.ID, "err", err)
	}

	return token, nil
}

// Signup validates the input, hashes the password, creates the user
// and issues a session token for it.
func (svc *AuthService) Signup(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return "", nil, ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user, err := svc.writer.Save(ctx, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("signup rejected, email exists", "email", email)
			return "", nil, ErrEmailExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.issueSession(ctx, user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Login authenticates a user, stamps last_login, issues a signed token
// and mirrors its fingerprint. A missing user and a wrong password are
// indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidInput
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login failed, unknown email", "email", email)
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		logger.Log.Infow("login refused, account deactivated", "user_id", user.ID)
		return "", nil, ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login failed, invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is best-effort.
		logger.Log.Warnw("failed to update last_login", "user_id", user.ID, "err", err)
	}

	token, err := svc.issueSession(ctx, user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Verify checks a token's signature and expiry and returns the
// identity it asserts. Any failure is uniform.
func (svc *AuthService) Verify(ctx context.Context, token string) (*Identity, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// Logout deactivates the mirrored session for the given token. The
// caller is expected to discard the token; a still-valid token remains
// cryptographically verifiable until expiry.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if err := svc.sessions.DeactivateByTokenHash(ctx, HashToken(token)); err != nil {
		logger.Log.Errorw("failed to deactivate session", "err", err)
		return err
	}
	return nil
}
