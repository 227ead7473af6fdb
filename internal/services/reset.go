package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/vendormax/apiserver/internal/notify"
	"github.com/vendormax/apiserver/internal/store"
)

// ErrInvalidResetToken is returned when a reset token is unknown, expired,
// or already consumed.
var ErrInvalidResetToken = errors.New("invalid or expired reset token")

const resetTokenBytes = 32

// ResetTokenRepository defines persistence operations for reset tokens.
type ResetTokenRepository interface {
	Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error
	Consume(ctx context.Context, userID int, tokenHash string) error
}

// ResetNotifier dispatches reset emails. Publish failure surfaces to the
// caller; there is no retry at this layer.
type ResetNotifier interface {
	SendPasswordReset(ctx context.Context, email notify.ResetEmail) error
}

// PasswordResetService drives the reset flow: a requested token is stored
// hashed with an expiry, mailed out via the notifier, and consumed exactly
// once to overwrite the user's password hash.
type PasswordResetService struct {
	users    UserRepository
	tokens   ResetTokenRepository
	notifier ResetNotifier
	baseURL  string
	tokenTTL time.Duration
}

func NewPasswordResetService(
	users UserRepository,
	tokens ResetTokenRepository,
	notifier ResetNotifier,
	baseURL string,
	tokenTTL time.Duration,
) *PasswordResetService {
	return &PasswordResetService{
		users:    users,
		tokens:   tokens,
		notifier: notifier,
		baseURL:  baseURL,
		tokenTTL: tokenTTL,
	}
}

// Request issues a fresh token for the account registered under email and
// publishes the reset link. Unknown emails propagate the store's not-found
// error; the handler keeps the observed 404 contract.
func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}

	if err := s.tokens.Create(ctx, user.ID, hashResetToken(token), time.Now().Add(s.tokenTTL)); err != nil {
		return err
	}

	return s.notifier.SendPasswordReset(ctx, notify.ResetEmail{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		ResetLink: fmt.Sprintf("%s/reset-password/%d/%s", s.baseURL, user.ID, token),
	})
}

// Consume validates and burns the token, then overwrites the user's
// password hash. A token can be consumed at most once.
func (s *PasswordResetService) Consume(ctx context.Context, userID int, token, passwordHash string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.tokens.Consume(ctx, userID, hashResetToken(token)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	return s.users.UpdatePassword(ctx, userID, passwordHash)
}

func newResetToken() (string, error) {
	var buf [resetTokenBytes]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
