// Package services implements the credential flows on top of the user
// repositories: login with transparent migration of legacy plaintext
// credentials, password change, and user creation.
package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/credentials"
	"github.com/dmitrijs2005/usermanager/internal/logging"
	"github.com/dmitrijs2005/usermanager/internal/models"
	"github.com/google/uuid"
)

// CredentialStore reads and replaces stored credentials. Reads only see
// active records and return common.ErrorNotFound when nothing matches.
type CredentialStore interface {
	GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error)
	GetCredentialByID(ctx context.Context, id int64) (*models.Credential, error)
	UpdateCredential(ctx context.Context, id int64, value string) error
}

type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeAuthenticated
)

func (o Outcome) String() string {
	if o == OutcomeAuthenticated {
		return "authenticated"
	}
	return "failed"
}

// LoginResult is the terminal state of a login attempt. Migrated is set when
// a legacy credential was rewritten as a hash; Rehashed when a hashed one was
// rewritten at the configured cost.
type LoginResult struct {
	Outcome  Outcome
	UserID   int64
	Migrated bool
	Rehashed bool
}

func (r LoginResult) Authenticated() bool { return r.Outcome == OutcomeAuthenticated }

type AuthService struct {
	store              CredentialStore
	hasher             *credentials.Hasher
	log                logging.Logger
	rehashOnCostChange bool
	newAttemptID       func() string
}

type AuthOption func(*AuthService)

func WithAuthLogger(l logging.Logger) AuthOption {
	return func(s *AuthService) { s.log = l.With("module", "auth") }
}

// WithRehashOnCostChange makes a successful login re-hash a stored bcrypt
// credential whose cost differs from the hasher's.
func WithRehashOnCostChange(enabled bool) AuthOption {
	return func(s *AuthService) { s.rehashOnCostChange = enabled }
}

func NewAuthService(store CredentialStore, hasher *credentials.Hasher, opts ...AuthOption) *AuthService {
	s := &AuthService{
		store:        store,
		hasher:       hasher,
		log:          logging.Discard(),
		newAttemptID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login checks candidate against the credential stored for email. It never
// returns an error: an unknown identity, a failed read and a wrong secret all
// produce OutcomeFailed. A matching legacy credential is rewritten as a hash
// of candidate; failing to do so is logged and does not fail the login.
func (s *AuthService) Login(ctx context.Context, email, candidate string) LoginResult {
	log := s.log.With("attempt_id", s.newAttemptID())
	failed := LoginResult{Outcome: OutcomeFailed}

	if candidate == "" {
		log.Info(ctx, "login failed", "reason", "empty secret")
		return failed
	}

	cred, err := s.store.GetCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			log.Info(ctx, "login failed", "reason", "unknown identity")
		} else {
			log.Error(ctx, "credential lookup failed", "error", err)
		}
		return failed
	}

	format := credentials.Classify(cred.Value)
	if !s.matches(candidate, cred.Value, format) {
		log.Info(ctx, "login failed", "reason", "secret mismatch", "user_id", cred.UserID)
		return failed
	}

	res := LoginResult{Outcome: OutcomeAuthenticated, UserID: cred.UserID}

	switch format {
	case credentials.FormatLegacy:
		res.Migrated = s.rewrite(ctx, log, cred.UserID, candidate)
		if res.Migrated {
			log.Info(ctx, "legacy credential migrated", "user_id", cred.UserID)
		}
	case credentials.FormatHashed:
		if s.rehashOnCostChange && s.hasher.NeedsRehash(cred.Value) {
			res.Rehashed = s.rewrite(ctx, log, cred.UserID, candidate)
			if res.Rehashed {
				log.Info(ctx, "credential rehashed", "user_id", cred.UserID, "cost", s.hasher.Cost())
			}
		}
	}

	log.Info(ctx, "login succeeded", "user_id", cred.UserID)
	return res
}

// rewrite stores a fresh hash of plaintext for userID and reports success.
func (s *AuthService) rewrite(ctx context.Context, log logging.Logger, userID int64, plaintext string) bool {
	hashed, err := s.hasher.Hash(plaintext)
	if err != nil {
		log.Warn(ctx, "credential hash failed", "user_id", userID, "error", err)
		return false
	}
	if err := s.store.UpdateCredential(ctx, userID, hashed); err != nil {
		log.Warn(ctx, "credential write failed", "user_id", userID, "error", err)
		return false
	}
	return true
}

func (s *AuthService) matches(plaintext, stored string, format credentials.Format) bool {
	switch format {
	case credentials.FormatHashed:
		return s.hasher.Verify(plaintext, stored)
	case credentials.FormatLegacy:
		return plaintext != "" && plaintext == stored
	default:
		return false
	}
}

// ChangePassword replaces the credential of userID. Checks run in order and
// the first failure is returned:
//
//	unknown user or wrong current secret   common.ErrorUnauthorized
//	empty new secret                       common.ErrEmptyPassword
//	new secret rejected by strength        common.ErrWeakPassword
//	new secret too long                    common.ErrPasswordTooLong
//	new secret equals the stored one       common.ErrPasswordReuse
//	confirmation differs                   common.ErrPasswordMismatch
//
// A legacy credential is compared as plaintext and is not migrated here.
// Failures to read or write the store match common.ErrPersistence.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error {
	log := s.log.With("attempt_id", s.newAttemptID(), "user_id", userID)

	cred, err := s.store.GetCredentialByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			log.Info(ctx, "password change refused", "reason", "unknown identity")
			return common.ErrorUnauthorized
		}
		log.Error(ctx, "credential lookup failed", "error", err)
		return fmt.Errorf("%w: error reading credential: %w", common.ErrPersistence, err)
	}

	format := credentials.Classify(cred.Value)
	if !s.matches(current, cred.Value, format) {
		log.Info(ctx, "password change refused", "reason", "secret mismatch")
		return common.ErrorUnauthorized
	}

	if err := CheckNewPassword(newPassword); err != nil {
		log.Info(ctx, "password change refused", "reason", err.Error())
		return err
	}

	if s.matches(newPassword, cred.Value, format) {
		log.Info(ctx, "password change refused", "reason", "reuse")
		return common.ErrPasswordReuse
	}

	if newPassword != confirm {
		log.Info(ctx, "password change refused", "reason", "confirmation mismatch")
		return common.ErrPasswordMismatch
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing credential: %w", err)
	}

	if err := s.store.UpdateCredential(ctx, userID, hashed); err != nil {
		log.Error(ctx, "credential write failed", "error", err)
		return fmt.Errorf("%w: error updating credential: %w", common.ErrPersistence, err)
	}

	log.Info(ctx, "password changed")
	return nil
}

// CheckNewPassword applies the policy for secrets that are about to be
// stored: non-empty, better than StrengthRejected, at most
// credentials.MaxLength characters.
func CheckNewPassword(p string) error {
	if p == "" {
		return common.ErrEmptyPassword
	}
	if credentials.Score(p) == credentials.StrengthRejected {
		return common.ErrWeakPassword
	}
	if utf8.RuneCountInString(p) > credentials.MaxLength {
		return common.ErrPasswordTooLong
	}
	return nil
}
