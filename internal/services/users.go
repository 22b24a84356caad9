package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/credentials"
	"github.com/dmitrijs2005/usermanager/internal/dbx"
	"github.com/dmitrijs2005/usermanager/internal/logging"
	"github.com/dmitrijs2005/usermanager/internal/models"
	"github.com/dmitrijs2005/usermanager/internal/repositories/repomanager"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *credentials.Hasher
	log         logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *credentials.Hasher, log logging.Logger) *UserService {
	if log == nil {
		log = logging.Discard()
	}
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		log:         log.With("module", "users"),
	}
}

// Create stores user with password hashed. The password never reaches the
// store in plaintext. An existing email yields common.ErrAlreadyExists.
func (s *UserService) Create(ctx context.Context, user *models.User, password string) (*models.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	user.Name = strings.TrimSpace(user.Name)

	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrInvalidInput)
	}
	if user.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrInvalidInput)
	}
	if user.Role != "" && !user.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrInvalidInput, user.Role)
	}
	if err := CheckNewPassword(password); err != nil {
		return nil, err
	}

	var created *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return common.ErrAlreadyExists
		}

		hashed, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("error hashing credential: %w", err)
		}
		user.Password = hashed

		created, err = repo.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user created", "user_id", created.ID, "role", string(created.Role))
	return created, nil
}

// GetByEmail returns the active user registered under email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	return user, nil
}
