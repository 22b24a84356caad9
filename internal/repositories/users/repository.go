// Package users stores user records and their credentials. PostgreSQL and
// SQLite implementations share the Repository interface and differ only in
// SQL dialect.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error)
	GetCredentialByID(ctx context.Context, id int64) (*models.Credential, error)
	UpdateCredential(ctx context.Context, id int64, value string) error
}

const userColumns = `id, name, email, password, phone, role, address, city, state, country, postal_code, active, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Phone, &role,
		&u.Address, &u.City, &u.State, &u.Country, &u.PostalCode, &u.Active,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFoundOrDBError(err)
	}
	u.Role = models.Role(role)
	return u, nil
}

func scanCredential(row *sql.Row) (*models.Credential, error) {
	c := &models.Credential{}
	if err := row.Scan(&c.UserID, &c.Email, &c.Value); err != nil {
		return nil, notFoundOrDBError(err)
	}
	return c, nil
}

func notFoundOrDBError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func roleOrDefault(r models.Role) models.Role {
	if r == "" {
		return models.RoleUser
	}
	return r
}
