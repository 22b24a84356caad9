package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usermanager/internal/dbx"
	"github.com/dmitrijs2005/usermanager/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (name, email, password, phone, role, address, city, state, country, postal_code)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 `

	user.Role = roleOrDefault(user.Role)

	res, err := r.db.ExecContext(ctx, query,
		user.Name, user.Email, user.Password, user.Phone, string(user.Role),
		user.Address, user.City, user.State, user.Country, user.PostalCode,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT active, created_at, updated_at FROM users WHERE id = ?`, user.ID,
	).Scan(&user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE email = ? AND active = 1
		 `
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE email = ?`

	var n int
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&n); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	query :=
		`SELECT id, email, password FROM users
		 WHERE email = ? AND active = 1
		 `
	return scanCredential(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteRepository) GetCredentialByID(ctx context.Context, id int64) (*models.Credential, error) {
	query :=
		`SELECT id, email, password FROM users
		 WHERE id = ? AND active = 1
		 `
	return scanCredential(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) UpdateCredential(ctx context.Context, id int64, value string) error {
	query :=
		`UPDATE users SET password = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?
		 `

	res, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}
