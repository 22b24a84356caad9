package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usermanager/internal/dbx"
	"github.com/dmitrijs2005/usermanager/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (name, email, password, phone, role, address, city, state, country, postal_code)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, active, created_at, updated_at
		 `

	user.Role = roleOrDefault(user.Role)

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Password, user.Phone, string(user.Role),
		user.Address, user.City, user.State, user.Country, user.PostalCode,
	).Scan(&user.ID, &user.Active, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE email = $1 AND active = TRUE
		 `
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	query :=
		`SELECT id, email, password FROM users
		 WHERE email = $1 AND active = TRUE
		 `
	return scanCredential(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetCredentialByID(ctx context.Context, id int64) (*models.Credential, error) {
	query :=
		`SELECT id, email, password FROM users
		 WHERE id = $1 AND active = TRUE
		 `
	return scanCredential(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) UpdateCredential(ctx context.Context, id int64, value string) error {
	query :=
		`UPDATE users SET password = $1, updated_at = now()
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}
