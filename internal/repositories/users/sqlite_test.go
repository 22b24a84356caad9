package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/migrations"
	"github.com/dmitrijs2005/usermanager/internal/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newSQLiteRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, migrations.SQLiteDir))

	return NewSQLiteRepository(db), db
}

func TestSQLite_CreateAndRead(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "$2a$04$abcdefghijklmnopqrstuu5Fq9hQe3y0D5hKx0D0p5J8hQ0lS0r1u",
		City:     "Lisbon",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.Active)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, models.RoleUser, created.Role)

	u, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
	assert.Equal(t, "Lisbon", u.City)

	exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLite_DuplicateEmail(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{Name: "A", Email: "dup@example.com", Password: "x"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.User{Name: "B", Email: "dup@example.com", Password: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestSQLite_CredentialRoundTrip(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	u, err := repo.Create(ctx, &models.User{Name: "Admin", Email: "admin@example.com", Password: "admin123", Role: models.RoleAdmin})
	require.NoError(t, err)

	c, err := repo.GetCredentialByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, c.UserID)
	assert.Equal(t, "admin123", c.Value)

	require.NoError(t, repo.UpdateCredential(ctx, u.ID, "replaced"))

	c, err = repo.GetCredentialByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "replaced", c.Value)
}

func TestSQLite_InactiveAndMissing(t *testing.T) {
	repo, db := newSQLiteRepo(t)
	ctx := context.Background()

	u, err := repo.Create(ctx, &models.User{Name: "Gone", Email: "gone@example.com", Password: "pw"})
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `UPDATE users SET active = 0 WHERE id = ?`, u.ID)
	require.NoError(t, err)

	_, err = repo.GetCredentialByEmail(ctx, "gone@example.com")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
	_, err = repo.GetCredentialByID(ctx, u.ID)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
	_, err = repo.GetUserByEmail(ctx, "gone@example.com")
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	err = repo.UpdateCredential(ctx, 12345, "value")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
