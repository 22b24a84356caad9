package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/usermanager/internal/config"
	"github.com/dmitrijs2005/usermanager/internal/credentials"
	"github.com/dmitrijs2005/usermanager/internal/filex"
	"github.com/dmitrijs2005/usermanager/internal/logging"
	"github.com/dmitrijs2005/usermanager/internal/models"
	"github.com/dmitrijs2005/usermanager/internal/repositories/repomanager"
	"github.com/dmitrijs2005/usermanager/internal/services"
)

type authService interface {
	Login(ctx context.Context, email, candidate string) services.LoginResult
	ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error
}

type userService interface {
	Create(ctx context.Context, user *models.User, password string) (*models.User, error)
}

type App struct {
	authService authService
	userService userService
	logger      logging.Logger
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
	userID      int64
	email       string
}

// NewApp opens the configured database, applies migrations and builds the
// services. Close releases the database.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	hasher, err := credentials.NewHasher(c.BcryptCost)
	if err != nil {
		return nil, err
	}

	m, err := repomanager.NewRepositoryManager(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := openDatabase(ctx, c, m)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(m.Users(db), hasher,
		services.WithAuthLogger(logger),
		services.WithRehashOnCostChange(c.RehashOnCostChange))
	us := services.NewUserService(db, m, hasher, logger)

	a := newApp(as, us, bufio.NewReader(os.Stdin), os.Stdout)
	a.logger = logger
	a.db = db
	return a, nil
}

func newApp(as authService, us userService, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		authService: as,
		userService: us,
		logger:      logging.Discard(),
		reader:      reader,
		out:         out,
	}
}

// openDatabase connects with the configured driver and brings the schema up
// to date, both bounded by ConnectTimeout.
func openDatabase(ctx context.Context, c *config.Config, m repomanager.RepositoryManager) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, c.ConnectTimeout)
	defer cancel()

	if c.DatabaseDriver == config.DriverSQLite {
		if path := filex.SQLitePath(c.DatabaseDSN); path != "" {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return nil, fmt.Errorf("db dir error: %w", err)
			}
		}
	}

	db, err := sql.Open(c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if c.DatabaseDriver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return db, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.userID != 0
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.email)
}

// Run executes command once, or starts the REPL when command is empty.
func (a *App) Run(ctx context.Context, command string) error {
	a.logger.Debug(ctx, "starting", "command", command)

	switch command {
	case "":
		fmt.Fprintln(a.out, "usermanager (type 'help' for commands)")
		runREPL(ctx, a, a.getStatus, a.reader)
		return nil
	case "login":
		return a.Login(ctx)
	case "passwd":
		return a.ChangePassword(ctx)
	case "adduser":
		return a.AddUser(ctx)
	case "strength":
		return a.Strength(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
