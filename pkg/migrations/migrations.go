package migrations

import (
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
)

// Do applies all pending migrations from migrationsPath against the
// database behind connString. ErrNoChange is not an error.
func Do(connString, migrationsPath string, logger *slog.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("no migrations to apply")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	logger.Debug("migrations applied")
	return nil
}
