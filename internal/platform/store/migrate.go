package store

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5 driver
	_ "github.com/golang-migrate/migrate/v4/source/file"     // file:// source

	"foodreview/internal/platform/logger"
)

// Migrate applies pending SQL migrations from dir against the database at url.
// A url like postgres://... is rewritten to the pgx5 driver scheme
func Migrate(url, dir string) error {
	m, err := migrate.New("file://"+dir, pgxURL(url))
	if err != nil {
		return err
	}
	defer func() {
		if serr, derr := m.Close(); serr != nil || derr != nil {
			logger.Named("migrate").Warn().AnErr("source", serr).AnErr("db", derr).Msg("close failed")
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// pgxURL points migrate at the pgx5 database driver
func pgxURL(url string) string {
	const plain = "postgres://"
	if len(url) > len(plain) && url[:len(plain)] == plain {
		return "pgx5://" + url[len(plain):]
	}
	return url
}
