// Package migrator applies the embedded SQL migrations with golang-migrate.
package migrator

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

var (
	// ErrSource возвращается, если не удалось прочитать миграции
	ErrSource = errors.New("migrator: failed to open migration source")

	// ErrMigrate возвращается при ошибке применения миграций
	ErrMigrate = errors.New("migrator: migration failed")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет миграции из fs.FS к базе по DSN
type Migrator struct {
	m      *migrate.Migrate
	logger Logger
}

// New создает мигратор. dsn должен иметь схему postgres://
func New(migrations fs.FS, dsn string, logger Logger) (*Migrator, error) {
	src, err := iofs.New(migrations, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: New - %v", ErrMigrate, err)
	}

	return &Migrator{m: m, logger: logger}, nil
}

// Up применяет все новые миграции
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.logger.Info("Migrations: no change")
			return nil
		}
		return fmt.Errorf("%w: Up - %v", ErrMigrate, err)
	}
	mg.logger.Info("Migrations applied")
	return nil
}

// Down откатывает одну миграцию
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("%w: Down - %v", ErrMigrate, err)
	}
	mg.logger.Info("Rolled back one migration")
	return nil
}

// Version возвращает текущую версию схемы
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: Version - %v", ErrMigrate, err)
	}
	return version, dirty, nil
}

// Close закрывает источник и соединение с базой
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}
