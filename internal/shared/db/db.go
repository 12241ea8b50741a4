package db

import (
	"errors"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gassama94/drf-api/internal/shared/apperr"
)

type Store struct{ DB *gorm.DB }

// Open connects to Postgres with a short exponential backoff so the service
// survives the database coming up after it. TranslateError turns driver
// unique-violation errors into gorm.ErrDuplicatedKey, which the repositories
// rely on for the duplicate guards. Reads run at the store's default
// isolation level (READ COMMITTED on Postgres).
func Open(dsn string) *Store {
	var last error
	var g *gorm.DB
	for i := 0; i < 8; i++ {
		g, last = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if last == nil {
			sqlDB, _ := g.DB()
			sqlDB.SetMaxOpenConns(40)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
			return &Store{DB: g}
		}
		time.Sleep(time.Duration(1<<i) * time.Second)
	}
	log.Fatalf("db open failed: %v", last)
	return nil
}

// Translate folds storage errors into the request taxonomy. notFoundMsg and
// duplicateMsg name the resource in the caller's terms.
func Translate(err error, notFoundMsg, duplicateMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Validation(duplicateMsg)
	default:
		return err
	}
}
