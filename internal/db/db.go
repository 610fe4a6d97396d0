package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNoDSN = errors.New("DATABASE_URL is empty")

// Options tunes the gorm logger and the connection pool.
type Options struct {
	// Queries slower than this are logged at Warn.
	SlowThreshold time.Duration
	// logger.Info also prints every statement; the seeder turns it on with -verbose.
	LogLevel logger.LogLevel

	// The server reads the catalog once at startup and the seeder runs one
	// transaction, so neither holds more than a couple of connections.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultOptions logs slow queries only and keeps a small pool.
func DefaultOptions() Options {
	return Options{
		SlowThreshold:   100 * time.Millisecond,
		LogLevel:        logger.Warn,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// Open connects to dsn with DefaultOptions.
func Open(dsn string) (*gorm.DB, error) {
	return OpenWith(dsn, DefaultOptions())
}

// OpenWith connects to dsn and applies opts to the logger and pool.
func OpenWith(dsn string, opts Options) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrNoDSN
	}

	lg := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             opts.SlowThreshold,
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: lg,
	})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	log.Println("[db] connected to database")
	return gdb, nil
}
