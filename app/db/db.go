package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Driver   string // "sqlite" (default) or "mysql"
	Path     string // sqlite database file
	Host     string
	Port     int
	User     string
	Password string
	DBName   string

	// CaseSensitiveLike flips SQLite's LIKE to case-sensitive matching.
	// MySQL keeps its collation-defined behavior either way.
	CaseSensitiveLike bool
}

// Connect opens the configured engine. SQLite runs with foreign_keys on so
// the notes cascade actually fires; without the pragma the constraint is
// declared but ignored.
func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch cfg.Driver {
	case "", "sqlite":
		dsn := fmt.Sprintf("file:%s?_fk=1", cfg.Path)
		if cfg.CaseSensitiveLike {
			dsn += "&_case_sensitive_like=1"
		}
		return gorm.Open(sqlite.Open(dsn), gcfg)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), gcfg)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}
