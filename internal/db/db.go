package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sit-project/sit-api/internal/config"
)

// Open connects to the database described by conf.
func Open(conf *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(conf)
	if err != nil {
		return nil, err
	}

	return open(dialector)
}

// OpenPostgresWithURL is used when DATABASE_URL is set, e.g. on hosted platforms.
func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return open(postgres.Open(url))
}

func Dialector(conf *config.DatabaseConfig) (gorm.Dialector, error) {
	switch conf.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			conf.Host, conf.Port, conf.User, conf.Password, conf.Name, conf.SSLMode, conf.TimeZone)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			conf.User, conf.Password, conf.Host, conf.Port, conf.Name)
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(conf.Name + "?_foreign_keys=on"), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewLogger(zap.L()),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

type zapWriter struct {
	l *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.l.Infof(format, args...)
}

// NewLogger routes gorm's log output through zap. Record-not-found is
// expected on lookups and stays silent.
func NewLogger(l *zap.Logger) gormlogger.Interface {
	return gormlogger.New(zapWriter{l: l.Named("gorm").Sugar()}, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
