package db

import (
	"log"
	"os"
	"time"

	"patidestek/config"
	"patidestek/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dao is the shared gorm handle used by all services.
var Dao *gorm.DB

// Init opens the MySQL connection, tunes the pool from config and migrates
// the schema. Referential actions (cascade, set-null) are handled in the
// services, so FK constraints are not created during migration.
func Init(cfg *config.Config) {
	dsn := cfg.Database.DSN
	if dsn == "" {
		logrus.Fatal("database DSN not configured, set MYSQL_DSN or database.dsn")
	}

	var logLevel logger.LogLevel
	switch cfg.Database.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "info":
		logLevel = logger.Info
	default:
		logLevel = logger.Warn
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			Colorful:                  false,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  logLevel,
		},
	)

	openDb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                                   dbLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("db connection failed")
	}

	dbCon, err := openDb.DB()
	if err != nil {
		logrus.WithError(err).Fatal("unwrapping sql.DB failed")
	}

	dbCon.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbCon.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbCon.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	dbCon.SetConnMaxIdleTime(30 * time.Minute)

	Dao = openDb

	if err := Migrate(Dao); err != nil {
		logrus.WithError(err).Fatal("schema migration failed")
	}

	logrus.WithFields(logrus.Fields{
		"max_open": cfg.Database.MaxOpenConns,
		"max_idle": cfg.Database.MaxIdleConns,
	}).Info("database connected")
}

// Migrate creates or updates all tables.
func Migrate(dao *gorm.DB) error {
	return dao.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Tag{},
		&model.Post{},
		&model.Comment{},
		&model.CommentReport{},
	)
}

// Stats exposes connection pool statistics for the health endpoint.
func Stats() map[string]interface{} {
	if Dao == nil {
		return map[string]interface{}{"status": "uninitialized"}
	}
	sqlDB, err := Dao.DB()
	if err != nil {
		return map[string]interface{}{"status": "error"}
	}
	stats := sqlDB.Stats()
	return map[string]interface{}{
		"open":    stats.OpenConnections,
		"in_use":  stats.InUse,
		"idle":    stats.Idle,
		"waiting": stats.WaitCount,
	}
}
