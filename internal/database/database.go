package database

import (
	"context"
	"fmt"
	"time"

	"movie-demo/internal/config"
	"movie-demo/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
	logger *logrus.Logger
}

// Connect opens the PostgreSQL store described by cfg and migrates it.
func Connect(cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	return Open(postgres.Open(cfg.DSN()), cfg, log)
}

// Open connects through any gorm dialector, configures the pool and runs
// the migrations.
func Open(dialector gorm.Dialector, cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	log.WithField("dialect", dialector.Name()).Info("Database connection established")

	if err := autoMigrate(db, log); err != nil {
		log.WithError(err).Error("Failed to run auto migration")
		return nil, fmt.Errorf("failed to run auto migration: %w", err)
	}

	return &Database{
		DB:     db,
		config: cfg,
		logger: log,
	}, nil
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	d.logger.Debug("Closing database connection")
	return sqlDB.Close()
}

func autoMigrate(db *gorm.DB, log *logrus.Logger) error {
	log.Debug("Migrating movies table")

	if err := db.AutoMigrate(&models.Movie{}); err != nil {
		return err
	}

	log.Debug("Movies table migrated")
	return nil
}
