package database

import (
	"fmt"
	"time"

	"salesflow-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// DefaultOptions returns the connection settings used by the server
func DefaultOptions() *Options {
	return &Options{
		LogLevel:        logger.Error,
		MaxOpenConns:    20,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
		AutoMigrate:     true,
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM
// models. It also installs the deals change-notification trigger that
// feeds the live-update channel.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if opts.AutoMigrate {
		all := []interface{}{
			&models.SalesRepRecord{},
			&models.DealRecord{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		if err := installDealNotifyTrigger(db); err != nil {
			return nil, fmt.Errorf("install notify trigger: %w", err)
		}
	}

	return db, nil
}

// installDealNotifyTrigger emits NOTIFY deals_changed on any write to the
// deals table. The payload carries no guarantees beyond "something
// changed"; subscribers re-fetch the whole collection.
func installDealNotifyTrigger(db *gorm.DB) error {
	const fn = `
CREATE OR REPLACE FUNCTION notify_deals_changed() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify('deals_changed', TG_OP);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql;`
	if err := db.Exec(fn).Error; err != nil {
		return err
	}
	const trigger = `
DROP TRIGGER IF EXISTS deals_changed_trigger ON deals;
CREATE TRIGGER deals_changed_trigger
AFTER INSERT OR UPDATE OR DELETE ON deals
FOR EACH STATEMENT EXECUTE FUNCTION notify_deals_changed();`
	return db.Exec(trigger).Error
}
