// Package mock provides test doubles for the integration suite.
package mock

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/PoseidonKRL/FINDASH/internal/integration/persistence/model"
)

// Db wraps an in-memory storage database for one scenario.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens a fresh in-memory storage database with the entries table
// migrated. Each scenario gets its own database so state never leaks.
func NewDb() (*Db, error) {
	dbConn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	if err := dbConn.AutoMigrate(&model.EntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &Db{DbConn: dbConn}, nil
}

// Close closes the underlying connection.
func (d *Db) Close() error {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
