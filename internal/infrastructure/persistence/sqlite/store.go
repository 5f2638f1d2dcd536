// Package sqlite provides the file-backed collection store using GORM
package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// collectionModel is one named snapshot row
type collectionModel struct {
	Name    string `gorm:"primaryKey;size:64"`
	Payload []byte
}

// TableName overrides the table name
func (collectionModel) TableName() string {
	return "collections"
}

// Store implements the collection store on a SQLite database file
type Store struct {
	db *gorm.DB
}

// NewStore opens the database file, creating and migrating it as needed.
// An empty path selects an in-memory database.
func NewStore(path string, logLevel logger.LogLevel) (*Store, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&collectionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the stored snapshot. A collection that was never written
// reads as nil with no error.
func (s *Store) Get(ctx context.Context, collection string) ([]byte, error) {
	var model collectionModel

	result := s.db.WithContext(ctx).First(&model, "name = ?", collection)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return model.Payload, nil
}

// Set replaces the collection snapshot
func (s *Store) Set(ctx context.Context, collection string, data []byte) error {
	model := collectionModel{Name: collection, Payload: data}

	result := s.db.WithContext(ctx).Save(&model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete drops the collection entirely
func (s *Store) Delete(ctx context.Context, collection string) error {
	result := s.db.WithContext(ctx).Delete(&collectionModel{}, "name = ?", collection)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
