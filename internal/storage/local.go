// Package storage is the durable local cache of the budget tracker.
//
// Values are JSON documents stored under string keys in a SQLite database.
package storage

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrGeneral  = errors.New("an error occurred in the local storage")
	ErrNotFound = errors.New("no value is stored for this key")
)

// KV is a string key-value store.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Entry is a single stored value.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// Local is the SQLite backed key-value store.
type Local struct {
	DB *gorm.DB
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) (*Local, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Entry{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.Callback().Query().After("*").Register("budget_tracker:after_query", queryCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Query().After("*").Register("budget_tracker:after_query_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Create().After("*").Register("budget_tracker:after_create_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Delete().After("*").Register("budget_tracker:after_delete_general", generalCallback)
	if err != nil {
		return nil, err
	}

	return &Local{DB: db}, nil
}

// Get returns the value stored for key. ErrNotFound is returned for keys
// without a value.
func (l *Local) Get(key string) (string, error) {
	var entry Entry
	err := l.DB.Where(&Entry{Key: key}).First(&entry).Error
	if err != nil {
		return "", err
	}

	return entry.Value, nil
}

// Set stores value for key, replacing any previous value.
func (l *Local) Set(key, value string) error {
	return l.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

// Delete removes the value for key. Deleting a missing key is not an error.
func (l *Local) Delete(key string) error {
	return l.DB.Where(&Entry{Key: key}).Delete(&Entry{}).Error
}

// Keys returns all stored keys with the given prefix, sorted.
func (l *Local) Keys(prefix string) ([]string, error) {
	var keys []string
	err := l.DB.Model(&Entry{}).Where(`"key" LIKE ?`, prefix+"%").Order(`"key"`).Pluck("key", &keys).Error
	return keys, err
}

// Ping verifies that the database is reachable.
func (l *Local) Ping() error {
	sqlDB, err := l.DB.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("%w: %v", ErrGeneral, err)
	}

	return nil
}

// Close closes the database connection.
func (l *Local) Close() error {
	sqlDB, err := l.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// queryCallback replaces the generic "no record" error
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = ErrNotFound
	}
}

// generalCallback handles unspecified errors.
//
// The error is logged and replaced by ErrGeneral since no more helpful
// information can be given to the caller.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}
