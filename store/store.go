// Package store is the durable record store every other component talks to:
// six entity tables plus the notes side-table, persisted in a single local
// SQLite file. Mutations go through typed Put methods (whole-record upserts)
// and publish a per-table change notification after each successful write.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"lms/config"
	"lms/models"
)

// ErrNotFound is returned when a referenced id is absent from its table.
// Outside the seeder, hitting it means a caller asked for an id it never
// observed from a list query.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db       *gorm.DB
	notifier *notifier
	pending  *pendingTables // non-nil only while inside a transaction
}

// Open creates or opens the database file under cfg.DataDir and migrates
// the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(cfg.DataDir, cfg.DBFile)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lesson{},
		&models.Task{},
		&models.Assignment{},
		&models.MentorMessage{},
		&models.WeeklyProgress{},
		&models.LessonNote{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Store{db: db, notifier: newNotifier()}, nil
}

func (s *Store) Close() error {
	s.notifier.close()
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn against a store bound to a single database
// transaction, so multi-record updates are all-or-nothing. Change
// notifications raised inside fn are buffered and published only after the
// transaction commits. Calling Transaction on a store that is already
// transactional just runs fn in place.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	if s.pending != nil {
		return fn(s)
	}
	pending := &pendingTables{}
	err := s.db.Transaction(func(g *gorm.DB) error {
		return fn(&Store{db: g, notifier: s.notifier, pending: pending})
	})
	if err != nil {
		return err
	}
	for _, t := range pending.tables() {
		s.notifier.publish(t)
	}
	return nil
}

func (s *Store) changed(t Table) {
	if s.pending != nil {
		s.pending.add(t)
		return
	}
	s.notifier.publish(t)
}

// ClearAll empties every entity table and the notes table. Flags kept in
// the flag store are untouched.
func (s *Store) ClearAll() error {
	return s.Transaction(func(tx *Store) error {
		unscoped := tx.db.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, target := range []struct {
			model any
			table Table
		}{
			{&models.Task{}, TableLessons},
			{&models.Lesson{}, TableLessons},
			{&models.User{}, TableUsers},
			{&models.Course{}, TableCourses},
			{&models.Assignment{}, TableAssignments},
			{&models.MentorMessage{}, TableMessages},
			{&models.WeeklyProgress{}, TableWeeklyProgress},
			{&models.LessonNote{}, TableNotes},
		} {
			if err := unscoped.Delete(target.model).Error; err != nil {
				return fmt.Errorf("clear table: %w", err)
			}
			tx.changed(target.table)
		}
		return nil
	})
}
