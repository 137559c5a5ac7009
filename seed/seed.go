// Package seed populates the store with the default dataset, at most once
// per schema version. Rather than migrating fields between versions, a
// version bump wipes the tables and reloads everything; the store is a
// single-user local cache, so a destructive reset is acceptable.
package seed

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"lms/flagstore"
	"lms/store"
)

// SchemaVersion is bumped whenever the table layout or the default dataset
// changes. A bump forces a full re-seed on the next startup.
const SchemaVersion = 3

const flagKeyPrefix = "lms_data_seeded_v"

// ErrSeedIntegrity wraps failures during the seed pass. The seeded flag is
// only written after the transaction commits, so a failed pass is retried
// in full on the next startup instead of leaving half-seeded tables.
var ErrSeedIntegrity = errors.New("seeding did not complete")

type Seeder struct {
	store *store.Store
	flags *flagstore.Store
	log   *zap.SugaredLogger
}

func NewSeeder(st *store.Store, flags *flagstore.Store, log *zap.SugaredLogger) *Seeder {
	return &Seeder{store: st, flags: flags, log: log}
}

func flagKey(version int) string {
	return flagKeyPrefix + strconv.Itoa(version)
}

// EnsureSeeded loads the default dataset exactly once per schema version.
// Safe to call on every startup: when the current version's flag is already
// set it does nothing. Otherwise all tables are cleared and repopulated
// inside a single transaction.
func (s *Seeder) EnsureSeeded() error {
	if s.flags.Get(flagKey(SchemaVersion)) {
		return nil
	}

	err := s.store.Transaction(func(tx *store.Store) error {
		if err := tx.ClearAll(); err != nil {
			return err
		}
		user := defaultUser()
		if err := tx.PutUser(&user); err != nil {
			return err
		}
		if err := tx.BulkPutCourses(defaultCourses()); err != nil {
			return err
		}
		if err := tx.BulkPutLessons(defaultLessons()); err != nil {
			return err
		}
		if err := tx.BulkPutAssignments(defaultAssignments()); err != nil {
			return err
		}
		if err := tx.BulkPutMessages(defaultMessages()); err != nil {
			return err
		}
		return tx.BulkPutWeeklyProgress(defaultWeeklyProgress())
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSeedIntegrity, err)
	}

	// Drop stale version markers before recording the current one, so the
	// flag file reflects exactly one seeded version.
	for v := 1; v < SchemaVersion; v++ {
		if err := s.flags.Delete(flagKey(v)); err != nil {
			return err
		}
	}
	if err := s.flags.Set(flagKey(SchemaVersion), true); err != nil {
		return err
	}

	s.log.Infow("seeded default dataset", "version", SchemaVersion)
	return nil
}
