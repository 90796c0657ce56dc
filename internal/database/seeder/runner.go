// Package seeder loads reference and demo data into a migrated database.
package seeder

import (
	"context"
	"fmt"
	"time"

	"staff-match/internal/database"

	"go.uber.org/zap"
)

// Seeder writes one data set; running it twice must be harmless.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run executes the seeders in order and stops at the first failure.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNilDB
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeded", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return nil
}
