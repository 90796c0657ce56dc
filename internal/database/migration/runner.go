// Package migration applies the versioned SQL files compiled into the binary.
package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//go:embed sql/*.sql
var embedded embed.FS

// lockKey serialises concurrent runners across replicas.
const lockKey int64 = 582047331

var (
	ErrChecksumMismatch = errors.New("migration checksum mismatch")
	errNilDB            = errors.New("nil db")
)

// fileRe matches V<version>__<name>.sql.
var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

type Runner struct {
	// FS defaults to the migrations compiled into the binary.
	FS     fs.FS
	Logger *zap.Logger
}

type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

// State pairs a known migration with whether the database has it.
type State struct {
	Migration
	Applied bool
}

// Run applies pending migrations in version order, each in its own
// transaction, while holding a session advisory lock.
func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errNilDB
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	migs, err := r.Load()
	if err != nil || len(migs) == 0 {
		return err
	}

	// Lock and unlock must run on the same session.
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	states, err := compare(ctx, conn, migs)
	if err != nil {
		return err
	}

	pending := 0
	for _, st := range states {
		if st.Applied {
			continue
		}
		if err := apply(ctx, conn, st.Migration); err != nil {
			return err
		}
		pending++
		log.Info("migration applied", zap.Int64("version", st.Version), zap.String("name", st.Name))
	}
	if pending == 0 {
		log.Debug("schema up to date", zap.Int("migrations", len(states)))
	}
	return nil
}

// Status reports every known migration and whether it has been applied.
func (r Runner) Status(ctx context.Context, db *sql.DB) ([]State, error) {
	if db == nil {
		return nil, errNilDB
	}
	migs, err := r.Load()
	if err != nil {
		return nil, err
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return compare(ctx, conn, migs)
}

// Load parses the migration files, ignoring names that do not match fileRe.
func (r Runner) Load() ([]Migration, error) {
	fsys := r.FS
	if fsys == nil {
		sub, err := fs.Sub(embedded, "sql")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}

	migs := make([]Migration, 0, len(names))
	for _, name := range names {
		m, ok, err := parse(fsys, name)
		if err != nil {
			return nil, err
		}
		if ok {
			migs = append(migs, m)
		}
	}

	sort.Slice(migs, func(i, j int) bool { return migs[i].Version < migs[j].Version })
	for i := 1; i < len(migs); i++ {
		if migs[i].Version == migs[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s",
				migs[i].Version, migs[i-1].Filename, migs[i].Filename)
		}
	}
	return migs, nil
}

func parse(fsys fs.FS, name string) (Migration, bool, error) {
	sm := fileRe.FindStringSubmatch(path.Base(name))
	if sm == nil {
		return Migration{}, false, nil
	}
	version, err := strconv.ParseInt(sm[1], 10, 64)
	if err != nil {
		return Migration{}, false, fmt.Errorf("invalid migration version: %s", name)
	}

	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Migration{}, false, err
	}
	body := strings.TrimSpace(string(b))
	if body == "" {
		return Migration{}, false, fmt.Errorf("empty migration file: %s", name)
	}

	sum := sha256.Sum256([]byte(body))
	return Migration{
		Version:  version,
		Name:     sm[2],
		Filename: name,
		SQL:      body,
		Checksum: hex.EncodeToString(sum[:]),
	}, true, nil
}

// compare marks which migrations are applied and rejects edited ones.
func compare(ctx context.Context, conn *sql.Conn, migs []Migration) ([]State, error) {
	if _, err := conn.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := map[int64]string{}
	for rows.Next() {
		var (
			v   int64
			sum string
		)
		if err := rows.Scan(&v, &sum); err != nil {
			return nil, err
		}
		applied[v] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	states := make([]State, 0, len(migs))
	for _, m := range migs {
		sum, ok := applied[m.Version]
		if ok && sum != m.Checksum {
			return nil, fmt.Errorf("%w: version=%d file=%s", ErrChecksumMismatch, m.Version, m.Filename)
		}
		states = append(states, State{Migration: m, Applied: ok})
	}
	return states, nil
}

func apply(ctx context.Context, conn *sql.Conn, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		m.Version, m.Name, m.Checksum,
	); err != nil {
		return err
	}
	return tx.Commit()
}
