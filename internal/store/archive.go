package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kcorpus/kcorpus/internal/record"
)

//go:embed schema.sql
var schemaSQL string

const currentSchemaVersion = 1

// Archive is the optional SQLite provenance sink. Each generation run
// gets a run row; its records are stored with their sequence so the
// original emission order is queryable.
type Archive struct {
	db *sql.DB
}

// OpenArchive creates or opens the archive database at path.
//
// The database is configured with WAL mode, NORMAL synchronous mode, a
// 5-second busy timeout, and foreign key enforcement. SQLite supports
// one writer at a time, so the pool is limited to a single connection.
// Safe to call repeatedly on the same path.
func OpenArchive(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to archive: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the archive connection.
func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// BeginRun inserts a run row and returns its token. Run tokens are
// UUIDv7, so they sort by creation time; they never appear in record
// bytes.
func (a *Archive) BeginRun(ctx context.Context, source string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	runID := id.String()

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, source)
		VALUES (?, ?, ?)
	`, runID, time.Now().UTC().Format(time.RFC3339), source)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return runID, nil
}

// WriteRecords stores the records for a run in one transaction,
// assigning sequence numbers in slice order.
func (a *Archive) WriteRecords(ctx context.Context, runID string, recs []record.Record) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write records: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (run_id, seq, task, instruction, input, output, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write records: prepare: %w", err)
	}
	defer stmt.Close()

	for seq, r := range recs {
		meta := "{}"
		if len(r.Metadata) > 0 {
			data, err := record.MarshalCanonical(r.Metadata)
			if err != nil {
				return fmt.Errorf("write records: marshal metadata: %w", err)
			}
			meta = string(data)
		}
		if _, err := stmt.ExecContext(ctx, runID, seq, string(r.Task), r.Instruction, r.Input, r.Output, meta); err != nil {
			return fmt.Errorf("write records: insert seq %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write records: commit: %w", err)
	}
	return nil
}

// CountsByTask returns archived record counts per task tag, sorted by
// tag.
func (a *Archive) CountsByTask(ctx context.Context) ([]TaskCount, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT task, COUNT(*) FROM records
		GROUP BY task
		ORDER BY task COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("counts by task: %w", err)
	}
	defer rows.Close()

	var counts []TaskCount
	for rows.Next() {
		var tc TaskCount
		if err := rows.Scan(&tc.Task, &tc.Count); err != nil {
			return nil, fmt.Errorf("counts by task: scan: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("counts by task: iterate: %w", err)
	}
	return counts, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables if they don't exist and records the
// schema version. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}
