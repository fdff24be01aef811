package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lexindo/perundang-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
)

// Catalog is the SQLite-backed run catalog.
type Catalog struct {
	db   *sql.DB
	path string
}

var _ driven.RunCatalog = (*Catalog)(nil)

// NewCatalog opens (or creates) the catalog database under dataDir.
// If dataDir is empty, defaults to ~/.perundang/data/catalog.db.
func NewCatalog(dataDir string) (*Catalog, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".perundang", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Catalog{
		db:   db,
		path: dbPath,
	}

	if err := c.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}

// migrate runs all pending migrations.
func (c *Catalog) migrate(fsys embed.FS) error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := c.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_runs.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := c.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := c.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores or replaces the record for its DocID.
func (c *Catalog) Save(ctx context.Context, rec driven.RunRecord) error {
	if rec.ConvertedAt.IsZero() {
		rec.ConvertedAt = time.Now().UTC()
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO runs
			(doc_id, fingerprint, markdown_path, meta_path, page_count,
			 character_coverage, leak_rate, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(doc_id) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			markdown_path = excluded.markdown_path,
			meta_path = excluded.meta_path,
			page_count = excluded.page_count,
			character_coverage = excluded.character_coverage,
			leak_rate = excluded.leak_rate,
			converted_at = excluded.converted_at
	`, rec.DocID, rec.Fingerprint, rec.MarkdownPath, rec.MetaPath,
		rec.PageCount, rec.CharacterCoverage, rec.LeakRate, rec.ConvertedAt)

	if err != nil {
		return fmt.Errorf("saving run record: %w", err)
	}
	return nil
}

// Latest returns the record for docID, or nil when none exists.
func (c *Catalog) Latest(ctx context.Context, docID string) (*driven.RunRecord, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT doc_id, fingerprint, markdown_path, meta_path, page_count,
		       character_coverage, leak_rate, converted_at
		FROM runs WHERE doc_id = ?
	`, docID)

	rec, err := scanRunRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns all records, most recent first.
func (c *Catalog) List(ctx context.Context) ([]driven.RunRecord, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT doc_id, fingerprint, markdown_path, meta_path, page_count,
		       character_coverage, leak_rate, converted_at
		FROM runs ORDER BY converted_at DESC, doc_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []driven.RunRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec driven.RunRecord
		var convertedAt sql.NullTime
		if err := rows.Scan(&rec.DocID, &rec.Fingerprint, &rec.MarkdownPath, &rec.MetaPath,
			&rec.PageCount, &rec.CharacterCoverage, &rec.LeakRate, &convertedAt); err != nil {
			return nil, fmt.Errorf("scanning run record: %w", err)
		}
		if convertedAt.Valid {
			rec.ConvertedAt = convertedAt.Time
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return records, nil
}

// scanRunRecord scans a single run row.
func scanRunRecord(row *sql.Row) (*driven.RunRecord, error) {
	var rec driven.RunRecord
	var convertedAt sql.NullTime
	if err := row.Scan(&rec.DocID, &rec.Fingerprint, &rec.MarkdownPath, &rec.MetaPath,
		&rec.PageCount, &rec.CharacterCoverage, &rec.LeakRate, &convertedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run record: %w", err)
	}
	if convertedAt.Valid {
		rec.ConvertedAt = convertedAt.Time
	}
	return &rec, nil
}
