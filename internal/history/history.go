// Copyright Media Intelligence Inc., 2026. All rights reserved.

// Package history persists a log of generation runs in a SQLite database
// under the workspace's .whitepaper_knowledge_graph directory. The log is
// advisory: callers treat store failures as warnings, never as generation
// failures.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mediaintel/whitepaper-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "whitepapers.db"
)

// Run is one recorded generation run.
type Run struct {
	ID        int64          `json:"id" yaml:"id"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
	Industry  types.Industry `json:"industry" yaml:"industry"`
	DocType   types.DocType  `json:"doc_type" yaml:"doc_type"`
	Format    types.Format   `json:"format" yaml:"format"`
	Files     []string       `json:"files" yaml:"files"`
}

// QueryOptions holds filters for listing runs.
type QueryOptions struct {
	// Industry filters by industry. Empty matches all.
	Industry types.Industry

	// DocType filters by document type. Empty matches all.
	DocType types.DocType

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Store manages the run-history SQLite database.
type Store struct {
	db         *sql.DB
	historyDir string
	maxResults int
}

// NewStore opens or creates the history database at
// historyDir/index/whitepapers.db, creating the schema if needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.HistoryDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		historyDir: cfg.HistoryDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		industry TEXT NOT NULL,
		doc_type TEXT NOT NULL,
		format TEXT NOT NULL,
		files TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one run into the log.
func (s *Store) Record(ctx context.Context, run Run) error {
	files, err := json.Marshal(run.Files)
	if err != nil {
		return fmt.Errorf("encoding file list: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (created_at, industry, doc_type, format, files) VALUES (?, ?, ?, ?, ?)`,
		run.CreatedAt.UTC().Format(time.RFC3339), string(run.Industry),
		string(run.DocType), string(run.Format), string(files))
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// List returns recorded runs, newest first, honoring the query filters.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]Run, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, created_at, industry, doc_type, format, files FROM runs WHERE 1=1`)
	if opts.Industry != "" {
		qb.WriteString(` AND industry = ?`)
		args = append(args, string(opts.Industry))
	}
	if opts.DocType != "" {
		qb.WriteString(` AND doc_type = ?`)
		args = append(args, string(opts.DocType))
	}
	qb.WriteString(` ORDER BY id DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			createdAt string
			files     string
		)
		if err := rows.Scan(&run.ID, &createdAt, &run.Industry, &run.DocType, &run.Format, &files); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if run.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		if err := json.Unmarshal([]byte(files), &run.Files); err != nil {
			return nil, fmt.Errorf("decoding file list: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
