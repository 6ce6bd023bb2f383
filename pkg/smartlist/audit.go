package smartlist

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	_ "modernc.org/sqlite"
	"golang.org/x/crypto/blake2b"
)

// AuditLog records every create run's corpus, algorithms and resulting
// vocabulary size to a local sqlite database, for after-the-fact
// inspection of what a smartlist was built from. It is an ambient
// observability concern, not something create depends on: a run
// proceeds identically whether or not the audit database is reachable.
type AuditLog struct {
	db     *sql.DB
	logger hclog.Logger
}

// OpenAuditLog opens (creating if needed) the audit database at dbPath.
// logger may be nil, in which case a null logger is used.
func OpenAuditLog(dbPath string, logger hclog.Logger) (*AuditLog, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}
	a := &AuditLog{db: db, logger: logger}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func (a *AuditLog) migrate() error {
	_, err := a.db.Exec(`CREATE TABLE IF NOT EXISTS builds (
		id TEXT PRIMARY KEY,
		corpora TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		algorithms TEXT NOT NULL,
		vocab_size INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Close closes the underlying database handle.
func (a *AuditLog) Close() error {
	return a.db.Close()
}

// Record inserts one build's metadata. corpora is the list of corpus
// file paths actually read; algorithms is the list of trainer names run.
func (a *AuditLog) Record(corpora []string, algorithms []string, vocabSize int) error {
	fingerprint, err := fingerprintCorpora(corpora)
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}

	_, err = a.db.Exec(
		`INSERT INTO builds (id, corpora, fingerprint, algorithms, vocab_size) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), joinPaths(corpora), fingerprint, joinPaths(algorithms), vocabSize,
	)
	return err
}

// RecordBestEffort calls Record and logs, rather than returns, any
// failure: the audit log must never block or fail a create run.
func (a *AuditLog) RecordBestEffort(corpora []string, algorithms []string, vocabSize int) {
	if err := a.Record(corpora, algorithms, vocabSize); err != nil {
		a.logger.Warn("build audit log write failed, continuing", "error", err)
	}
}

func fingerprintCorpora(paths []string) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("fingerprint %s: %w", p, err)
		}
		h.Write(data)
		h.Write([]byte{0}) // separator so concatenation-equivalent file sets don't collide
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func joinPaths(ps []string) string {
	out := ""
	for i, p := range ps {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out
}
