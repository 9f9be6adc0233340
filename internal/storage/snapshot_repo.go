package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/store"
)

// DefaultSnapshotKey is the storage key for the deal collection snapshot.
const DefaultSnapshotKey = "pipeline_v2"

// KV is the minimal get/set contract the snapshot persister depends on.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// SQLiteKV implements KV on top of the snapshots table.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV creates a new SQLiteKV.
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

func (r *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT body FROM snapshots WHERE key = ?`, key)

	var body string
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("scanning snapshot: %w", err)
	}
	return body, true, nil
}

func (r *SQLiteKV) Set(ctx context.Context, key, value string) error {
	query := `INSERT OR REPLACE INTO snapshots (key, body, saved_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}
	return nil
}

// SnapshotPersister adapts a KV store and the snapshot codec to the
// store.Persister contract: one key holds the whole collection.
type SnapshotPersister struct {
	kv  KV
	key string
}

// NewSnapshotPersister creates a persister writing under the given key.
// An empty key uses DefaultSnapshotKey.
func NewSnapshotPersister(kv KV, key string) *SnapshotPersister {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SnapshotPersister{kv: kv, key: key}
}

func (p *SnapshotPersister) Load(ctx context.Context) ([]domain.Deal, bool, error) {
	body, ok, err := p.kv.Get(ctx, p.key)
	if err != nil {
		return nil, false, fmt.Errorf("loading snapshot: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	deals, err := store.DecodeSnapshot([]byte(body))
	if err != nil {
		return nil, false, fmt.Errorf("decoding snapshot: %w", err)
	}
	return deals, true, nil
}

func (p *SnapshotPersister) Save(ctx context.Context, deals []domain.Deal) error {
	body, err := store.EncodeSnapshot(deals)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := p.kv.Set(ctx, p.key, string(body)); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}
