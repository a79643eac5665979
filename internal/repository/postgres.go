package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PostgresStore keeps one collection as rows of kv_entries sharing a bucket.
type PostgresStore[V any] struct {
	db       *dbpg.DB
	bucket   string
	strategy retry.Strategy
}

func NewPostgresStore[V any](db *dbpg.DB, bucket string) *PostgresStore[V] {
	return &PostgresStore[V]{
		db:     db,
		bucket: bucket,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PostgresStore[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var v V
	query := `SELECT value
			  FROM kv_entries
			  WHERE bucket=$1 AND key=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, r.bucket, key)
	if err != nil {
		return v, false, fmt.Errorf("get %s/%s: %w", r.bucket, key, err)
	}

	var raw []byte
	if err = row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return v, false, nil
		}
		return v, false, fmt.Errorf("scan %s/%s: %w", r.bucket, key, err)
	}

	if err = json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("decode %s/%s: %w", r.bucket, key, err)
	}

	return v, true, nil
}

func (r *PostgresStore[V]) Insert(ctx context.Context, key string, value V) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", r.bucket, key, err)
	}

	query := `INSERT INTO kv_entries (bucket, key, value, updated_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (bucket, key) DO UPDATE
			  SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	_, err = r.db.ExecWithRetry(ctx, r.strategy, query, r.bucket, key, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", r.bucket, key, err)
	}

	return nil
}

func (r *PostgresStore[V]) Values(ctx context.Context) ([]V, error) {
	query := `SELECT value
			  FROM kv_entries
			  WHERE bucket=$1
			  ORDER BY key COLLATE "C"`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, r.bucket)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.bucket, err)
	}
	defer rows.Close()

	var res []V
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.bucket, err)
		}

		var v V
		if err = json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.bucket, err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}
