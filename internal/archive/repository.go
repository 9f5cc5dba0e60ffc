package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

var (
	ErrDuplicateRecord = errors.New("archive record already exists")
	ErrRecordNotFound  = errors.New("archive record not found")
)

type Repository interface {
	Insert(ctx context.Context, rec *Record) error
	Recent(ctx context.Context, limit int) ([]*Record, error)
	Get(ctx context.Context, id string) (*Record, error)
}

type repository struct {
	db *sql.DB
}

// Open connects to Postgres, verifies the connection and makes sure the
// archive table exists. The returned Repository owns the pool.
func Open(ctx context.Context, databaseURL string) (Repository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS match_archive (
			id              uuid PRIMARY KEY,
			preset          text NOT NULL,
			result          text NOT NULL,
			result_method   text NOT NULL,
			moves_uci       jsonb NOT NULL,
			pgn             text NOT NULL,
			white_think_ms  bigint NOT NULL,
			black_think_ms  bigint NOT NULL,
			started_at      timestamptz NOT NULL,
			ended_at        timestamptz NOT NULL
		)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure archive schema: %w", err)
	}
	return &repository{db: db}, nil
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("nil archive record")
	}
	moves, err := json.Marshal(rec.MovesUCI)
	if err != nil {
		return fmt.Errorf("marshal moves_uci: %w", err)
	}

	const query = `
		INSERT INTO match_archive (
			id,
			preset,
			result,
			result_method,
			moves_uci,
			pgn,
			white_think_ms,
			black_think_ms,
			started_at,
			ended_at
		)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
		RETURNING id`

	var id sql.NullString
	err = r.db.QueryRowContext(
		ctx,
		query,
		rec.ID,
		rec.Preset,
		rec.Result,
		rec.Method,
		moves,
		rec.PGN,
		rec.WhiteThink.Milliseconds(),
		rec.BlackThink.Milliseconds(),
		rec.StartedAt,
		rec.EndedAt,
	).Scan(&id)
	if err == sql.ErrNoRows || (err == nil && !id.Valid) {
		return ErrDuplicateRecord
	}
	if err != nil {
		return fmt.Errorf("insert archive record: %w", err)
	}
	return nil
}

func (r *repository) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
		SELECT
			id,
			preset,
			result,
			result_method,
			moves_uci,
			pgn,
			white_think_ms,
			black_think_ms,
			started_at,
			ended_at
		FROM match_archive
		ORDER BY ended_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("select archive records: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archive records: %w", err)
	}
	return out, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Record, error) {
	const query = `
		SELECT
			id,
			preset,
			result,
			result_method,
			moves_uci,
			pgn,
			white_think_ms,
			black_think_ms,
			started_at,
			ended_at
		FROM match_archive
		WHERE id = $1`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		rec     Record
		moves   []byte
		whiteMS int64
		blackMS int64
	)
	err := row.Scan(
		&rec.ID,
		&rec.Preset,
		&rec.Result,
		&rec.Method,
		&moves,
		&rec.PGN,
		&whiteMS,
		&blackMS,
		&rec.StartedAt,
		&rec.EndedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan archive record: %w", err)
	}
	if err := json.Unmarshal(moves, &rec.MovesUCI); err != nil {
		return nil, fmt.Errorf("unmarshal moves_uci: %w", err)
	}
	rec.WhiteThink = time.Duration(whiteMS) * time.Millisecond
	rec.BlackThink = time.Duration(blackMS) * time.Millisecond
	return &rec, nil
}
