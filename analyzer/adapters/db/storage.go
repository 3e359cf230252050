package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"keyword-service/analyzer/core"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	// insert
	upsertTranscript = `
		INSERT INTO transcripts (video_id, title, segments, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (video_id) DO UPDATE
		SET title = EXCLUDED.title,
		segments = EXCLUDED.segments,
		fetched_at = EXCLUDED.fetched_at
	`

	// select
	getTranscript = `
		SELECT video_id, title, segments, fetched_at
		FROM transcripts
		WHERE video_id = $1
	`

	// delete
	deleteStale = `DELETE FROM transcripts WHERE fetched_at < $1`

	// truncate
	truncateTranscripts = `TRUNCATE transcripts`
)

type transcriptRow struct {
	VideoID   string         `db:"video_id"`
	Title     string         `db:"title"`
	Segments  pq.StringArray `db:"segments"`
	FetchedAt time.Time      `db:"fetched_at"`
}

type DB struct {
	log     *slog.Logger
	conn    *sqlx.DB
	address string
}

func New(log *slog.Logger, address string) (*DB, error) {
	db, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &DB{
		log:     log,
		conn:    db,
		address: address,
	}, nil
}

func (db *DB) Close() {
	if err := db.conn.Close(); err != nil {
		db.log.Warn("failed to close database connection", "error", err)
	}
}

// Migrate applies the embedded schema migrations over a dedicated connection,
// since closing a migrator closes the connection it was given.
func (db *DB) Migrate() error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	conn, err := sql.Open("pgx", db.address)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	driver, err := migratepgx.WithInstance(conn, &migratepgx.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			db.log.Warn("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		db.log.Debug("database ping failed", "error", err)
		return core.ErrServiceUnavailable
	}
	return nil
}

func (db *DB) Get(ctx context.Context, videoID string) (core.Transcript, error) {
	var row transcriptRow
	if err := db.conn.GetContext(ctx, &row, getTranscript, videoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transcript{}, core.ErrNotFound
		}
		return core.Transcript{}, fmt.Errorf("failed to select from transcripts table: %w", err)
	}
	return core.Transcript{
		VideoID:   row.VideoID,
		Title:     row.Title,
		Segments:  row.Segments,
		FetchedAt: row.FetchedAt,
	}, nil
}

func (db *DB) Put(ctx context.Context, transcript core.Transcript) error {
	if transcript.VideoID == "" {
		return fmt.Errorf("%w: empty video id", core.ErrBadArguments)
	}
	segments := transcript.Segments
	if segments == nil {
		segments = []string{}
	}
	fetchedAt := transcript.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	_, err := db.conn.ExecContext(ctx, upsertTranscript,
		transcript.VideoID, transcript.Title, segments, fetchedAt)
	if err != nil {
		return fmt.Errorf("failed to insert into transcripts table: %w", err)
	}
	return nil
}

func (db *DB) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := db.conn.ExecContext(ctx, deleteStale, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from transcripts table: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted transcripts: %w", err)
	}
	return removed, nil
}

func (db *DB) Drop(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, truncateTranscripts); err != nil {
		return fmt.Errorf("failed to truncate transcripts table: %w", err)
	}
	return nil
}

// Nop is a cache that never holds anything.
type Nop struct{}

func (Nop) Get(context.Context, string) (core.Transcript, error) {
	return core.Transcript{}, core.ErrNotFound
}

func (Nop) Put(context.Context, core.Transcript) error {
	return nil
}

func (Nop) Prune(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (Nop) Drop(context.Context) error {
	return nil
}

func (Nop) Ping(context.Context) error {
	return nil
}
