package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studyspots/internal/domain"

	"github.com/lib/pq"
)

type snapshotRepository struct {
	DB *sql.DB
}

// NewSnapshotRepository returns a domain.SnapshotRepository implemented
// with Postgres.
func NewSnapshotRepository(db *sql.DB) domain.SnapshotRepository {
	return &snapshotRepository{DB: db}
}

func (r *snapshotRepository) Create(ctx context.Context, s *domain.Snapshot) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO directory_snapshots (version, document, checksum, spot_count, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.Version, s.Document, s.Checksum, s.SpotCount, s.CreatedAt).Scan(&s.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return fmt.Errorf("%w: %s", domain.ErrVersionExists, s.Version)
		}
		return err
	}
	return nil
}

func (r *snapshotRepository) GetByVersion(ctx context.Context, version string) (*domain.Snapshot, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		`SELECT id, version, document, checksum, spot_count, created_at
		 FROM directory_snapshots WHERE version = $1`, version))
}

func (r *snapshotRepository) GetLatest(ctx context.Context) (*domain.Snapshot, error) {
	// Versions sort numerically per component, not lexically.
	return r.scanOne(r.DB.QueryRowContext(ctx,
		`SELECT id, version, document, checksum, spot_count, created_at
		 FROM directory_snapshots
		 ORDER BY string_to_array(version, '.')::int[] DESC LIMIT 1`))
}

func (r *snapshotRepository) scanOne(row *sql.Row) (*domain.Snapshot, error) {
	var s domain.Snapshot
	err := row.Scan(&s.ID, &s.Version, &s.Document, &s.Checksum, &s.SpotCount, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *snapshotRepository) ListVersions(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT version FROM directory_snapshots
		 ORDER BY string_to_array(version, '.')::int[]`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return versions, nil
}
