package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"huffcodec/internal/model"
)

type artifactRepoPostgres struct {
	pool *pgxpool.Pool
}

func NewArtifactRepoPostgres(pool *pgxpool.Pool) ArtifactRepo {
	return &artifactRepoPostgres{pool: pool}
}

func (r *artifactRepoPostgres) Save(ctx context.Context, a *model.Artifact) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO artifacts (id, name, original_size, compressed_size, ratio, bit_length, blob, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  original_size = EXCLUDED.original_size,
  compressed_size = EXCLUDED.compressed_size,
  ratio = EXCLUDED.ratio,
  bit_length = EXCLUDED.bit_length,
  blob = EXCLUDED.blob`,
		a.ID, a.Name, a.OriginalSize, a.CompressedSize, a.Ratio, a.BitLength, a.Blob, a.CreatedAt)
	return err
}

func (r *artifactRepoPostgres) FindByID(ctx context.Context, id string) (*model.Artifact, error) {
	var a model.Artifact
	err := r.pool.QueryRow(ctx, `
SELECT id, name, original_size, compressed_size, ratio, bit_length, blob, created_at
FROM artifacts WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.OriginalSize, &a.CompressedSize, &a.Ratio, &a.BitLength, &a.Blob, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *artifactRepoPostgres) List(ctx context.Context) ([]*model.Artifact, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, original_size, compressed_size, ratio, bit_length, blob, created_at
FROM artifacts ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Artifact
	for rows.Next() {
		var a model.Artifact
		if err := rows.Scan(&a.ID, &a.Name, &a.OriginalSize, &a.CompressedSize, &a.Ratio, &a.BitLength, &a.Blob, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
