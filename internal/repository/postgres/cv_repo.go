package postgres

import (
	"context"
	"errors"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cvRepo struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.CVRepository {
	return &cvRepo{db: db}
}

func (r *cvRepo) Replace(ctx context.Context, cv *domain.CV) ([]domain.CV, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	// Serialize replacements per candidate so a concurrent upload always sees
	// the row the other one inserted.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, cv.CandidateID); err != nil {
		return nil, apperror.Internal(err)
	}

	rows, err := tx.Query(ctx,
		`DELETE FROM cvs WHERE candidate_id = $1 RETURNING id, candidate_id, filename, url, created_at`,
		cv.CandidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	removed, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CV, error) {
		var c domain.CV
		err := row.Scan(&c.ID, &c.CandidateID, &c.Filename, &c.URL, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO cvs (id, candidate_id, filename, url, created_at) VALUES ($1, $2, $3, $4, $5)`,
		cv.ID, cv.CandidateID, cv.Filename, cv.URL, cv.CreatedAt)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	return removed, nil
}

func (r *cvRepo) GetByCandidate(ctx context.Context, candidateID string) (*domain.CV, error) {
	var c domain.CV
	err := r.db.QueryRow(ctx,
		`SELECT id, candidate_id, filename, url, created_at FROM cvs
         WHERE candidate_id = $1 ORDER BY created_at DESC LIMIT 1`, candidateID).
		Scan(&c.ID, &c.CandidateID, &c.Filename, &c.URL, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &c, nil
}
