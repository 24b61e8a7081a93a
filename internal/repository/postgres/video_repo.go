package postgres

import (
	"context"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type videoRepo struct {
	db *pgxpool.Pool
}

func NewVideoRepository(db *pgxpool.Pool) domain.VideoRepository {
	return &videoRepo{db: db}
}

func (r *videoRepo) Create(ctx context.Context, v *domain.Video) error {
	query := `INSERT INTO videos (id, candidate_id, url, title, duration, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, v.ID, v.CandidateID, v.URL, v.Title, v.Duration, v.CreatedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *videoRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Video, error) {
	query := `SELECT id, candidate_id, url, title, duration, created_at
              FROM videos WHERE candidate_id = $1`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	videos := []domain.Video{}
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.CandidateID, &v.URL, &v.Title, &v.Duration, &v.CreatedAt); err != nil {
			return nil, apperror.Internal(err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return videos, nil
}

func (r *videoRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return tag.RowsAffected() > 0, nil
}
