package postgres

import (
	"context"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type answerRepo struct {
	db *pgxpool.Pool
}

func NewAnswerRepository(db *pgxpool.Pool) domain.AnswerRepository {
	return &answerRepo{db: db}
}

func (r *answerRepo) CreateBatch(ctx context.Context, answers []domain.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO answers (id, candidate_id, question_id, question_text, text, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	batch := &pgx.Batch{}
	for _, a := range answers {
		batch.Queue(query, a.ID, a.CandidateID, a.QuestionID, a.QuestionText, a.Text, a.CreatedAt)
	}

	br := tx.SendBatch(ctx, batch)
	for range answers {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperror.Internal(err)
		}
	}
	if err := br.Close(); err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *answerRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Answer, error) {
	query := `SELECT id, candidate_id, question_id, question_text, text, created_at
              FROM answers WHERE candidate_id = $1`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	answers := []domain.Answer{}
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.CandidateID, &a.QuestionID, &a.QuestionText, &a.Text, &a.CreatedAt); err != nil {
			return nil, apperror.Internal(err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return answers, nil
}

func (r *answerRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return tag.RowsAffected() > 0, nil
}
