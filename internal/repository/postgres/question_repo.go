package postgres

import (
	"context"
	"errors"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type questionRepo struct {
	db *pgxpool.Pool
}

func NewQuestionRepository(db *pgxpool.Pool) domain.QuestionRepository {
	return &questionRepo{db: db}
}

func (r *questionRepo) List(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.Query(ctx, `SELECT id, text, "order" FROM questions ORDER BY "order" ASC`)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Order); err != nil {
			return nil, apperror.Internal(err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return questions, nil
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	var q domain.Question
	err := r.db.QueryRow(ctx, `SELECT id, text, "order" FROM questions WHERE id = $1`, id).
		Scan(&q.ID, &q.Text, &q.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &q, nil
}

func (r *questionRepo) Create(ctx context.Context, q *domain.Question) error {
	_, err := r.db.Exec(ctx, `INSERT INTO questions (id, text, "order") VALUES ($1, $2, $3)`,
		q.ID, q.Text, q.Order)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *questionRepo) Update(ctx context.Context, q *domain.Question) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE questions SET text = $2, "order" = $3 WHERE id = $1`,
		q.ID, q.Text, q.Order)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *questionRepo) Delete(ctx context.Context, id string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM answers WHERE question_id = $1`, id); err != nil {
		return false, apperror.Internal(err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, apperror.Internal(err)
	}
	return true, nil
}
