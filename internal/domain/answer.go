package domain

import (
	"context"
	"time"
)

// Answer keeps QuestionText as a copy taken at submission time. It is never
// refreshed from the questions table.
type Answer struct {
	ID           string    `json:"id"`
	CandidateID  string    `json:"candidateId"`
	QuestionID   string    `json:"questionId"`
	QuestionText string    `json:"questionText"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AnswerItem struct {
	QuestionID string `json:"questionId" validate:"required"`
	Text       string `json:"text"`
}

type SubmitAnswersInput struct {
	CandidateID string       `json:"candidateId" validate:"required"`
	Answers     []AnswerItem `json:"answers" validate:"required,dive"`
}

type AnswerRepository interface {
	// CreateBatch inserts all answers in one transaction.
	CreateBatch(ctx context.Context, answers []Answer) error
	ListByCandidate(ctx context.Context, candidateID string) ([]Answer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type AnswerUsecase interface {
	SubmitBatch(ctx context.Context, input SubmitAnswersInput) ([]Answer, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Answer, error)
	Delete(ctx context.Context, id string) error
}
