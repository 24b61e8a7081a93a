package usecase

import (
	"context"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type questionUsecase struct {
	repo     domain.QuestionRepository
	validate *validator.Validate
}

func NewQuestionUsecase(repo domain.QuestionRepository, validate *validator.Validate) domain.QuestionUsecase {
	return &questionUsecase{repo: repo, validate: validate}
}

func (u *questionUsecase) List(ctx context.Context) ([]domain.Question, error) {
	return u.repo.List(ctx)
}

func (u *questionUsecase) Create(ctx context.Context, input domain.QuestionInput) (*domain.Question, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	q := &domain.Question{
		ID:    uuid.NewString(),
		Text:  input.Text,
		Order: int(*input.Order),
	}
	if err := u.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (u *questionUsecase) Update(ctx context.Context, id string, input domain.QuestionInput) error {
	if err := validateInput(u.validate, input); err != nil {
		return err
	}

	found, err := u.repo.Update(ctx, &domain.Question{ID: id, Text: input.Text, Order: int(*input.Order)})
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("Question not found")
	}
	return nil
}

func (u *questionUsecase) Delete(ctx context.Context, id string) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("Question not found")
	}
	return nil
}
