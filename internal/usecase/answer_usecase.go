package usecase

import (
	"context"
	"time"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type answerUsecase struct {
	answerRepo   domain.AnswerRepository
	questionRepo domain.QuestionRepository
	validate     *validator.Validate
}

func NewAnswerUsecase(
	answerRepo domain.AnswerRepository,
	questionRepo domain.QuestionRepository,
	validate *validator.Validate,
) domain.AnswerUsecase {
	return &answerUsecase{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		validate:     validate,
	}
}

// SubmitBatch snapshots each question's current text into its answer and
// returns the created answers in input order.
func (u *answerUsecase) SubmitBatch(ctx context.Context, input domain.SubmitAnswersInput) ([]domain.Answer, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	texts := make(map[string]string, len(input.Answers))
	answers := make([]domain.Answer, 0, len(input.Answers))

	for _, item := range input.Answers {
		text, seen := texts[item.QuestionID]
		if !seen {
			q, err := u.questionRepo.GetByID(ctx, item.QuestionID)
			if err != nil {
				return nil, err
			}
			if q != nil {
				text = q.Text
			}
			texts[item.QuestionID] = text
		}

		answers = append(answers, domain.Answer{
			ID:           uuid.NewString(),
			CandidateID:  input.CandidateID,
			QuestionID:   item.QuestionID,
			QuestionText: text,
			Text:         item.Text,
			CreatedAt:    now,
		})
	}

	if err := u.answerRepo.CreateBatch(ctx, answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (u *answerUsecase) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Answer, error) {
	return u.answerRepo.ListByCandidate(ctx, candidateID)
}

func (u *answerUsecase) Delete(ctx context.Context, id string) error {
	found, err := u.answerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("Answer not found")
	}
	return nil
}
