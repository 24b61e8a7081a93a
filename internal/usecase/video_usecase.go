package usecase

import (
	"context"
	"time"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type videoUsecase struct {
	repo     domain.VideoRepository
	validate *validator.Validate
}

func NewVideoUsecase(repo domain.VideoRepository, validate *validator.Validate) domain.VideoUsecase {
	return &videoUsecase{repo: repo, validate: validate}
}

// Create records a reference to externally hosted media. The URL is not fetched.
func (u *videoUsecase) Create(ctx context.Context, input domain.VideoInput) (*domain.Video, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	v := &domain.Video{
		ID:          uuid.NewString(),
		CandidateID: input.CandidateID,
		URL:         input.URL,
		Title:       input.Title,
		Duration:    string(input.Duration),
		CreatedAt:   time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (u *videoUsecase) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Video, error) {
	return u.repo.ListByCandidate(ctx, candidateID)
}

func (u *videoUsecase) Delete(ctx context.Context, id string) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("Video not found")
	}
	return nil
}
