package usecase

import (
	"context"

	"go-screening-backend/internal/domain"
)

type directoryUsecase struct {
	userRepo   domain.UserRepository
	videoRepo  domain.VideoRepository
	answerRepo domain.AnswerRepository
}

func NewDirectoryUsecase(
	userRepo domain.UserRepository,
	videoRepo domain.VideoRepository,
	answerRepo domain.AnswerRepository,
) domain.DirectoryUsecase {
	return &directoryUsecase{
		userRepo:   userRepo,
		videoRepo:  videoRepo,
		answerRepo: answerRepo,
	}
}

// ListCandidates loads each candidate's videos and answers with one query per
// candidate per collection.
func (u *directoryUsecase) ListCandidates(ctx context.Context) ([]domain.CandidateDetail, error) {
	users, err := u.userRepo.ListByRole(ctx, domain.RoleCandidate)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CandidateDetail, 0, len(users))
	for _, user := range users {
		videos, err := u.videoRepo.ListByCandidate(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		answers, err := u.answerRepo.ListByCandidate(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.CandidateDetail{User: user, Videos: videos, Answers: answers})
	}
	return out, nil
}

func (u *directoryUsecase) ListRecruiters(ctx context.Context) ([]domain.User, error) {
	return u.userRepo.ListByRole(ctx, domain.RoleRecruiter)
}
