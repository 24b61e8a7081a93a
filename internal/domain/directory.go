package domain

import "context"

// CandidateDetail is a candidate with its recorded videos and submitted answers.
type CandidateDetail struct {
	User
	Videos  []Video  `json:"videos"`
	Answers []Answer `json:"answers"`
}

type DirectoryUsecase interface {
	ListCandidates(ctx context.Context) ([]CandidateDetail, error)
	ListRecruiters(ctx context.Context) ([]User, error)
}
