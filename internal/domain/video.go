package domain

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

type Video struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Duration    string    `json:"duration"`
	CreatedAt   time.Time `json:"createdAt"`
}

type VideoInput struct {
	CandidateID string     `json:"candidateId" validate:"required"`
	URL         string     `json:"url" validate:"required"`
	Title       string     `json:"title" validate:"max=255"`
	Duration    FlexString `json:"duration" validate:"max=50"`
}

// FlexString accepts either a JSON string or a JSON number. Clients send
// durations as "1:30" or as 90.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

type VideoRepository interface {
	Create(ctx context.Context, video *Video) error
	ListByCandidate(ctx context.Context, candidateID string) ([]Video, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type VideoUsecase interface {
	Create(ctx context.Context, input VideoInput) (*Video, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Video, error)
	Delete(ctx context.Context, id string) error
}
