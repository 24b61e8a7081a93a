package domain

import (
	"context"
	"io"
	"time"
)

// MaxCVSize is the largest accepted CV upload (5 MiB).
const MaxCVSize int64 = 5 << 20

type CV struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	Filename    string    `json:"filename"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CVUpload carries one uploaded file as received from the multipart form.
type CVUpload struct {
	CandidateID  string
	OriginalName string
	ContentType  string
	Size         int64
	Content      io.Reader
}

// CVFile is a stored CV ready to be streamed back to a client.
type CVFile struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

type CVRepository interface {
	// Replace deletes every CV row of the candidate and inserts cv in one
	// transaction, returning the rows it removed.
	Replace(ctx context.Context, cv *CV) ([]CV, error)
	GetByCandidate(ctx context.Context, candidateID string) (*CV, error)
}

type CVUsecase interface {
	Upload(ctx context.Context, upload CVUpload) (*CV, error)
	GetByCandidate(ctx context.Context, candidateID string) (*CV, error)
	Open(ctx context.Context, filename string) (*CVFile, error)
}
