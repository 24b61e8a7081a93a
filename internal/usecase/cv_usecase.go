package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/logger"
	"go-screening-backend/pkg/security"
	"go-screening-backend/pkg/security/antivirus"
	"go-screening-backend/pkg/storage"

	"github.com/google/uuid"
)

// CVPathPrefix is the public path stored CVs are served under.
const CVPathPrefix = "/uploads/cvs/"

type cvUsecase struct {
	repo          domain.CVRepository
	store         storage.FileStorage
	scanner       antivirus.Scanner
	publicBaseURL string
}

func NewCVUsecase(
	repo domain.CVRepository,
	store storage.FileStorage,
	scanner antivirus.Scanner,
	publicBaseURL string,
) domain.CVUsecase {
	if scanner == nil {
		scanner = antivirus.NewNoOpScanner()
	}
	return &cvUsecase{
		repo:          repo,
		store:         store,
		scanner:       scanner,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload stores a new CV for the candidate and replaces any previous one.
// Superseded files are removed after the new row is committed.
func (u *cvUsecase) Upload(ctx context.Context, upload domain.CVUpload) (*domain.CV, error) {
	if strings.TrimSpace(upload.CandidateID) == "" {
		return nil, apperror.BadRequest("candidateId is required")
	}

	content, err := security.ValidatePDF(upload.ContentType, upload.Size, domain.MaxCVSize, upload.Content)
	if err != nil {
		return nil, cvValidationError(err)
	}

	// Bounded by MaxCVSize, so buffering lets the scanner and the store each read it
	data, err := io.ReadAll(io.LimitReader(content, domain.MaxCVSize+1))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if int64(len(data)) > domain.MaxCVSize {
		return nil, cvValidationError(security.ErrFileTooLarge)
	}

	name := uuid.NewString() + "-" + security.SanitizeFileName(upload.OriginalName)
	if err := u.scan(ctx, name, data); err != nil {
		return nil, err
	}

	if err := u.store.Save(ctx, name, "application/pdf", bytes.NewReader(data)); err != nil {
		return nil, apperror.Internal(err)
	}

	cv := &domain.CV{
		ID:          uuid.NewString(),
		CandidateID: upload.CandidateID,
		Filename:    name,
		URL:         u.publicBaseURL + CVPathPrefix + name,
		CreatedAt:   time.Now().UTC(),
	}

	removed, err := u.repo.Replace(ctx, cv)
	if err != nil {
		if delErr := u.store.Delete(ctx, name); delErr != nil {
			logger.Log.Warn("Failed to remove CV after failed insert", "file", name, "error", delErr)
		}
		return nil, err
	}

	for _, old := range removed {
		if old.Filename == name {
			continue
		}
		if err := u.store.Delete(ctx, old.Filename); err != nil {
			logger.Log.Warn("Failed to remove superseded CV", "file", old.Filename, "error", err)
		}
	}

	return cv, nil
}

func (u *cvUsecase) GetByCandidate(ctx context.Context, candidateID string) (*domain.CV, error) {
	cv, err := u.repo.GetByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if cv == nil {
		return nil, apperror.NotFound("CV not found")
	}
	return cv, nil
}

// Open returns the stored file for public download. There is no ownership check.
func (u *cvUsecase) Open(ctx context.Context, filename string) (*domain.CVFile, error) {
	if !security.IsSafeStoredName(filename) {
		return nil, apperror.NotFound("File not found")
	}

	obj, err := u.store.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperror.NotFound("File not found")
		}
		return nil, apperror.Internal(err)
	}
	return &domain.CVFile{Body: obj.Body, Size: obj.Size, ContentType: obj.ContentType}, nil
}

func (u *cvUsecase) scan(ctx context.Context, name string, data []byte) error {
	res := u.scanner.Scan(ctx, name, bytes.NewReader(data))
	if res.Error != nil {
		logger.Log.Error("CV scan failed", "scanner", res.ScannerName, "file", name, "error", res.Error)
		return apperror.Internal(res.Error)
	}
	if res.Infected {
		logger.Log.Warn("CV rejected by scanner", "scanner", res.ScannerName, "file", name, "threat", res.ThreatName)
		return apperror.BadRequest("CV file failed malware scan")
	}
	return nil
}

func cvValidationError(err error) error {
	switch {
	case errors.Is(err, security.ErrNoFile):
		return apperror.BadRequest("CV file is required")
	case errors.Is(err, security.ErrFileTooLarge):
		return apperror.BadRequest("CV file must be at most 5MB")
	case errors.Is(err, security.ErrFileTypeUnsupported), errors.Is(err, security.ErrFileSpoofed):
		return apperror.BadRequest("Only PDF files are allowed")
	default:
		return apperror.Internal(err)
	}
}
