package usecase

import (
	"context"
	"strings"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/security"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	repo     domain.UserRepository
	audit    security.Auditor
	validate *validator.Validate
}

func NewUserUsecase(repo domain.UserRepository, audit security.Auditor, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{repo: repo, audit: audit, validate: validate}
}

func (u *userUsecase) Update(ctx context.Context, id string, input domain.UpdateUserInput) error {
	input.Email = strings.TrimSpace(input.Email)
	if strings.TrimSpace(input.Username) == "" || input.Email == "" {
		return apperror.BadRequest("Username and email are required")
	}
	if err := validateInput(u.validate, input); err != nil {
		return err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return apperror.NotFound("User not found")
	}

	owner, err := u.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if owner != nil && owner.ID != id {
		return apperror.Conflict("Email already in use")
	}

	current.Username = input.Username
	current.Email = input.Email
	found, err := u.repo.Update(ctx, current)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("User not found")
	}

	u.audit.Log(ctx, security.SecurityEvent{
		Event:        security.EventUserUpdated,
		SubjectType:  "user_id",
		SubjectValue: id,
		Details:      map[string]interface{}{"actor": actorFrom(ctx)},
	})
	return nil
}

func (u *userUsecase) Delete(ctx context.Context, id string) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("User not found")
	}

	u.audit.Log(ctx, security.SecurityEvent{
		Event:        security.EventUserDeleted,
		SubjectType:  "user_id",
		SubjectValue: id,
		Details:      map[string]interface{}{"actor": actorFrom(ctx)},
	})
	return nil
}

// actorFrom returns the authenticated caller's id, or "anonymous" when routes
// run without token verification.
func actorFrom(ctx context.Context) string {
	if id, ok := ctx.Value(domain.KeyUserID).(string); ok && id != "" {
		return id
	}
	return "anonymous"
}
