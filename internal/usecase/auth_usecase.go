package usecase

import (
	"context"
	"strings"
	"time"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/auth"
	"go-screening-backend/pkg/security"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(subject auth.Subject) (string, error)
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   TokenIssuer
	audit    security.Auditor
	validate *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens TokenIssuer,
	audit security.Auditor,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		audit:    audit,
		validate: validate,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists")
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  hash,
		Role:      input.Role,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	// The unique index still catches a concurrent registration of the same email
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.audit.Log(ctx, security.SecurityEvent{
		Event:        security.EventUserRegistered,
		SubjectType:  "user_id",
		SubjectValue: user.ID,
		Details:      map[string]interface{}{"role": user.Role},
	})
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, input domain.LoginInput) (*domain.LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return nil, u.loginFailed(ctx, input.Email, "missing_credentials")
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, u.loginFailed(ctx, input.Email, "unknown_email")
	}

	ok, err := security.CheckPassword(user.Password, input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !ok {
		return nil, u.loginFailed(ctx, input.Email, "wrong_password")
	}

	token, err := u.tokens.Issue(auth.Subject{ID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.audit.Log(ctx, security.SecurityEvent{
		Event:        security.EventLoginSuccess,
		SubjectType:  "user_id",
		SubjectValue: user.ID,
	})
	return &domain.LoginResult{User: *user, Token: token}, nil
}

func (u *authUsecase) loginFailed(ctx context.Context, email, reason string) error {
	u.audit.Log(ctx, security.SecurityEvent{
		Event:        security.EventLoginFailed,
		SubjectType:  "email_hash",
		SubjectValue: security.HashValue(strings.ToLower(email)),
		Details:      map[string]interface{}{"reason": reason},
	})
	return apperror.Unauthorized("Invalid credentials")
}
