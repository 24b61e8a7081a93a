package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go-screening-backend/internal/domain"
	"go-screening-backend/internal/usecase"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/auth"
	"go-screening-backend/pkg/security"
	"go-screening-backend/pkg/security/antivirus"
	"go-screening-backend/pkg/storage"
	"go-screening-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockQuestionRepo struct {
	mock.Mock
}

func (m *MockQuestionRepo) List(ctx context.Context) ([]domain.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}
func (m *MockQuestionRepo) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}
func (m *MockQuestionRepo) Create(ctx context.Context, q *domain.Question) error {
	return m.Called(ctx, q).Error(0)
}
func (m *MockQuestionRepo) Update(ctx context.Context, q *domain.Question) (bool, error) {
	args := m.Called(ctx, q)
	return args.Bool(0), args.Error(1)
}
func (m *MockQuestionRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockAnswerRepo struct {
	mock.Mock
}

func (m *MockAnswerRepo) CreateBatch(ctx context.Context, answers []domain.Answer) error {
	return m.Called(ctx, answers).Error(0)
}
func (m *MockAnswerRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Answer, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Answer), args.Error(1)
}
func (m *MockAnswerRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) Create(ctx context.Context, v *domain.Video) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVideoRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Video, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}
func (m *MockVideoRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCVRepo struct {
	mock.Mock
}

func (m *MockCVRepo) Replace(ctx context.Context, cv *domain.CV) ([]domain.CV, error) {
	args := m.Called(ctx, cv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CV), args.Error(1)
}
func (m *MockCVRepo) GetByCandidate(ctx context.Context, candidateID string) (*domain.CV, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CV), args.Error(1)
}

type MockStorage struct {
	mock.Mock
	saved map[string][]byte
}

func (m *MockStorage) Save(ctx context.Context, name, contentType string, r io.Reader) error {
	data, _ := io.ReadAll(r)
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[name] = data
	return m.Called(ctx, name, contentType).Error(0)
}
func (m *MockStorage) Open(ctx context.Context, name string) (*storage.Object, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Object), args.Error(1)
}
func (m *MockStorage) Delete(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

type recordingAuditor struct {
	events []security.SecurityEvent
}

func (r *recordingAuditor) Log(_ context.Context, e security.SecurityEvent) {
	r.events = append(r.events, e)
}

type infectedScanner struct{}

func (infectedScanner) Scan(context.Context, string, io.Reader) antivirus.ScanResult {
	return antivirus.ScanResult{Infected: true, ThreatName: "Eicar-Test-Signature", ScannerName: "fake"}
}
func (infectedScanner) Name() string                   { return "fake" }
func (infectedScanner) Available(context.Context) bool { return true }

type staticIssuer struct{}

func (staticIssuer) Issue(s auth.Subject) (string, error) {
	return "token-for-" + s.ID, nil
}

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func orderPtr(v int) *domain.Order {
	o := domain.Order(v)
	return &o
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	input := domain.RegisterInput{Username: "a", Email: "a@x.com", Password: "secret123", Role: "candidate"}

	t.Run("Should create a pending user with a hashed password", func(t *testing.T) {
		repo := new(MockUserRepo)
		audit := &recordingAuditor{}
		uc := usecase.NewAuthUsecase(repo, staticIssuer{}, audit, validation.New())

		repo.On("GetByEmail", ctx, "a@x.com").Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, user.Status)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "secret123", user.Password)

		ok, err := security.CheckPassword(user.Password, "secret123")
		require.NoError(t, err)
		assert.True(t, ok)

		require.Len(t, audit.events, 1)
		assert.Equal(t, security.EventUserRegistered, audit.events[0].Event)
		repo.AssertExpectations(t)
	})

	t.Run("Should fail with Conflict when the email exists", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, staticIssuer{}, &recordingAuditor{}, validation.New())

		repo.On("GetByEmail", ctx, "a@x.com").Return(&domain.User{ID: "existing"}, nil)

		_, err := uc.Register(ctx, input)
		assert.Equal(t, 409, apperror.Code(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown role", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, staticIssuer{}, &recordingAuditor{}, validation.New())

		bad := input
		bad.Role = "admin"
		_, err := uc.Register(ctx, bad)
		assert.Equal(t, 400, apperror.Code(err))
		assert.Contains(t, err.Error(), "role must be one of")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := security.HashPassword("secret123")
	require.NoError(t, err)
	stored := &domain.User{ID: "u1", Email: "a@x.com", Password: hash, Role: "candidate", Status: "pending"}

	t.Run("Should return the user and a token", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, staticIssuer{}, &recordingAuditor{}, validation.New())
		repo.On("GetByEmail", ctx, "a@x.com").Return(stored, nil)

		res, err := uc.Login(ctx, domain.LoginInput{Email: "a@x.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "token-for-u1", res.Token)
		assert.Equal(t, "u1", res.ID)
	})

	t.Run("Should fail with Unauthorized on a wrong password or unknown email", func(t *testing.T) {
		repo := new(MockUserRepo)
		audit := &recordingAuditor{}
		uc := usecase.NewAuthUsecase(repo, staticIssuer{}, audit, validation.New())
		repo.On("GetByEmail", ctx, "a@x.com").Return(stored, nil)
		repo.On("GetByEmail", ctx, "nobody@x.com").Return(nil, nil)

		res, err := uc.Login(ctx, domain.LoginInput{Email: "a@x.com", Password: "wrong"})
		assert.Nil(t, res)
		assert.Equal(t, 401, apperror.Code(err))
		assert.Equal(t, "Invalid credentials", err.Error())

		res, err = uc.Login(ctx, domain.LoginInput{Email: "nobody@x.com", Password: "secret123"})
		assert.Nil(t, res)
		assert.Equal(t, 401, apperror.Code(err))

		require.Len(t, audit.events, 2)
		assert.Equal(t, security.EventLoginFailed, audit.events[0].Event)
		assert.NotContains(t, audit.events[0].SubjectValue, "@")
	})
}

func TestQuestionUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject empty text and missing order", func(t *testing.T) {
		repo := new(MockQuestionRepo)
		uc := usecase.NewQuestionUsecase(repo, validation.New())

		_, err := uc.Create(ctx, domain.QuestionInput{Text: "", Order: orderPtr(1)})
		assert.Equal(t, 400, apperror.Code(err))

		_, err = uc.Create(ctx, domain.QuestionInput{Text: "Why us?"})
		assert.Equal(t, 400, apperror.Code(err))

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should accept order zero", func(t *testing.T) {
		repo := new(MockQuestionRepo)
		uc := usecase.NewQuestionUsecase(repo, validation.New())
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Question")).Return(nil)

		q, err := uc.Create(ctx, domain.QuestionInput{Text: "Intro", Order: orderPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, 0, q.Order)
		assert.NotEmpty(t, q.ID)
	})

	t.Run("Should map missing rows to NotFound", func(t *testing.T) {
		repo := new(MockQuestionRepo)
		uc := usecase.NewQuestionUsecase(repo, validation.New())
		repo.On("Update", ctx, mock.Anything).Return(false, nil)
		repo.On("Delete", ctx, "missing").Return(false, nil)

		err := uc.Update(ctx, "missing", domain.QuestionInput{Text: "x", Order: orderPtr(1)})
		assert.Equal(t, 404, apperror.Code(err))

		err = uc.Delete(ctx, "missing")
		assert.Equal(t, 404, apperror.Code(err))
	})
}

func TestSubmitAnswers(t *testing.T) {
	ctx := context.Background()

	t.Run("Should snapshot question text in input order", func(t *testing.T) {
		answers := new(MockAnswerRepo)
		questions := new(MockQuestionRepo)
		uc := usecase.NewAnswerUsecase(answers, questions, validation.New())

		questions.On("GetByID", ctx, "q2").Return(&domain.Question{ID: "q2", Text: "Second"}, nil)
		questions.On("GetByID", ctx, "q1").Return(&domain.Question{ID: "q1", Text: "First"}, nil)
		questions.On("GetByID", ctx, "gone").Return(nil, nil)
		answers.On("CreateBatch", ctx, mock.AnythingOfType("[]domain.Answer")).Return(nil)

		created, err := uc.SubmitBatch(ctx, domain.SubmitAnswersInput{
			CandidateID: "c1",
			Answers: []domain.AnswerItem{
				{QuestionID: "q2", Text: "b"},
				{QuestionID: "q1", Text: "a"},
				{QuestionID: "gone", Text: "c"},
			},
		})
		require.NoError(t, err)
		require.Len(t, created, 3)
		assert.Equal(t, "Second", created[0].QuestionText)
		assert.Equal(t, "First", created[1].QuestionText)
		assert.Equal(t, "", created[2].QuestionText)
		for _, a := range created {
			assert.Equal(t, "c1", a.CandidateID)
			assert.NotEmpty(t, a.ID)
		}
	})

	t.Run("Should fail without persisting when the batch insert fails", func(t *testing.T) {
		answers := new(MockAnswerRepo)
		questions := new(MockQuestionRepo)
		uc := usecase.NewAnswerUsecase(answers, questions, validation.New())

		questions.On("GetByID", ctx, "q1").Return(&domain.Question{ID: "q1", Text: "First"}, nil)
		answers.On("CreateBatch", ctx, mock.Anything).Return(apperror.Internal(errors.New("boom")))

		_, err := uc.SubmitBatch(ctx, domain.SubmitAnswersInput{
			CandidateID: "c1",
			Answers:     []domain.AnswerItem{{QuestionID: "q1", Text: "a"}},
		})
		assert.Equal(t, 500, apperror.Code(err))
	})

	t.Run("Should require a candidate id", func(t *testing.T) {
		uc := usecase.NewAnswerUsecase(new(MockAnswerRepo), new(MockQuestionRepo), validation.New())
		_, err := uc.SubmitBatch(ctx, domain.SubmitAnswersInput{Answers: []domain.AnswerItem{}})
		assert.Equal(t, 400, apperror.Code(err))
	})
}

func TestVideoUsecase(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVideoRepo)
	uc := usecase.NewVideoUsecase(repo, validation.New())
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Video")).Return(nil)
	repo.On("Delete", ctx, "missing").Return(false, nil)

	v, err := uc.Create(ctx, domain.VideoInput{CandidateID: "c1", URL: "https://cdn/v.mp4", Title: "Intro", Duration: "90"})
	require.NoError(t, err)
	assert.Equal(t, "90", v.Duration)

	err = uc.Delete(ctx, "missing")
	assert.Equal(t, 404, apperror.Code(err))
}

func TestCVUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("Should store the file and remove the superseded one", func(t *testing.T) {
		repo := new(MockCVRepo)
		store := new(MockStorage)
		uc := usecase.NewCVUsecase(repo, store, nil, "http://localhost:5000/")

		store.On("Save", ctx, mock.AnythingOfType("string"), "application/pdf").Return(nil)
		repo.On("Replace", ctx, mock.AnythingOfType("*domain.CV")).
			Return([]domain.CV{{Filename: "old-cv.pdf"}}, nil)
		store.On("Delete", ctx, "old-cv.pdf").Return(nil)

		cv, err := uc.Upload(ctx, domain.CVUpload{
			CandidateID:  "c1",
			OriginalName: "my cv.pdf",
			ContentType:  "application/pdf",
			Size:         int64(len(samplePDF)),
			Content:      bytes.NewReader(samplePDF),
		})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(cv.Filename, "-my_cv.pdf"))
		assert.Equal(t, "http://localhost:5000/uploads/cvs/"+cv.Filename, cv.URL)
		assert.Equal(t, samplePDF, store.saved[cv.Filename])
		store.AssertExpectations(t)
	})

	t.Run("Should reject non-PDF and oversized files without persisting", func(t *testing.T) {
		repo := new(MockCVRepo)
		store := new(MockStorage)
		uc := usecase.NewCVUsecase(repo, store, nil, "")

		_, err := uc.Upload(ctx, domain.CVUpload{
			CandidateID: "c1", OriginalName: "a.txt", ContentType: "text/plain",
			Size: 5, Content: strings.NewReader("hello"),
		})
		assert.Equal(t, 400, apperror.Code(err))

		_, err = uc.Upload(ctx, domain.CVUpload{
			CandidateID: "c1", OriginalName: "big.pdf", ContentType: "application/pdf",
			Size: domain.MaxCVSize + 1, Content: bytes.NewReader(samplePDF),
		})
		assert.Equal(t, 400, apperror.Code(err))

		_, err = uc.Upload(ctx, domain.CVUpload{
			OriginalName: "a.pdf", ContentType: "application/pdf",
			Size: int64(len(samplePDF)), Content: bytes.NewReader(samplePDF),
		})
		assert.Equal(t, 400, apperror.Code(err))

		repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should delete the new file when the row cannot be written", func(t *testing.T) {
		repo := new(MockCVRepo)
		store := new(MockStorage)
		uc := usecase.NewCVUsecase(repo, store, nil, "")

		store.On("Save", ctx, mock.AnythingOfType("string"), "application/pdf").Return(nil)
		repo.On("Replace", ctx, mock.Anything).Return(nil, apperror.Internal(errors.New("db down")))
		store.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

		_, err := uc.Upload(ctx, domain.CVUpload{
			CandidateID: "c1", OriginalName: "a.pdf", ContentType: "application/pdf",
			Size: int64(len(samplePDF)), Content: bytes.NewReader(samplePDF),
		})
		assert.Equal(t, 500, apperror.Code(err))
		store.AssertNumberOfCalls(t, "Delete", 1)
	})
}

func TestCVUploadScan(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCVRepo)
	store := new(MockStorage)
	uc := usecase.NewCVUsecase(repo, store, infectedScanner{}, "")

	_, err := uc.Upload(ctx, domain.CVUpload{
		CandidateID: "c1", OriginalName: "a.pdf", ContentType: "application/pdf",
		Size: int64(len(samplePDF)), Content: bytes.NewReader(samplePDF),
	})
	assert.Equal(t, 400, apperror.Code(err))
	assert.Equal(t, "CV file failed malware scan", err.Error())
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestCVLookup(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCVRepo)
	store := new(MockStorage)
	uc := usecase.NewCVUsecase(repo, store, nil, "")

	repo.On("GetByCandidate", ctx, "none").Return(nil, nil)
	store.On("Open", ctx, "missing.pdf").Return(nil, storage.ErrNotFound)

	_, err := uc.GetByCandidate(ctx, "none")
	assert.Equal(t, 404, apperror.Code(err))

	_, err = uc.Open(ctx, "missing.pdf")
	assert.Equal(t, 404, apperror.Code(err))

	_, err = uc.Open(ctx, "../etc/passwd")
	assert.Equal(t, 404, apperror.Code(err))
	store.AssertNotCalled(t, "Open", ctx, "../etc/passwd")
}

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepo)
	videos := new(MockVideoRepo)
	answers := new(MockAnswerRepo)
	uc := usecase.NewDirectoryUsecase(users, videos, answers)

	users.On("ListByRole", ctx, "candidate").Return([]domain.User{{ID: "c1"}, {ID: "c2"}}, nil)
	videos.On("ListByCandidate", ctx, "c1").Return([]domain.Video{{ID: "v1"}}, nil)
	videos.On("ListByCandidate", ctx, "c2").Return([]domain.Video{}, nil)
	answers.On("ListByCandidate", ctx, "c1").Return([]domain.Answer{}, nil)
	answers.On("ListByCandidate", ctx, "c2").Return([]domain.Answer{{ID: "a1"}}, nil)

	list, err := uc.ListCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Len(t, list[0].Videos, 1)
	assert.Len(t, list[1].Answers, 1)
	assert.NotNil(t, list[1].Videos)
}

func TestUserAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject empty fields", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), &recordingAuditor{}, validation.New())
		err := uc.Update(ctx, "u1", domain.UpdateUserInput{Username: "", Email: "a@x.com"})
		assert.Equal(t, 400, apperror.Code(err))
	})

	t.Run("Should fail with NotFound for an unknown user", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, &recordingAuditor{}, validation.New())
		repo.On("GetByID", ctx, "missing").Return(nil, nil)

		err := uc.Update(ctx, "missing", domain.UpdateUserInput{Username: "a", Email: "a@x.com"})
		assert.Equal(t, 404, apperror.Code(err))
	})

	t.Run("Should fail with Conflict when another user owns the email", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo, &recordingAuditor{}, validation.New())
		repo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "old@x.com"}, nil)
		repo.On("GetByEmail", ctx, "taken@x.com").Return(&domain.User{ID: "u2"}, nil)

		err := uc.Update(ctx, "u1", domain.UpdateUserInput{Username: "a", Email: "taken@x.com"})
		assert.Equal(t, 409, apperror.Code(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should allow keeping the same email", func(t *testing.T) {
		repo := new(MockUserRepo)
		audit := &recordingAuditor{}
		uc := usecase.NewUserUsecase(repo, audit, validation.New())
		repo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "a@x.com"}, nil)
		repo.On("GetByEmail", ctx, "a@x.com").Return(&domain.User{ID: "u1"}, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(true, nil)

		err := uc.Update(ctx, "u1", domain.UpdateUserInput{Username: "renamed", Email: "a@x.com"})
		require.NoError(t, err)
		require.Len(t, audit.events, 1)
		assert.Equal(t, "anonymous", audit.events[0].Details["actor"])
	})

	t.Run("Should audit deletes and map missing rows to NotFound", func(t *testing.T) {
		repo := new(MockUserRepo)
		audit := &recordingAuditor{}
		uc := usecase.NewUserUsecase(repo, audit, validation.New())
		repo.On("Delete", ctx, "u1").Return(true, nil)
		repo.On("Delete", ctx, "missing").Return(false, nil)

		require.NoError(t, uc.Delete(ctx, "u1"))
		assert.Equal(t, 404, apperror.Code(uc.Delete(ctx, "missing")))
		require.Len(t, audit.events, 1)
		assert.Equal(t, security.EventUserDeleted, audit.events[0].Event)
	})
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	got := usecase.NewHealthUsecase(nil).Check(ctx)
	assert.Equal(t, "System operational", got["message"])
	assert.Equal(t, "unconfigured", got["database"])

	got = usecase.NewHealthUsecase(pingerFunc(func(context.Context) error { return nil })).Check(ctx)
	assert.Equal(t, "ok", got["database"])

	got = usecase.NewHealthUsecase(pingerFunc(func(context.Context) error { return errors.New("down") })).Check(ctx)
	assert.Equal(t, "unreachable", got["database"])
}
