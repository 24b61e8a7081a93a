package v1_test

import (
	"context"
	"sort"
	"sync"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/security"
)

// memStore backs every repository interface with maps so the router can be
// exercised end to end without Postgres.
type memStore struct {
	mu        sync.Mutex
	users     map[string]domain.User
	questions map[string]domain.Question
	answers   []domain.Answer
	videos    []domain.Video
	cvs       []domain.CV
	failNext  error
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]domain.User{},
		questions: map[string]domain.Question{},
	}
}

func (s *memStore) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return apperror.Conflict("User already exists")
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUserRepo) ListByRole(_ context.Context, role string) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	out := []domain.User{}
	for _, u := range r.s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r memUserRepo) Update(_ context.Context, u *domain.User) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return false, nil
	}
	r.s.users[u.ID] = *u
	return true, nil
}

func (r memUserRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	videos := r.s.videos[:0]
	for _, v := range r.s.videos {
		if v.CandidateID != id {
			videos = append(videos, v)
		}
	}
	r.s.videos = videos
	answers := r.s.answers[:0]
	for _, a := range r.s.answers {
		if a.CandidateID != id {
			answers = append(answers, a)
		}
	}
	r.s.answers = answers
	delete(r.s.users, id)
	return true, nil
}

type memQuestionRepo struct{ s *memStore }

func (r memQuestionRepo) List(_ context.Context) ([]domain.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Question{}
	for _, q := range r.s.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r memQuestionRepo) GetByID(_ context.Context, id string) (*domain.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if q, ok := r.s.questions[id]; ok {
		return &q, nil
	}
	return nil, nil
}

func (r memQuestionRepo) Create(_ context.Context, q *domain.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.questions[q.ID] = *q
	return nil
}

func (r memQuestionRepo) Update(_ context.Context, q *domain.Question) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questions[q.ID]; !ok {
		return false, nil
	}
	r.s.questions[q.ID] = *q
	return true, nil
}

func (r memQuestionRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questions[id]; !ok {
		return false, nil
	}
	answers := r.s.answers[:0]
	for _, a := range r.s.answers {
		if a.QuestionID != id {
			answers = append(answers, a)
		}
	}
	r.s.answers = answers
	delete(r.s.questions, id)
	return true, nil
}

type memAnswerRepo struct{ s *memStore }

func (r memAnswerRepo) CreateBatch(_ context.Context, answers []domain.Answer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return err
	}
	r.s.answers = append(r.s.answers, answers...)
	return nil
}

func (r memAnswerRepo) ListByCandidate(_ context.Context, candidateID string) ([]domain.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Answer{}
	for _, a := range r.s.answers {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r memAnswerRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, a := range r.s.answers {
		if a.ID == id {
			r.s.answers = append(r.s.answers[:i], r.s.answers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memVideoRepo struct{ s *memStore }

func (r memVideoRepo) Create(_ context.Context, v *domain.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.videos = append(r.s.videos, *v)
	return nil
}

func (r memVideoRepo) ListByCandidate(_ context.Context, candidateID string) ([]domain.Video, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Video{}
	for _, v := range r.s.videos {
		if v.CandidateID == candidateID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r memVideoRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, v := range r.s.videos {
		if v.ID == id {
			r.s.videos = append(r.s.videos[:i], r.s.videos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memCVRepo struct{ s *memStore }

func (r memCVRepo) Replace(_ context.Context, cv *domain.CV) ([]domain.CV, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var removed []domain.CV
	kept := r.s.cvs[:0]
	for _, c := range r.s.cvs {
		if c.CandidateID == cv.CandidateID {
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	r.s.cvs = append(kept, *cv)
	return removed, nil
}

func (r memCVRepo) GetByCandidate(_ context.Context, candidateID string) (*domain.CV, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.cvs {
		if c.CandidateID == candidateID {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memStore) cvCount(candidateID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.cvs {
		if c.CandidateID == candidateID {
			n++
		}
	}
	return n
}

type nopAuditor struct{}

func (nopAuditor) Log(context.Context, security.SecurityEvent) {}
