package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"vocab-drills/internal/domain"
)

// ManualMockCache for domain.Cache interface
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return errors.New("PingFunc not set")
}

// MockQuestionSource for domain.QuestionSource interface
type MockQuestionSource struct {
	NameValue string
	FetchFunc func(ctx context.Context) (string, error)

	mu    sync.Mutex
	calls int
}

func (m *MockQuestionSource) Name() string {
	if m.NameValue == "" {
		return "mock:source"
	}
	return m.NameValue
}

func (m *MockQuestionSource) Fetch(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	panic("MockQuestionSource.FetchFunc not implemented")
}

func (m *MockQuestionSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockQuestionBankService for service.QuestionBankService interface
type MockQuestionBankService struct {
	QuestionsFunc  func(ctx context.Context) []domain.Question
	InvalidateFunc func(ctx context.Context) error
}

func (m *MockQuestionBankService) Questions(ctx context.Context) []domain.Question {
	if m.QuestionsFunc != nil {
		return m.QuestionsFunc(ctx)
	}
	panic("MockQuestionBankService.QuestionsFunc not implemented")
}

func (m *MockQuestionBankService) SourceName() string {
	return "mock:bank"
}

func (m *MockQuestionBankService) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

// MockSessionRepository for domain.SessionRepository interface
type MockSessionRepository struct {
	CreateFunc func(ctx context.Context, id string, s *domain.Session) error
	UpdateFunc func(ctx context.Context, id string, fn func(s *domain.Session) error) error
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockSessionRepository) Create(ctx context.Context, id string, s *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, id, s)
	}
	panic("MockSessionRepository.CreateFunc not implemented")
}

func (m *MockSessionRepository) Update(ctx context.Context, id string, fn func(s *domain.Session) error) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fn)
	}
	panic("MockSessionRepository.UpdateFunc not implemented")
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockSessionRepository.DeleteFunc not implemented")
}
