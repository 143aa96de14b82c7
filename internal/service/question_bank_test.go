package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"vocab-drills/internal/cache"
	"vocab-drills/internal/domain"
	"vocab-drills/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `Question ID q1
ID: q1
The cat was quiet. Which choice best describes the cat's mood?
A. calm
B. loud
ID: q1 Answer
Correct Answer:
A
Question ID q2
ID: q2
Second stem.
A. yes
B. no
Correct Answer:
B
`

var bankKey = cache.QuestionBankKey("mock:source", "20")

func TestQuestionBankService_CacheHit(t *testing.T) {
	cached, _ := json.Marshal([]domain.Question{{ID: "cached", Text: "From cache.", Choices: []domain.Choice{{Letter: "A", Text: "a"}}}})
	mockCache := &ManualMockCache{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, bankKey, key)
			return string(cached), nil
		},
	}
	src := &MockQuestionSource{}

	bank := service.NewQuestionBankService(src, mockCache, time.Hour, 20)
	questions := bank.Questions(context.Background())

	require.Len(t, questions, 1)
	assert.Equal(t, "cached", questions[0].ID)
	assert.Equal(t, 0, src.Calls(), "source must not be read on a cache hit")
}

func TestQuestionBankService_CacheMissLoadsAndStores(t *testing.T) {
	var stored string
	var storedTTL time.Duration
	mockCache := &ManualMockCache{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return "", domain.ErrCacheMiss
		},
		SetFunc: func(ctx context.Context, key string, value string, ttl time.Duration) error {
			assert.Equal(t, bankKey, key)
			stored = value
			storedTTL = ttl
			return nil
		},
	}
	src := &MockQuestionSource{FetchFunc: func(ctx context.Context) (string, error) { return sampleDump, nil }}

	bank := service.NewQuestionBankService(src, mockCache, 30*time.Minute, 20)
	questions := bank.Questions(context.Background())

	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "The cat was quiet.", questions[0].Text)
	assert.Equal(t, "B", questions[1].CorrectAnswer)
	assert.Equal(t, 30*time.Minute, storedTTL)

	var roundTrip []domain.Question
	require.NoError(t, json.Unmarshal([]byte(stored), &roundTrip))
	assert.Equal(t, questions, roundTrip)
}

func TestQuestionBankService_SourceUnavailable(t *testing.T) {
	setCalled := false
	mockCache := &ManualMockCache{
		GetFunc: func(ctx context.Context, key string) (string, error) { return "", domain.ErrCacheMiss },
		SetFunc: func(ctx context.Context, key string, value string, ttl time.Duration) error {
			setCalled = true
			return nil
		},
	}
	src := &MockQuestionSource{FetchFunc: func(ctx context.Context) (string, error) {
		return "", domain.NewSourceUnavailableError("mock:source", errors.New("404"))
	}}

	bank := service.NewQuestionBankService(src, mockCache, time.Hour, 20)
	questions := bank.Questions(context.Background())

	assert.NotNil(t, questions)
	assert.Empty(t, questions)
	assert.False(t, setCalled, "failed loads must not be cached")
}

func TestQuestionBankService_CacheErrorsAreBypassed(t *testing.T) {
	mockCache := &ManualMockCache{
		GetFunc: func(ctx context.Context, key string) (string, error) { return "", errors.New("redis down") },
		SetFunc: func(ctx context.Context, key string, value string, ttl time.Duration) error {
			return errors.New("redis down")
		},
	}
	src := &MockQuestionSource{FetchFunc: func(ctx context.Context) (string, error) { return sampleDump, nil }}

	bank := service.NewQuestionBankService(src, mockCache, time.Hour, 20)
	assert.Len(t, bank.Questions(context.Background()), 2)
}

func TestQuestionBankService_CorruptCacheEntryReloads(t *testing.T) {
	mockCache := &ManualMockCache{
		GetFunc: func(ctx context.Context, key string) (string, error) { return "{not json", nil },
		SetFunc: func(ctx context.Context, key string, value string, ttl time.Duration) error { return nil },
	}
	src := &MockQuestionSource{FetchFunc: func(ctx context.Context) (string, error) { return sampleDump, nil }}

	bank := service.NewQuestionBankService(src, mockCache, time.Hour, 20)
	assert.Len(t, bank.Questions(context.Background()), 2)
	assert.Equal(t, 1, src.Calls())
}

func TestQuestionBankService_NilCache(t *testing.T) {
	src := &MockQuestionSource{FetchFunc: func(ctx context.Context) (string, error) { return sampleDump, nil }}

	bank := service.NewQuestionBankService(src, nil, time.Hour, 1)
	questions := bank.Questions(context.Background())

	require.Len(t, questions, 1, "limit caps the parsed bank")
	assert.NoError(t, bank.Invalidate(context.Background()))
	assert.Equal(t, "mock:source", bank.SourceName())
}

func TestQuestionBankService_ConcurrentLoadsShareOneFetch(t *testing.T) {
	release := make(chan struct{})
	src := &MockQuestionSource{FetchFunc: func(ctx context.Context) (string, error) {
		<-release
		return sampleDump, nil
	}}

	bank := service.NewQuestionBankService(src, nil, time.Hour, 20)

	const callers = 8
	var started, done sync.WaitGroup
	results := make([][]domain.Question, callers)
	for i := 0; i < callers; i++ {
		started.Add(1)
		done.Add(1)
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i] = bank.Questions(context.Background())
		}(i)
	}
	started.Wait()
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()

	for _, r := range results {
		assert.Len(t, r, 2)
	}
	assert.LessOrEqual(t, src.Calls(), callers)
	assert.GreaterOrEqual(t, src.Calls(), 1)
}

func TestQuestionBankService_Invalidate(t *testing.T) {
	t.Run("deletes the bank key", func(t *testing.T) {
		var deleted string
		mockCache := &ManualMockCache{
			DeleteFunc: func(ctx context.Context, key string) error {
				deleted = key
				return nil
			},
		}
		bank := service.NewQuestionBankService(&MockQuestionSource{}, mockCache, time.Hour, 20)
		require.NoError(t, bank.Invalidate(context.Background()))
		assert.Equal(t, bankKey, deleted)
	})

	t.Run("wraps cache errors", func(t *testing.T) {
		mockCache := &ManualMockCache{
			DeleteFunc: func(ctx context.Context, key string) error { return errors.New("redis down") },
		}
		bank := service.NewQuestionBankService(&MockQuestionSource{}, mockCache, time.Hour, 20)
		err := bank.Invalidate(context.Background())
		assert.True(t, domain.IsCode(err, domain.CodeInternal))
	})
}
