package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"vocab-drills/internal/cache"
	"vocab-drills/internal/domain"
	"vocab-drills/internal/logger"
	"vocab-drills/internal/parser"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuestionBankService loads and parses the question dump.
type QuestionBankService interface {
	// Questions returns the parsed bank. An unavailable source yields an
	// empty slice, never an error.
	Questions(ctx context.Context) []domain.Question
	// SourceName identifies where the bank comes from.
	SourceName() string
	// Invalidate drops the cached bank so the next call re-reads the source.
	Invalidate(ctx context.Context) error
}

type questionBankService struct {
	source  domain.QuestionSource
	cache   domain.Cache
	ttl     time.Duration
	limit   int
	sfGroup singleflight.Group
}

// NewQuestionBankService creates the bank loader. cache may be nil, in which
// case every call reads and parses the source.
func NewQuestionBankService(source domain.QuestionSource, cache domain.Cache, ttl time.Duration, limit int) QuestionBankService {
	if limit <= 0 {
		limit = parser.MaxQuestions
	}
	if cache == nil {
		logger.Get().Warn("QuestionBankService initialized without cache. Every load reads the source.")
	}
	return &questionBankService{
		source: source,
		cache:  cache,
		ttl:    ttl,
		limit:  limit,
	}
}

func (s *questionBankService) SourceName() string {
	return s.source.Name()
}

func (s *questionBankService) cacheKey() string {
	return cache.QuestionBankKey(s.source.Name(), strconv.Itoa(s.limit))
}

func (s *questionBankService) Questions(ctx context.Context) []domain.Question {
	key := s.cacheKey()

	if questions, ok := s.fromCache(ctx, key); ok {
		return questions
	}

	res, _, shared := s.sfGroup.Do(key, func() (interface{}, error) {
		return s.load(ctx, key), nil
	})
	if shared {
		logger.Get().Debug("Question bank load shared with concurrent caller", zap.String("key", key))
	}
	return res.([]domain.Question)
}

func (s *questionBankService) fromCache(ctx context.Context, key string) ([]domain.Question, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Error("Failed to read question bank from cache", zap.Error(err), zap.String("key", key))
		}
		return nil, false
	}

	var questions []domain.Question
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		logger.Get().Error("Failed to unmarshal cached question bank", zap.Error(err), zap.String("key", key))
		return nil, false
	}
	logger.Get().Debug("Question bank cache hit", zap.String("key", key), zap.Int("count", len(questions)))
	return questions, true
}

// load fetches and parses the dump. Source failures are logged and produce
// an empty bank that is not cached.
func (s *questionBankService) load(ctx context.Context, key string) []domain.Question {
	text, err := s.source.Fetch(ctx)
	if err != nil {
		logger.Get().Warn("Question source unavailable, serving empty bank",
			zap.String("source", s.source.Name()),
			zap.Error(err),
		)
		return []domain.Question{}
	}

	questions := parser.ParseWithLimit(text, s.limit)
	logger.Get().Info("Parsed question bank",
		zap.String("source", s.source.Name()),
		zap.Int("bytes", len(text)),
		zap.Int("count", len(questions)),
	)

	if s.cache != nil {
		data, err := json.Marshal(questions)
		if err != nil {
			logger.Get().Error("Failed to marshal question bank for caching", zap.Error(err))
			return questions
		}
		if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
			logger.Get().Error("Failed to cache question bank", zap.Error(err), zap.String("key", key))
		}
	}
	return questions
}

func (s *questionBankService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	key := s.cacheKey()
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError("failed to invalidate question bank cache", err).WithContext("key", key)
	}
	logger.Get().Info("Question bank cache invalidated", zap.String("key", key))
	return nil
}
