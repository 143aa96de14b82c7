package service

import (
	"context"
	"errors"

	"vocab-drills/internal/domain"
	"vocab-drills/internal/dto"
	"vocab-drills/internal/logger"
	"vocab-drills/internal/util"

	"go.uber.org/zap"
)

// DrillService drives drill sessions on behalf of the HTTP layer.
// Out-of-order operations leave the session untouched and still return
// its current view.
type DrillService interface {
	Start(ctx context.Context) (*dto.SessionResponse, error)
	Get(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Select(ctx context.Context, sessionID, letter string) (*dto.SessionResponse, error)
	Submit(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Next(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Restart(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	End(ctx context.Context, sessionID string) error
}

type drillService struct {
	bank     QuestionBankService
	sessions domain.SessionRepository
	newID    func() string
}

func NewDrillService(bank QuestionBankService, sessions domain.SessionRepository) DrillService {
	return &drillService{
		bank:     bank,
		sessions: sessions,
		newID:    util.NewULID,
	}
}

func (s *drillService) Start(ctx context.Context) (*dto.SessionResponse, error) {
	session := domain.NewSession(s.bank.Questions(ctx))
	id := s.newID()

	if err := s.sessions.Create(ctx, id, session); err != nil {
		return nil, domain.NewInternalError("failed to store drill session", err)
	}

	logger.Get().Info("Drill session started",
		zap.String("session_id", id),
		zap.Int("questions", session.Len()),
	)
	return toSessionResponse(id, session), nil
}

func (s *drillService) Get(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.apply(ctx, sessionID, "get", func(*domain.Session) bool { return true })
}

func (s *drillService) Select(ctx context.Context, sessionID, letter string) (*dto.SessionResponse, error) {
	return s.apply(ctx, sessionID, "select", func(session *domain.Session) bool {
		if session.Revealed() || session.Empty() {
			return false
		}
		session.Select(letter)
		return true
	})
}

func (s *drillService) Submit(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.apply(ctx, sessionID, "submit", (*domain.Session).Submit)
}

func (s *drillService) Next(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.apply(ctx, sessionID, "next", (*domain.Session).Next)
}

func (s *drillService) Restart(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.apply(ctx, sessionID, "restart", func(session *domain.Session) bool {
		session.Restart()
		return true
	})
}

func (s *drillService) End(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return mapSessionError(sessionID, err)
	}
	logger.Get().Info("Drill session ended", zap.String("session_id", sessionID))
	return nil
}

// apply runs op under the repository lock and renders the resulting view.
// op reports whether it changed anything; ignored operations are logged.
func (s *drillService) apply(ctx context.Context, sessionID, opName string, op func(*domain.Session) bool) (*dto.SessionResponse, error) {
	var resp *dto.SessionResponse
	err := s.sessions.Update(ctx, sessionID, func(session *domain.Session) error {
		if !op(session) {
			logger.Get().Debug("Drill operation ignored in current state",
				zap.String("session_id", sessionID),
				zap.String("op", opName),
				zap.String("state", string(session.State())),
			)
		}
		resp = toSessionResponse(sessionID, session)
		return nil
	})
	if err != nil {
		return nil, mapSessionError(sessionID, err)
	}
	return resp, nil
}

func mapSessionError(sessionID string, err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.NewSessionNotFoundError(sessionID)
	}
	return domain.NewInternalError("drill session operation failed", err)
}

func toSessionResponse(id string, session *domain.Session) *dto.SessionResponse {
	score := session.Score()
	resp := &dto.SessionResponse{
		SessionID: id,
		Available: !session.Empty(),
		Index:     session.Index(),
		Total:     session.Len(),
		State:     string(session.State()),
		Selected:  session.Selected(),
		Score:     dto.ScoreResponse{Correct: score.Correct, Total: score.Total},
		IsLast:    session.IsLast(),
		Finished:  session.Finished(),
	}

	q, ok := session.Current()
	if !ok {
		return resp
	}

	choices := make([]dto.ChoiceResponse, len(q.Choices))
	for i, c := range q.Choices {
		choices[i] = dto.ChoiceResponse{Letter: c.Letter, Text: c.Text}
	}
	resp.Question = &dto.QuestionResponse{
		ID:          q.ID,
		Question:    q.Text,
		Instruction: q.Instruction,
		Difficulty:  q.Difficulty,
		Choices:     choices,
	}

	if session.Revealed() {
		resp.Result = &dto.ResultResponse{
			Correct:       session.LastCorrect(),
			CorrectAnswer: q.CorrectAnswer,
			Rationale:     q.Rationale,
		}
	}
	return resp
}
