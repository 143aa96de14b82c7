package handler

import (
	"vocab-drills/internal/dto"
	"vocab-drills/internal/logger"
	"vocab-drills/internal/middleware"
	"vocab-drills/internal/service"
	"vocab-drills/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DrillHandler handles drill-related HTTP requests
type DrillHandler struct {
	drills    service.DrillService
	bank      service.QuestionBankService
	validator *validation.Validator
}

// NewDrillHandler creates a new DrillHandler instance
func NewDrillHandler(drills service.DrillService, bank service.QuestionBankService) *DrillHandler {
	return &DrillHandler{
		drills:    drills,
		bank:      bank,
		validator: validation.NewValidator(),
	}
}

// Register mounts the drill routes on router.
func (h *DrillHandler) Register(router fiber.Router) {
	drills := router.Group("/drills")
	drills.Get("/questions", h.GetQuestionBank)
	drills.Post("/sessions", h.StartSession)

	validateID := middleware.NewValidationMiddleware().ValidateSessionID()
	drills.Get("/sessions/:id", validateID, h.GetSession)
	drills.Post("/sessions/:id/select", validateID, h.SelectAnswer)
	drills.Post("/sessions/:id/submit", validateID, h.SubmitAnswer)
	drills.Post("/sessions/:id/next", validateID, h.NextQuestion)
	drills.Post("/sessions/:id/restart", validateID, h.RestartSession)
	drills.Delete("/sessions/:id", validateID, h.EndSession)
}

// GetQuestionBank handles GET /api/drills/questions.
// It reports whether questions could be loaded, not the questions themselves.
func (h *DrillHandler) GetQuestionBank(c *fiber.Ctx) error {
	questions := h.bank.Questions(c.UserContext())
	return c.JSON(dto.QuestionBankResponse{
		Available: len(questions) > 0,
		Count:     len(questions),
		Source:    h.bank.SourceName(),
	})
}

// StartSession handles POST /api/drills/sessions
func (h *DrillHandler) StartSession(c *fiber.Ctx) error {
	resp, err := h.drills.Start(c.UserContext())
	if err != nil {
		return err
	}
	if !resp.Available {
		logger.Get().Warn("Drill session started without questions", zap.String("session_id", resp.SessionID))
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession handles GET /api/drills/sessions/:id
func (h *DrillHandler) GetSession(c *fiber.Ctx) error {
	id := middleware.ValidatedSessionID(c)
	return respond(c)(h.drills.Get(c.UserContext(), id))
}

// SelectAnswer handles POST /api/drills/sessions/:id/select
func (h *DrillHandler) SelectAnswer(c *fiber.Ctx) error {
	id := middleware.ValidatedSessionID(c)

	var req dto.SelectAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse select request body", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateSelectRequest(id, req.Letter); len(errs) > 0 {
		return errs
	}
	return respond(c)(h.drills.Select(c.UserContext(), id, req.Letter))
}

// SubmitAnswer handles POST /api/drills/sessions/:id/submit
func (h *DrillHandler) SubmitAnswer(c *fiber.Ctx) error {
	id := middleware.ValidatedSessionID(c)
	return respond(c)(h.drills.Submit(c.UserContext(), id))
}

// NextQuestion handles POST /api/drills/sessions/:id/next
func (h *DrillHandler) NextQuestion(c *fiber.Ctx) error {
	id := middleware.ValidatedSessionID(c)
	return respond(c)(h.drills.Next(c.UserContext(), id))
}

// RestartSession handles POST /api/drills/sessions/:id/restart
func (h *DrillHandler) RestartSession(c *fiber.Ctx) error {
	id := middleware.ValidatedSessionID(c)
	return respond(c)(h.drills.Restart(c.UserContext(), id))
}

// EndSession handles DELETE /api/drills/sessions/:id
func (h *DrillHandler) EndSession(c *fiber.Ctx) error {
	id := middleware.ValidatedSessionID(c)
	if err := h.drills.End(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// respond writes resp as JSON, or hands err to the error handler.
func respond(c *fiber.Ctx) func(*dto.SessionResponse, error) error {
	return func(resp *dto.SessionResponse, err error) error {
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}
}
