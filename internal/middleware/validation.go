package middleware

import (
	"vocab-drills/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionIDLocal is the fiber.Locals key holding a validated session id.
const SessionIDLocal = "validated_session_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSessionID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Params("id")
		if errors := vm.validator.ValidateSessionID(sessionID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(SessionIDLocal, sessionID)
		return c.Next()
	}
}

// ValidatedSessionID returns the id stored by ValidateSessionID, falling back
// to the raw path parameter when the middleware did not run.
func ValidatedSessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(SessionIDLocal).(string); ok {
		return id
	}
	return c.Params("id")
}
