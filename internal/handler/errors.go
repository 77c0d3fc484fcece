package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/pkg/logger"
	"github.com/gympoint/api/pkg/response"
)

// writeError maps a service error onto the HTTP envelope. Anything not in
// the domain taxonomy is logged and reported opaquely.
func writeError(c *gin.Context, err error) {
	var validationErrs *domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, toFieldErrors(validationErrs))
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		response.Unauthorized(c, "Invalid or expired refresh token")
	case errors.Is(err, domain.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, domain.ErrGymNotFound):
		response.NotFound(c, "Gym not found")
	case errors.Is(err, domain.ErrCheckInNotFound):
		response.NotFound(c, "Check-in not found")
	case errors.Is(err, domain.ErrTooFarFromGym):
		response.BadRequest(c, "You are too far away from the gym to perform a check in")
	case errors.Is(err, domain.ErrCheckInAlreadyValidated):
		response.Conflict(c, "Check-in has already been validated")
	case errors.Is(err, domain.ErrDailyCheckInLimit):
		response.TooManyRequests(c, "You can only check in to one gym per day. Please try again tomorrow.")
	case errors.Is(err, domain.ErrLateCheckInValidation):
		response.UnprocessableEntity(c, "Check-in can only be validated within 20 minutes of creation.")
	default:
		logger.Get().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		response.InternalError(c)
	}
}

func toFieldErrors(errs *domain.ValidationErrors) []response.FieldError {
	fields := make([]response.FieldError, 0, len(errs.Violations))
	for _, v := range errs.Violations {
		fields = append(fields, response.FieldError{Field: v.Field, Message: v.Message})
	}
	return fields
}
