package adaptor

import (
	"errors"
	"net/http"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

// respondServiceError maps service errors onto the HTTP error taxonomy.
// Anything outside the taxonomy is an internal error: logged in full,
// returned as a generic message.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *entity.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, entity.ErrConflict):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseBadRequest(w, "Email already registered", nil)

	case errors.Is(err, entity.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid email or password")

	case errors.Is(err, entity.ErrAccountDisabled):
		log.Warn(operation+" failed - account disabled", zap.Error(err))
		utils.ResponseUnauthorized(w, "Account disabled")

	case errors.Is(err, entity.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Unauthorized")

	case errors.Is(err, entity.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Not authorized to perform this action")

	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Resource not found")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
