package middleware

import (
	"net/http"
	"strings"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/data/repository"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer token, loads the user it names, and
// attaches the identity to the request context. Token verification is
// purely cryptographic; the user load is what catches deleted or
// deactivated accounts.
func Authenticate(tokens *utils.TokenManager, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Access denied, token required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userID, err := tokens.Parse(parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for token",
					zap.Error(err),
					zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token for unknown user", zap.String("user_id", userID.String()))
				utils.ResponseUnauthorized(w, "Invalid token, user not found")
				return
			}

			if !user.IsActive {
				logger.Warn("Token for disabled account", zap.String("user_id", user.ID.String()))
				utils.ResponseUnauthorized(w, "Account disabled")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize gates a route to the given roles. It must be composed after
// Authenticate; a request without a resolved identity is rejected.
func Authorize(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[entity.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleStr, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if _, ok := allowed[entity.UserRole(roleStr)]; !ok {
				logger.Warn("Role not authorized for route",
					zap.String("role", roleStr),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Role "+roleStr+" not authorized for this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
