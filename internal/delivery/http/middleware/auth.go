package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "sos/internal/delivery/context"
	"sos/internal/delivery/http/response"
	"sos/internal/domain/entity"
	"sos/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	keyCaller    = "caller"
	bearerPrefix = "Bearer "
)

// AuthMiddleware authenticates requests with the identity provider's bearer token.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate verifies the bearer token and stores the caller for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		caller, err := m.verifier.VerifyToken(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected identity token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyCaller, caller)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("owner_id", caller.OwnerID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// GetCaller returns the caller stored by Authenticate.
func GetCaller(c echo.Context) (*entity.Caller, bool) {
	caller, ok := c.Get(keyCaller).(*entity.Caller)

	return caller, ok && caller != nil
}
