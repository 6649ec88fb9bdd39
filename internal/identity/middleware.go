package identity

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// callerContextKey is the echo context key the middleware stores the caller under.
const callerContextKey = "identity.caller"

// Middleware returns an echo middleware that authenticates requests with a
// Bearer token and stores the resolved Caller in the request context.
// Requests without a valid token are rejected with 401.
func Middleware(tokens *TokenService, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			caller, err := tokens.ValidateToken(tokenString)
			if err != nil {
				logger.Warn("rejected request token",
					"path", ctx.Request().URL.Path,
					"error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			logger.Debug("authenticated caller",
				"caller", caller.Username,
				"path", ctx.Request().URL.Path)

			ctx.Set(callerContextKey, caller)
			return next(ctx)
		}
	}
}

// GetCaller returns the authenticated caller stored by the middleware.
// The second return value is false when the request was not authenticated,
// which is the case when the middleware is disabled.
func GetCaller(ctx echo.Context) (Caller, bool) {
	caller, ok := ctx.Get(callerContextKey).(Caller)
	return caller, ok
}
