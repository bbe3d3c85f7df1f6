package interceptors

import (
	"net/http"
	"strings"

	"github.com/Kotlang/opsGo/auth"
	"github.com/Kotlang/opsGo/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthInterceptor verifies the operator bearer token on every dashboard route
// and puts the session on the request context, where the shared backend
// client picks it up for outbound calls.
func AuthInterceptor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := ""
			if strings.HasPrefix(strings.ToLower(header), "bearer ") {
				token = strings.TrimSpace(header[len("bearer "):])
			}

			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing bearer token"})
			}

			session, err := auth.VerifyToken(token)
			if err != nil {
				logger.Error("Failed validating token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Bad authorization string"})
			}

			ctx := auth.WithSession(c.Request().Context(), session)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
