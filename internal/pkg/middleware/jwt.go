package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/jwt"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/gorent/gorent/internal/utils"
	"github.com/labstack/echo/v4"
)

// CustomerIDKey is the echo context key holding the authenticated
// customer id set by JWTAuthMiddleware.
const CustomerIDKey = "customer_id"

// JWTAuthMiddleware validates bearer tokens and puts the authenticated
// customer id into the request context. Tokens are issued elsewhere;
// this service only verifies them.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwt.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			customerIDStr, ok := claims[CustomerIDKey]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing customer_id claim")
			}

			customerID, err := uuid.Parse(fmt.Sprintf("%v", customerIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: customer_id is not a valid UUID")
			}

			c.Set(CustomerIDKey, customerID)
			return next(c)
		}
	}
}

// CustomerID extracts the authenticated customer id from the context
func CustomerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(CustomerIDKey).(uuid.UUID)
	return id, ok
}
