package middleware

import (
	"strings"

	"recipevault/domain"
	"recipevault/internal/api/presenters"
	"recipevault/pkg/jwt"
	"recipevault/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	})
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// AuthMiddleware rejects requests without a valid identity and upserts the
// user row on every successful authentication, so a recipe insert can never
// point at a user the store has not seen.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		identity, err := jwtService.ValidateToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		if _, err := userService.SyncIdentity(c.Context(), identity); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSyncIdentity, err)
		}

		c.Locals("user_id", identity.UserID)
		c.Locals("identity", identity)
		return c.Next()
	}
}

// OptionalAuthMiddleware establishes identity when a valid token is present
// and proceeds anonymously otherwise. An invalid token is treated as no
// token, matching how optional sessions behave.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		identity, err := jwtService.ValidateToken(token)
		if err != nil {
			return c.Next()
		}

		if _, err := userService.SyncIdentity(c.Context(), identity); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSyncIdentity, err)
		}

		c.Locals("user_id", identity.UserID)
		c.Locals("identity", identity)
		return c.Next()
	}
}
