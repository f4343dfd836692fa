package sessionapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Abraxas-365/counsel/pkg/errx"
)

var authErrors = errx.NewRegistry("AUTH")

var (
	codeMissingToken = authErrors.Register("MISSING_TOKEN", errx.TypeAuthorization, fiber.StatusUnauthorized, "missing bearer token")
	codeInvalidToken = authErrors.Register("INVALID_TOKEN", errx.TypeAuthorization, fiber.StatusUnauthorized, "invalid bearer token")
)

// ServiceTokenMiddleware validates HS256 service tokens on incoming
// requests. Collaborating services authenticate with a shared secret.
func ServiceTokenMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return authErrors.New(codeMissingToken)
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header {
			return authErrors.New(codeInvalidToken).WithDetail("reason", "expected bearer scheme")
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, authErrors.New(codeInvalidToken)
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return authErrors.NewWithCause(codeInvalidToken, err)
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if svc, ok := claims["svc"].(string); ok {
				c.Locals("service", svc)
			}
		}

		return c.Next()
	}
}

// IssueServiceToken mints a token for a collaborating service. Used by
// operational tooling to provision dialogue and UI services.
func IssueServiceToken(secret, serviceName string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"svc": serviceName,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}
