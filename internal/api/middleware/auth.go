package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/api/metrics"
	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// currentUserKey is the request-context slot the guard stores the
// authenticated identity under.
const currentUserKey = "current_user"

// Authenticated guards a route behind a bearer token and a minimum role.
//
// The pipeline runs strictly in order and short-circuits before the wrapped
// handler on any failure: extract the token, verify it, read the uid claim,
// load the user, check the role. RoleUser as the required role means "any
// authenticated user"; any other required role demands an exact match, with
// no hierarchy between roles. On success the password-free projection is
// attached to the request context for handlers to read via CurrentUser.
//
// The guard performs only reads, so cancelling the request mid-pipeline never
// leaves partial state, and nothing is cached across requests.
func Authenticated(tokens ports.TokenCodec, users ports.UserRepository, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractBearer(c)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return err
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrInvalidToken
			}

			uid, _ := claims["uid"].(string)
			if uid == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrInvalidToken
			}

			user, err := users.FindByID(c.Request().Context(), uid)
			if errors.Is(err, domain.ErrUserNotFound) {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.Unauthorized("User not found")
			}
			if err != nil {
				return err
			}

			if required != domain.RoleUser && user.Role != required {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.Forbidden(fmt.Sprintf("Access denied. Required role: %s", required))
			}

			c.Set(currentUserKey, user.Public())
			return next(c)
		}
	}
}

// extractBearer pulls the token out of the Authorization header.
func extractBearer(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", domain.Unauthorized("Not authenticated")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.Unauthorized("Not authenticated")
	}
	return parts[1], nil
}

// CurrentUser returns the authenticated identity the guard attached to the
// request, or nil when the route is unguarded.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(currentUserKey).(*domain.User)
	return user
}
