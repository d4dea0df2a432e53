package http

import (
	"net/http"
	"strconv"
	"strings"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// Auth validates an HS256 bearer token and stores the principal it names.
// The principal comes from the "sub" claim and must be a positive integer.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			principal, ok := principalFromClaims(claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

func principalFromClaims(claims jwt.MapClaims) (kernel.PrincipalID, bool) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return kernel.NoPrincipal, false
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return kernel.NoPrincipal, false
	}
	p := kernel.PrincipalID(id)
	return p, p.IsAuthenticated()
}

// principalFrom returns NoPrincipal for routes not behind Auth; use cases reject it.
func principalFrom(c echo.Context) kernel.PrincipalID {
	p, ok := c.Get(principalContextKey).(kernel.PrincipalID)
	if !ok {
		return kernel.NoPrincipal
	}
	return p
}
