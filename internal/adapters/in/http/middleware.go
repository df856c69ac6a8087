package http

import (
	"net/http"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// principalContextKey is where the authenticated principal is stored on the
// echo context.
const principalContextKey = "principal"

// PrincipalMiddleware turns the X-User-Id / X-User-Role headers set by the
// upstream auth gateway into a kernel.Principal. Requests without a valid
// identity are rejected; the core never sees an anonymous caller.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID := ctx.Request().Header.Get("X-User-Id")
			role := ctx.Request().Header.Get("X-User-Role")

			if userID == "" || role == "" {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing caller identity",
				})
			}

			id, err := kernel.UUIDFromString(userID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid caller id",
				})
			}

			principal, err := kernel.NewPrincipal(id, kernel.Role(role))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid caller role",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// principalFrom retrieves the principal stored by PrincipalMiddleware.
func principalFrom(ctx echo.Context) (kernel.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(kernel.Principal)
	return principal, ok
}
