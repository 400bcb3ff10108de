package middleware

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"github.com/patitas-felices/shelter-portal/internal/services"
	"github.com/patitas-felices/shelter-portal/internal/session"
)

// IdentityKey is where RequireAuth stores the resolved identity in fiber
// Locals for the rest of the request.
const IdentityKey = "identity"

// Identity reads the request identity set by RequireAuth.
func Identity(c *fiber.Ctx) (*session.Identity, bool) {
	ident, ok := c.Locals(IdentityKey).(*session.Identity)
	return ident, ok
}

// RequireAuth resolves the session identity, falling back to the signed
// remember-me cookie, and redirects anonymous requests to the login page
// with the original URL as the next parameter.
func RequireAuth(sessions *session.Manager, auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ident, ok := sessions.Current(c); ok {
			c.Locals(IdentityKey, ident)
			return c.Next()
		}

		if raw := c.Cookies(services.RememberCookie); raw != "" {
			if user, err := auth.UserFromRememberToken(raw); err == nil {
				if err := sessions.Establish(c, user); err == nil {
					c.Locals(IdentityKey, &session.Identity{
						UserID:   user.ID,
						Nombre:   user.Nombre,
						Apellido: user.Apellido,
						Email:    user.Email,
						Rol:      user.Role(),
						RolID:    models.RoleIDs[user.Role()],
						LoginAt:  time.Now(),
					})
					return c.Next()
				}
			}
			// Stale or forged cookie: drop it so we stop retrying.
			c.ClearCookie(services.RememberCookie)
		}

		return c.Redirect("/login?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusSeeOther)
	}
}

// RequireRole allows the request through only when the identity's role is
// in the given set. A single role or a list both work. Denials render the
// 403 page without leaking anything about the resource.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, ok := Identity(c)
		if !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		for _, r := range roles {
			if ident.Rol == r {
				return c.Next()
			}
		}

		slog.Warn("role denied",
			"path", c.Path(),
			"user_id", ident.UserID.String(),
			"rol", string(ident.Rol))
		return fiber.NewError(fiber.StatusForbidden, "No tienes permiso para acceder a esta página")
	}
}
