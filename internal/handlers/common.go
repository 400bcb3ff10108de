package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/patitas-felices/shelter-portal/internal/middleware"
)

// bind assembles the common template data: page title, the authenticated
// identity when present, and the CSRF token for forms.
func bind(c *fiber.Ctx, title string, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	if ident, ok := middleware.Identity(c); ok {
		data["Ident"] = ident
	}
	if tok, ok := c.Locals("csrf_token").(string); ok {
		data["CSRF"] = tok
	}
	return data
}

// safeNext only accepts local redirect targets, so a crafted next
// parameter cannot bounce the user to another site after login.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return ""
}
