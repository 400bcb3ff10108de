package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patitas-felices/shelter-portal/internal/dto"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"github.com/patitas-felices/shelter-portal/internal/services"
	"github.com/patitas-felices/shelter-portal/internal/session"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *session.Manager
}

func NewAuthHandler(auth *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if ident, ok := h.sessions.Current(c); ok {
		return c.Redirect(models.DashboardPath(ident.Rol), fiber.StatusSeeOther)
	}
	return c.Render("pages/login", bind(c, "Iniciar sesión", fiber.Map{
		"Next":       safeNext(c.Query("next")),
		"Registered": c.Query("registrado") == "1",
	}))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulario no válido")
	}

	user, err := h.auth.Login(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", form.Email, "ip", c.IP())
			return c.Status(fiber.StatusUnauthorized).Render("pages/login", bind(c, "Iniciar sesión", fiber.Map{
				"Error": "Correo o contraseña incorrectos.",
				"Email": form.Email,
				"Next":  safeNext(form.Next),
			}))
		}
		return err
	}

	if err := h.sessions.Establish(c, user); err != nil {
		return err
	}

	if form.Remember == "si" {
		if token, err := h.auth.RememberToken(user); err == nil {
			c.Cookie(&fiber.Cookie{
				Name:     services.RememberCookie,
				Value:    token,
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
	}

	slog.Info("login", "user_id", user.ID.String(), "rol", user.Rol)

	if next := safeNext(form.Next); next != "" {
		return c.Redirect(next, fiber.StatusSeeOther)
	}
	return c.Redirect(models.DashboardPath(user.Role()), fiber.StatusSeeOther)
}

func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	if _, ok := h.sessions.Current(c); ok {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Render("pages/register", bind(c, "Crear cuenta", fiber.Map{
		"Form":   &dto.RegisterForm{},
		"Errors": map[string]string{},
	}))
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var form dto.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulario no válido")
	}

	user, fieldErrs, err := h.auth.Register(&form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("pages/register", bind(c, "Crear cuenta", fiber.Map{
			"Form":   &form,
			"Errors": fieldErrs,
		}))
	}

	slog.Info("user registered", "user_id", user.ID.String(), "rol", user.Rol)

	// The success panel meta-refreshes to the login page after a moment.
	return c.Render("pages/register", bind(c, "Crear cuenta", fiber.Map{
		"Success": true,
		"Form":    &dto.RegisterForm{},
		"Errors":  map[string]string{},
	}))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Destroy(c); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	c.ClearCookie(services.RememberCookie)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
