package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patitas-felices/shelter-portal/internal/config"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"github.com/patitas-felices/shelter-portal/internal/services"
	"github.com/patitas-felices/shelter-portal/internal/session"
)

// newGuardedApp builds an app with a test-only /grant route that opens a
// session for the role in the query string, plus a staff-only route.
func newGuardedApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{SessionExpiry: time.Hour, SessionSecret: "test-secret"}
	sessions := session.NewManager(cfg)
	auth := services.NewAuthService(nil, cfg)

	app := fiber.New()

	app.Get("/grant", func(c *fiber.Ctx) error {
		user := &models.User{
			Nombre:   "Test",
			Apellido: "Usuario",
			Email:    "test@example.com",
			Rol:      c.Query("rol"),
		}
		if err := sessions.Establish(c, user); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/gestion",
		RequireAuth(sessions, auth),
		RequireRole(models.RoleCoordinador, models.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Get("/perfil",
		RequireAuth(sessions, auth),
		func(c *fiber.Ctx) error {
			ident, _ := Identity(c)
			return c.SendString(string(ident.Rol))
		})

	return app
}

// grant logs in with the given role and returns the session cookie.
func grant(t *testing.T, app *fiber.App, rol string) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, "/grant?rol="+url.QueryEscape(rol), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("grant: %v", err)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "patitas_session" {
			return c
		}
	}
	t.Fatal("grant: no session cookie issued")
	return nil
}

func TestRequireAuth_AnonymousRedirectsToLogin(t *testing.T) {
	app := newGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/perfil", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login?next=%2Fperfil" {
		t.Errorf("Location = %q", loc)
	}
}

func TestRequireAuth_SessionPassesThrough(t *testing.T) {
	app := newGuardedApp(t)
	cookie := grant(t, app, "Adoptante")

	req := httptest.NewRequest(fiber.MethodGet, "/perfil", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequireRole_DeniesOtherRoles(t *testing.T) {
	app := newGuardedApp(t)
	cookie := grant(t, app, "Voluntario")

	req := httptest.NewRequest(fiber.MethodGet, "/gestion", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestRequireRole_AllowsStaff(t *testing.T) {
	app := newGuardedApp(t)

	for _, rol := range []string{"Coordinador", "Admin", "Coordinador de Adopciones"} {
		cookie := grant(t, app, rol)

		req := httptest.NewRequest(fiber.MethodGet, "/gestion", nil)
		req.AddCookie(cookie)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("rol %q: status = %d, want 200", rol, resp.StatusCode)
		}
	}
}
