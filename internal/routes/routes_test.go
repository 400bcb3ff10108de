package routes

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patitas-felices/shelter-portal/internal/config"
	"github.com/patitas-felices/shelter-portal/internal/handlers"
	"github.com/patitas-felices/shelter-portal/internal/services"
	"github.com/patitas-felices/shelter-portal/internal/session"
)

// newTestApp wires the full route table with nil database handles. Guarded
// routes reject anonymous requests before any handler touches the database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{SessionExpiry: time.Hour, SessionSecret: "test-secret"}
	sessions := session.NewManager(cfg)
	authService := services.NewAuthService(nil, cfg)
	animalService := services.NewAnimalService(nil)
	adoptionService := services.NewAdoptionService(nil)
	volunteerService := services.NewVolunteerService(nil)

	app := fiber.New()
	Setup(app, sessions, authService,
		handlers.NewAuthHandler(authService, sessions),
		handlers.NewCatalogHandler(animalService),
		handlers.NewAnimalHandler(animalService),
		handlers.NewAdoptionHandler(adoptionService, animalService),
		handlers.NewDashboardHandler(animalService, adoptionService, volunteerService),
		handlers.NewHealthHandler(),
	)
	return app
}

func TestGuardedRoutes_AnonymousRedirected(t *testing.T) {
	app := newTestApp(t)

	guarded := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/catalogo_animales"},
		{fiber.MethodGet, "/detalle_animal"},
		{fiber.MethodGet, "/solicitud_adopcion"},
		{fiber.MethodPost, "/solicitud_adopcion"},
		{fiber.MethodGet, "/mis_solicitudes"},
		{fiber.MethodGet, "/dashboard"},
		{fiber.MethodGet, "/dashboard-coordinador"},
		{fiber.MethodGet, "/dashboard-veterinario"},
		{fiber.MethodGet, "/dashboard-voluntario"},
		{fiber.MethodGet, "/gestion_solicitudes"},
		{fiber.MethodPost, "/gestion_solicitudes/abc"},
		{fiber.MethodGet, "/registrar_animal"},
		{fiber.MethodPost, "/registrar_animal"},
		{fiber.MethodGet, "/registrar_historial"},
		{fiber.MethodPost, "/registrar_historial"},
	}

	for _, r := range guarded {
		resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
		if err != nil {
			t.Fatalf("%s %s: %v", r.method, r.path, err)
		}
		if resp.StatusCode != fiber.StatusSeeOther {
			t.Errorf("%s %s: status = %d, want 303", r.method, r.path, resp.StatusCode)
			continue
		}
		if loc := resp.Header.Get("Location"); !strings.HasPrefix(loc, "/login?next=") {
			t.Errorf("%s %s: Location = %q", r.method, r.path, loc)
		}
	}
}

func TestRoot_AnonymousRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}
