package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/patitas-felices/shelter-portal/internal/handlers"
	"github.com/patitas-felices/shelter-portal/internal/middleware"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"github.com/patitas-felices/shelter-portal/internal/services"
	"github.com/patitas-felices/shelter-portal/internal/session"
)

// guardedRoute declares one authenticated page and who may open it. An
// empty role set admits any authenticated user.
type guardedRoute struct {
	method  string
	path    string
	roles   []models.Role
	handler fiber.Handler
}

func Setup(
	app *fiber.App,
	sessions *session.Manager,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	animalHandler *handlers.AnimalHandler,
	adoptionHandler *handlers.AdoptionHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	// Credential endpoints get a stricter rate limit: 10 req/min per IP.
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	app.Get("/login", authHandler.ShowLogin)
	app.Post("/login", authLimiter, authHandler.Login)
	app.Get("/register", authHandler.ShowRegister)
	app.Post("/register", authLimiter, authHandler.Register)
	app.Get("/logout", authHandler.Logout)

	app.Get("/", func(c *fiber.Ctx) error {
		if ident, ok := sessions.Current(c); ok {
			return c.Redirect(models.DashboardPath(ident.Rol), fiber.StatusSeeOther)
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	})

	// Guard table: route → allowed roles, evaluated here once instead of
	// inside every page.
	staff := []models.Role{models.RoleCoordinador, models.RoleAdmin}
	solicitantes := []models.Role{models.RoleAdoptante, models.RoleCoordinador, models.RoleAdmin}

	table := []guardedRoute{
		{fiber.MethodGet, "/catalogo_animales", nil, catalogHandler.Catalog},
		{fiber.MethodGet, "/detalle_animal", nil, animalHandler.Detail},

		{fiber.MethodGet, "/solicitud_adopcion", solicitantes, adoptionHandler.ShowForm},
		{fiber.MethodPost, "/solicitud_adopcion", solicitantes, adoptionHandler.Submit},
		{fiber.MethodGet, "/mis_solicitudes", []models.Role{models.RoleAdoptante}, adoptionHandler.MyRequests},

		{fiber.MethodGet, "/dashboard", nil, dashboardHandler.Generic},
		{fiber.MethodGet, "/dashboard-coordinador", staff, dashboardHandler.Coordinator},
		{fiber.MethodGet, "/dashboard-veterinario", []models.Role{models.RoleVeterinario}, dashboardHandler.Veterinarian},
		{fiber.MethodGet, "/dashboard-voluntario", []models.Role{models.RoleVoluntario}, dashboardHandler.Volunteer},

		{fiber.MethodGet, "/gestion_solicitudes", staff, adoptionHandler.Manage},
		{fiber.MethodPost, "/gestion_solicitudes/:id", staff, adoptionHandler.Resolve},
		{fiber.MethodGet, "/registrar_animal", staff, animalHandler.ShowIntake},
		{fiber.MethodPost, "/registrar_animal", staff, animalHandler.Intake},
		{fiber.MethodGet, "/registrar_historial", []models.Role{models.RoleVeterinario}, animalHandler.ShowRecordForm},
		{fiber.MethodPost, "/registrar_historial", []models.Role{models.RoleVeterinario}, animalHandler.AddRecord},
	}

	requireAuth := middleware.RequireAuth(sessions, authService)
	for _, r := range table {
		chain := []fiber.Handler{requireAuth}
		if len(r.roles) > 0 {
			chain = append(chain, middleware.RequireRole(r.roles...))
		}
		chain = append(chain, r.handler)
		app.Add(r.method, r.path, chain...)
	}
}
