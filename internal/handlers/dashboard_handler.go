package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patitas-felices/shelter-portal/internal/middleware"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"github.com/patitas-felices/shelter-portal/internal/services"
)

type DashboardHandler struct {
	animals    *services.AnimalService
	adoptions  *services.AdoptionService
	volunteers *services.VolunteerService
}

func NewDashboardHandler(animals *services.AnimalService, adoptions *services.AdoptionService, volunteers *services.VolunteerService) *DashboardHandler {
	return &DashboardHandler{animals: animals, adoptions: adoptions, volunteers: volunteers}
}

// Generic is the adopter landing page and the fallback for roles without
// a dedicated dashboard.
func (h *DashboardHandler) Generic(c *fiber.Ctx) error {
	ident, _ := middleware.Identity(c)

	enRevision, err := h.adoptions.CountByUserAndEstado(ident.UserID, models.SolicitudEnRevision)
	if err != nil {
		return err
	}
	aprobadas, err := h.adoptions.CountByUserAndEstado(ident.UserID, models.SolicitudAprobada)
	if err != nil {
		return err
	}
	completadas, err := h.adoptions.CountByUserAndEstado(ident.UserID, models.SolicitudCompletada)
	if err != nil {
		return err
	}
	disponibles, err := h.animals.CountAvailable()
	if err != nil {
		return err
	}

	return c.Render("pages/dashboard", bind(c, "Mi panel", fiber.Map{
		"EnRevision":  enRevision,
		"Aprobadas":   aprobadas,
		"Completadas": completadas,
		"Disponibles": disponibles,
	}))
}

func (h *DashboardHandler) Coordinator(c *fiber.Ctx) error {
	pendientes, err := h.adoptions.CountPending()
	if err != nil {
		return err
	}

	from, to := services.MonthRange(time.Now())
	completadasMes, err := h.adoptions.CountCompletedBetween(from, to)
	if err != nil {
		return err
	}

	disponibles, err := h.animals.CountAvailable()
	if err != nil {
		return err
	}

	promedioDias, err := h.adoptions.AverageDaysToAdoption()
	if err != nil {
		return err
	}

	return c.Render("pages/dashboard_coordinator", bind(c, "Panel de coordinación", fiber.Map{
		"Pendientes":     pendientes,
		"CompletadasMes": completadasMes,
		"Disponibles":    disponibles,
		"PromedioDias":   promedioDias,
	}))
}

// Veterinarian renders the vet dashboard. The evaluation, pending-checkup
// and medical-alert widgets never had real queries behind them in the
// legacy portal; the template shows explicit "No disponible" placeholders
// instead of fabricated zeros.
func (h *DashboardHandler) Veterinarian(c *fiber.Ctx) error {
	enRefugio, err := h.animals.CountInShelter()
	if err != nil {
		return err
	}

	return c.Render("pages/dashboard_vet", bind(c, "Panel veterinario", fiber.Map{
		"EnRefugio": enRefugio,
	}))
}

func (h *DashboardHandler) Volunteer(c *fiber.Ctx) error {
	ident, _ := middleware.Identity(c)

	inscripciones, err := h.volunteers.ActiveEnrollmentCount(ident.UserID)
	if err != nil {
		return err
	}
	horas, err := h.volunteers.TotalHours(ident.UserID)
	if err != nil {
		return err
	}
	actividades, err := h.volunteers.UpcomingActivities(5)
	if err != nil {
		return err
	}

	return c.Render("pages/dashboard_volunteer", bind(c, "Panel de voluntariado", fiber.Map{
		"Inscripciones": inscripciones,
		"Horas":         horas,
		"Actividades":   actividades,
	}))
}
