package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/patitas-felices/shelter-portal/internal/dto"
	"github.com/patitas-felices/shelter-portal/internal/middleware"
	"github.com/patitas-felices/shelter-portal/internal/services"
)

type AdoptionHandler struct {
	adoptions *services.AdoptionService
	animals   *services.AnimalService
}

func NewAdoptionHandler(adoptions *services.AdoptionService, animals *services.AnimalService) *AdoptionHandler {
	return &AdoptionHandler{adoptions: adoptions, animals: animals}
}

// ShowForm renders the questionnaire with the applicant's identity fields
// prefilled read-only from the session.
func (h *AdoptionHandler) ShowForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return c.Redirect("/catalogo_animales", fiber.StatusSeeOther)
	}

	full, err := h.animals.GetFullRecord(id)
	if err != nil {
		if errors.Is(err, services.ErrAnimalNotFound) {
			return c.Redirect("/catalogo_animales", fiber.StatusSeeOther)
		}
		return err
	}
	if !full.Animal.Disponible() {
		return c.Redirect("/detalle_animal?id="+id.String(), fiber.StatusSeeOther)
	}

	return c.Render("pages/adoption_form", bind(c, "Solicitud de adopción — "+full.Animal.Nombre, fiber.Map{
		"Animal": full.Animal,
		"Form":   &dto.AdoptionForm{},
	}))
}

func (h *AdoptionHandler) Submit(c *fiber.Ctx) error {
	ident, _ := middleware.Identity(c)

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return c.Redirect("/catalogo_animales", fiber.StatusSeeOther)
	}

	var form dto.AdoptionForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulario no válido")
	}

	req, err := h.adoptions.Create(id, ident.UserID, &form)
	if err != nil {
		var verrs services.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			return h.rerenderForm(c, id, &form, verrs)
		case errors.Is(err, services.ErrAnimalUnavailable),
			errors.Is(err, services.ErrDuplicateRequest):
			return h.rerenderForm(c, id, &form, []string{err.Error()})
		case errors.Is(err, services.ErrAnimalNotFound):
			return c.Redirect("/catalogo_animales", fiber.StatusSeeOther)
		default:
			return err
		}
	}

	slog.Info("adoption request created",
		"request_id", req.ID.String(),
		"animal_id", id.String(),
		"user_id", ident.UserID.String())
	return c.Redirect("/mis_solicitudes?creada=1", fiber.StatusSeeOther)
}

func (h *AdoptionHandler) rerenderForm(c *fiber.Ctx, animalID uuid.UUID, form *dto.AdoptionForm, problems []string) error {
	full, err := h.animals.GetFullRecord(animalID)
	if err != nil {
		return c.Redirect("/catalogo_animales", fiber.StatusSeeOther)
	}
	return c.Status(fiber.StatusBadRequest).Render("pages/adoption_form", bind(c, "Solicitud de adopción — "+full.Animal.Nombre, fiber.Map{
		"Animal":   full.Animal,
		"Form":     form,
		"Problems": problems,
	}))
}

// MyRequests lists the adopter's requests, split into active and history.
func (h *AdoptionHandler) MyRequests(c *fiber.Ctx) error {
	ident, _ := middleware.Identity(c)

	reqs, err := h.adoptions.ListByUser(ident.UserID)
	if err != nil {
		return err
	}
	activas, historial := services.Partition(reqs)

	return c.Render("pages/my_requests", bind(c, "Mis solicitudes", fiber.Map{
		"Activas":   activas,
		"Historial": historial,
		"Creada":    c.Query("creada") == "1",
	}))
}

// Manage shows the coordinator the pending queue, oldest first.
func (h *AdoptionHandler) Manage(c *fiber.Ctx) error {
	pending, err := h.adoptions.ListPending()
	if err != nil {
		return err
	}
	approved, err := h.adoptions.ListApproved()
	if err != nil {
		return err
	}
	return c.Render("pages/manage_requests", bind(c, "Gestión de solicitudes", fiber.Map{
		"Pending":  pending,
		"Approved": approved,
		"Resolved": c.Query("ok") == "1",
		"Problem":  c.Query("error"),
	}))
}

// Resolve applies the coordinator's decision to one request.
func (h *AdoptionHandler) Resolve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Redirect("/gestion_solicitudes?error=solicitud", fiber.StatusSeeOther)
	}

	decision := c.FormValue("decision")
	comment := c.FormValue("comentario")

	if err := h.adoptions.Resolve(id, decision, comment); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return c.Redirect("/gestion_solicitudes?error=solicitud", fiber.StatusSeeOther)
		case errors.Is(err, services.ErrInvalidDecision), errors.Is(err, services.ErrInvalidTransition):
			return c.Redirect("/gestion_solicitudes?error=decision", fiber.StatusSeeOther)
		default:
			return err
		}
	}

	ident, _ := middleware.Identity(c)
	slog.Info("adoption request resolved",
		"request_id", id.String(),
		"decision", decision,
		"coordinator_id", ident.UserID.String())
	return c.Redirect("/gestion_solicitudes?ok=1", fiber.StatusSeeOther)
}
