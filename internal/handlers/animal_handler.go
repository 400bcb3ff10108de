package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/patitas-felices/shelter-portal/internal/dto"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"github.com/patitas-felices/shelter-portal/internal/services"
)

type AnimalHandler struct {
	animals *services.AnimalService
}

func NewAnimalHandler(animals *services.AnimalService) *AnimalHandler {
	return &AnimalHandler{animals: animals}
}

// Detail renders the full record and derived medical summary. A missing or
// malformed id goes back to the catalog; an unknown id shows the
// not-found state.
func (h *AnimalHandler) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return c.Redirect("/catalogo_animales", fiber.StatusSeeOther)
	}

	full, err := h.animals.GetFullRecord(id)
	if err != nil {
		if errors.Is(err, services.ErrAnimalNotFound) {
			return c.Status(fiber.StatusNotFound).Render("pages/animal_detail", bind(c, "Animal no encontrado", fiber.Map{
				"NotFound": true,
			}))
		}
		return err
	}

	summary := services.BuildSummary(full.Records, full.Citas, time.Now())

	return c.Render("pages/animal_detail", bind(c, full.Animal.Nombre, fiber.Map{
		"Animal":  full.Animal,
		"Records": full.Records,
		"Citas":   full.Citas,
		"Summary": summary,
	}))
}

func (h *AnimalHandler) ShowIntake(c *fiber.Ctx) error {
	return c.Render("pages/animal_form", bind(c, "Registrar animal", fiber.Map{
		"Form":     &dto.AnimalForm{},
		"Errors":   map[string]string{},
		"Especies": models.Especies,
		"Tamanos":  models.Tamanos,
		"Sexos":    models.Sexos,
	}))
}

func (h *AnimalHandler) Intake(c *fiber.Ctx) error {
	var form dto.AnimalForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulario no válido")
	}

	animal, fieldErrs, err := h.animals.Create(&form)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("pages/animal_form", bind(c, "Registrar animal", fiber.Map{
			"Form":     &form,
			"Errors":   fieldErrs,
			"Especies": models.Especies,
			"Tamanos":  models.Tamanos,
			"Sexos":    models.Sexos,
		}))
	}

	slog.Info("animal registered", "animal_id", animal.ID.String(), "nombre", animal.Nombre)
	return c.Redirect("/detalle_animal?id="+animal.ID.String(), fiber.StatusSeeOther)
}

// ShowRecordForm renders the veterinarian's history-entry form together
// with the animal's recent history for context.
func (h *AnimalHandler) ShowRecordForm(c *fiber.Ctx) error {
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

	return c.Render("pages/medical_record_form", bind(c, "Registrar historial — "+full.Animal.Nombre, fiber.Map{
		"Animal":  full.Animal,
		"Records": full.Records,
		"Form":    &dto.MedicalRecordForm{},
		"Errors":  map[string]string{},
		"Tipos":   models.RecordTipos,
	}))
}

func (h *AnimalHandler) AddRecord(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return c.Redirect("/catalogo_animales", fiber.StatusSeeOther)
	}

	var form dto.MedicalRecordForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulario no válido")
	}

	record, fieldErrs, err := h.animals.AddRecord(id, &form)
	if err != nil {
		if errors.Is(err, services.ErrAnimalNotFound) {
			return c.Redirect("/catalogo_animales", fiber.StatusSeeOther)
		}
		return err
	}
	if len(fieldErrs) > 0 {
		full, ferr := h.animals.GetFullRecord(id)
		if ferr != nil {
			return ferr
		}
		return c.Status(fiber.StatusBadRequest).Render("pages/medical_record_form", bind(c, "Registrar historial — "+full.Animal.Nombre, fiber.Map{
			"Animal":  full.Animal,
			"Records": full.Records,
			"Form":    &form,
			"Errors":  fieldErrs,
			"Tipos":   models.RecordTipos,
		}))
	}

	slog.Info("medical record added", "animal_id", id.String(), "tipo", record.Tipo)
	return c.Redirect("/detalle_animal?id="+id.String(), fiber.StatusSeeOther)
}
