package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/patitas-felices/shelter-portal/internal/dto"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"github.com/patitas-felices/shelter-portal/internal/services"
)

type CatalogHandler struct {
	animals *services.AnimalService
}

func NewCatalogHandler(animals *services.AnimalService) *CatalogHandler {
	return &CatalogHandler{animals: animals}
}

// Catalog renders the available-animal grid. Filter parameters outside the
// known vocabulary are ignored rather than erroring.
func (h *CatalogHandler) Catalog(c *fiber.Ctx) error {
	filters := services.CatalogFilters{}
	if v := c.Query("tipo_animal"); models.ValidEspecie(v) {
		filters.Especie = v
	}
	if v := c.Query("tamano"); models.ValidTamano(v) {
		filters.Tamano = v
	}

	animals, err := h.animals.ListAvailable(filters)
	if err != nil {
		return err
	}

	rows := make([]dto.CatalogRow, 0, len(animals))
	for _, a := range animals {
		tags, err := h.animals.TagsFor(a.ID)
		if err != nil {
			// One animal's broken history must not fail the whole page.
			slog.Error("catalog tag lookup failed", "animal_id", a.ID.String(), "error", err)
			tags = nil
		}
		rows = append(rows, dto.CatalogRow{Animal: a, Tags: tags})
	}

	return c.Render("pages/catalog", bind(c, "Catálogo de animales", fiber.Map{
		"Rows":     rows,
		"Filters":  filters,
		"Especies": models.Especies,
		"Tamanos":  models.Tamanos,
	}))
}
