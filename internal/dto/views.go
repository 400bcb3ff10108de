package dto

import (
	"errors"
	"strconv"
	"strings"

	"github.com/patitas-felices/shelter-portal/internal/models"
)

// CatalogRow pairs an animal with its derived medical tags for the
// catalog grid.
type CatalogRow struct {
	Animal models.Animal
	Tags   []string
}

// HealthResponse is the only JSON surface of the portal.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

var errNotPositive = errors.New("value must be positive")

func parsePositiveFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, errNotPositive
	}
	return v, nil
}
