package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patitas-felices/shelter-portal/internal/dto"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound   = errors.New("solicitud no encontrada")
	ErrAnimalUnavailable = errors.New("el animal ya no está disponible para adopción")
	ErrDuplicateRequest  = errors.New("ya tienes una solicitud en revisión para este animal")
	ErrInvalidDecision   = errors.New("decisión no válida")
	ErrInvalidTransition = errors.New("la solicitud no admite esa transición")
)

// ValidationErrors carries the joined form problems back to the page.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// Coordinator decisions on a request.
const (
	DecisionAprobar   = "aprobar"
	DecisionRechazar  = "rechazar"
	DecisionCompletar = "completar"
)

type AdoptionService struct {
	db *gorm.DB
}

func NewAdoptionService(db *gorm.DB) *AdoptionService {
	return &AdoptionService{db: db}
}

// Create files a new adoption request after validating the questionnaire,
// the animal's availability, and that the user has no other pending
// request for the same animal.
func (s *AdoptionService) Create(animalID, userID uuid.UUID, form *dto.AdoptionForm) (*models.AdoptionRequest, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	var animal models.Animal
	if err := s.db.First(&animal, "id = ?", animalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	if !animal.Disponible() {
		return nil, ErrAnimalUnavailable
	}

	var existing models.AdoptionRequest
	err := s.db.Where("animal_id = ? AND user_id = ? AND estado = ?",
		animalID, userID, models.SolicitudEnRevision).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateRequest
	}

	req := models.AdoptionRequest{
		ID:                    uuid.New(),
		AnimalID:              animalID,
		UserID:                userID,
		Estado:                models.SolicitudEnRevision,
		FechaSolicitud:        time.Now().UTC(),
		Motivo:                strings.TrimSpace(form.Motivo),
		TipoVivienda:          form.TipoVivienda,
		NumHabitantes:         form.NumHabitantes,
		ExperienciaMascotas:   form.ExperienciaMascotas,
		MascotasActuales:      form.MascotasActuales,
		Referencias:           form.Referencias,
		Notas:                 form.Notas,
		CompromisoResponsable: true,
	}

	if err := s.db.Create(&req).Error; err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return &req, nil
}

// ListByUser returns the user's requests newest first, with the animal
// preloaded for display.
func (s *AdoptionService) ListByUser(userID uuid.UUID) ([]models.AdoptionRequest, error) {
	var reqs []models.AdoptionRequest
	err := s.db.Preload("Animal").
		Where("user_id = ?", userID).
		Order("fecha_solicitud DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return reqs, nil
}

// Partition splits requests into active (En Revisión) and history (the
// rest), preserving order. The split is a presentation rule, not a stored
// attribute.
func Partition(reqs []models.AdoptionRequest) (activas, historial []models.AdoptionRequest) {
	for _, r := range reqs {
		if r.Activa() {
			activas = append(activas, r)
		} else {
			historial = append(historial, r)
		}
	}
	return activas, historial
}

// ListPending returns requests awaiting review, oldest first so the
// coordinator works the queue in arrival order.
func (s *AdoptionService) ListPending() ([]models.AdoptionRequest, error) {
	var reqs []models.AdoptionRequest
	err := s.db.Preload("Animal").Preload("User").
		Where("estado = ?", models.SolicitudEnRevision).
		Order("fecha_solicitud ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return reqs, nil
}

// ListApproved returns approved requests awaiting handover, oldest first.
func (s *AdoptionService) ListApproved() ([]models.AdoptionRequest, error) {
	var reqs []models.AdoptionRequest
	err := s.db.Preload("Animal").Preload("User").
		Where("estado = ?", models.SolicitudAprobada).
		Order("fecha_solicitud ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list approved requests: %w", err)
	}
	return reqs, nil
}

// Resolve applies a coordinator decision. Approving moves the animal to
// "En Proceso"; completing marks it adopted and stamps the resolution
// date; rejecting records the reason. State checks run inside one
// transaction with the animal update.
func (s *AdoptionService) Resolve(requestID uuid.UUID, decision, comment string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var req models.AdoptionRequest
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		now := time.Now().UTC()

		switch decision {
		case DecisionAprobar:
			if req.Estado != models.SolicitudEnRevision {
				return ErrInvalidTransition
			}
			updates := map[string]interface{}{
				"estado":                  models.SolicitudAprobada,
				"comentarios_coordinador": comment,
			}
			if err := tx.Model(&req).Updates(updates).Error; err != nil {
				return err
			}
			return tx.Model(&models.Animal{}).
				Where("id = ?", req.AnimalID).
				Update("estado", models.AnimalEnProceso).Error

		case DecisionRechazar:
			if req.Estado != models.SolicitudEnRevision {
				return ErrInvalidTransition
			}
			return tx.Model(&req).Updates(map[string]interface{}{
				"estado":           models.SolicitudRechazada,
				"motivo_rechazo":   comment,
				"fecha_resolucion": now,
			}).Error

		case DecisionCompletar:
			if req.Estado != models.SolicitudAprobada {
				return ErrInvalidTransition
			}
			if err := tx.Model(&req).Updates(map[string]interface{}{
				"estado":           models.SolicitudCompletada,
				"fecha_resolucion": now,
			}).Error; err != nil {
				return err
			}
			return tx.Model(&models.Animal{}).
				Where("id = ?", req.AnimalID).
				Update("estado", models.AnimalAdoptado).Error

		default:
			return ErrInvalidDecision
		}
	})
}

// MonthRange returns the first instant of the month containing t and the
// first instant of the following month, for this-month dashboard windows.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, 0)
}

func (s *AdoptionService) CountPending() (int64, error) {
	var n int64
	err := s.db.Model(&models.AdoptionRequest{}).
		Where("estado = ?", models.SolicitudEnRevision).Count(&n).Error
	return n, err
}

// CountCompletedBetween counts adoptions resolved inside [from, to).
func (s *AdoptionService) CountCompletedBetween(from, to time.Time) (int64, error) {
	var n int64
	err := s.db.Model(&models.AdoptionRequest{}).
		Where("estado = ? AND fecha_resolucion >= ? AND fecha_resolucion < ?",
			models.SolicitudCompletada, from, to).
		Count(&n).Error
	return n, err
}

// CountByUserAndEstado feeds the adopter dashboard widgets.
func (s *AdoptionService) CountByUserAndEstado(userID uuid.UUID, estado string) (int64, error) {
	var n int64
	err := s.db.Model(&models.AdoptionRequest{}).
		Where("user_id = ? AND estado = ?", userID, estado).Count(&n).Error
	return n, err
}

// AverageDaysToAdoption averages submission-to-completion time over all
// completed requests. Zero when none have completed yet.
func (s *AdoptionService) AverageDaysToAdoption() (float64, error) {
	var avg float64
	err := s.db.Model(&models.AdoptionRequest{}).
		Where("estado = ? AND fecha_resolucion IS NOT NULL", models.SolicitudCompletada).
		Select("COALESCE(AVG(EXTRACT(EPOCH FROM (fecha_resolucion - fecha_solicitud)) / 86400), 0)").
		Scan(&avg).Error
	return avg, err
}
