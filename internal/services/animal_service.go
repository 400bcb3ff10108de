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

var ErrAnimalNotFound = errors.New("animal no encontrado")

// Derived medical tags and summary labels.
const (
	TagVacunado     = "Vacunado"
	TagEsterilizado = "Esterilizado"

	EstadoEstable     = "Estable"
	EstadoDesconocido = "Desconocido"
)

// CatalogFilters are optional equality predicates; an empty field does not
// constrain that dimension.
type CatalogFilters struct {
	Especie string
	Tamano  string
}

// FullRecord bundles everything the detail page needs in one fetch.
type FullRecord struct {
	Animal  models.Animal
	Records []models.MedicalRecord
	Citas   []models.Appointment
}

// MedicalSummary is derived per detail-page render; nothing here is stored.
type MedicalSummary struct {
	PesoActual          *float64
	FechaPeso           time.Time
	Vacunas             []models.MedicalRecord
	TratamientosActivos []models.MedicalRecord
	Alergias            []string
	Estado              string
	ProximaCita         *models.Appointment
}

type AnimalService struct {
	db *gorm.DB
}

func NewAnimalService(db *gorm.DB) *AnimalService {
	return &AnimalService{db: db}
}

// ListAvailable returns every available animal matching the filters.
// The catalog is not paginated; the shelter holds a few dozen animals at
// most. Revisit if that ever changes.
func (s *AnimalService) ListAvailable(f CatalogFilters) ([]models.Animal, error) {
	q := s.db.Where("estado = ?", models.AnimalDisponible)
	if f.Especie != "" {
		q = q.Where("especie = ?", f.Especie)
	}
	if f.Tamano != "" {
		q = q.Where("tamano = ?", f.Tamano)
	}

	var animals []models.Animal
	if err := q.Order("created_at DESC").Find(&animals).Error; err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	return animals, nil
}

// TagsFor computes the catalog tags for one animal. Callers log a failure
// and render the animal untagged; one broken history must not take down
// the whole catalog.
func (s *AnimalService) TagsFor(animalID uuid.UUID) ([]string, error) {
	var records []models.MedicalRecord
	if err := s.db.Where("animal_id = ?", animalID).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load medical history: %w", err)
	}
	return ComputeTags(records), nil
}

// ComputeTags scans a medical history for the derived catalog tags:
// "Vacunado" when any vaccine record exists, "Esterilizado" when a surgery
// description mentions esterilización. Each tag appears at most once.
func ComputeTags(records []models.MedicalRecord) []string {
	vacunado, esterilizado := false, false
	for _, r := range records {
		switch r.Tipo {
		case models.RecordVacuna:
			vacunado = true
		case models.RecordCirugia:
			if strings.Contains(strings.ToLower(r.Descripcion), "esterilización") {
				esterilizado = true
			}
		}
	}

	var tags []string
	if vacunado {
		tags = append(tags, TagVacunado)
	}
	if esterilizado {
		tags = append(tags, TagEsterilizado)
	}
	return tags
}

// GetFullRecord loads the animal with photos, its full history newest
// first, and its upcoming appointments soonest first. The explicit ORDER BY
// on citas is what makes "next appointment = first element" safe.
func (s *AnimalService) GetFullRecord(id uuid.UUID) (*FullRecord, error) {
	var animal models.Animal
	if err := s.db.Preload("Fotos").First(&animal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}

	var records []models.MedicalRecord
	if err := s.db.Where("animal_id = ?", id).Order("fecha DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load medical history: %w", err)
	}

	var citas []models.Appointment
	if err := s.db.Where("animal_id = ? AND fecha >= ?", id, time.Now()).
		Order("fecha ASC").Find(&citas).Error; err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	return &FullRecord{Animal: animal, Records: records, Citas: citas}, nil
}

// BuildSummary derives the detail-page medical summary from a loaded
// history. Current weight is the latest-dated consultation that recorded
// one; treatments count as active inside a 30-day window; any record in
// that window marks the animal "Estable".
func BuildSummary(records []models.MedicalRecord, citas []models.Appointment, now time.Time) MedicalSummary {
	sum := MedicalSummary{Estado: EstadoDesconocido}
	cutoff := now.AddDate(0, 0, -30)

	for i := range records {
		r := records[i]
		if r.Tipo == models.RecordConsulta && r.Peso != nil {
			if sum.PesoActual == nil || r.Fecha.After(sum.FechaPeso) {
				sum.PesoActual = r.Peso
				sum.FechaPeso = r.Fecha
			}
		}
		if r.Tipo == models.RecordVacuna {
			sum.Vacunas = append(sum.Vacunas, r)
		}
		if r.Tipo == models.RecordTratamiento && r.Fecha.After(cutoff) {
			sum.TratamientosActivos = append(sum.TratamientosActivos, r)
		}
		if strings.Contains(strings.ToLower(r.Descripcion), "alergi") {
			sum.Alergias = append(sum.Alergias, r.Descripcion)
		}
		if r.Fecha.After(cutoff) {
			sum.Estado = EstadoEstable
		}
	}

	if len(citas) > 0 {
		next := citas[0]
		for _, ct := range citas[1:] {
			if ct.Fecha.Before(next.Fecha) {
				next = ct
			}
		}
		sum.ProximaCita = &next
	}

	return sum
}

// Create registers a new animal from the staff intake form.
func (s *AnimalService) Create(form *dto.AnimalForm) (*models.Animal, map[string]string, error) {
	errs := form.Validate()
	if len(errs) > 0 {
		return nil, errs, nil
	}

	animal := models.Animal{
		ID:              uuid.New(),
		Nombre:          form.Nombre,
		Especie:         form.Especie,
		Raza:            form.Raza,
		Sexo:            form.Sexo,
		Tamano:          form.Tamano,
		EdadAprox:       form.EdadAprox,
		Color:           form.Color,
		Personalidad:    form.Personalidad,
		HistoriaRescate: form.HistoriaRescate,
		Estado:          models.AnimalDisponible,
		Requisitos:      form.Requisitos,
		FotoPrincipal:   form.FotoPrincipal,
	}

	if err := s.db.Create(&animal).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create animal: %w", err)
	}
	return &animal, nil, nil
}

// AddRecord appends a medical history entry for an existing animal.
func (s *AnimalService) AddRecord(animalID uuid.UUID, form *dto.MedicalRecordForm) (*models.MedicalRecord, map[string]string, error) {
	errs := form.Validate()
	if len(errs) > 0 {
		return nil, errs, nil
	}

	var animal models.Animal
	if err := s.db.First(&animal, "id = ?", animalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrAnimalNotFound
		}
		return nil, nil, err
	}

	record := models.MedicalRecord{
		ID:          uuid.New(),
		AnimalID:    animalID,
		Tipo:        form.Tipo,
		Descripcion: form.Descripcion,
		Fecha:       form.ParsedFecha(),
		Peso:        form.ParsedPeso(),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create medical record: %w", err)
	}
	return &record, nil, nil
}

// CountAvailable feeds the dashboard widgets.
func (s *AnimalService) CountAvailable() (int64, error) {
	var n int64
	err := s.db.Model(&models.Animal{}).Where("estado = ?", models.AnimalDisponible).Count(&n).Error
	return n, err
}

// CountInShelter counts animals not yet adopted, for the veterinarian
// dashboard.
func (s *AnimalService) CountInShelter() (int64, error) {
	var n int64
	err := s.db.Model(&models.Animal{}).Where("estado <> ?", models.AnimalAdoptado).Count(&n).Error
	return n, err
}
