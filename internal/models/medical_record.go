package models

import (
	"time"

	"github.com/google/uuid"
)

// Medical record types. The history is append-only per animal.
const (
	RecordVacuna          = "Vacuna"
	RecordCirugia         = "Cirugía"
	RecordTratamiento     = "Tratamiento"
	RecordConsulta        = "Consulta"
	RecordDesparasitacion = "Desparasitación"
)

var RecordTipos = []string{
	RecordVacuna,
	RecordCirugia,
	RecordTratamiento,
	RecordConsulta,
	RecordDesparasitacion,
}

func ValidRecordTipo(s string) bool { return contains(RecordTipos, s) }

type MedicalRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AnimalID    uuid.UUID `gorm:"type:uuid;not null;index" json:"animal_id"`
	Tipo        string    `gorm:"size:30;not null" json:"tipo"`
	Descripcion string    `gorm:"type:text" json:"descripcion"`
	Fecha       time.Time `gorm:"not null;index" json:"fecha"`
	Peso        *float64  `json:"peso,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Appointment is only used to surface the next upcoming visit on the
// animal detail page.
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AnimalID  uuid.UUID `gorm:"type:uuid;not null;index" json:"animal_id"`
	Fecha     time.Time `gorm:"not null;index" json:"fecha"`
	Tipo      string    `gorm:"size:50" json:"tipo"`
	CreatedAt time.Time `json:"created_at"`
}
