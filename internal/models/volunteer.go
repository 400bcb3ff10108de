package models

import (
	"time"

	"github.com/google/uuid"
)

// Volunteer enrollment states.
const (
	InscripcionActiva     = "Activa"
	InscripcionFinalizada = "Finalizada"
)

type VolunteerActivity struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nombre      string    `gorm:"size:150;not null" json:"nombre"`
	Descripcion string    `gorm:"type:text" json:"descripcion"`
	Fecha       time.Time `gorm:"not null;index" json:"fecha"`
	CupoMaximo  int       `gorm:"default:0" json:"cupo_maximo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VolunteerEnrollment struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ActivityID       uuid.UUID `gorm:"type:uuid;not null;index" json:"activity_id"`
	Estado           string    `gorm:"size:20;not null;default:'Activa';index" json:"estado"`
	HorasAcumuladas  float64   `gorm:"default:0" json:"horas_acumuladas"`
	FechaInscripcion time.Time `gorm:"not null" json:"fecha_inscripcion"`

	Activity VolunteerActivity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
