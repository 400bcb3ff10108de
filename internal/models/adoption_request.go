package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Adoption request states. "En Revisión" is the only active state; the
// other three are history.
const (
	SolicitudEnRevision = "En Revisión"
	SolicitudAprobada   = "Aprobada"
	SolicitudRechazada  = "Rechazada"
	SolicitudCompletada = "Completada"
)

type AdoptionRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AnimalID       uuid.UUID `gorm:"type:uuid;not null;index" json:"animal_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Estado         string    `gorm:"size:20;not null;default:'En Revisión';index" json:"estado"`
	FechaSolicitud time.Time `gorm:"not null;index" json:"fecha_solicitud"`

	// Applicant answers. Only Motivo and the responsibility commitment are
	// mandatory; the rest is free text.
	Motivo                string `gorm:"type:text;not null" json:"motivo"`
	TipoVivienda          string `gorm:"size:50" json:"tipo_vivienda"`
	NumHabitantes         int    `json:"num_habitantes"`
	ExperienciaMascotas   string `gorm:"type:text" json:"experiencia_mascotas"`
	MascotasActuales      string `gorm:"type:text" json:"mascotas_actuales"`
	Referencias           string `gorm:"type:text" json:"referencias"`
	Notas                 string `gorm:"type:text" json:"notas"`
	CompromisoResponsable bool   `gorm:"not null;default:false" json:"compromiso_responsable"`

	// Coordinator review.
	ComentariosCoordinador string     `gorm:"type:text" json:"comentarios_coordinador"`
	MotivoRechazo          string     `gorm:"type:text" json:"motivo_rechazo"`
	FechaResolucion        *time.Time `json:"fecha_resolucion,omitempty"`

	Animal Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *AdoptionRequest) Activa() bool {
	return r.Estado == SolicitudEnRevision
}
