package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Animal availability states.
const (
	AnimalDisponible = "Disponible"
	AnimalEnProceso  = "En Proceso"
	AnimalAdoptado   = "Adoptado"
)

// Catalog filter vocabularies. Form selects and query-parameter validation
// share these.
var (
	Especies = []string{"Perro", "Gato", "Otro"}
	Tamanos  = []string{"Pequeño", "Mediano", "Grande"}
	Sexos    = []string{"Macho", "Hembra"}
)

type Animal struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nombre          string         `gorm:"size:100;not null" json:"nombre"`
	Especie         string         `gorm:"size:30;not null;index" json:"especie"`
	Raza            string         `gorm:"size:100" json:"raza"`
	Sexo            string         `gorm:"size:10" json:"sexo"`
	Tamano          string         `gorm:"size:20;index" json:"tamano"`
	EdadAprox       string         `gorm:"size:50" json:"edad_aprox"`
	Color           string         `gorm:"size:50" json:"color"`
	Personalidad    string         `gorm:"type:text" json:"personalidad"`
	HistoriaRescate string         `gorm:"type:text" json:"historia_rescate"`
	Estado          string         `gorm:"size:20;not null;default:'Disponible';index" json:"estado"`
	Requisitos      string         `gorm:"type:text" json:"requisitos"`
	FotoPrincipal   string         `gorm:"size:255" json:"foto_principal"`
	Fotos           []Photo        `gorm:"foreignKey:AnimalID" json:"fotos,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Animal) Disponible() bool {
	return a.Estado == AnimalDisponible
}

type Photo struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AnimalID  uuid.UUID `gorm:"type:uuid;not null;index" json:"animal_id"`
	Ruta      string    `gorm:"size:255;not null" json:"ruta"`
	CreatedAt time.Time `json:"created_at"`
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}

// ValidEspecie and ValidTamano vet catalog query parameters; anything
// outside the vocabulary is treated as no filter.
func ValidEspecie(s string) bool { return contains(Especies, s) }
func ValidTamano(s string) bool  { return contains(Tamanos, s) }
func ValidSexo(s string) bool    { return contains(Sexos, s) }
