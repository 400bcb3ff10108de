package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role governs page access and dashboard routing.
type Role string

const (
	RoleAdoptante   Role = "Adoptante"
	RoleVoluntario  Role = "Voluntario"
	RoleVeterinario Role = "Veterinario"
	RoleCoordinador Role = "Coordinador"
	RoleAdmin       Role = "Admin"
)

// Numeric role ids kept for session compatibility with the previous portal.
var RoleIDs = map[Role]int{
	RoleAdoptante:   1,
	RoleVoluntario:  2,
	RoleVeterinario: 3,
	RoleCoordinador: 4,
	RoleAdmin:       5,
}

// NormalizeRole maps a stored role string to the Role enum. Historical
// accounts carry variants such as "Coordinador de Adopciones" and
// "Coordinador de Rescates"; anything containing "Coordinador" is a
// coordinator. Unknown strings pass through unchanged so guards deny them.
func NormalizeRole(s string) Role {
	if strings.Contains(s, string(RoleCoordinador)) {
		return RoleCoordinador
	}
	return Role(s)
}

var dashboardPaths = map[Role]string{
	RoleCoordinador: "/dashboard-coordinador",
	RoleAdmin:       "/dashboard-coordinador",
	RoleVeterinario: "/dashboard-veterinario",
	RoleVoluntario:  "/dashboard-voluntario",
	RoleAdoptante:   "/dashboard",
}

// DashboardPath returns the landing page for a role after login. Roles
// without a dedicated dashboard land on the generic one.
func DashboardPath(r Role) string {
	if p, ok := dashboardPaths[NormalizeRole(string(r))]; ok {
		return p
	}
	return "/dashboard"
}

type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nombre      string         `gorm:"size:100;not null" json:"nombre"`
	Apellido    string         `gorm:"size:100;not null" json:"apellido"`
	Email       string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Rol         string         `gorm:"size:50;not null;default:'Adoptante'" json:"rol"`
	Telefono    string         `gorm:"size:30" json:"telefono"`
	Direccion   string         `gorm:"size:255" json:"direccion"`
	LastLoginAt *time.Time     `json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) FullName() string {
	return u.Nombre + " " + u.Apellido
}

func (u *User) Role() Role {
	return NormalizeRole(u.Rol)
}
