package dto

import (
	"net/mail"
	"strings"
	"time"

	"github.com/patitas-felices/shelter-portal/internal/models"
)

type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Remember string `form:"remember"`
	Next     string `form:"next"`
}

// RegisterForm carries the public sign-up fields. Field names match the
// legacy portal's form inputs.
type RegisterForm struct {
	Nombre          string `form:"nombre"`
	Apellido        string `form:"apellido"`
	Email           string `form:"email"`
	Telefono        string `form:"telefono"`
	Direccion       string `form:"direccion"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	Rol             string `form:"rol"`
}

// Validate returns a per-field error map, empty when the form is valid.
// Self-registration only grants the adopter and volunteer roles.
func (f *RegisterForm) Validate() map[string]string {
	f.Nombre = strings.TrimSpace(f.Nombre)
	f.Apellido = strings.TrimSpace(f.Apellido)
	f.Email = strings.TrimSpace(f.Email)

	errs := map[string]string{}
	if f.Nombre == "" {
		errs["nombre"] = "El nombre es obligatorio"
	}
	if f.Apellido == "" {
		errs["apellido"] = "El apellido es obligatorio"
	}
	if f.Email == "" {
		errs["email"] = "El correo es obligatorio"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "El correo no es válido"
	}
	if len(f.Password) < 8 {
		errs["password"] = "La contraseña debe tener al menos 8 caracteres"
	} else if f.Password != f.ConfirmPassword {
		errs["confirm_password"] = "Las contraseñas no coinciden"
	}
	switch models.Role(f.Rol) {
	case models.RoleAdoptante, models.RoleVoluntario:
	default:
		errs["rol"] = "Selecciona un rol válido"
	}
	return errs
}

// AdoptionForm carries the adoption questionnaire. Only the motive and the
// responsibility commitment are mandatory.
type AdoptionForm struct {
	Motivo              string `form:"motivo"`
	TipoVivienda        string `form:"tipo_vivienda"`
	NumHabitantes       int    `form:"num_habitantes"`
	ExperienciaMascotas string `form:"experiencia_mascotas"`
	MascotasActuales    string `form:"mascotas_actuales"`
	Referencias         string `form:"referencias"`
	Notas               string `form:"notas"`
	Compromiso          string `form:"compromiso"`
}

func (f *AdoptionForm) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.Motivo) == "" {
		errs = append(errs, "El motivo de adopción es obligatorio")
	}
	if f.Compromiso != "si" {
		errs = append(errs, "Debes aceptar el compromiso de tenencia responsable")
	}
	if f.NumHabitantes < 0 {
		errs = append(errs, "El número de habitantes no puede ser negativo")
	}
	return errs
}

// AnimalForm is the staff intake form.
type AnimalForm struct {
	Nombre          string `form:"nombre"`
	Especie         string `form:"especie"`
	Raza            string `form:"raza"`
	Sexo            string `form:"sexo"`
	Tamano          string `form:"tamano"`
	EdadAprox       string `form:"edad_aprox"`
	Color           string `form:"color"`
	Personalidad    string `form:"personalidad"`
	HistoriaRescate string `form:"historia_rescate"`
	Requisitos      string `form:"requisitos"`
	FotoPrincipal   string `form:"foto_principal"`
}

func (f *AnimalForm) Validate() map[string]string {
	f.Nombre = strings.TrimSpace(f.Nombre)

	errs := map[string]string{}
	if f.Nombre == "" {
		errs["nombre"] = "El nombre es obligatorio"
	}
	if !models.ValidEspecie(f.Especie) {
		errs["especie"] = "Selecciona una especie válida"
	}
	if !models.ValidTamano(f.Tamano) {
		errs["tamano"] = "Selecciona un tamaño válido"
	}
	if !models.ValidSexo(f.Sexo) {
		errs["sexo"] = "Selecciona el sexo del animal"
	}
	return errs
}

// MedicalRecordForm is the veterinarian's history entry form. Fecha uses
// the HTML date input format; Peso is optional kilograms.
type MedicalRecordForm struct {
	Tipo        string `form:"tipo"`
	Descripcion string `form:"descripcion"`
	Fecha       string `form:"fecha"`
	Peso        string `form:"peso"`
}

func (f *MedicalRecordForm) Validate() map[string]string {
	errs := map[string]string{}
	if !models.ValidRecordTipo(f.Tipo) {
		errs["tipo"] = "Selecciona un tipo de registro válido"
	}
	if strings.TrimSpace(f.Descripcion) == "" {
		errs["descripcion"] = "La descripción es obligatoria"
	}
	if f.Fecha == "" {
		errs["fecha"] = "La fecha es obligatoria"
	} else if _, err := time.Parse("2006-01-02", f.Fecha); err != nil {
		errs["fecha"] = "La fecha no es válida"
	}
	if f.Peso != "" {
		if _, err := parsePositiveFloat(f.Peso); err != nil {
			errs["peso"] = "El peso debe ser un número positivo"
		}
	}
	return errs
}

// ParsedFecha assumes Validate passed.
func (f *MedicalRecordForm) ParsedFecha() time.Time {
	t, _ := time.Parse("2006-01-02", f.Fecha)
	return t
}

// ParsedPeso returns nil when the field was left empty.
func (f *MedicalRecordForm) ParsedPeso() *float64 {
	if f.Peso == "" {
		return nil
	}
	v, err := parsePositiveFloat(f.Peso)
	if err != nil {
		return nil
	}
	return &v
}
