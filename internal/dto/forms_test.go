package dto

import "testing"

func validRegisterForm() RegisterForm {
	return RegisterForm{
		Nombre:          "Ana",
		Apellido:        "Pérez",
		Email:           "ana@example.com",
		Password:        "secreto123",
		ConfirmPassword: "secreto123",
		Rol:             "Adoptante",
	}
}

func TestRegisterFormValidate_OK(t *testing.T) {
	f := validRegisterForm()
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}
}

func TestRegisterFormValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterForm)
		field  string
	}{
		{"missing nombre", func(f *RegisterForm) { f.Nombre = "  " }, "nombre"},
		{"missing apellido", func(f *RegisterForm) { f.Apellido = "" }, "apellido"},
		{"missing email", func(f *RegisterForm) { f.Email = "" }, "email"},
		{"bad email", func(f *RegisterForm) { f.Email = "no-es-correo" }, "email"},
		{"short password", func(f *RegisterForm) { f.Password, f.ConfirmPassword = "corta", "corta" }, "password"},
		{"mismatch", func(f *RegisterForm) { f.ConfirmPassword = "otracosa123" }, "confirm_password"},
		{"staff role rejected", func(f *RegisterForm) { f.Rol = "Coordinador" }, "rol"},
		{"unknown role", func(f *RegisterForm) { f.Rol = "SuperUsuario" }, "rol"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validRegisterForm()
			tc.mutate(&f)
			errs := f.Validate()
			if _, ok := errs[tc.field]; !ok {
				t.Errorf("Validate() = %v, want error on %q", errs, tc.field)
			}
		})
	}
}

func TestRegisterFormValidate_VolunteerAllowed(t *testing.T) {
	f := validRegisterForm()
	f.Rol = "Voluntario"
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("Validate() = %v", errs)
	}
}

func TestAdoptionFormValidate(t *testing.T) {
	f := AdoptionForm{Motivo: "Quiero darle un hogar", Compromiso: "si"}
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}

	f = AdoptionForm{Compromiso: "si"}
	if errs := f.Validate(); len(errs) != 1 {
		t.Errorf("empty motivo: Validate() = %v", errs)
	}

	f = AdoptionForm{Motivo: "hogar", Compromiso: ""}
	if errs := f.Validate(); len(errs) != 1 {
		t.Errorf("missing compromiso: Validate() = %v", errs)
	}

	f = AdoptionForm{Motivo: "hogar", Compromiso: "si", NumHabitantes: -1}
	if errs := f.Validate(); len(errs) != 1 {
		t.Errorf("negative habitantes: Validate() = %v", errs)
	}
}

func TestMedicalRecordFormValidate(t *testing.T) {
	f := MedicalRecordForm{Tipo: "Vacuna", Descripcion: "Rabia", Fecha: "2024-03-10", Peso: "12,5"}
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}
	if f.ParsedFecha().Format("2006-01-02") != "2024-03-10" {
		t.Errorf("ParsedFecha() = %v", f.ParsedFecha())
	}
	if p := f.ParsedPeso(); p == nil || *p != 12.5 {
		t.Errorf("ParsedPeso() = %v, want 12.5", p)
	}

	f = MedicalRecordForm{Tipo: "Masaje", Descripcion: "x", Fecha: "2024-03-10"}
	if _, ok := f.Validate()["tipo"]; !ok {
		t.Error("unknown tipo accepted")
	}

	f = MedicalRecordForm{Tipo: "Consulta", Descripcion: "x", Fecha: "10/03/2024"}
	if _, ok := f.Validate()["fecha"]; !ok {
		t.Error("malformed fecha accepted")
	}

	f = MedicalRecordForm{Tipo: "Consulta", Descripcion: "x", Fecha: "2024-03-10", Peso: "-3"}
	if _, ok := f.Validate()["peso"]; !ok {
		t.Error("negative peso accepted")
	}

	f = MedicalRecordForm{Tipo: "Consulta", Descripcion: "x", Fecha: "2024-03-10"}
	if f.ParsedPeso() != nil {
		t.Error("ParsedPeso() should be nil when field empty")
	}
}
