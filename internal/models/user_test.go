package models

import "testing"

func TestNormalizeRole_CoordinatorVariants(t *testing.T) {
	cases := []string{
		"Coordinador",
		"Coordinador de Adopciones",
		"Coordinador de Rescates",
	}
	for _, in := range cases {
		if got := NormalizeRole(in); got != RoleCoordinador {
			t.Errorf("NormalizeRole(%q) = %q, want %q", in, got, RoleCoordinador)
		}
	}
}

func TestNormalizeRole_PassThrough(t *testing.T) {
	if got := NormalizeRole("Veterinario"); got != RoleVeterinario {
		t.Errorf("NormalizeRole(Veterinario) = %q", got)
	}
	// Unknown roles must not silently gain a known role.
	if got := NormalizeRole("Invitado"); got != Role("Invitado") {
		t.Errorf("NormalizeRole(Invitado) = %q, want pass-through", got)
	}
}

func TestDashboardPath(t *testing.T) {
	cases := []struct {
		rol  Role
		want string
	}{
		{RoleCoordinador, "/dashboard-coordinador"},
		{Role("Coordinador de Adopciones"), "/dashboard-coordinador"},
		{Role("Coordinador de Rescates"), "/dashboard-coordinador"},
		{RoleAdmin, "/dashboard-coordinador"},
		{RoleVeterinario, "/dashboard-veterinario"},
		{RoleVoluntario, "/dashboard-voluntario"},
		{RoleAdoptante, "/dashboard"},
		{Role("Invitado"), "/dashboard"},
	}
	for _, tc := range cases {
		if got := DashboardPath(tc.rol); got != tc.want {
			t.Errorf("DashboardPath(%q) = %q, want %q", tc.rol, got, tc.want)
		}
	}
}
