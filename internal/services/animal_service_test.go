package services

import (
	"testing"
	"time"

	"github.com/patitas-felices/shelter-portal/internal/models"
)

func fechaDe(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return parsed
}

func TestComputeTags_VacunadoDeduplicated(t *testing.T) {
	records := []models.MedicalRecord{
		{Tipo: models.RecordVacuna, Descripcion: "Rabia"},
		{Tipo: models.RecordVacuna, Descripcion: "Parvovirus"},
		{Tipo: models.RecordVacuna, Descripcion: "Moquillo"},
	}
	tags := ComputeTags(records)
	if len(tags) != 1 || tags[0] != TagVacunado {
		t.Fatalf("ComputeTags = %v, want exactly [%s]", tags, TagVacunado)
	}
}

func TestComputeTags_Esterilizado(t *testing.T) {
	cases := []struct {
		desc string
		want bool
	}{
		{"Esterilización temprana", true},
		{"ESTERILIZACIÓN programada", true},
		{"cirugía de esterilización completada", true},
		{"Reparación de fractura", false},
	}
	for _, tc := range cases {
		records := []models.MedicalRecord{{Tipo: models.RecordCirugia, Descripcion: tc.desc}}
		tags := ComputeTags(records)
		got := len(tags) == 1 && tags[0] == TagEsterilizado
		if got != tc.want {
			t.Errorf("ComputeTags(cirugía %q) = %v, want esterilizado=%v", tc.desc, tags, tc.want)
		}
	}
}

func TestComputeTags_SubstringOutsideSurgeryIgnored(t *testing.T) {
	// Only surgery descriptions count for the sterilization tag.
	records := []models.MedicalRecord{
		{Tipo: models.RecordConsulta, Descripcion: "se recomienda esterilización"},
	}
	if tags := ComputeTags(records); len(tags) != 0 {
		t.Fatalf("ComputeTags = %v, want none", tags)
	}
}

func TestComputeTags_Empty(t *testing.T) {
	if tags := ComputeTags(nil); len(tags) != 0 {
		t.Fatalf("ComputeTags(nil) = %v, want none", tags)
	}
}

func TestBuildSummary_LatestWeightWins(t *testing.T) {
	peso5, peso6 := 5.0, 6.0
	records := []models.MedicalRecord{
		{Tipo: models.RecordConsulta, Fecha: fechaDe(t, "2024-02-01"), Peso: &peso6},
		{Tipo: models.RecordConsulta, Fecha: fechaDe(t, "2024-01-01"), Peso: &peso5},
	}
	sum := BuildSummary(records, nil, fechaDe(t, "2024-02-15"))

	if sum.PesoActual == nil || *sum.PesoActual != 6.0 {
		t.Fatalf("PesoActual = %v, want 6", sum.PesoActual)
	}
	if !sum.FechaPeso.Equal(fechaDe(t, "2024-02-01")) {
		t.Errorf("FechaPeso = %v, want 2024-02-01", sum.FechaPeso)
	}
}

func TestBuildSummary_TreatmentWindow(t *testing.T) {
	now := fechaDe(t, "2024-02-15")
	records := []models.MedicalRecord{
		{Tipo: models.RecordTratamiento, Descripcion: "Antibiótico", Fecha: fechaDe(t, "2024-02-01")},
		{Tipo: models.RecordTratamiento, Descripcion: "Desparasitante", Fecha: fechaDe(t, "2023-12-01")},
	}
	sum := BuildSummary(records, nil, now)

	if len(sum.TratamientosActivos) != 1 {
		t.Fatalf("TratamientosActivos = %d, want 1", len(sum.TratamientosActivos))
	}
	if sum.TratamientosActivos[0].Descripcion != "Antibiótico" {
		t.Errorf("active treatment = %q", sum.TratamientosActivos[0].Descripcion)
	}
	if sum.Estado != EstadoEstable {
		t.Errorf("Estado = %q, want %q", sum.Estado, EstadoEstable)
	}
}

func TestBuildSummary_UnknownWhenHistoryStale(t *testing.T) {
	records := []models.MedicalRecord{
		{Tipo: models.RecordConsulta, Descripcion: "Revisión general", Fecha: fechaDe(t, "2023-01-01")},
	}
	sum := BuildSummary(records, nil, fechaDe(t, "2024-02-15"))
	if sum.Estado != EstadoDesconocido {
		t.Errorf("Estado = %q, want %q", sum.Estado, EstadoDesconocido)
	}
}

func TestBuildSummary_AllergyMentions(t *testing.T) {
	records := []models.MedicalRecord{
		{Tipo: models.RecordConsulta, Descripcion: "Alergia al polen detectada", Fecha: fechaDe(t, "2024-02-01")},
		{Tipo: models.RecordConsulta, Descripcion: "Revisión sin novedades", Fecha: fechaDe(t, "2024-02-02")},
	}
	sum := BuildSummary(records, nil, fechaDe(t, "2024-02-15"))
	if len(sum.Alergias) != 1 {
		t.Fatalf("Alergias = %v, want one mention", sum.Alergias)
	}
}

func TestBuildSummary_NextAppointmentIsEarliest(t *testing.T) {
	citas := []models.Appointment{
		{Tipo: "Vacunación", Fecha: fechaDe(t, "2024-03-10")},
		{Tipo: "Control", Fecha: fechaDe(t, "2024-03-01")},
	}
	sum := BuildSummary(nil, citas, fechaDe(t, "2024-02-15"))

	if sum.ProximaCita == nil {
		t.Fatal("ProximaCita = nil, want the earliest cita")
	}
	if sum.ProximaCita.Tipo != "Control" {
		t.Errorf("ProximaCita.Tipo = %q, want Control", sum.ProximaCita.Tipo)
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	sum := BuildSummary(nil, nil, fechaDe(t, "2024-02-15"))
	if sum.Estado != EstadoDesconocido || sum.PesoActual != nil || sum.ProximaCita != nil {
		t.Fatalf("empty summary = %+v", sum)
	}
}
