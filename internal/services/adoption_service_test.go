package services

import (
	"testing"
	"time"

	"github.com/patitas-felices/shelter-portal/internal/models"
)

func TestPartition(t *testing.T) {
	reqs := []models.AdoptionRequest{
		{Estado: models.SolicitudEnRevision, Motivo: "a"},
		{Estado: models.SolicitudAprobada, Motivo: "b"},
		{Estado: models.SolicitudRechazada, Motivo: "c"},
	}
	activas, historial := Partition(reqs)

	if len(activas) != 1 || activas[0].Motivo != "a" {
		t.Fatalf("activas = %+v, want only the pending request", activas)
	}
	if len(historial) != 2 {
		t.Fatalf("historial = %d requests, want 2", len(historial))
	}
	if historial[0].Motivo != "b" || historial[1].Motivo != "c" {
		t.Errorf("historial order changed: %+v", historial)
	}
}

func TestPartition_CompletedIsHistory(t *testing.T) {
	reqs := []models.AdoptionRequest{{Estado: models.SolicitudCompletada}}
	activas, historial := Partition(reqs)
	if len(activas) != 0 || len(historial) != 1 {
		t.Fatalf("Partition(completada) = %d activas, %d historial", len(activas), len(historial))
	}
}

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(time.Date(2024, 2, 15, 13, 45, 0, 0, time.UTC))

	if !from.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v, want 2024-02-01", from)
	}
	if !to.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v, want 2024-03-01", to)
	}
}

func TestMonthRange_DecemberRollsToJanuary(t *testing.T) {
	from, to := MonthRange(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC))

	if !from.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", from)
	}
	if !to.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v, want 2025-01-01", to)
	}
}

func TestValidationErrors_Joined(t *testing.T) {
	err := ValidationErrors{"uno", "dos"}
	if err.Error() != "uno; dos" {
		t.Errorf("Error() = %q", err.Error())
	}
}
