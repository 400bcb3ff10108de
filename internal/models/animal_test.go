package models

import "testing"

func TestCatalogVocabularies(t *testing.T) {
	if !ValidEspecie("Perro") || !ValidEspecie("Gato") || !ValidEspecie("Otro") {
		t.Error("known especies rejected")
	}
	if ValidEspecie("") || ValidEspecie("Dragón") {
		t.Error("unknown especie accepted")
	}
	if !ValidTamano("Mediano") || ValidTamano("Enorme") {
		t.Error("tamano vocabulary broken")
	}
	if !ValidSexo("Hembra") || ValidSexo("") {
		t.Error("sexo vocabulary broken")
	}
}

func TestAnimalDisponible(t *testing.T) {
	a := Animal{Estado: AnimalDisponible}
	if !a.Disponible() {
		t.Error("Disponible() = false for estado Disponible")
	}
	for _, estado := range []string{AnimalEnProceso, AnimalAdoptado} {
		a := Animal{Estado: estado}
		if a.Disponible() {
			t.Errorf("Disponible() = true for estado %q", estado)
		}
	}
}
