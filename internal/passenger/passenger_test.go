package passenger

import (
	"math"
	"testing"
)

func TestNewDatasetCopiesRows(t *testing.T) {
	rows := []Passenger{
		{PassengerID: 1, Sex: "male", Pclass: 3, Age: 22},
		{PassengerID: 2, Sex: "female", Pclass: 1, Age: 38},
	}
	ds := NewDataset("test", rows)

	rows[0].Sex = "changed"
	if ds.At(0).Sex != "male" {
		t.Errorf("Dataset should not alias the input slice, got Sex %q", ds.At(0).Sex)
	}

	out := ds.Passengers()
	out[1].Pclass = 9
	if ds.At(1).Pclass != 1 {
		t.Errorf("Passengers() should return a copy, got Pclass %d", ds.At(1).Pclass)
	}

	if ds.Len() != 2 {
		t.Errorf("Expected Len 2, got %d", ds.Len())
	}
	if ds.Source() != "test" {
		t.Errorf("Expected source 'test', got %q", ds.Source())
	}
}

func TestDatasetOptionsFirstAppearance(t *testing.T) {
	ds := NewDataset("test", []Passenger{
		{Sex: "male", Pclass: 3},
		{Sex: "female", Pclass: 1},
		{Sex: "female", Pclass: 3},
		{Sex: "male", Pclass: 2},
	})

	sexes := ds.Sexes()
	if len(sexes) != 2 || sexes[0] != "male" || sexes[1] != "female" {
		t.Errorf("Expected [male female], got %v", sexes)
	}

	classes := ds.Classes()
	want := []int{3, 1, 2}
	if len(classes) != len(want) {
		t.Fatalf("Expected %v, got %v", want, classes)
	}
	for i := range want {
		if classes[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, classes)
			break
		}
	}
}

func TestEmptyDataset(t *testing.T) {
	ds := NewDataset("empty", nil)
	if ds.Len() != 0 {
		t.Errorf("Expected empty dataset, got %d rows", ds.Len())
	}
	if ds.Sexes() == nil || len(ds.Sexes()) != 0 {
		t.Errorf("Expected empty non-nil sexes, got %v", ds.Sexes())
	}
	if ds.Classes() == nil || len(ds.Classes()) != 0 {
		t.Errorf("Expected empty non-nil classes, got %v", ds.Classes())
	}
}

func TestPassengerAge(t *testing.T) {
	known := Passenger{Age: 29.5}
	if !known.HasAge() {
		t.Error("Age 29.5 should be known")
	}
	if v := known.AgeValue(); v == nil || *v != 29.5 {
		t.Errorf("Expected AgeValue 29.5, got %v", v)
	}

	unknown := Passenger{Age: math.NaN()}
	if unknown.HasAge() {
		t.Error("NaN age should be unknown")
	}
	if unknown.AgeValue() != nil {
		t.Error("AgeValue should be nil for unknown age")
	}
}

func TestRecordUnknownNumbersAreNil(t *testing.T) {
	p := Passenger{PassengerID: 6, Name: "Moran, Mr. James", Sex: "male", Pclass: 3, Age: math.NaN(), Fare: 8.4583}
	r := p.Record()

	if r.Age != nil {
		t.Errorf("Expected nil age, got %v", *r.Age)
	}
	if r.Fare == nil || *r.Fare != 8.4583 {
		t.Errorf("Expected fare 8.4583, got %v", r.Fare)
	}
	if r.PassengerID != 6 || r.Name != p.Name {
		t.Errorf("Record lost fields: %+v", r)
	}

	p.Fare = math.NaN()
	if p.Record().Fare != nil {
		t.Error("Expected nil fare")
	}

	if got := Records([]Passenger{p, p}); len(got) != 2 {
		t.Errorf("Expected 2 records, got %d", len(got))
	}
}
