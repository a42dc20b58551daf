package explore

import (
	"reflect"
	"testing"
)

func TestDefaultCriteria(t *testing.T) {
	ds := mixedDataset()
	c := DefaultCriteria(ds)

	if !reflect.DeepEqual(c.Sexes, []string{"male", "female"}) {
		t.Errorf("Expected sexes [male female], got %v", c.Sexes)
	}
	if !reflect.DeepEqual(c.Classes, []int{3, 1, 2}) {
		t.Errorf("Expected classes [3 1 2], got %v", c.Classes)
	}
	if c.Age != FullAgeRange() {
		t.Errorf("Expected full age range, got %+v", c.Age)
	}
}

func TestCriteriaValidate(t *testing.T) {
	tests := []struct {
		name    string
		age     AgeRange
		wantErr bool
	}{
		{"full range", AgeRange{0, 80}, false},
		{"single age", AgeRange{30, 30}, false},
		{"negative min", AgeRange{-1, 80}, true},
		{"max above domain", AgeRange{0, 81}, true},
		{"inverted", AgeRange{40, 20}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Criteria{Age: tt.age}.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCriteriaNormalize(t *testing.T) {
	c := Criteria{
		Sexes:   []string{"male", "female", "male"},
		Classes: []int{3, 1, 3, 2},
		Age:     AgeRange{5, 50},
	}
	n := c.Normalize()

	if !reflect.DeepEqual(n.Sexes, []string{"female", "male"}) {
		t.Errorf("Expected sorted unique sexes, got %v", n.Sexes)
	}
	if !reflect.DeepEqual(n.Classes, []int{1, 2, 3}) {
		t.Errorf("Expected sorted unique classes, got %v", n.Classes)
	}
	if n.Age != c.Age {
		t.Errorf("Normalize should keep the age range, got %+v", n.Age)
	}
	if len(c.Classes) != 4 {
		t.Error("Normalize should not modify the receiver")
	}
}

func TestCriteriaString(t *testing.T) {
	c := Criteria{Sexes: []string{"male", "female"}, Classes: []int{3, 1}, Age: AgeRange{0, 80}}
	want := "sex=female,male class=1,3 age=0-80"
	if got := c.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAgeRangeContains(t *testing.T) {
	r := AgeRange{Min: 10, Max: 20}
	cases := map[float64]bool{
		9.99:  false,
		10:    true,
		15.5:  true,
		20:    true,
		20.01: false,
	}
	for age, want := range cases {
		if got := r.Contains(age); got != want {
			t.Errorf("Contains(%v) = %v, want %v", age, got, want)
		}
	}
}
