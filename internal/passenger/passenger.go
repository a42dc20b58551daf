// Package passenger provides the passenger record and the immutable dataset
// that every manifest view is computed from.
package passenger

import (
	"math"
)

// Column names as they appear in the manifest CSV.
const (
	ColPassengerID = "PassengerId"
	ColSurvived    = "Survived"
	ColPclass      = "Pclass"
	ColName        = "Name"
	ColSex         = "Sex"
	ColAge         = "Age"
	ColSibSp       = "SibSp"
	ColParch       = "Parch"
	ColTicket      = "Ticket"
	ColFare        = "Fare"
	ColCabin       = "Cabin"
	ColEmbarked    = "Embarked"
)

// RequiredColumns are the columns a manifest must carry to be explored.
var RequiredColumns = []string{ColSex, ColPclass, ColAge, ColSurvived, ColFare, ColName}

// Columns is the full column order used for tables and exports.
var Columns = []string{
	ColPassengerID, ColSurvived, ColPclass, ColName, ColSex, ColAge,
	ColSibSp, ColParch, ColTicket, ColFare, ColCabin, ColEmbarked,
}

// Passenger is a single manifest row.
type Passenger struct {
	PassengerID int
	Survived    int
	Pclass      int
	Name        string
	Sex         string
	Age         float64 // NaN when unknown
	SibSp       int
	Parch       int
	Ticket      string
	Fare        float64
	Cabin       string
	Embarked    string
}

// HasAge reports whether the passenger's age is known.
func (p Passenger) HasAge() bool {
	return !math.IsNaN(p.Age)
}

// HasFare reports whether the passenger's fare is known.
func (p Passenger) HasFare() bool {
	return !math.IsNaN(p.Fare)
}

// AgeValue returns the age, or nil when unknown.
func (p Passenger) AgeValue() *float64 {
	if !p.HasAge() {
		return nil
	}
	age := p.Age
	return &age
}

// FareValue returns the fare, or nil when unknown.
func (p Passenger) FareValue() *float64 {
	if !p.HasFare() {
		return nil
	}
	fare := p.Fare
	return &fare
}

// Record is the JSON form of a passenger. Unknown numbers are null.
type Record struct {
	PassengerID int      `json:"passenger_id"`
	Survived    int      `json:"survived"`
	Pclass      int      `json:"pclass"`
	Name        string   `json:"name"`
	Sex         string   `json:"sex"`
	Age         *float64 `json:"age"`
	SibSp       int      `json:"sib_sp"`
	Parch       int      `json:"parch"`
	Ticket      string   `json:"ticket"`
	Fare        *float64 `json:"fare"`
	Cabin       string   `json:"cabin"`
	Embarked    string   `json:"embarked"`
}

// Record converts p to its JSON form.
func (p Passenger) Record() Record {
	return Record{
		PassengerID: p.PassengerID,
		Survived:    p.Survived,
		Pclass:      p.Pclass,
		Name:        p.Name,
		Sex:         p.Sex,
		Age:         p.AgeValue(),
		SibSp:       p.SibSp,
		Parch:       p.Parch,
		Ticket:      p.Ticket,
		Fare:        p.FareValue(),
		Cabin:       p.Cabin,
		Embarked:    p.Embarked,
	}
}

// Records converts rows to their JSON form.
func Records(rows []Passenger) []Record {
	out := make([]Record, len(rows))
	for i, p := range rows {
		out[i] = p.Record()
	}
	return out
}

// Dataset is an ordered, read-only collection of passengers.
// It is loaded once per run and shared freely; nothing mutates it.
type Dataset struct {
	source     string
	passengers []Passenger
	sexes      []string
	classes    []int
}

// NewDataset copies passengers into a new Dataset.
// Source is a human-readable description of where the rows came from.
func NewDataset(source string, passengers []Passenger) *Dataset {
	rows := make([]Passenger, len(passengers))
	copy(rows, passengers)

	ds := &Dataset{
		source:     source,
		passengers: rows,
	}
	ds.sexes, ds.classes = observedOptions(rows)
	return ds
}

// Source returns where the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Len returns the number of passengers.
func (d *Dataset) Len() int {
	return len(d.passengers)
}

// At returns the passenger at index i.
func (d *Dataset) At(i int) Passenger {
	return d.passengers[i]
}

// Passengers returns a copy of all rows in order.
func (d *Dataset) Passengers() []Passenger {
	rows := make([]Passenger, len(d.passengers))
	copy(rows, d.passengers)
	return rows
}

// Sexes returns the distinct Sex values in order of first appearance.
func (d *Dataset) Sexes() []string {
	out := make([]string, len(d.sexes))
	copy(out, d.sexes)
	return out
}

// Classes returns the distinct Pclass values in order of first appearance.
func (d *Dataset) Classes() []int {
	out := make([]int, len(d.classes))
	copy(out, d.classes)
	return out
}

func observedOptions(rows []Passenger) ([]string, []int) {
	sexes := []string{}
	classes := []int{}
	seenSex := make(map[string]bool)
	seenClass := make(map[int]bool)

	for _, p := range rows {
		if !seenSex[p.Sex] {
			seenSex[p.Sex] = true
			sexes = append(sexes, p.Sex)
		}
		if !seenClass[p.Pclass] {
			seenClass[p.Pclass] = true
			classes = append(classes, p.Pclass)
		}
	}
	return sexes, classes
}
