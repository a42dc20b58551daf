package explore

import (
	"math"
	"testing"

	"github.com/wexinc/manifest/internal/passenger"
)

func TestClassSurvival(t *testing.T) {
	ds := mixedDataset()
	rows := Filter(ds, DefaultCriteria(ds))

	classes := ClassSurvival(rows)
	if len(classes) != 3 {
		t.Fatalf("Expected 3 classes, got %d", len(classes))
	}
	for i, want := range []int{1, 2, 3} {
		if classes[i].Pclass != want {
			t.Errorf("Expected class %d at position %d, got %d", want, i, classes[i].Pclass)
		}
	}

	survived, total := 0, 0
	for _, c := range classes {
		survived += c.Survived
		total += c.Total
	}
	s := Summarize(rows)
	if survived != s.Survived {
		t.Errorf("Bars sum to %d survivors, summary has %d", survived, s.Survived)
	}
	if total != s.Total {
		t.Errorf("Bars cover %d rows, summary has %d", total, s.Total)
	}
}

func TestAgeHistogram(t *testing.T) {
	rows := []passenger.Passenger{
		{Sex: "male", Age: 0},
		{Sex: "male", Age: 5},
		{Sex: "female", Age: 9.99},
		{Sex: "female", Age: 80},
		{Sex: "male", Age: math.NaN()},
		{Sex: "female", Age: 79.5},
	}

	h := AgeHistogram(rows, AgeRange{0, 80}, 8)
	if len(h.Edges) != 9 {
		t.Fatalf("Expected 9 edges, got %d", len(h.Edges))
	}
	if h.Edges[0] != 0 || h.Edges[8] != 80 || h.Edges[1] != 10 {
		t.Errorf("Unexpected edges %v", h.Edges)
	}
	if len(h.Series) != 2 || h.Series[0].Name != "male" || h.Series[1].Name != "female" {
		t.Fatalf("Expected series [male female], got %+v", h.Series)
	}

	male := h.Series[0].Counts
	if male[0] != 2 {
		t.Errorf("Expected 2 males in first bin, got %d", male[0])
	}
	female := h.Series[1].Counts
	if female[0] != 1 {
		t.Errorf("Expected 1 female in first bin, got %d", female[0])
	}
	if female[7] != 2 {
		t.Errorf("Expected upper edge and 79.5 in last bin, got %d", female[7])
	}
	if h.Total() != 5 {
		t.Errorf("Histogram should count only known ages: expected 5, got %d", h.Total())
	}
}

func TestAgeHistogramDegenerate(t *testing.T) {
	rows := []passenger.Passenger{{Sex: "male", Age: 30}}

	h := AgeHistogram(rows, AgeRange{30, 30}, 0)
	if len(h.Edges) != DefaultHistogramBins+1 {
		t.Errorf("Expected default bin count, got %d edges", len(h.Edges))
	}
	if h.Total() != 1 {
		t.Errorf("Expected the single age to be counted, got %d", h.Total())
	}

	empty := AgeHistogram(nil, FullAgeRange(), 10)
	if empty.Total() != 0 || len(empty.Series) != 0 {
		t.Errorf("Expected an empty histogram, got %+v", empty)
	}
}

func TestFareAgePointsSkipsUnknown(t *testing.T) {
	rows := []passenger.Passenger{
		{Name: "a", Age: 20, Fare: 10, Survived: 1},
		{Name: "b", Age: math.NaN(), Fare: 10},
		{Name: "c", Age: 20, Fare: math.NaN()},
	}
	points := FareAgePoints(rows)
	if len(points) != 1 || points[0].Name != "a" || points[0].Survived != 1 {
		t.Errorf("Expected only passenger a, got %+v", points)
	}
}

func TestBuildChartsEmpty(t *testing.T) {
	charts := BuildCharts([]passenger.Passenger{}, FullAgeRange(), DefaultHistogramBins)
	if len(charts) != len(ChartKinds) {
		t.Fatalf("Expected %d charts, got %d", len(ChartKinds), len(charts))
	}
	for i, c := range charts {
		if c.Kind != ChartKinds[i] {
			t.Errorf("Chart %d: expected kind %s, got %s", i, ChartKinds[i], c.Kind)
		}
		if !c.Empty() {
			t.Errorf("Chart %s should be empty", c.Kind)
		}
		if c.Title == "" {
			t.Errorf("Chart %s should have a title", c.Kind)
		}
	}
}

func TestFareVsAgeEncoding(t *testing.T) {
	c := FareVsAgeChart(nil)
	if c.Encoding.X != passenger.ColAge || c.Encoding.Y != passenger.ColFare {
		t.Errorf("Unexpected axes %+v", c.Encoding)
	}
	if c.Encoding.Color != passenger.ColSurvived || c.Encoding.Size != passenger.ColFare {
		t.Errorf("Unexpected color/size encoding %+v", c.Encoding)
	}
	if len(c.Encoding.Hover) != 3 {
		t.Errorf("Expected 3 hover fields, got %v", c.Encoding.Hover)
	}
}
