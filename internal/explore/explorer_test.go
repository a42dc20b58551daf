package explore

import (
	"math"
	"testing"

	"github.com/wexinc/manifest/internal/logging"
	"github.com/wexinc/manifest/internal/passenger"
)

func TestDescribe(t *testing.T) {
	rows := []passenger.Passenger{
		{Age: 2, Fare: 10},
		{Age: 4, Fare: 20},
		{Age: 4, Fare: math.NaN()},
		{Age: 4, Fare: 30},
		{Age: 5, Fare: 40},
		{Age: 5, Fare: 50},
		{Age: 7, Fare: 60},
		{Age: 9, Fare: 70},
		{Age: math.NaN(), Fare: 80},
	}

	st := Describe(rows)
	if st.Age.Count != 8 {
		t.Errorf("Expected 8 known ages, got %d", st.Age.Count)
	}
	if st.Age.Mean != 5 {
		t.Errorf("Expected mean age 5, got %v", st.Age.Mean)
	}
	if st.Age.StdDev != 2.14 {
		t.Errorf("Expected sample std dev 2.14, got %v", st.Age.StdDev)
	}
	if st.Age.Min != 2 || st.Age.Max != 9 {
		t.Errorf("Expected age bounds [2, 9], got [%v, %v]", st.Age.Min, st.Age.Max)
	}

	if st.Fare.Count != 8 {
		t.Errorf("Expected 8 known fares, got %d", st.Fare.Count)
	}
	if st.Fare.Mean != 45 {
		t.Errorf("Expected mean fare 45, got %v", st.Fare.Mean)
	}
}

func TestDescribeSmallInputs(t *testing.T) {
	empty := Describe(nil)
	if empty != (Stats{}) {
		t.Errorf("Expected zero stats for no rows, got %+v", empty)
	}

	single := Describe([]passenger.Passenger{{Age: 30, Fare: 12}})
	if single.Age.Count != 1 || single.Age.Mean != 30 || single.Age.Median != 30 {
		t.Errorf("Unexpected single-row age stats %+v", single.Age)
	}
	if single.Age.StdDev != 0 {
		t.Errorf("Single observation should have zero std dev, got %v", single.Age.StdDev)
	}

	odd := Describe([]passenger.Passenger{{Age: 3}, {Age: 1}, {Age: 2}})
	if odd.Age.Median != 2 {
		t.Errorf("Expected median 2, got %v", odd.Age.Median)
	}

	even := Describe([]passenger.Passenger{{Age: 20}, {Age: 10}})
	if even.Age.Median != 15 {
		t.Errorf("Expected median 15 between two ages, got %v", even.Age.Median)
	}
}

func TestExplorerApply(t *testing.T) {
	ds := scenarioDataset()
	e := NewExplorer(ds, Options{Logger: logging.NewNoop()})

	v := e.Apply(Criteria{Sexes: []string{"male"}, Classes: []int{1, 3}, Age: FullAgeRange()})
	if v.Summary.Total != 2 || v.Summary.Survived != 1 || v.Summary.SurvivalRate != 50 {
		t.Errorf("Unexpected summary %+v", v.Summary)
	}
	if len(v.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(v.Rows))
	}
	if len(v.Charts) != 3 {
		t.Fatalf("Expected 3 charts, got %d", len(v.Charts))
	}

	bars, ok := v.Chart(ChartSurvivalByClass)
	if !ok {
		t.Fatal("Survival chart missing from view")
	}
	if len(bars.Classes) != 2 || bars.Classes[0].Survived != 1 || bars.Classes[1].Survived != 0 {
		t.Errorf("Unexpected class bars %+v", bars.Classes)
	}

	hist, _ := v.Chart(ChartAgeDistribution)
	if len(hist.Histogram.Edges) != DefaultHistogramBins+1 {
		t.Errorf("Expected default bins, got %d edges", len(hist.Histogram.Edges))
	}
}

func TestExplorerDefaults(t *testing.T) {
	ds := mixedDataset()
	e := NewExplorer(ds, Options{HistogramBins: 10, Logger: logging.NewNoop()})

	if e.Dataset() != ds {
		t.Error("Dataset() should return the explored dataset")
	}

	v := e.Apply(e.Defaults())
	// One missing age and one age above 80.
	if v.Summary.Total != ds.Len()-2 {
		t.Errorf("Expected %d rows, got %d", ds.Len()-2, v.Summary.Total)
	}
	hist, _ := v.Chart(ChartAgeDistribution)
	if len(hist.Histogram.Edges) != 11 {
		t.Errorf("Expected 10 bins, got %d edges", len(hist.Histogram.Edges))
	}
	if hist.Histogram.Total() != v.Summary.Total {
		t.Errorf("Histogram counts %d rows, view has %d", hist.Histogram.Total(), v.Summary.Total)
	}

	if _, ok := v.Chart(ChartKind("missing")); ok {
		t.Error("Unknown chart kind should not be found")
	}
}
