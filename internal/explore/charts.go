package explore

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/wexinc/manifest/internal/passenger"
)

// ChartKind identifies one of the dashboard charts.
type ChartKind string

const (
	// ChartSurvivalByClass is the survival count per passenger class.
	ChartSurvivalByClass ChartKind = "survival_by_class"
	// ChartAgeDistribution is the age histogram split by sex.
	ChartAgeDistribution ChartKind = "age_distribution"
	// ChartFareVsAge is the fare against age scatter colored by survival.
	ChartFareVsAge ChartKind = "fare_vs_age"
)

// ChartKinds lists the charts in dashboard order.
var ChartKinds = []ChartKind{ChartSurvivalByClass, ChartAgeDistribution, ChartFareVsAge}

// DefaultHistogramBins matches the dashboard's age histogram.
const DefaultHistogramBins = 30

// Encoding names the columns a chart maps onto its visual channels.
type Encoding struct {
	X     string   `json:"x"`
	Y     string   `json:"y"`
	Color string   `json:"color,omitempty"`
	Size  string   `json:"size,omitempty"`
	Hover []string `json:"hover,omitempty"`
}

// ClassCount is one bar of the survival-by-class chart.
type ClassCount struct {
	Pclass   int `json:"pclass"`
	Survived int `json:"survived"`
	Total    int `json:"total"`
}

// Histogram holds equal-width bin counts per series.
// Edges has len(bins)+1 entries.
type Histogram struct {
	Edges  []float64         `json:"edges"`
	Series []HistogramSeries `json:"series"`
}

// HistogramSeries is the bin counts for one color group.
type HistogramSeries struct {
	Name   string `json:"name"`
	Counts []int  `json:"counts"`
}

// Total returns the number of observations across all series.
func (h Histogram) Total() int {
	n := 0
	for _, s := range h.Series {
		for _, c := range s.Counts {
			n += c
		}
	}
	return n
}

// Point is one scatter marker.
type Point struct {
	Age      float64 `json:"age"`
	Fare     float64 `json:"fare"`
	Survived int     `json:"survived"`
	Name     string  `json:"name"`
	Sex      string  `json:"sex"`
	Pclass   int     `json:"pclass"`
}

// Chart is a declarative chart: title, encodings and the computed data.
// Exactly one of Classes, Histogram or Points is set, depending on Kind.
type Chart struct {
	Kind      ChartKind    `json:"kind"`
	Title     string       `json:"title"`
	Encoding  Encoding     `json:"encoding"`
	Classes   []ClassCount `json:"classes,omitempty"`
	Histogram *Histogram   `json:"histogram,omitempty"`
	Points    []Point      `json:"points,omitempty"`
}

// Empty reports whether the chart has nothing to draw.
func (c Chart) Empty() bool {
	switch c.Kind {
	case ChartSurvivalByClass:
		return len(c.Classes) == 0
	case ChartAgeDistribution:
		return c.Histogram == nil || c.Histogram.Total() == 0
	case ChartFareVsAge:
		return len(c.Points) == 0
	}
	return true
}

// BuildCharts computes all dashboard charts from the same filtered rows.
func BuildCharts(rows []passenger.Passenger, age AgeRange, bins int) []Chart {
	return []Chart{
		SurvivalByClassChart(rows),
		AgeDistributionChart(rows, age, bins),
		FareVsAgeChart(rows),
	}
}

// SurvivalByClassChart sums Survived per class, classes ascending.
func SurvivalByClassChart(rows []passenger.Passenger) Chart {
	return Chart{
		Kind:     ChartSurvivalByClass,
		Title:    "Survival Count by Class",
		Encoding: Encoding{X: passenger.ColPclass, Y: passenger.ColSurvived, Color: passenger.ColPclass},
		Classes:  ClassSurvival(rows),
	}
}

// ClassSurvival groups rows by class.
func ClassSurvival(rows []passenger.Passenger) []ClassCount {
	byClass := make(map[int]*ClassCount)
	for _, p := range rows {
		cc, ok := byClass[p.Pclass]
		if !ok {
			cc = &ClassCount{Pclass: p.Pclass}
			byClass[p.Pclass] = cc
		}
		cc.Total++
		cc.Survived += p.Survived
	}

	out := make([]ClassCount, 0, len(byClass))
	for _, cc := range byClass {
		out = append(out, *cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pclass < out[j].Pclass })
	return out
}

// AgeDistributionChart bins known ages over the selected range, one series per sex.
func AgeDistributionChart(rows []passenger.Passenger, age AgeRange, bins int) Chart {
	h := AgeHistogram(rows, age, bins)
	return Chart{
		Kind:      ChartAgeDistribution,
		Title:     "Age Distribution",
		Encoding:  Encoding{X: passenger.ColAge, Y: "count", Color: passenger.ColSex},
		Histogram: &h,
	}
}

// AgeHistogram counts known ages into equal-width bins over [age.Min, age.Max].
// Ages equal to the upper edge land in the last bin; ages outside are dropped.
// Series follow the first appearance of each sex in rows.
func AgeHistogram(rows []passenger.Passenger, age AgeRange, bins int) Histogram {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	lo, hi := float64(age.Min), float64(age.Max)
	if hi <= lo {
		hi = lo + 1
	}

	var order []string
	hists := make(map[string]*stats.LinearHist)
	for _, p := range rows {
		if !p.HasAge() || p.Age < lo || p.Age > hi {
			continue
		}
		h, ok := hists[p.Sex]
		if !ok {
			h = stats.NewLinearHist(lo, hi, bins)
			hists[p.Sex] = h
			order = append(order, p.Sex)
		}
		h.Add(p.Age)
	}

	out := Histogram{
		Edges:  make([]float64, bins+1),
		Series: make([]HistogramSeries, 0, len(order)),
	}
	width := (hi - lo) / float64(bins)
	for i := range out.Edges {
		out.Edges[i] = lo + float64(i)*width
	}
	for _, sex := range order {
		_, counts, over := hists[sex].Counts()
		s := HistogramSeries{Name: sex, Counts: make([]int, bins)}
		for i, c := range counts {
			s.Counts[i] = int(c)
		}
		// Only values equal to hi can overflow here.
		s.Counts[bins-1] += int(over)
		out.Series = append(out.Series, s)
	}
	return out
}

// FareVsAgeChart plots fare against age for rows where both are known.
func FareVsAgeChart(rows []passenger.Passenger) Chart {
	return Chart{
		Kind:  ChartFareVsAge,
		Title: "Fare vs Age (Survived vs Not Survived)",
		Encoding: Encoding{
			X:     passenger.ColAge,
			Y:     passenger.ColFare,
			Color: passenger.ColSurvived,
			Size:  passenger.ColFare,
			Hover: []string{passenger.ColName, passenger.ColSex, passenger.ColPclass},
		},
		Points: FareAgePoints(rows),
	}
}

// FareAgePoints returns one point per row with known age and fare.
func FareAgePoints(rows []passenger.Passenger) []Point {
	out := make([]Point, 0, len(rows))
	for _, p := range rows {
		if !p.HasAge() || !p.HasFare() {
			continue
		}
		out = append(out, Point{
			Age:      p.Age,
			Fare:     p.Fare,
			Survived: p.Survived,
			Name:     p.Name,
			Sex:      p.Sex,
			Pclass:   p.Pclass,
		})
	}
	return out
}
