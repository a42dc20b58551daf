package explore

import (
	"math"

	"github.com/wexinc/manifest/internal/passenger"
)

// Filter returns the passengers matching every criterion, in dataset order.
// Sexes and classes are OR-combined within a set; the three criteria are
// AND-combined. The result is never nil.
func Filter(ds *passenger.Dataset, c Criteria) []passenger.Passenger {
	m := newMatcher(c)
	out := make([]passenger.Passenger, 0)
	for i := 0; i < ds.Len(); i++ {
		p := ds.At(i)
		if m.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilterRows applies the same predicate to an already selected slice.
func FilterRows(rows []passenger.Passenger, c Criteria) []passenger.Passenger {
	m := newMatcher(c)
	out := make([]passenger.Passenger, 0, len(rows))
	for _, p := range rows {
		if m.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single passenger satisfies c.
func Matches(p passenger.Passenger, c Criteria) bool {
	return newMatcher(c).match(p)
}

// matcher holds lookup sets built once per filter pass.
type matcher struct {
	sexes   map[string]bool
	classes map[int]bool
	age     AgeRange
}

func newMatcher(c Criteria) matcher {
	m := matcher{
		sexes:   make(map[string]bool, len(c.Sexes)),
		classes: make(map[int]bool, len(c.Classes)),
		age:     c.Age,
	}
	for _, s := range c.Sexes {
		m.sexes[s] = true
	}
	for _, k := range c.Classes {
		m.classes[k] = true
	}
	return m
}

func (m matcher) match(p passenger.Passenger) bool {
	return m.sexes[p.Sex] && m.classes[p.Pclass] && m.age.Contains(p.Age)
}

// Summary holds the three headline metrics of a filtered view.
type Summary struct {
	Total        int     `json:"total"`
	Survived     int     `json:"survived"`
	SurvivalRate float64 `json:"survival_rate"`
}

// Summarize computes the headline metrics. The survival rate is a percentage
// rounded to two decimals, and 0 when there are no rows.
func Summarize(rows []passenger.Passenger) Summary {
	s := Summary{Total: len(rows)}
	for _, p := range rows {
		s.Survived += p.Survived
	}
	if s.Total > 0 {
		s.SurvivalRate = round2(float64(s.Survived) / float64(s.Total) * 100)
	}
	return s
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
