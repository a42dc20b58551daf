// Package explore implements the filter-and-summarize pipeline behind every
// manifest view: criteria, row selection, summary metrics and chart data.
package explore

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wexinc/manifest/internal/passenger"
)

// Age slider domain.
const (
	MinAge = 0
	MaxAge = 80
)

// AgeRange is an inclusive age interval.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FullAgeRange returns the whole slider domain.
func FullAgeRange() AgeRange {
	return AgeRange{Min: MinAge, Max: MaxAge}
}

// Contains reports whether age lies in the interval. Unknown ages never do.
func (r AgeRange) Contains(age float64) bool {
	// NaN fails both comparisons.
	return float64(r.Min) <= age && age <= float64(r.Max)
}

// Criteria is the set of user-selected constraints.
// An empty Sexes or Classes set selects nothing.
type Criteria struct {
	Sexes   []string `json:"sexes"`
	Classes []int    `json:"classes"`
	Age     AgeRange `json:"age"`
}

// DefaultCriteria selects every value observed in the dataset and the full age range.
func DefaultCriteria(ds *passenger.Dataset) Criteria {
	return Criteria{
		Sexes:   ds.Sexes(),
		Classes: ds.Classes(),
		Age:     FullAgeRange(),
	}
}

// HasSex reports whether sex is selected.
func (c Criteria) HasSex(sex string) bool {
	for _, s := range c.Sexes {
		if s == sex {
			return true
		}
	}
	return false
}

// HasClass reports whether class is selected.
func (c Criteria) HasClass(class int) bool {
	for _, k := range c.Classes {
		if k == class {
			return true
		}
	}
	return false
}

// Validate checks the age range against the slider domain.
// Filtering never requires valid criteria; this is for input boundaries.
func (c Criteria) Validate() error {
	if c.Age.Min < MinAge || c.Age.Max > MaxAge {
		return fmt.Errorf("age range [%d, %d] outside [%d, %d]", c.Age.Min, c.Age.Max, MinAge, MaxAge)
	}
	if c.Age.Min > c.Age.Max {
		return fmt.Errorf("age range minimum %d is greater than maximum %d", c.Age.Min, c.Age.Max)
	}
	return nil
}

// Normalize returns a copy with sorted, de-duplicated sets.
func (c Criteria) Normalize() Criteria {
	sexes := make([]string, 0, len(c.Sexes))
	seenSex := make(map[string]bool, len(c.Sexes))
	for _, s := range c.Sexes {
		if !seenSex[s] {
			seenSex[s] = true
			sexes = append(sexes, s)
		}
	}
	sort.Strings(sexes)

	classes := make([]int, 0, len(c.Classes))
	seenClass := make(map[int]bool, len(c.Classes))
	for _, k := range c.Classes {
		if !seenClass[k] {
			seenClass[k] = true
			classes = append(classes, k)
		}
	}
	sort.Ints(classes)

	return Criteria{Sexes: sexes, Classes: classes, Age: c.Age}
}

// String renders the criteria compactly, e.g. "sex=female,male class=1,3 age=0-80".
func (c Criteria) String() string {
	n := c.Normalize()
	classes := make([]string, len(n.Classes))
	for i, k := range n.Classes {
		classes[i] = strconv.Itoa(k)
	}
	return fmt.Sprintf("sex=%s class=%s age=%d-%d",
		strings.Join(n.Sexes, ","), strings.Join(classes, ","), c.Age.Min, c.Age.Max)
}
