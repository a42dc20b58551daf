package explore

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/wexinc/manifest/internal/passenger"
)

// Distribution describes the known values of one numeric column.
// All fields are zero when Count is zero.
type Distribution struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Stats holds descriptive statistics for a filtered view.
type Stats struct {
	Age  Distribution `json:"age"`
	Fare Distribution `json:"fare"`
}

// Describe computes Age and Fare distributions, skipping unknown values.
func Describe(rows []passenger.Passenger) Stats {
	ages := make([]float64, 0, len(rows))
	fares := make([]float64, 0, len(rows))
	for _, p := range rows {
		if p.HasAge() {
			ages = append(ages, p.Age)
		}
		if p.HasFare() {
			fares = append(fares, p.Fare)
		}
	}
	return Stats{
		Age:  describe(ages),
		Fare: describe(fares),
	}
}

func describe(xs []float64) Distribution {
	if len(xs) == 0 {
		return Distribution{}
	}
	s := stats.Sample{Xs: xs}
	s.Sort()

	d := Distribution{
		Count:  len(xs),
		Mean:   round2(s.Mean()),
		Median: round2(s.Quantile(0.5)),
		Min:    s.Xs[0],
		Max:    s.Xs[len(s.Xs)-1],
	}
	// A single observation has no spread.
	if len(xs) > 1 {
		d.StdDev = round2(s.StdDev())
	}
	return d
}
