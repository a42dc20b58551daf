package dataset

import (
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/wexinc/manifest/internal/passenger"
)

// WriteCSV writes rows with the manifest's column names. Missing ages and
// fares are written as empty cells so the output loads back unchanged.
func WriteCSV(w io.Writer, rows []passenger.Passenger) error {
	return Frame(rows).WriteCSV(w)
}

// Frame converts rows to a data frame in passenger.Columns order.
func Frame(rows []passenger.Passenger) dataframe.DataFrame {
	n := len(rows)
	ids := make([]int, n)
	survived := make([]int, n)
	classes := make([]int, n)
	names := make([]string, n)
	sexes := make([]string, n)
	ages := make([]string, n)
	sibsp := make([]int, n)
	parch := make([]int, n)
	tickets := make([]string, n)
	fares := make([]string, n)
	cabins := make([]string, n)
	embarked := make([]string, n)

	for i, p := range rows {
		ids[i] = p.PassengerID
		survived[i] = p.Survived
		classes[i] = p.Pclass
		names[i] = p.Name
		sexes[i] = p.Sex
		if p.HasAge() {
			ages[i] = formatFloat(p.Age)
		}
		sibsp[i] = p.SibSp
		parch[i] = p.Parch
		tickets[i] = p.Ticket
		if p.HasFare() {
			fares[i] = formatFloat(p.Fare)
		}
		cabins[i] = p.Cabin
		embarked[i] = p.Embarked
	}

	return dataframe.New(
		series.New(ids, series.Int, passenger.ColPassengerID),
		series.New(survived, series.Int, passenger.ColSurvived),
		series.New(classes, series.Int, passenger.ColPclass),
		series.New(names, series.String, passenger.ColName),
		series.New(sexes, series.String, passenger.ColSex),
		series.New(ages, series.String, passenger.ColAge),
		series.New(sibsp, series.Int, passenger.ColSibSp),
		series.New(parch, series.Int, passenger.ColParch),
		series.New(tickets, series.String, passenger.ColTicket),
		series.New(fares, series.String, passenger.ColFare),
		series.New(cabins, series.String, passenger.ColCabin),
		series.New(embarked, series.String, passenger.ColEmbarked),
	)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
