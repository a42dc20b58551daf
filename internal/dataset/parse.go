package dataset

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	manifesterrors "github.com/wexinc/manifest/internal/errors"
	"github.com/wexinc/manifest/internal/passenger"
)

// missingValues are the cell contents read as missing.
var missingValues = []string{"", "NA", "NaN", "<nil>"}

var columnTypes = map[string]series.Type{
	passenger.ColPassengerID: series.Int,
	passenger.ColSurvived:    series.Int,
	passenger.ColPclass:      series.Int,
	passenger.ColAge:         series.Float,
	passenger.ColSibSp:       series.Int,
	passenger.ColParch:       series.Int,
	passenger.ColFare:        series.Float,
}

// Parse reads a manifest CSV with a header row. source labels the dataset and
// any error. Unparseable numbers are treated as missing.
func Parse(r io.Reader, source string) (*passenger.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, manifesterrors.MalformedData(source, err)
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingValues),
		dataframe.WithTypes(columnTypes),
	)
	if df.Err != nil {
		// gota refuses a frame without records, but a header-only file is an
		// empty manifest.
		header, ok := headerOnly(data)
		if !ok {
			return nil, manifesterrors.MalformedData(source, df.Err)
		}
		if err := checkColumns(source, header); err != nil {
			return nil, err
		}
		return passenger.NewDataset(source, nil), nil
	}

	if err := checkColumns(source, df.Names()); err != nil {
		return nil, err
	}
	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}

	n := df.Nrow()
	ids := intColumn(df, present, passenger.ColPassengerID, n)
	survived := intColumn(df, present, passenger.ColSurvived, n)
	classes := intColumn(df, present, passenger.ColPclass, n)
	names := stringColumn(df, present, passenger.ColName, n)
	sexes := stringColumn(df, present, passenger.ColSex, n)
	ages := floatColumn(df, present, passenger.ColAge, n)
	sibsp := intColumn(df, present, passenger.ColSibSp, n)
	parch := intColumn(df, present, passenger.ColParch, n)
	tickets := stringColumn(df, present, passenger.ColTicket, n)
	fares := floatColumn(df, present, passenger.ColFare, n)
	cabins := stringColumn(df, present, passenger.ColCabin, n)
	embarked := stringColumn(df, present, passenger.ColEmbarked, n)

	rows := make([]passenger.Passenger, n)
	for i := range rows {
		rows[i] = passenger.Passenger{
			PassengerID: ids[i],
			Survived:    survived[i],
			Pclass:      classes[i],
			Name:        names[i],
			Sex:         sexes[i],
			Age:         ages[i],
			SibSp:       sibsp[i],
			Parch:       parch[i],
			Ticket:      tickets[i],
			Fare:        fares[i],
			Cabin:       cabins[i],
			Embarked:    embarked[i],
		}
	}

	return passenger.NewDataset(source, rows), nil
}

// headerOnly returns the header when data holds exactly one CSV record.
func headerOnly(data []byte) ([]string, bool) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil || len(records) != 1 {
		return nil, false
	}
	return records[0], true
}

func checkColumns(source string, names []string) error {
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}
	for _, col := range passenger.RequiredColumns {
		if !present[col] {
			return manifesterrors.MissingColumn(source, col)
		}
	}
	return nil
}

// intColumn returns the column as ints, zero for missing cells or an absent column.
func intColumn(df dataframe.DataFrame, present map[string]bool, name string, n int) []int {
	out := make([]int, n)
	if !present[name] {
		return out
	}
	s := df.Col(name)
	for i := 0; i < n; i++ {
		el := s.Elem(i)
		if el.IsNA() {
			continue
		}
		if v, err := el.Int(); err == nil {
			out[i] = v
		}
	}
	return out
}

// floatColumn returns the column as floats, NaN for missing cells or an absent column.
func floatColumn(df dataframe.DataFrame, present map[string]bool, name string, n int) []float64 {
	out := make([]float64, n)
	if !present[name] {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	s := df.Col(name)
	for i := 0; i < n; i++ {
		el := s.Elem(i)
		if el.IsNA() {
			out[i] = math.NaN()
			continue
		}
		out[i] = el.Float()
	}
	return out
}

// stringColumn returns the column as strings, empty for missing cells or an absent column.
func stringColumn(df dataframe.DataFrame, present map[string]bool, name string, n int) []string {
	out := make([]string, n)
	if !present[name] {
		return out
	}
	s := df.Col(name)
	for i := 0; i < n; i++ {
		el := s.Elem(i)
		if el.IsNA() {
			continue
		}
		out[i] = el.String()
	}
	return out
}
