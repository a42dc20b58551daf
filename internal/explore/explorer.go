package explore

import (
	"time"

	"github.com/wexinc/manifest/internal/logging"
	"github.com/wexinc/manifest/internal/passenger"
)

// View is everything a dashboard renders for one set of criteria.
type View struct {
	Criteria Criteria
	Rows     []passenger.Passenger
	Summary  Summary
	Stats    Stats
	Charts   []Chart
	Elapsed  time.Duration
}

// Chart returns the chart of the given kind, if present.
func (v View) Chart(kind ChartKind) (Chart, bool) {
	for _, c := range v.Charts {
		if c.Kind == kind {
			return c, true
		}
	}
	return Chart{}, false
}

// Options configures an Explorer.
type Options struct {
	// HistogramBins is the number of age bins (default: 30).
	HistogramBins int
	// Logger receives one debug line per Apply. Nil means the global logger.
	Logger *logging.Logger
}

// Explorer recomputes views from a fixed dataset. Dashboards call Apply from
// their control-change handlers; it holds no per-user state.
type Explorer struct {
	ds     *passenger.Dataset
	bins   int
	logger *logging.Logger
}

// NewExplorer creates an Explorer over ds.
func NewExplorer(ds *passenger.Dataset, opts Options) *Explorer {
	if opts.HistogramBins <= 0 {
		opts.HistogramBins = DefaultHistogramBins
	}
	if opts.Logger == nil {
		opts.Logger = logging.Global()
	}
	return &Explorer{
		ds:     ds,
		bins:   opts.HistogramBins,
		logger: opts.Logger,
	}
}

// Dataset returns the explored dataset.
func (e *Explorer) Dataset() *passenger.Dataset {
	return e.ds
}

// Defaults returns the criteria selecting everything.
func (e *Explorer) Defaults() Criteria {
	return DefaultCriteria(e.ds)
}

// Apply filters the dataset and derives metrics and charts from the result.
func (e *Explorer) Apply(c Criteria) View {
	start := time.Now()

	rows := Filter(e.ds, c)
	v := View{
		Criteria: c,
		Rows:     rows,
		Summary:  Summarize(rows),
		Stats:    Describe(rows),
		Charts:   BuildCharts(rows, c.Age, e.bins),
	}
	v.Elapsed = time.Since(start)

	e.logger.Debug("filters applied",
		"criteria", c.String(),
		"rows", v.Summary.Total,
		"survived", v.Summary.Survived,
		"elapsed", v.Elapsed,
	)
	return v
}
