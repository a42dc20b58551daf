package server

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/passenger"
	"github.com/wexinc/manifest/internal/render"
	"github.com/wexinc/manifest/internal/validator"
)

// view parses the request query and applies it. An invalid query gets a 400
// response; a nil view with a nil error means that response was sent.
func (s *Server) view(c *fiber.Ctx) (*Query, *explore.View, error) {
	q, err := parseQuery(c, s.defaults)
	if err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			return nil, nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation Error",
				"message": "Request validation failed",
				"errors":  errs,
			})
		}
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	v := s.explorer.Apply(q.Criteria())
	filteredRows.Observe(float64(v.Summary.Total))
	return &q, &v, nil
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"source":     s.explorer.Dataset().Source(),
		"passengers": s.explorer.Dataset().Len(),
	})
}

func (s *Server) handleOptions(c *fiber.Ctx) error {
	ds := s.explorer.Dataset()
	return c.JSON(fiber.Map{
		"sexes":    ds.Sexes(),
		"classes":  ds.Classes(),
		"age":      explore.FullAgeRange(),
		"defaults": s.defaults,
	})
}

func (s *Server) handleSummary(c *fiber.Ctx) error {
	_, v, err := s.view(c)
	if v == nil {
		return err
	}
	return c.JSON(fiber.Map{
		"criteria": v.Criteria,
		"summary":  v.Summary,
		"stats":    v.Stats,
		"charts":   v.Charts,
	})
}

func (s *Server) handlePassengers(c *fiber.Ctx) error {
	_, v, err := s.view(c)
	if v == nil {
		return err
	}
	rows := passenger.Records(v.Rows)
	return c.JSON(fiber.Map{
		"criteria":   v.Criteria,
		"total":      len(rows),
		"passengers": rows,
	})
}

func (s *Server) handleChart(c *fiber.Ctx) error {
	name, ok := strings.CutSuffix(c.Params("file"), ".png")
	if !ok || !knownChart(explore.ChartKind(name)) {
		return fiber.ErrNotFound
	}

	_, v, err := s.view(c)
	if v == nil {
		return err
	}
	ch, _ := v.Chart(explore.ChartKind(name))

	png, err := s.renderer.Render(ch)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	chartsRendered.WithLabelValues(name).Inc()

	c.Type("png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(png)
}

func knownChart(kind explore.ChartKind) bool {
	for _, k := range explore.ChartKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// chartLink is one chart image on the dashboard.
type chartLink struct {
	Title string
	URL   string
}

// dashboardData feeds templates/dashboard.html.
type dashboardData struct {
	Sexes     []string
	Classes   []int
	Query     Query
	View      explore.View
	Charts    []chartLink
	Columns   []string
	RequestID string
}

func (s *Server) handleDashboard(c *fiber.Ctx) error {
	q, v, err := s.view(c)
	if v == nil {
		return err
	}

	ds := s.explorer.Dataset()
	data := dashboardData{
		Sexes:   ds.Sexes(),
		Classes: ds.Classes(),
		Query:   *q,
		View:    *v,
		Columns: passenger.Columns,
	}
	if id, ok := c.Locals(localRequestID).(string); ok {
		data.RequestID = id
	}
	encoded := q.Encode()
	for _, ch := range v.Charts {
		data.Charts = append(data.Charts, chartLink{
			Title: ch.Title,
			URL:   "/charts/" + render.FileName(ch.Kind) + "?" + encoded,
		})
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

var templateFuncs = template.FuncMap{
	"hasSex": func(q Query, sex string) bool {
		for _, s := range q.Sexes {
			if s == sex {
				return true
			}
		}
		return false
	},
	"hasClass": func(q Query, class int) bool {
		for _, k := range q.Classes {
			if k == class {
				return true
			}
		}
		return false
	},
	"age": func(p passenger.Passenger) string {
		if !p.HasAge() {
			return ""
		}
		return fmt.Sprintf("%g", p.Age)
	},
	"fare": func(p passenger.Passenger) string {
		if !p.HasFare() {
			return ""
		}
		return fmt.Sprintf("%.2f", p.Fare)
	},
	"minAge": func() int { return explore.MinAge },
	"maxAge": func() int { return explore.MaxAge },
}
