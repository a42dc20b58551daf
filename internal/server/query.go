package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/validator"
)

// formMarker is set by the dashboard form. With it, an absent sex or class
// parameter means nothing is selected rather than everything.
const formMarker = "f"

// Query is the filter state carried in a request's query string.
type Query struct {
	Sexes   []string `query:"sex" validate:"dive,required,max=64"`
	Classes []int    `query:"class" validate:"dive,gte=1"`
	AgeMin  int      `query:"age_min" validate:"gte=0,lte=80"`
	AgeMax  int      `query:"age_max" validate:"gte=0,lte=80,gtefield=AgeMin"`
	Raw     bool     `query:"raw"`
	Form    bool     `query:"f"`
}

// Criteria converts the query into pipeline criteria.
func (q Query) Criteria() explore.Criteria {
	return explore.Criteria{
		Sexes:   q.Sexes,
		Classes: q.Classes,
		Age:     explore.AgeRange{Min: q.AgeMin, Max: q.AgeMax},
	}
}

// Encode renders the query back into canonical URL form.
func (q Query) Encode() string {
	v := url.Values{}
	for _, s := range q.Sexes {
		v.Add("sex", s)
	}
	for _, k := range q.Classes {
		v.Add("class", strconv.Itoa(k))
	}
	v.Set("age_min", strconv.Itoa(q.AgeMin))
	v.Set("age_max", strconv.Itoa(q.AgeMax))
	v.Set(formMarker, "1")
	if q.Raw {
		v.Set("raw", "1")
	}
	return v.Encode()
}

// rawQuery binds the query string before conversion, so a malformed number
// is reported against its own parameter.
type rawQuery struct {
	Sexes   []string `query:"sex"`
	Classes []string `query:"class"`
	AgeMin  string   `query:"age_min"`
	AgeMax  string   `query:"age_max"`
	Raw     string   `query:"raw"`
	Form    string   `query:"f"`
}

// parseQuery reads filter parameters, filling what is absent from defaults.
// Malformed or out-of-range values are reported as validator.ValidationErrors.
func parseQuery(c *fiber.Ctx, defaults explore.Criteria) (Query, error) {
	var raw rawQuery
	if err := c.QueryParser(&raw); err != nil {
		return Query{}, err
	}

	q := Query{
		Form: isTrue(raw.Form),
		Raw:  isTrue(raw.Raw),
	}

	var errs validator.ValidationErrors

	switch {
	case len(raw.Sexes) > 0:
		q.Sexes = raw.Sexes
	case q.Form:
		q.Sexes = []string{}
	default:
		q.Sexes = append([]string(nil), defaults.Sexes...)
	}

	switch {
	case len(raw.Classes) > 0:
		q.Classes = make([]int, 0, len(raw.Classes))
		for _, s := range raw.Classes {
			k, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				errs = append(errs, validator.ValidationError{Field: "class", Message: "must be an integer"})
				continue
			}
			q.Classes = append(q.Classes, k)
		}
	case q.Form:
		q.Classes = []int{}
	default:
		q.Classes = append([]int(nil), defaults.Classes...)
	}

	q.AgeMin = defaults.Age.Min
	q.AgeMax = defaults.Age.Max
	if err := intParam(raw.AgeMin, &q.AgeMin); err != nil {
		errs = append(errs, validator.ValidationError{Field: "age_min", Message: "must be an integer"})
	}
	if err := intParam(raw.AgeMax, &q.AgeMax); err != nil {
		errs = append(errs, validator.ValidationError{Field: "age_max", Message: "must be an integer"})
	}

	if len(errs) > 0 {
		return q, errs
	}
	if err := validator.Validate(q); err != nil {
		return q, err
	}
	return q, nil
}

func intParam(raw string, dst *int) error {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func isTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
