package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"cinepulse/internal/dataprocessing"
	apierrors "cinepulse/internal/errors"
)

// filterQuery carries the dashboard filter parameters after binding.
type filterQuery struct {
	Genres  []string `validate:"omitempty,dive,min=1,max=64"`
	YearMin int      `validate:"omitempty,min=1800,max=2200"`
	YearMax int      `validate:"omitempty,min=1800,max=2200"`
}

// bindFilter parses and validates the filter query parameters shared by the
// dashboard and export routes: genres (comma separated), year_min, year_max.
func bindFilter(v *validator.Validate, r *http.Request) (dataprocessing.Filter, error) {
	q := filterQuery{}
	values := r.URL.Query()

	if raw := strings.TrimSpace(values.Get("genres")); raw != "" {
		for _, genre := range strings.Split(raw, ",") {
			if genre = strings.TrimSpace(genre); genre != "" {
				q.Genres = append(q.Genres, genre)
			}
		}
	}

	var err error
	if q.YearMin, err = parseYearParam(values.Get("year_min")); err != nil {
		return dataprocessing.Filter{}, apierrors.ErrValidation("year_min", err.Error())
	}
	if q.YearMax, err = parseYearParam(values.Get("year_max")); err != nil {
		return dataprocessing.Filter{}, apierrors.ErrValidation("year_max", err.Error())
	}

	if err := v.Struct(q); err != nil {
		return dataprocessing.Filter{}, apierrors.NewValidationErrors(validationErrors(err))
	}

	if q.YearMin != 0 && q.YearMax != 0 && q.YearMax < q.YearMin {
		return dataprocessing.Filter{}, apierrors.ErrValidation("year_max", "year_max must not be before year_min")
	}

	return dataprocessing.Filter{
		Genres:  q.Genres,
		YearMin: q.YearMin,
		YearMax: q.YearMax,
	}, nil
}

// parseYearParam parses an optional integer year parameter.
func parseYearParam(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("must be an integer year, got %q", raw)
	}
	return year, nil
}

// validationErrors maps validator failures onto the API error shape.
func validationErrors(err error) []apierrors.ValidationError {
	var out []apierrors.ValidationError
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range verrs {
			out = append(out, apierrors.ValidationError{
				Field:   strings.ToLower(ve.Field()),
				Message: fmt.Sprintf("failed %s validation", ve.Tag()),
			})
		}
		return out
	}
	out = append(out, apierrors.ValidationError{Field: "query", Message: err.Error()})
	return out
}
