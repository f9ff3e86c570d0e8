// Package validation implements the declarative per-endpoint constraints on
// inbound query and path parameters. Each route declares a rule table of
// Fields; Params evaluates the whole table and either returns the validated
// parameter set or the full list of per-field failures, in which case the
// handler never runs.
package validation

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Source says where a field is read from.
type Source int

const (
	Query Source = iota
	Path
)

// Field is one declarative constraint: where the value lives, whether it must
// be present, whether it must be numeric, and an optional membership check
// applied after the numeric check passes.
type Field struct {
	Name     string
	In       Source
	Required bool
	Numeric  bool
	Check    func(string) bool
	// CheckMsg overrides the generic failure description for Check.
	CheckMsg string
}

// Params evaluates every field against the request. On success it returns the
// validated parameter set: present values keyed by field name, absent optional
// fields omitted entirely. On any failure it returns the complete list of
// per-field failure descriptions and a nil set.
func Params(r *http.Request, fields ...Field) (map[string]string, []string) {
	params := make(map[string]string, len(fields))
	var errs []string

	for _, f := range fields {
		var value string
		switch f.In {
		case Path:
			value = chi.URLParam(r, f.Name)
		default:
			value = r.URL.Query().Get(f.Name)
		}

		if value == "" {
			if f.Required {
				errs = append(errs, fmt.Sprintf("%s is required", f.Name))
			}
			continue
		}

		if f.Numeric && !isNumeric(value) {
			errs = append(errs, fmt.Sprintf("%s must be numeric", f.Name))
			continue
		}

		if f.Check != nil && !f.Check(value) {
			msg := f.CheckMsg
			if msg == "" {
				msg = fmt.Sprintf("%s is invalid", f.Name)
			}
			errs = append(errs, msg)
			continue
		}

		params[f.Name] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return params, nil
}

// isNumeric accepts optionally signed integers only. The procedures take
// integral ids, costs, pages and limits; fractional input is a caller error.
func isNumeric(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// IntCheck adapts an integer membership predicate for use as a Field Check.
// Non-integer input fails the check.
func IntCheck(valid func(int) bool) func(string) bool {
	return func(s string) bool {
		n, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		return valid(n)
	}
}
