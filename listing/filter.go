// Package listing derives the visible slice of reports for the listing page.
package listing

import (
	"errors"
	"fmt"
	"signalalert/model"
	"strings"
	"time"
)

type Filter string

const (
	FilterAll   Filter = "all"
	FilterFound Filter = "found"
)

const (
	DefaultLimit = 3
	LimitStep    = 3
	MaxLimit     = 100
)

var (
	ErrUnknownFilter = errors.New("unknown filter")
	ErrInvalidDate   = errors.New("invalid date")
)

// ParseFilter accepts "all", "found" or a report type. Empty means all.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", string(FilterAll):
		return FilterAll, nil
	case string(FilterFound):
		return FilterFound, nil
	}
	if _, ok := model.ParseReportType(s); ok {
		return Filter(s), nil
	}
	return "", ErrUnknownFilter
}

// ClampLimit maps a requested page size onto [1, MaxLimit], 0 meaning default.
func ClampLimit(n int) int {
	switch {
	case n == 0:
		return DefaultLimit
	case n < 1:
		return 1
	case n > MaxLimit:
		return MaxLimit
	}
	return n
}

type Page struct {
	Reports []model.Report
	HasMore bool
	Total   int
}

// NextLimit is the page size requested by the "load more" action.
func (p Page) NextLimit(limit int) int {
	if !p.HasMore {
		return 0
	}
	return limit + LimitStep
}

// Match reports whether r passes f. Found-ness and type are separate axes:
// a type filter ignores status and the found filter ignores type.
func (f Filter) Match(r model.Report) bool {
	switch f {
	case FilterAll:
		return true
	case FilterFound:
		return r.Status == model.StatusFound
	default:
		return r.Type == model.ReportType(f)
	}
}

// Paginate keeps the reports matching filter, in the given order, and cuts the
// result to limit entries.
func Paginate(reports []model.Report, filter Filter, limit int) Page {
	filtered := make([]model.Report, 0, len(reports))
	for _, r := range reports {
		if filter.Match(r) {
			filtered = append(filtered, r)
		}
	}
	page := Page{Total: len(filtered), HasMore: len(filtered) > limit}
	if limit < len(filtered) {
		filtered = filtered[:max(limit, 0)]
	}
	page.Reports = filtered
	return page
}

// ParseDay reads a YYYY-MM-DD bound. Empty means unbounded (zero time).
func ParseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, s)
	}
	return d, nil
}

// Query narrows reports before pagination. From and To are inclusive calendar
// days; a zero value leaves that side open.
type Query struct {
	Search   string
	Category string
	From     time.Time
	To       time.Time
}

func sameOrAfter(d, bound time.Time) bool {
	return !dayOf(d).Before(dayOf(bound))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (q Query) Apply(reports []model.Report) []model.Report {
	if q.Search == "" && q.Category == "" && q.From.IsZero() && q.To.IsZero() {
		return reports
	}
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]model.Report, 0, len(reports))
	for _, r := range reports {
		if q.Category != "" && r.Category != q.Category {
			continue
		}
		if !q.From.IsZero() && !sameOrAfter(r.Date, q.From) {
			continue
		}
		if !q.To.IsZero() && !sameOrAfter(q.To, r.Date) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}
