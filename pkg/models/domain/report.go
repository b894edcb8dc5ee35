package domain

import "strings"

// ViewMode selects the aggregation granularity of a report table.
type ViewMode string

const (
	ViewDaily   ViewMode = "DAY"
	ViewMonthly ViewMode = "MONTH"
)

// ParseViewMode resolves a request-supplied discriminator. Matching is
// case-insensitive; anything unrecognized selects the daily view.
func ParseViewMode(s string) ViewMode {
	if strings.EqualFold(strings.TrimSpace(s), string(ViewMonthly)) {
		return ViewMonthly
	}
	return ViewDaily
}

// Label returns the Korean view label used in info blocks.
func (v ViewMode) Label() string {
	if v == ViewMonthly {
		return "월별"
	}
	return "일별"
}

// ReportCriteria is the request metadata shared by row-oriented reports.
type ReportCriteria struct {
	StoreName   string
	StartDate   string
	EndDate     string
	PeriodLabel string
	ViewBy      ViewMode
	GeneratedAt string
}
