// Package report renders analytics payloads into paginated PDF documents.
// All five report types share one shape: extract criteria, resolve the
// view mode, format rows against a fixed header/column-width set, then lay
// out a title block, an info block and the table(s).
package report

import (
	"github.com/store-tools/report-atlas/pkg/models/api"
	"github.com/store-tools/report-atlas/pkg/models/domain"
	"github.com/store-tools/report-atlas/pkg/render"
)

const noDataPlaceholder = "데이터 없음"

// Builders renders the five report types against one shared immutable
// style catalog. Safe for concurrent use.
type Builders struct {
	styles *render.Styles
}

func NewBuilders(styles *render.Styles) *Builders {
	return &Builders{styles: styles}
}

func criteriaFromAPI(c api.ReportCriteria) domain.ReportCriteria {
	return domain.ReportCriteria{
		StoreName:   c.StoreName,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		PeriodLabel: c.PeriodLabel,
		ViewBy:      domain.ParseViewMode(c.ViewBy),
		GeneratedAt: c.GeneratedAt,
	}
}
