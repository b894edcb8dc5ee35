package report

import (
	"fmt"

	"github.com/store-tools/report-atlas/pkg/models/api"
	"github.com/store-tools/report-atlas/pkg/models/domain"
	"github.com/store-tools/report-atlas/pkg/render"
)

// kpiTable builds the KPI table block for the resolved view mode.
func kpiTable(view domain.ViewMode, data []api.KpiRow) render.Table {
	first := "날짜"
	if view == domain.ViewMonthly {
		first = "월"
	}

	t := render.Table{
		Headers: []string{first, "매출", "주문수", "UPT", "ADS", "AUR"},
		Widths:  []float64{26, 30, 20, 16, 22, 22},
		Aligns:  []string{"L", "R", "R", "R", "R", "R"},
	}
	for _, r := range data {
		t.Rows = append(t.Rows, []string{
			r.Date,
			fmtInt(r.Sales.Float()),
			fmtInt(r.Transaction.Float()),
			fmtRate2(r.UPT.Float()),
			fmtInt(r.ADS.Float()),
			fmtInt(r.AUR.Float()),
		})
	}
	return t
}

// RenderKPI lays out the KPI analytics report.
func (b *Builders) RenderKPI(p api.KpiPayload) ([]byte, error) {
	crit := criteriaFromAPI(p.Criteria)

	doc := render.NewDoc(b.styles)
	doc.Paragraph("[KPI 분석 리포트] "+crit.StoreName, b.styles.Title)
	doc.Spacer(3)
	doc.Paragraph(fmt.Sprintf("기간: %s ~ %s / ViewBy: %s\n점포: %s\n생성일시: %s",
		crit.StartDate, crit.EndDate, crit.ViewBy, crit.StoreName, crit.GeneratedAt), b.styles.Body)
	doc.Spacer(6)

	doc.Table(kpiTable(crit.ViewBy, p.Data))
	return doc.Output()
}
