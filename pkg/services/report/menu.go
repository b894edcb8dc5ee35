package report

import (
	"fmt"

	"github.com/store-tools/report-atlas/pkg/models/api"
	"github.com/store-tools/report-atlas/pkg/models/domain"
	"github.com/store-tools/report-atlas/pkg/render"
)

// menuTable builds the menu sales table block.
func menuTable(view domain.ViewMode, data []api.MenuRow) render.Table {
	first := "날짜"
	if view == domain.ViewMonthly {
		first = "월"
	}

	t := render.Table{
		Headers: []string{first, "카테고리", "메뉴", "판매수량", "매출액", "주문수"},
		Widths:  []float64{30, 40, 60, 20, 25, 20},
		Aligns:  []string{"L", "L", "L", "R", "R", "R"},
	}
	for _, r := range data {
		t.Rows = append(t.Rows, []string{
			r.Date,
			r.Category,
			r.Menu,
			fmtInt(r.Quantity.Float()),
			fmtInt(r.Sales.Float()),
			fmtInt(r.OrderCount.Float()),
		})
	}
	return t
}

// RenderMenu lays out the menu analytics report.
func (b *Builders) RenderMenu(p api.MenuPayload) ([]byte, error) {
	crit := criteriaFromAPI(p.Criteria)

	doc := render.NewDoc(b.styles)
	doc.Paragraph("메뉴 분석 리포트", b.styles.Title)
	doc.Spacer(3)
	doc.Paragraph(fmt.Sprintf("점포: %s\n기간: %s\n보기: %s\n생성일시: %s",
		crit.StoreName, crit.PeriodLabel, crit.ViewBy.Label(), crit.GeneratedAt), b.styles.Body)
	doc.Spacer(6)

	doc.Table(menuTable(crit.ViewBy, p.Data))
	return doc.Output()
}
