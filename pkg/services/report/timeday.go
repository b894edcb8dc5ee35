package report

import (
	"fmt"
	"strconv"

	"github.com/store-tools/report-atlas/pkg/models/api"
	"github.com/store-tools/report-atlas/pkg/models/domain"
	"github.com/store-tools/report-atlas/pkg/render"
)

// numOrDash renders a nullable summary marker: absent means no peak
// exists, shown as a dash.
func numOrDash(n *api.Number) string {
	if n == nil {
		return "-"
	}
	return strconv.FormatInt(n.Int(), 10)
}

func timeDaySummaryText(s api.TimeDaySummary) string {
	return fmt.Sprintf(
		"피크 시간대: %s시 / 매출 %s원\n비수 시간대: %s시 / 매출 %s원\n최고 매출 요일: %s요일 / 매출 %s원\n주중 매출: %s원 / 주말 매출: %s원",
		numOrDash(s.PeakHour), fmtInt(s.PeakHourSales.Float()),
		numOrDash(s.OffpeakHour), fmtInt(s.OffpeakHourSales.Float()),
		numOrDash(s.TopWeekday), fmtInt(s.TopWeekdaySales.Float()),
		fmtInt(s.WeekdaySales.Float()), fmtInt(s.WeekendSales.Float()),
	)
}

// timeDayTable builds the hourly/weekday table block. Daily rows key on
// orderDate, monthly rows on yearMonth; everything else is shared.
func timeDayTable(view domain.ViewMode, rows []api.TimeDayRow) render.Table {
	first := "날짜(일)"
	if view == domain.ViewMonthly {
		first = "날짜(월)"
	}

	t := render.Table{
		Headers: []string{first, "요일", "시간대", "주문수", "매출액", "매장/포장/배달"},
		Widths:  []float64{26, 12, 18, 16, 20, 62},
		Aligns:  []string{"L", "L", "L", "R", "R", "L"},
	}
	for _, r := range rows {
		date := r.OrderDate
		if view == domain.ViewMonthly {
			date = r.YearMonth
		}
		t.Rows = append(t.Rows, []string{
			date,
			domain.WeekdayName(int(r.Weekday.Int())),
			fmtHour(int(r.Hour.Int())),
			fmtInt(r.OrderCount.Float()),
			fmtInt(r.Sales.Float()),
			fmt.Sprintf("VISIT %d, TAKEOUT %d, DELIVERY %d",
				r.VisitCount.Int(), r.TakeoutCount.Int(), r.DeliveryCount.Int()),
		})
	}
	return t
}

// RenderTimeDay lays out the time/weekday analytics report: info block,
// summary callout, then the daily or monthly table. The hourly and weekday
// chart points in the payload are not rendered.
func (b *Builders) RenderTimeDay(p api.TimeDayPayload) ([]byte, error) {
	view := domain.ParseViewMode(p.ViewBy)

	doc := render.NewDoc(b.styles)
	doc.Paragraph("시간/요일 분석 리포트", b.styles.Title)
	doc.Spacer(3)
	doc.Paragraph(fmt.Sprintf("점포: %s\n기간: %s\n생성일시: %s",
		p.StoreName, p.PeriodLabel, p.GeneratedAt), b.styles.Body)
	doc.Spacer(6)

	doc.Paragraph("[요약]", b.styles.SectionHeader)
	doc.Spacer(2)
	doc.Paragraph(timeDaySummaryText(p.Summary), b.styles.Body)
	doc.Spacer(8)

	rows := p.DailyRows
	if view == domain.ViewMonthly {
		rows = p.MonthlyRows
	}
	doc.Table(timeDayTable(view, rows))
	return doc.Output()
}
