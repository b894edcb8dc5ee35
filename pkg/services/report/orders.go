package report

import (
	"fmt"
	"strconv"

	"github.com/store-tools/report-atlas/pkg/models/api"
	"github.com/store-tools/report-atlas/pkg/models/domain"
	"github.com/store-tools/report-atlas/pkg/render"
)

// ordersTable builds the orders table block. The daily view lists one row
// per order; the monthly view lists aggregated sales per month.
func ordersTable(view domain.ViewMode, data []api.OrdersRow) render.Table {
	if view == domain.ViewMonthly {
		t := render.Table{
			Headers: []string{"월", "총매출", "주문수", "평균주문금액", "배달매출", "포장매출", "매장매출"},
			Widths:  []float64{25, 25, 18, 30, 25, 25, 25},
			Aligns:  []string{"L", "R", "R", "R", "R", "R", "R"},
		}
		for _, r := range data {
			month := r.YearMonth
			if month == "" {
				month = r.Date
			}
			t.Rows = append(t.Rows, []string{
				month,
				fmtInt(r.TotalSales.Float()),
				fmtInt(r.OrderCount.Float()),
				fmtInt(r.AvgOrderAmount.Float()),
				fmtInt(r.DeliverySales.Float()),
				fmtInt(r.TakeoutSales.Float()),
				fmtInt(r.VisitSales.Float()),
			})
		}
		return t
	}

	t := render.Table{
		Headers: []string{"주문일자", "주문ID", "주문유형", "총금액", "메뉴수", "결제수단", "채널메모"},
		Widths:  []float64{25, 20, 18, 25, 18, 22, 40},
		Aligns:  []string{"L", "R", "L", "R", "R", "R", "L"},
	}
	for _, r := range data {
		date := r.Date
		if date == "" {
			date = r.OrderDate
		}
		t.Rows = append(t.Rows, []string{
			date,
			strconv.FormatInt(r.OrderID.Int(), 10),
			domain.OrderTypeLabel(r.OrderType),
			fmtInt(r.TotalPrice.Float()),
			fmtInt(r.MenuCount.Float()),
			domain.PaymentTypeLabel(r.PaymentType),
			labelOrDash(r.ChannelMemo),
		})
	}
	return t
}

// RenderOrders lays out the order analytics report.
func (b *Builders) RenderOrders(p api.OrdersPayload) ([]byte, error) {
	crit := criteriaFromAPI(p.Criteria)

	doc := render.NewDoc(b.styles)
	doc.Paragraph("주문 분석 리포트", b.styles.Title)
	doc.Spacer(3)
	doc.Paragraph(fmt.Sprintf("기간: %s ~ %s / 기준: %s\n점포: %s\n생성일시: %s",
		crit.StartDate, crit.EndDate, crit.ViewBy.Label(), crit.StoreName, crit.GeneratedAt), b.styles.Body)
	doc.Spacer(6)

	doc.Table(ordersTable(crit.ViewBy, p.Data))
	return doc.Output()
}
