package report

import (
	"fmt"
	"strconv"

	"github.com/store-tools/report-atlas/pkg/models/api"
	"github.com/store-tools/report-atlas/pkg/models/domain"
	"github.com/store-tools/report-atlas/pkg/render"
)

// materialTopTable builds one top-5 ranking card (by usage or by cost).
func materialTopTable(items []api.MaterialTopItem) render.Table {
	t := render.Table{
		Headers:   []string{"순위", "재료명", "사용량", "단위", "원가"},
		Widths:    []float64{15, 40, 25, 20, 25},
		Aligns:    []string{"L", "L", "R", "R", "R"},
		FontSize:  8,
		HeaderRGB: [3]int{0xE9, 0xEC, 0xEF},
	}
	for i, it := range items {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			labelOrDash(it.MaterialName),
			fmtQty(it.UsedQuantity.Float()),
			labelOrDash(it.UnitName),
			fmtInt(it.Cost.Float()),
		})
	}
	return t
}

// materialDailyTable builds the daily usage table.
func materialDailyTable(rows []api.MaterialDailyRow) render.Table {
	t := render.Table{
		Headers:  []string{"사용일자", "재료명", "사용량", "단위", "원가", "매출비중", "최근입고일"},
		Widths:   []float64{25, 35, 22, 18, 22, 22, 25},
		Aligns:   []string{"L", "L", "R", "R", "R", "R", "L"},
		FontSize: 8,
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			labelOrDash(r.UseDate),
			labelOrDash(r.MaterialName),
			fmtQty(r.UsedQuantity.Float()),
			labelOrDash(r.UnitName),
			fmtInt(r.Cost.Float()),
			fmtPercent(r.SalesShare.Float()),
			labelOrDash(r.LastInboundDate),
		})
	}
	return t
}

// materialMonthlyTable builds the monthly usage table.
func materialMonthlyTable(rows []api.MaterialMonthlyRow) render.Table {
	t := render.Table{
		Headers:  []string{"월", "재료명", "사용량", "원가", "원가율", "최근입고월"},
		Widths:   []float64{25, 45, 30, 30, 25, 30},
		Aligns:   []string{"L", "L", "R", "R", "R", "L"},
		FontSize: 8,
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			labelOrDash(r.YearMonth),
			labelOrDash(r.MaterialName),
			fmtQty(r.UsedQuantity.Float()),
			fmtInt(r.Cost.Float()),
			fmtPercent(r.CostRate.Float()),
			labelOrDash(r.LastInboundMonth),
		})
	}
	return t
}

func (b *Builders) materialSummary(doc *render.Doc, s api.MaterialSummary) {
	doc.Paragraph("재료 분석 요약", b.styles.SectionHeader)
	doc.Spacer(3)

	doc.Paragraph("▶ 사용량 Top 5", b.styles.Body)
	if len(s.TopByUsage) > 0 {
		doc.Table(materialTopTable(s.TopByUsage))
	} else {
		doc.Paragraph(noDataPlaceholder, b.styles.Body)
	}
	doc.Spacer(5)

	doc.Paragraph("▶ 원가 Top 5", b.styles.Body)
	if len(s.TopByCost) > 0 {
		doc.Table(materialTopTable(s.TopByCost))
	} else {
		doc.Paragraph(noDataPlaceholder, b.styles.Body)
	}
	doc.Spacer(5)

	doc.Paragraph("▶ 재료 원가율", b.styles.Body)
	doc.Paragraph(fmt.Sprintf("이번달 원가율: %s\n전월 동기간 원가율: %s\n증감: %s",
		fmtPercent(s.CurrentCostRate.Float()),
		fmtPercent(s.PrevCostRate.Float()),
		fmtSignedPP(s.CostRateDiff.Float())), b.styles.Body)
	doc.Spacer(5)

	doc.Paragraph("▶ 재고 위험 알림", b.styles.Body)
	doc.Paragraph(fmt.Sprintf("재고 부족: %s개 재료\n유통기한 임박: %s개 재료",
		fmtInt(s.LowStockCount.Float()),
		fmtInt(s.ExpireSoonCount.Float())), b.styles.Body)
	doc.Spacer(8)
}

// RenderMaterial lays out the material analytics report: info block,
// summary cards (top-5 rankings, cost rate, stock risk), a page break,
// then the daily or monthly usage table. Unlike the other reports an
// empty row set renders the placeholder line instead of a blank row.
func (b *Builders) RenderMaterial(p api.MaterialPayload) ([]byte, error) {
	view := domain.ParseViewMode(p.ViewBy)

	doc := render.NewDoc(b.styles)
	doc.Paragraph("재료 분석 리포트", b.styles.Title)
	doc.Spacer(3)
	doc.Paragraph(fmt.Sprintf("점포: %s\n기간: %s / 기준: %s\n생성일시: %s",
		p.StoreName, p.PeriodLabel, view.Label(), p.GeneratedAt), b.styles.Body)
	doc.Spacer(5)

	b.materialSummary(doc, p.Summary)
	doc.PageBreak()

	if view == domain.ViewMonthly {
		doc.Paragraph("월별 재료 사용 내역", b.styles.SectionHeader)
		doc.Spacer(3)
		if len(p.MonthlyRows) == 0 {
			doc.Paragraph(noDataPlaceholder, b.styles.Body)
		} else {
			doc.Table(materialMonthlyTable(p.MonthlyRows))
		}
	} else {
		doc.Paragraph("일별 재료 사용 내역", b.styles.SectionHeader)
		doc.Spacer(3)
		if len(p.DailyRows) == 0 {
			doc.Paragraph(noDataPlaceholder, b.styles.Body)
		} else {
			doc.Table(materialDailyTable(p.DailyRows))
		}
	}

	return doc.Output()
}
