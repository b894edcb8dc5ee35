// Package api holds the wire-level request payloads for the report
// endpoints. Field names mirror the JSON the analytics backend sends;
// numeric fields use Number so malformed values degrade to zero instead
// of rejecting the payload.
package api

// ReportCriteria is the shared criteria block of the KPI, orders and
// menu payloads. All fields are optional on the wire.
type ReportCriteria struct {
	StoreName   string `json:"storeName"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	PeriodLabel string `json:"periodLabel"`
	ViewBy      string `json:"viewBy"`
	GeneratedAt string `json:"generatedAt"`
}

type KpiRow struct {
	Date        string `json:"date"`
	StoreName   string `json:"storeName"`
	Sales       Number `json:"sales"`
	Transaction Number `json:"transaction"`
	UPT         Number `json:"upt"`
	ADS         Number `json:"ads"`
	AUR         Number `json:"aur"`

	// Comparison and channel-mix fields are accepted but not rendered.
	CompMoM       Number `json:"compMoM"`
	CompYoY       Number `json:"compYoY"`
	RatioVisit    Number `json:"ratioVisit"`
	RatioTakeout  Number `json:"ratioTakeout"`
	RatioDelivery Number `json:"ratioDelivery"`
}

type KpiPayload struct {
	Criteria ReportCriteria `json:"criteria"`
	Data     []KpiRow       `json:"data"`
}

// OrdersRow carries both view shapes. The daily view fills the order
// unit fields, the monthly view the aggregate ones; unused fields stay
// zero. Daily rows key on date with orderDate as the fallback.
type OrdersRow struct {
	Date      string `json:"date"`
	OrderDate string `json:"orderDate"`
	YearMonth string `json:"yearMonth"`

	OrderID     Number `json:"orderId"`
	OrderType   string `json:"orderType"`
	OrderCount  Number `json:"orderCount"`
	TotalPrice  Number `json:"totalPrice"`
	MenuCount   Number `json:"menuCount"`
	PaymentType string `json:"paymentType"`
	ChannelMemo string `json:"channelMemo"`

	TotalSales     Number `json:"totalSales"`
	AvgOrderAmount Number `json:"avgOrderAmount"`
	DeliverySales  Number `json:"deliverySales"`
	TakeoutSales   Number `json:"takeoutSales"`
	VisitSales     Number `json:"visitSales"`

	// OrderCountMonth is accepted but not rendered; the monthly table
	// reads orderCount.
	OrderCountMonth Number `json:"orderCountMonth"`
}

type OrdersPayload struct {
	Criteria ReportCriteria `json:"criteria"`
	Data     []OrdersRow    `json:"data"`
}

type MenuRow struct {
	Date       string `json:"date"`
	StoreName  string `json:"storeName"`
	Category   string `json:"category"`
	Menu       string `json:"menu"`
	Quantity   Number `json:"quantity"`
	Sales      Number `json:"sales"`
	OrderCount Number `json:"orderCount"`
}

type MenuPayload struct {
	Criteria ReportCriteria `json:"criteria"`
	Data     []MenuRow      `json:"data"`
}

// TimeDaySummary feeds the summary callout. The hour and weekday markers
// are pointers so an absent value is distinguishable from zero.
type TimeDaySummary struct {
	PeakHour         *Number `json:"peakHour"`
	PeakHourSales    Number  `json:"peakHourSales"`
	OffpeakHour      *Number `json:"offpeakHour"`
	OffpeakHourSales Number  `json:"offpeakHourSales"`
	TopWeekday       *Number `json:"topWeekday"`
	TopWeekdaySales  Number  `json:"topWeekdaySales"`
	WeekdaySales     Number  `json:"weekdaySales"`
	WeekendSales     Number  `json:"weekendSales"`
}

// TimeHourlyPoint and WeekdaySalesPoint are accepted for wire
// compatibility but not rendered.
type TimeHourlyPoint struct {
	Hour           Number `json:"hour"`
	Sales          Number `json:"sales"`
	Orders         Number `json:"orders"`
	VisitOrders    Number `json:"visitOrders"`
	TakeoutOrders  Number `json:"takeoutOrders"`
	DeliveryOrders Number `json:"deliveryOrders"`
}

type WeekdaySalesPoint struct {
	Weekday Number `json:"weekday"`
	Sales   Number `json:"sales"`
	Orders  Number `json:"orders"`
}

// TimeDayRow is shared by the daily and monthly tables; daily rows key
// on orderDate, monthly rows on yearMonth.
type TimeDayRow struct {
	OrderDate     string `json:"orderDate"`
	YearMonth     string `json:"yearMonth"`
	Weekday       Number `json:"weekday"`
	Hour          Number `json:"hour"`
	OrderCount    Number `json:"orderCount"`
	Sales         Number `json:"sales"`
	VisitCount    Number `json:"visitCount"`
	TakeoutCount  Number `json:"takeoutCount"`
	DeliveryCount Number `json:"deliveryCount"`
	VisitRate     Number `json:"visitRate"`
	TakeoutRate   Number `json:"takeoutRate"`
	DeliveryRate  Number `json:"deliveryRate"`
}

type TimeDayPayload struct {
	StoreID       Number              `json:"storeId"`
	StoreName     string              `json:"storeName"`
	PeriodLabel   string              `json:"periodLabel"`
	Summary       TimeDaySummary      `json:"summary"`
	HourlyPoints  []TimeHourlyPoint   `json:"hourlyPoints"`
	WeekdayPoints []WeekdaySalesPoint `json:"weekdayPoints"`
	ViewBy        string              `json:"viewBy"`
	DailyRows     []TimeDayRow        `json:"dailyRows"`
	MonthlyRows   []TimeDayRow        `json:"monthlyRows"`
	GeneratedAt   string              `json:"generatedAt"`
}

type MaterialTopItem struct {
	MaterialID   Number `json:"materialId"`
	MaterialName string `json:"materialName"`
	UnitName     string `json:"unitName"`
	UsedQuantity Number `json:"usedQuantity"`
	Cost         Number `json:"cost"`
}

type MaterialSummary struct {
	TopByUsage      []MaterialTopItem `json:"topByUsage"`
	TopByCost       []MaterialTopItem `json:"topByCost"`
	CurrentCostRate Number            `json:"currentCostRate"`
	PrevCostRate    Number            `json:"prevCostRate"`
	CostRateDiff    Number            `json:"costRateDiff"`
	LowStockCount   Number            `json:"lowStockCount"`
	ExpireSoonCount Number            `json:"expireSoonCount"`
}

type MaterialDailyRow struct {
	UseDate         string `json:"useDate"`
	MaterialName    string `json:"materialName"`
	UsedQuantity    Number `json:"usedQuantity"`
	UnitName        string `json:"unitName"`
	Cost            Number `json:"cost"`
	SalesShare      Number `json:"salesShare"`
	LastInboundDate string `json:"lastInboundDate"`
}

type MaterialMonthlyRow struct {
	YearMonth        string `json:"yearMonth"`
	MaterialName     string `json:"materialName"`
	UsedQuantity     Number `json:"usedQuantity"`
	Cost             Number `json:"cost"`
	CostRate         Number `json:"costRate"`
	LastInboundMonth string `json:"lastInboundMonth"`
}

type MaterialPayload struct {
	StoreID     Number               `json:"storeId"`
	StoreName   string               `json:"storeName"`
	PeriodLabel string               `json:"periodLabel"`
	Summary     MaterialSummary      `json:"summary"`
	ViewBy      string               `json:"viewBy"`
	DailyRows   []MaterialDailyRow   `json:"dailyRows"`
	MonthlyRows []MaterialMonthlyRow `json:"monthlyRows"`
	GeneratedAt string               `json:"generatedAt"`
}
