package domain

import "strings"

var orderTypeLabels = map[string]string{
	"VISIT":    "매장",
	"TAKEOUT":  "포장",
	"DELIVERY": "배달",
}

var paymentTypeLabels = map[string]string{
	"CARD":     "카드",
	"CASH":     "현금",
	"VOUCHER":  "상품권",
	"EXTERNAL": "외부 결제",
}

// weekdayNames is indexed 1..7, Monday first.
var weekdayNames = [...]string{"월", "화", "수", "목", "금", "토", "일"}

// OrderTypeLabel maps an order type code to its Korean label. Unknown codes
// pass through unchanged; an empty code renders as a dash.
func OrderTypeLabel(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if label, ok := orderTypeLabels[code]; ok {
		return label
	}
	if code == "" {
		return "-"
	}
	return code
}

// PaymentTypeLabel maps a payment type code to its Korean label, with the
// same passthrough rule as OrderTypeLabel.
func PaymentTypeLabel(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if label, ok := paymentTypeLabels[code]; ok {
		return label
	}
	if code == "" {
		return "-"
	}
	return code
}

// WeekdayName returns the Korean weekday name for a 1..7 index (Monday
// first); out-of-range indexes render as a dash.
func WeekdayName(idx int) string {
	if idx < 1 || idx > 7 {
		return "-"
	}
	return weekdayNames[idx-1]
}
