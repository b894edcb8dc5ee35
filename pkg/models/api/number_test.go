package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "integer", input: `123456`, expected: 123456},
		{name: "float", input: `1.5`, expected: 1.5},
		{name: "null", input: `null`, expected: 0},
		{name: "numeric string", input: `"12000"`, expected: 12000},
		{name: "grouped numeric string", input: `"12,000"`, expected: 12000},
		{name: "garbage string", input: `"n/a"`, expected: 0},
		{name: "boolean", input: `true`, expected: 0},
		{name: "object", input: `{"v":1}`, expected: 0},
		{name: "negative", input: `-42.5`, expected: -42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tt.input), &n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.Float())
		})
	}
}

func TestNumberInStruct(t *testing.T) {
	var row KpiRow
	err := json.Unmarshal([]byte(`{"date":"2024-01-01","sales":"oops","upt":1.5}`), &row)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", row.Date)
	assert.Equal(t, 0.0, row.Sales.Float())
	assert.Equal(t, 1.5, row.UPT.Float())
}

func TestKpiRowDecodesComparisonFields(t *testing.T) {
	var row KpiRow
	err := json.Unmarshal([]byte(
		`{"date":"2024-01-01","compMoM":1.2,"compYoY":-3.4,"ratioVisit":50,"ratioTakeout":30,"ratioDelivery":20}`), &row)
	require.NoError(t, err)

	assert.Equal(t, 1.2, row.CompMoM.Float())
	assert.Equal(t, -3.4, row.CompYoY.Float())
	assert.Equal(t, 50.0, row.RatioVisit.Float())
	assert.Equal(t, 30.0, row.RatioTakeout.Float())
	assert.Equal(t, 20.0, row.RatioDelivery.Float())
}

func TestOrdersRowDecodesBothViewShapes(t *testing.T) {
	var row OrdersRow
	err := json.Unmarshal([]byte(
		`{"orderDate":"2024-01-04","orderId":7,"orderCountMonth":12}`), &row)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-04", row.OrderDate)
	assert.Equal(t, int64(7), row.OrderID.Int())
	assert.Equal(t, int64(12), row.OrderCountMonth.Int())
}

func TestNumberInt(t *testing.T) {
	assert.Equal(t, int64(1), Number(1.9).Int())
	assert.Equal(t, int64(-1), Number(-1.9).Int())
}
