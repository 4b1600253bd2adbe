package invoicechart

import (
	"encoding/json"
	"testing"

	"rental-notification-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(label string, payment float64) domain.LineItem {
	return domain.LineItem{
		Payment:       domain.Amount(payment),
		Category:      domain.Category{Label: label},
		PaymentMethod: "card",
	}
}

func TestByCategory(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := ByCategory([]*domain.InvoiceRecord{nil, nil})
		assert.Equal(t, []string{}, got.Labels)
		require.Len(t, got.Datasets, 1)
		assert.Equal(t, "Frequency", got.Datasets[0].Label)
		assert.Empty(t, got.Datasets[0].Data)

		raw, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, `{"labels":[],"datasets":[{"label":"Frequency","data":[]}]}`, string(raw))
	})

	t.Run("counts in first seen order", func(t *testing.T) {
		records := []*domain.InvoiceRecord{
			{LineItems: []domain.LineItem{item("Rent", 1000), item("Water", 30)}},
			nil,
			{LineItems: []domain.LineItem{item("Rent", 1000), item("", 5), item("Water", 25)}},
		}

		got := ByCategory(records)
		assert.Equal(t, []string{"Rent", "Water", UnknownItem}, got.Labels)
		assert.Equal(t, []Value{Num(2), Num(2), Num(1)}, got.Datasets[0].Data)
	})
}

func TestByMonth(t *testing.T) {
	records := []*domain.InvoiceRecord{
		{StartDate: "2025-03-01", TaxRate: 10, LineItems: []domain.LineItem{item("Rent", 1000), item("Water", 33.33)}},
		{StartDate: "2025-04-01", TaxRate: 0, LineItems: []domain.LineItem{item("Rent", 900)}},
		{StartDate: "2025-03-15", TaxRate: 5, LineItems: []domain.LineItem{item("Rent", 200)}},
	}

	got := ByMonth(records)

	assert.Equal(t, []string{"March", "April"}, got.Labels)
	require.Len(t, got.Datasets, 2)
	assert.Equal(t, "Collected", got.Datasets[0].Label)
	assert.Equal(t, "Tax", got.Datasets[1].Label)

	assert.InDelta(t, 1233.33, got.Datasets[0].Data[0].Number, 1e-9)
	assert.InDelta(t, 900, got.Datasets[0].Data[1].Number, 1e-9)
	// 103.33 (rounded from 103.333) + 10
	assert.InDelta(t, 113.33, got.Datasets[1].Data[0].Number, 1e-9)
	assert.InDelta(t, 0, got.Datasets[1].Data[1].Number, 1e-9)
}

func TestByMonthToleratesMalformedRecords(t *testing.T) {
	var records []*domain.InvoiceRecord
	require.NoError(t, json.Unmarshal([]byte(`[
		{"startDate": "2025-01-10", "taxRate": "abc", "lineItems": [{"payment": "oops"}, {"payment": 50}]},
		null,
		{"startDate": "not a date", "lineItems": [{"payment": null}]}
	]`), &records))

	got := ByMonth(records)

	assert.Equal(t, []string{"January", UnknownMonth}, got.Labels)
	assert.Equal(t, []Value{Num(50), Num(0)}, got.Datasets[0].Data)
	assert.Equal(t, []Value{Num(0), Num(0)}, got.Datasets[1].Data)
}

func TestTimeline(t *testing.T) {
	records := []*domain.InvoiceRecord{
		{StartDate: "2025-01-01", EndDate: "2025-01-31"},
		{StartDate: "2025-02-01", EndDate: "2025-02-28"},
		nil,
		{StartDate: "2025-01-15", EndDate: "2025-01-16T12:00:00Z"},
	}

	got := Timeline(records)

	assert.Equal(t, []string{"January", "February"}, got.Labels)
	require.Len(t, got.Datasets, 3)
	assert.Equal(t, Dataset{Label: "Invoice 1", Data: []Value{Num(30), {}}}, got.Datasets[0])
	assert.Equal(t, Dataset{Label: "Invoice 2", Data: []Value{{}, Num(27)}}, got.Datasets[1])
	assert.Equal(t, Dataset{Label: "Invoice 3", Data: []Value{Num(2), {}}}, got.Datasets[2])

	raw, err := json.Marshal(got.Datasets[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Invoice 2","data":[null,27]}`, string(raw))
}

func TestTimelineMissingEndDate(t *testing.T) {
	got := Timeline([]*domain.InvoiceRecord{{StartDate: "2025-06-01"}})
	assert.Equal(t, []string{"June"}, got.Labels)
	assert.Equal(t, []Value{Num(0)}, got.Datasets[0].Data)
}
