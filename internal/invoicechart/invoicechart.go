// Package invoicechart turns invoice records into chart-ready datasets.
package invoicechart

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"rental-notification-service/internal/domain"
)

const (
	UnknownItem  = "Unknown Item"
	UnknownMonth = "Unknown"
)

type Dataset struct {
	Label string  `json:"label"`
	Data  []Value `json:"data"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Value is a chart point. Invalid values render as null so sparse series
// leave gaps.
type Value struct {
	Number float64
	Valid  bool
}

func Num(f float64) Value { return Value{Number: f, Valid: true} }

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Number)
}

// ByCategory counts line items per category label.
func ByCategory(records []*domain.InvoiceRecord) ChartData {
	labels := newLabelIndex()
	counts := []Value{}

	for _, r := range compact(records) {
		for _, item := range r.LineItems {
			label := strings.TrimSpace(item.Category.Label)
			if label == "" {
				label = UnknownItem
			}
			i, added := labels.add(label)
			if added {
				counts = append(counts, Num(0))
			}
			counts[i].Number++
		}
	}

	return ChartData{
		Labels:   labels.labels,
		Datasets: []Dataset{{Label: "Frequency", Data: counts}},
	}
}

// ByMonth sums collected payments and tax per start month.
func ByMonth(records []*domain.InvoiceRecord) ChartData {
	labels := newLabelIndex()
	collected := []Value{}
	tax := []Value{}

	for _, r := range compact(records) {
		i, added := labels.add(monthLabel(r.StartDate))
		if added {
			collected = append(collected, Num(0))
			tax = append(tax, Num(0))
		}
		total := totalPayment(r)
		collected[i].Number += total
		tax[i].Number += round2(total * r.TaxRate.Float64() / 100)
	}

	return ChartData{
		Labels: labels.labels,
		Datasets: []Dataset{
			{Label: "Collected", Data: collected},
			{Label: "Tax", Data: tax},
		},
	}
}

// Timeline gives every invoice its own series holding its duration in days
// at its start month and null everywhere else.
func Timeline(records []*domain.InvoiceRecord) ChartData {
	rs := compact(records)
	labels := newLabelIndex()
	slots := make([]int, len(rs))
	for n, r := range rs {
		slots[n], _ = labels.add(monthLabel(r.StartDate))
	}

	datasets := make([]Dataset, 0, len(rs))
	for n, r := range rs {
		data := make([]Value, len(labels.labels))
		data[slots[n]] = Num(durationDays(r.StartDate, r.EndDate))
		datasets = append(datasets, Dataset{
			Label: fmt.Sprintf("Invoice %d", n+1),
			Data:  data,
		})
	}

	return ChartData{Labels: labels.labels, Datasets: datasets}
}

type labelIndex struct {
	labels []string
	pos    map[string]int
}

func newLabelIndex() *labelIndex {
	return &labelIndex{labels: []string{}, pos: map[string]int{}}
}

func (l *labelIndex) add(label string) (int, bool) {
	if i, ok := l.pos[label]; ok {
		return i, false
	}
	l.pos[label] = len(l.labels)
	l.labels = append(l.labels, label)
	return len(l.labels) - 1, true
}

func compact(records []*domain.InvoiceRecord) []*domain.InvoiceRecord {
	out := make([]*domain.InvoiceRecord, 0, len(records))
	for _, r := range records {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func totalPayment(r *domain.InvoiceRecord) float64 {
	var total float64
	for _, item := range r.LineItems {
		total += item.Payment.Float64()
	}
	return total
}

func monthLabel(s string) string {
	t, ok := domain.ParseDate(s)
	if !ok {
		return UnknownMonth
	}
	return t.Month().String()
}

func durationDays(start, end string) float64 {
	s, ok := domain.ParseDate(start)
	if !ok {
		return 0
	}
	e, ok := domain.ParseDate(end)
	if !ok {
		return 0
	}
	return math.Ceil(e.Sub(s).Hours() / 24)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
