package service

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"rental-notification-service/internal/domain"
	"rental-notification-service/internal/template"
)

// BuildVariables collects every placeholder value available to quick connect
// templates. now supplies the current date fields.
func BuildVariables(req domain.QuickConnectRequest, now time.Time) template.Variables {
	tenant := req.PrimaryTenant
	owner := req.PropertyOwner

	vars := template.Variables{
		"tenantName":      tenant.Name,
		"tenantEmail":     tenant.Email,
		"tenantPhone":     tenant.Phone,
		"propertyName":    req.Property.Name,
		"propertyAddress": req.Property.Address,
		"rentAmount":      formatNumber(req.TotalRentAmount.Float64()),
		"dueDate":         formatDate(req.DueDate),
		"ownerName":       owner.Name,
		"ownerEmail":      owner.Email,
		"ownerPhone":      owner.Phone,
		"leaseTerm":       tenant.LeaseTerm,
		"leaseStartDate":  formatDate(tenant.LeaseStartDate),
		"leaseEndDate":    "",
		"currentDate":     now.Format(domain.DisplayDate),
		"currentMonth":    now.Month().String(),
		"currentYear":     strconv.Itoa(now.Year()),
	}

	if start, ok := domain.ParseDate(tenant.LeaseStartDate); ok {
		vars["leaseEndDate"] = LeaseEndDate(start, tenant.LeaseTerm).Format(domain.DisplayDate)
	}
	return vars
}

// LeaseEndDate adds term to start. A term ending in "y" counts years, any
// other suffix counts months; the amount is the leading integer of term.
// Month arithmetic clamps to the last day of the target month.
func LeaseEndDate(start time.Time, term string) time.Time {
	term = strings.TrimSpace(term)
	amount := leadingInt(term)
	if strings.HasSuffix(strings.ToLower(term), "y") {
		return addMonths(start, amount*12)
	}
	return addMonths(start, amount)
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func leadingInt(s string) int {
	end := 0
	for i, r := range s {
		if unicode.IsDigit(r) || (i == 0 && (r == '-' || r == '+')) {
			end = i + 1
			continue
		}
		break
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// formatDate renders s as a display date, passing through anything it
// cannot parse.
func formatDate(s string) string {
	if t, ok := domain.ParseDate(s); ok {
		return t.Format(domain.DisplayDate)
	}
	return s
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
