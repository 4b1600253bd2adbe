package invoicechart

import (
	"encoding/json"
	"fmt"
	"io"

	"rental-notification-service/internal/domain"

	log "github.com/sirupsen/logrus"
)

// DecodeRecords reads a JSON array of invoice records. A record that does
// not decode is logged and dropped so the rest of the batch still charts;
// only input that is not an array is an error.
func DecodeRecords(r io.Reader) ([]*domain.InvoiceRecord, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}

	records := make([]*domain.InvoiceRecord, 0, len(raw))
	for i, msg := range raw {
		var rec *domain.InvoiceRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			log.WithError(err).WithField("index", i).Warn("Skipping malformed invoice record")
			continue
		}
		if rec != nil {
			records = append(records, rec)
		}
	}
	return records, nil
}
