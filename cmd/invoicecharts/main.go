// Command invoicecharts prints chart datasets for a JSON file of invoices.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("invoicecharts failed")
		os.Exit(1)
	}
}
