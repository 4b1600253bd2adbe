package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"rental-notification-service/internal/domain"
	"rental-notification-service/internal/invoicechart"

	"github.com/spf13/cobra"
)

var views = map[string]func([]*domain.InvoiceRecord) invoicechart.ChartData{
	"category": invoicechart.ByCategory,
	"month":    invoicechart.ByMonth,
	"timeline": invoicechart.Timeline,
}

func newRootCmd() *cobra.Command {
	var (
		input  string
		view   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "invoicecharts",
		Short: "Render invoice records as chart datasets",
		Long: `Reads a JSON array of invoice records and prints chart-ready datasets.

Views:
  category  line item frequency per category
  month     collected payments and tax per start month
  timeline  one series per invoice holding its duration in days`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			build, ok := views[view]
			if !ok {
				return fmt.Errorf("unknown view %q (want category, month or timeline)", view)
			}

			var r io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				r = f
			}

			records, err := invoicechart.DecodeRecords(r)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(build(records))
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "invoice JSON file, - for stdin")
	cmd.Flags().StringVarP(&view, "view", "v", "month", "chart view: category, month or timeline")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output")

	return cmd
}
