package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
)

// formatCurrency renders a money amount as $x.xx.
func formatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// formatDate renders a timestamp the way the storefront always has.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

// shortID truncates backend ids for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// newTable returns a tabwriter configured for plain aligned columns.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// notify prints a one-line user-facing notice, the CLI's stand-in for the
// transient notification banner.
func notify(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
