package rental

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// Reporter writes the confirmation for a successfully added entry
type Reporter struct {
	out      io.Writer
	currency string
}

// NewReporter creates a reporter that prefixes prices with the currency symbol
func NewReporter(out io.Writer, currency string) *Reporter {
	return &Reporter{
		out:      out,
		currency: currency,
	}
}

// Report writes the confirmation block for the entry
func (r *Reporter) Report(entry *RentalEntry) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Car rental entry added successfully!")
	fmt.Fprintf(r.out, "Car ID: %d\n", entry.ID)
	fmt.Fprintf(r.out, "Car Model: %s\n", entry.Model)
	fmt.Fprintf(r.out, "Rental Price: %s\n", FormatPrice(r.currency, entry.DailyPrice))
}

// FormatPrice renders a price with thousands separators and at least one
// fractional digit, e.g. "$25.0" or "$1,250.5".
func FormatPrice(currency string, price float64) string {
	amount := humanize.Commaf(price)
	if !strings.Contains(amount, ".") {
		amount += ".0"
	}
	return currency + amount
}
