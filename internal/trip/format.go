package trip

import (
	"strings"
	"time"

	triperrors "go-viagens/internal/trip/errors"

	"github.com/shopspring/decimal"
)

const wireDateLayout = "2006-01-02"
const displayDateLayout = "02/01/2006"

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(wireDateLayout, value)
	if err != nil {
		return time.Time{}, triperrors.ErrInvalidDateFormat
	}
	return t, nil
}

func formatISODate(t time.Time) string {
	return t.Format(wireDateLayout)
}

// formatDate renders the Brazilian DD/MM/YYYY form used on the voucher.
func formatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// formatBRL renders a decimal amount as pt-BR currency, e.g. "R$ 1.234,56".
// Done on the decimal directly so no float rounding can leak into vouchers.
func formatBRL(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := "R$ " + grouped.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
