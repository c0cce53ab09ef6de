package market

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dukerupert/mercado/internal/model"
)

// timestampLayout matches how pt-BR browsers print a date and time.
const timestampLayout = "02/01/2006, 15:04:05"

// FormatCurrency renders v in Brazilian reais, e.g. "R$ 1.234,50".
func FormatCurrency(v float64) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return "R$ " + p.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}

// FormatTimestamp renders t in loc using the pt-BR date order.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(timestampLayout)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// ExportText renders a list as plain text for the clipboard. There is no
// parser for this format.
func ExportText(list model.List, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lista: %s\n", list.Name)
	fmt.Fprintf(&b, "Criada em: %s\n", FormatTimestamp(list.CreatedAt, loc))
	b.WriteString("\nItens:\n")

	for i, it := range list.Items {
		fmt.Fprintf(&b, "%d. %s - %s %s", i+1, it.Name, formatQuantity(it.Quantity), it.Unit)
		if it.UnitPrice > 0 {
			fmt.Fprintf(&b, " | Preço: %s", decimal.NewFromFloatWithExponent(it.UnitPrice, -2).StringFixed(2))
		}
		if it.Acquired {
			b.WriteString(" | PEG0")
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nTotal: %s", FormatCurrency(Total(list.Items)))
	return b.String()
}
