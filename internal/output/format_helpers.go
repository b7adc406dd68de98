package output

import (
	"strconv"
	"strings"

	"github.com/ecomet/investor-dashboard/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter renders USD amounts with locale digit grouping.
// The zero value formats for American English.
type CurrencyFormatter struct {
	p *message.Printer
}

// NewCurrencyFormatter creates a formatter for the given locale.
func NewCurrencyFormatter(tag language.Tag) CurrencyFormatter {
	return CurrencyFormatter{p: message.NewPrinter(tag)}
}

var defaultCurrency = NewCurrencyFormatter(language.AmericanEnglish)

func (cf CurrencyFormatter) printer() *message.Printer {
	if cf.p == nil {
		return defaultCurrency.p
	}
	return cf.p
}

// Format renders a as "$1,234.50" or "-$1,234.50"; unavailable renders as
// money.Placeholder.
func (cf CurrencyFormatter) Format(a money.Amount) string {
	d, ok := a.Decimal()
	if !ok {
		return money.Placeholder
	}
	return cf.FormatDecimal(d)
}

// FormatDecimal renders a decimal currency value. Only the whole part goes
// through the locale printer, so cents stay exact at any magnitude.
func (cf CurrencyFormatter) FormatDecimal(d decimal.Decimal) string {
	d = d.Round(2)
	fixed := d.Abs().StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	whole, cents := fixed[:dot], fixed[dot+1:]
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = cf.printer().Sprintf("%v", number.Decimal(n))
	}
	s := "$" + whole + cf.decimalMark() + cents
	if d.IsNegative() {
		return "-" + s
	}
	return s
}

// decimalMark returns the locale's decimal separator.
func (cf CurrencyFormatter) decimalMark() string {
	r := []rune(cf.printer().Sprintf("%v", number.Decimal(1.5, number.Scale(1))))
	if len(r) < 3 {
		return "."
	}
	return string(r[1 : len(r)-1])
}

// FormatThousands renders an axis-style short value such as "$18k".
func (cf CurrencyFormatter) FormatThousands(a money.Amount) string {
	d, ok := a.Decimal()
	if !ok {
		return money.Placeholder
	}
	k := d.Div(decimal.NewFromInt(1000)).Round(0)
	return "$" + cf.printer().Sprintf("%v", number.Decimal(k.IntPart())) + "k"
}

// FormatCurrency formats an amount as American English USD.
func FormatCurrency(a money.Amount) string { return defaultCurrency.Format(a) }

// FormatPercent formats a percentage value with 2 decimals, e.g. "12.38%".
func FormatPercent(a money.Amount) string {
	d, ok := a.Decimal()
	if !ok {
		return money.Placeholder
	}
	return d.StringFixed(2) + "%"
}

// FormatCount renders a unit count as a plain integer.
func FormatCount(a money.Amount) string {
	if n, ok := a.Int(); ok {
		return strconv.FormatInt(n, 10)
	}
	return a.String()
}

func intToString(i int) string { return strconv.Itoa(i) }
