// Package format renders amounts, dates and status values for the dashboard.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"loandesk/internal/platform/config"
	pstrings "loandesk/pkg/platform/strings"
)

const placeholder = "-"

// Formatter formats values for one locale and currency.
type Formatter struct {
	printer  *message.Printer
	symbol   string
	location *time.Location
}

// New builds a Formatter from the locale configuration. Unknown languages fall
// back to Spanish and unknown currencies to GTQ.
func New(cfg config.Locale) *Formatter {
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		tag = language.MustParse("es-GT")
	}
	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		unit = currency.MustParseISO("GTQ")
	}
	p := message.NewPrinter(tag)
	return &Formatter{
		printer:  p,
		symbol:   p.Sprint(currency.NarrowSymbol(unit)),
		location: time.Local,
	}
}

// WithLocation returns a copy that renders timestamps in loc.
func (f *Formatter) WithLocation(loc *time.Location) *Formatter {
	out := *f
	out.location = loc
	return &out
}

// Currency renders an amount with the currency symbol and two decimals. Digits
// come from the decimal itself; only the separators follow the locale.
func (f *Formatter) Currency(amount decimal.Decimal) string {
	digits := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", strings.TrimPrefix(digits, "-")
	}
	whole, frac, _ := strings.Cut(digits, ".")
	group, point := f.separators()
	return sign + f.symbol + groupThousands(whole, group) + point + frac
}

// separators reads the grouping and decimal marks the printer's locale uses.
func (f *Formatter) separators() (group, point string) {
	group, point = ",", "."
	if s := []rune(f.printer.Sprint(number.Decimal(1000))); len(s) == 5 {
		group = string(s[1])
	}
	if s := []rune(f.printer.Sprint(number.Decimal(1.5, number.Scale(1)))); len(s) == 3 {
		point = string(s[1])
	}
	return group, point
}

func groupThousands(whole, sep string) string {
	if len(whole) <= 3 {
		return whole
	}
	var b strings.Builder
	head := len(whole) % 3
	if head > 0 {
		b.WriteString(whole[:head])
	}
	for i := head; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}

// CurrencyPtr renders "-" for a missing amount.
func (f *Formatter) CurrencyPtr(amount *decimal.Decimal) string {
	if amount == nil {
		return placeholder
	}
	return f.Currency(*amount)
}

// Amount renders the "Q 150.00" form used in toast descriptions.
func Amount(amount decimal.Decimal) string {
	return "Q " + amount.StringFixed(2)
}

// Percent renders an interest rate as "12.50%", or "-" when missing.
func Percent(rate *decimal.Decimal) string {
	if rate == nil {
		return placeholder
	}
	return rate.StringFixed(2) + "%"
}

// Text renders "-" for a missing or blank string.
func Text(s *string) string {
	if strings.TrimSpace(pstrings.Deref(s)) == "" {
		return placeholder
	}
	return *s
}
