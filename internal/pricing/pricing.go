// Package pricing computes and formats the order total of a food details screen.
package pricing

import (
	"fmt"
	"strings"

	"github.com/guttosm/food-details-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Total returns (price + Σ extra.value × extra.quantity) × quantity.
// Quantities below their floors are not clamped here; the screen state owns the invariants.
func Total(price decimal.Decimal, extras []model.Extra, quantity int) decimal.Decimal {
	return UnitTotal(price, extras).Mul(decimal.NewFromInt(int64(quantity)))
}

// UnitTotal returns the price of one composed item: the food plus its selected extras.
func UnitTotal(price decimal.Decimal, extras []model.Extra) decimal.Decimal {
	sum := price
	for _, e := range extras {
		sum = sum.Add(e.Subtotal())
	}
	return sum
}

// Formatter renders monetary amounts for a locale and currency.
type Formatter struct {
	printer   *message.Printer
	unit      currency.Unit
	scale     int
	separator string
}

// NewFormatter creates a Formatter from a BCP 47 locale ("pt-BR") and an ISO 4217
// currency code ("BRL").
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	printer := message.NewPrinter(tag)
	sample := printer.Sprint(number.Decimal(1.5, number.Scale(1)))

	return &Formatter{
		printer:   printer,
		unit:      unit,
		scale:     scale,
		separator: strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5"),
	}, nil
}

// MustFormatter is like NewFormatter but panics on invalid input.
func MustFormatter(locale, code string) *Formatter {
	f, err := NewFormatter(locale, code)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders the amount with the currency symbol and the locale's separators,
// e.g. "R$ 32,00" for pt-BR/BRL.
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(int32(f.scale))
	return f.printer.Sprintf("%v %s", currency.Symbol(f.unit), f.digits(rounded))
}

// digits renders an amount already rounded to the currency scale. The whole part
// goes through the locale's grouping as an int64 and the fraction is copied from
// the decimal, so no digit passes through a float. Whole parts beyond int64 fall
// back to float formatting.
func (f *Formatter) digits(rounded decimal.Decimal) string {
	abs := rounded.Abs()
	whole := abs.Truncate(0).BigInt()
	if !whole.IsInt64() {
		return f.printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(f.scale)))
	}

	out := f.printer.Sprint(number.Decimal(whole.Int64()))
	if f.scale > 0 {
		fixed := abs.StringFixed(int32(f.scale))
		out += f.separator + fixed[len(fixed)-f.scale:]
	}
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// Currency returns the ISO code the formatter renders.
func (f *Formatter) Currency() string {
	return f.unit.String()
}
