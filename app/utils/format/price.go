package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var dollars = &accounting.Accounting{
	Symbol:    "$",
	Precision: 2,
	Thousand:  ",",
	Decimal:   ".",
}

// Price renders an amount as dollars, e.g. "$1,234.50". Unsupported types and
// unparsable strings render as "$0.00".
func Price(amount interface{}) string {
	var d decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v != nil {
			d = *v
		}
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err == nil {
			d = parsed
		}
	}
	return dollars.FormatMoneyDecimal(d)
}

// ParsePrice parses a form value into a price rounded to cents.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Round(2), nil
}
