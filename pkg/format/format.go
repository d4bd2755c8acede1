// Package format renders values the way Brazilian customers expect to read them.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is day/month/year.
const DateLayout = "02/01/2006"

// BRL formats an amount as Brazilian reais, e.g. "R$ 1.234,50".
func BRL(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return fmt.Sprintf("%sR$ %s,%s", sign, groupThousands(intPart), fracPart)
}

// Date formats a calendar date as dd/mm/yyyy.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// Duration formats a service duration in minutes, e.g. "30 min".
func Duration(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
