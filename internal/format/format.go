// Package format renders prices and dates the way the mini-app frontend does
// (id-ID locale), for use in order event payloads and operator-facing text.
package format

import (
	"strconv"
	"strings"
	"time"
)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// PriceIDR formats a price given in the smallest currency subunit as whole
// rupiah with id-ID digit grouping, e.g. 500000 -> "Rp 5.000".
func PriceIDR(priceInCents int64) string {
	negative := priceInCents < 0
	if negative {
		priceInCents = -priceInCents
	}
	whole := priceInCents / 100
	digits := strconv.FormatInt(whole, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := "Rp " + b.String()
	if negative {
		out = "-" + out
	}
	return out
}

// Date renders a date as "2 Januari 2006".
func Date(t time.Time) string {
	return strconv.Itoa(t.Day()) + " " + monthNames[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
