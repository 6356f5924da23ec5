package http

import (
	"fmt"
	"strconv"

	"kharcha/internal/core"
)

// formatRupees renders an amount like ₹1234.56 for templates.
func formatRupees(m core.Money) string {
	p := m.Paise
	neg := p < 0
	if neg {
		p = -p
	}
	s := strconv.FormatInt(p/100, 10) + "." + fmt.Sprintf("%02d", p%100)
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}
