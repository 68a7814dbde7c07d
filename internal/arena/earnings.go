package arena

import "fmt"

// earningsScale converts raw earnings (smallest currency unit) to WLDD:
// one WLDD is 1_000_000 raw units. This factor is fixed by the backend and
// must not drift.
const earningsScale = 1_000_000

// EarningsCurrency is the display suffix for formatted earnings.
const EarningsCurrency = "WLDD"

// NoEarningsMarker is rendered when an attempt has not earned anything yet.
const NoEarningsMarker = "not earned yet"

// FormatEarnings renders a raw earnings value as a decimal WLDD amount with
// two fractional digits, rounding half up. A nil value means "not earned
// yet". The arithmetic stays in int64 so values far beyond 2^53 raw units
// render exactly.
func FormatEarnings(raw *int64) string {
	if raw == nil {
		return NoEarningsMarker
	}

	value := *raw
	negative := value < 0
	if negative {
		value = -value
	}

	// Round to hundredths of a WLDD: one cent is earningsScale/100 raw units.
	const rawPerCent = earningsScale / 100
	cents := value / rawPerCent
	if value%rawPerCent >= rawPerCent/2 {
		cents++
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, EarningsCurrency)
}
