package roster

import "strings"

// aircraftTypeMap maps raw manufacturer variant codes to canonical family
// designators for aggregation. Unmapped codes pass through unchanged.
var aircraftTypeMap = map[string]string{
	// 737-700 variants
	"737-700": "B737-700",
	"737-73W": "B737-700",
	"737-73H": "B737-700",
	"737-73R": "B737-700",
	"737-7H4": "B737-700",
	"737-7BD": "B737-700",
	"737-7CT": "B737-700",
	"737-7Q8": "B737-700",
	"737-7L9": "B737-700",
	"737-7V8": "B737-700",
	"737-7A8": "B737-700",
	"737-7U8": "B737-700",
	"737-7X8": "B737-700",
	"737-7R8": "B737-700",
	// 737-800 variants
	"737-800": "B737-800",
	"737-8H4": "B737-800",
	"737-8BK": "B737-800",
	"737-8FH": "B737-800",
	"737-8KN": "B737-800",
	"737-8LY": "B737-800",
	"737-83N": "B737-800",
	"737-838": "B737-800",
	"737-8FE": "B737-800",
	"737-8GP": "B737-800",
	"737-8AS": "B737-800",
	"737-8CT": "B737-800",
	"737-8JP": "B737-800",
	"737-8DC": "B737-800",
	"737-8F2": "B737-800",
	"737-8HX": "B737-800",
	"737-8HG": "B737-800",
	"737-8SH": "B737-800",
	"737-8Q8": "B737-800",
	"737-8FT": "B737-800",
	"737-8AL": "B737-800",
	"737-8EH": "B737-800",
	"737-8CX": "B737-800",
	"737-8K5": "B737-800",
	"737-8EC": "B737-800",
	"737-8RD": "B737-800",
	"737-8D6": "B737-800",
	"737-8FN": "B737-800",
	"737-8SY": "B737-800",
	"737-8HK": "B737-800",
	"737-738": "B737-800",
	// 737 MAX 7 variants
	"737-7M8": "B737-MAX7",
	"737-7T8": "B737-MAX7",
	// 737 MAX 8 variants
	"737-8MX": "B737-MAX8",
	"737-8U8": "B737-MAX8",
	// Legacy models
	"737-300": "B737-300",
	"737-3H4": "B737-300",
	"737-3A4": "B737-300",
	"737-3G7": "B737-300",
	"737-3Q8": "B737-300",
	"737-3K2": "B737-300",
	"737-3T5": "B737-300",
	"737-3L9": "B737-300",
	"737-3Y0": "B737-300",
	"737-3B7": "B737-300",
	"737-317": "B737-300",
	"737-500": "B737-500",
	"737-5H4": "B737-500",
	"737-5Y0": "B737-500",
}

// NormalizeAircraftType maps a raw variant code to its canonical family.
// Lookup misses return the trimmed raw value, blank input returns empty.
func NormalizeAircraftType(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if canonical, ok := aircraftTypeMap[raw]; ok {
		return canonical
	}
	return raw
}
