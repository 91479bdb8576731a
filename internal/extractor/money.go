package extractor

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	errNoAmount = errors.New("no amount in text")

	amountPattern = regexp.MustCompile(`[0-9][0-9.,]*`)
)

// parseMoney extracts a numeric amount from localized currency text, e.g.
// "USD 1,299.00", "$ 1.299,00" or "1299 USD". The last dot or comma is
// treated as the decimal separator when it is followed by at most two
// digits; every other dot and comma is a thousands separator.
func parseMoney(text string) (float64, error) {
	match := amountPattern.FindString(text)
	if match == "" {
		return 0, errNoAmount
	}

	match = strings.TrimRight(match, ".,")

	sepPos := -1
	if pos := strings.LastIndexAny(match, ".,"); pos >= 0 {
		if frac := match[pos+1:]; len(frac) <= 2 {
			sepPos = pos
		}
	}

	digits := strings.Builder{}
	for ix := 0; ix < len(match); ix++ {
		switch {
		case match[ix] >= '0' && match[ix] <= '9':
			digits.WriteByte(match[ix])
		case ix == sepPos:
			digits.WriteByte('.')
		}
	}

	amount, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, errNoAmount
	}

	return amount, nil
}
