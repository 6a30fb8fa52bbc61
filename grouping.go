package saynumber

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// GroupDigits groups a numeral in thousands using the grouping separator of
// the given locale, e.g. GroupDigits("1234567", "de") = "1.234.567".
// Only the separator comes from the locale: digits are always grouped by
// three, matching the blocks the number is said in, so locales grouping
// otherwise (hi: 12,34,567) still get 1,234,567.
func GroupDigits(numeral, locale string) (string, error) {
	if numeral == "" || !isDigits(numeral) {
		return "", fmt.Errorf("%w: %q is not a non-negative decimal number", ErrInvalidNumeral, numeral)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, locale, err)
	}
	numeral = trimLeadingZeros(numeral)
	separator := groupSeparator(tag)
	if separator == "" {
		return numeral, nil
	}
	return strings.Join(SplitBlocks(numeral), separator), nil
}

// groupSeparator asks x/text how the locale writes 1000 and keeps everything that is not a digit
func groupSeparator(tag language.Tag) string {
	sample := message.NewPrinter(tag).Sprintf("%d", 1000)
	return strings.TrimFunc(sample, unicode.IsDigit)
}
