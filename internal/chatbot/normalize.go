package chatbot

import (
	"regexp"

	"hotelbot/internal/utils"
)

var (
	reEuro    = regexp.MustCompile(`€\s*(\d+)`)
	reDollar  = regexp.MustCompile(`\$\s*(\d+)`)
	reRupee   = regexp.MustCompile(`(?i)\bRs\.?\s*(\d+)`)
	reOrdinal = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)
)

// CleanMessage normalizes raw text before extraction and classification:
// collapsed whitespace, currency symbols rewritten to three-letter codes,
// ordinal suffixes stripped from day numbers.
func CleanMessage(message string) string {
	s := utils.NormalizeSpace(message)
	s = reEuro.ReplaceAllString(s, "EUR $1")
	s = reDollar.ReplaceAllString(s, "USD $1")
	s = reRupee.ReplaceAllString(s, "LKR $1")
	s = reOrdinal.ReplaceAllString(s, "$1")
	return s
}
