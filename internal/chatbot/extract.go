package chatbot

import (
	"regexp"
	"strconv"
	"strings"

	"hotelbot/internal/domain/models"
)

// Date patterns are tried in order; the first one with any match wins and
// all of its matches become the dates sequence. No cross-pattern merging.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`),
	regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}`),
	regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{1,2}`),
	regexp.MustCompile(`(?i)\d{1,2}\s*(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\b`),
}

var (
	reGuestsSuffix = regexp.MustCompile(`(?i)(\d+)\s*(guests|guest|people|persons|person)\b`)
	reGuestsFor    = regexp.MustCompile(`(?i)\bfor\s+(\d+)(?:\s*(nights|night|days|day))?\b`)
	reGuestsAdults = regexp.MustCompile(`(?i)(\d+)\s*(adults|adult)\b`)

	// Budget is only a ceiling when qualified; bare prices are not budgets.
	reBudget = regexp.MustCompile(`(?i)(under|below|less than|maximum|max)\s*(LKR|EUR|USD)\s*(\d+)`)

	// Any priced amount, qualified or not. Only the dataset processor keeps
	// these, as conversation-level budget hints.
	rePrice = regexp.MustCompile(`(?i)(LKR|EUR|USD)\s*(\d+)`)
)

// roomTypeTable maps keywords to a canonical category. Order is the
// tie-break when several categories have a keyword hit.
var roomTypeTable = []struct {
	category string
	keywords []string
}{
	{"single", []string{"single", "one person", "1 person"}},
	{"double", []string{"double", "two people", "2 people", "couple"}},
	{"deluxe", []string{"deluxe", "luxury", "premium"}},
	{"family", []string{"family", "large room"}},
	{"suite", []string{"suite", "presidential", "executive"}},
}

var locationGazetteer = []string{
	"Berlin", "Munich", "Frankfurt", "Rome", "Barcelona", "Paris", "London",
	"Colombo", "Kandy", "Galle",
}

// ExtractEntities pulls booking fields out of normalized text. It never
// fails; fields without a match stay absent.
func ExtractEntities(text string) models.EntitySet {
	var e models.EntitySet

	for _, p := range datePatterns {
		if matches := p.FindAllString(text, -1); len(matches) > 0 {
			e.Dates = matches
			break
		}
	}

	if n, ok := extractGuests(text); ok {
		e.Guests = &n
	}

	lower := strings.ToLower(text)
	for _, rt := range roomTypeTable {
		for _, kw := range rt.keywords {
			if strings.Contains(lower, kw) {
				e.RoomType = rt.category
				break
			}
		}
		if e.RoomType != "" {
			break
		}
	}

	if m := reBudget.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[3], 64); err == nil && v > 0 {
			e.BudgetMax = &v
		}
	}

	for _, city := range locationGazetteer {
		if strings.Contains(lower, strings.ToLower(city)) {
			e.Location = city
			break
		}
	}

	return e
}

// ExtractDatasetEntities adds unqualified price mentions on top of the live
// extraction; the processor folds them into conversation-level booking info.
func ExtractDatasetEntities(text string) models.EntitySet {
	e := ExtractEntities(text)
	if m := rePrice.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[2]); err == nil && v > 0 {
			e.Price = &models.PriceMention{Currency: strings.ToUpper(m[1]), Amount: v}
		}
	}
	return e
}

func extractGuests(text string) (int, bool) {
	if m := reGuestsSuffix.FindStringSubmatch(text); m != nil {
		return parsePositive(m[1])
	}
	// "for 2" counts people, "for 2 nights" counts the stay
	if m := reGuestsFor.FindStringSubmatch(text); m != nil && m[2] == "" {
		return parsePositive(m[1])
	}
	if m := reGuestsAdults.FindStringSubmatch(text); m != nil {
		return parsePositive(m[1])
	}
	return 0, false
}

func parsePositive(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
