package chatbot

import (
	"reflect"
	"testing"
)

func TestExtractDatesLeftToRightOrder(t *testing.T) {
	e := ExtractEntities(CleanMessage("I need a room from December 25th to December 28th"))
	want := []string{"December 25", "December 28"}
	if !reflect.DeepEqual(e.Dates, want) {
		t.Fatalf("dates = %v, want %v", e.Dates, want)
	}
}

func TestExtractDatesFirstPatternWins(t *testing.T) {
	// Numeric pattern matches first; the month-name date must not be merged in.
	e := ExtractEntities("arriving 25/12/2024, maybe December 28")
	want := []string{"25/12/2024"}
	if !reflect.DeepEqual(e.Dates, want) {
		t.Fatalf("dates = %v, want %v", e.Dates, want)
	}
}

func TestExtractGuests(t *testing.T) {
	cases := []struct {
		text string
		want int // 0 means absent
	}{
		{"2 guests", 2},
		{"a room for 3", 3},
		{"4 adults", 4},
		{"for 2 nights", 0},
		{"book me something nice", 0},
	}
	for _, tc := range cases {
		e := ExtractEntities(tc.text)
		if tc.want == 0 {
			if e.Guests != nil {
				t.Fatalf("%q: guests = %d, want absent", tc.text, *e.Guests)
			}
			continue
		}
		if e.Guests == nil || *e.Guests != tc.want {
			t.Fatalf("%q: guests = %v, want %d", tc.text, e.Guests, tc.want)
		}
	}
}

func TestExtractRoomType(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"a double room please", "double"},
		{"something for a couple", "double"},
		{"the presidential suite", "suite"},
		{"a deluxe suite", "deluxe"}, // table order is the tie-break
		{"any room", ""},
	}
	for _, tc := range cases {
		if got := ExtractEntities(tc.text).RoomType; got != tc.want {
			t.Fatalf("%q: room type = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractBudgetRequiresQualifier(t *testing.T) {
	e := ExtractEntities(CleanMessage("somewhere under Rs. 8000 per night"))
	if e.BudgetMax == nil || *e.BudgetMax != 8000 {
		t.Fatalf("budget = %v, want 8000", e.BudgetMax)
	}

	// A bare price is not a ceiling.
	e = ExtractEntities(CleanMessage("the room costs Rs. 8000"))
	if e.BudgetMax != nil {
		t.Fatalf("budget = %v, want absent", *e.BudgetMax)
	}
}

func TestExtractLocation(t *testing.T) {
	if got := ExtractEntities("looking for a hotel in berlin").Location; got != "Berlin" {
		t.Fatalf("location = %q, want Berlin", got)
	}
}

func TestExtractBerlinScenario(t *testing.T) {
	e := ExtractEntities(CleanMessage("Hi, I need a hotel in Berlin for 2 nights"))
	if e.Guests != nil {
		t.Fatalf("guests = %d, want absent (nights are not guests)", *e.Guests)
	}
	if e.Location != "Berlin" {
		t.Fatalf("location = %q, want Berlin", e.Location)
	}
	if len(e.Dates) != 0 {
		t.Fatalf("dates = %v, want none", e.Dates)
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := CleanMessage("Check-in December 25th, check-out December 27th, for 2 guests under €200")
	first := ExtractEntities(text)
	second := ExtractEntities(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction not idempotent: %+v vs %+v", first, second)
	}
}

func TestCleanMessage(t *testing.T) {
	got := CleanMessage("  Check-in   25th Dec,   €120 and $90 and Rs 500 ")
	want := "Check-in 25 Dec, EUR 120 and USD 90 and LKR 500"
	if got != want {
		t.Fatalf("clean = %q, want %q", got, want)
	}
}
