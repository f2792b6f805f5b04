package chatbot

import (
	"reflect"
	"testing"

	"hotelbot/internal/domain/models"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestMergeTwoDatesSetStay(t *testing.T) {
	bi := models.NewBookingIntent("s1")
	bi = MergeEntities(bi, models.EntitySet{Dates: []string{"December 25", "December 27"}})
	if bi.CheckInDate != "December 25" || bi.CheckOutDate != "December 27" {
		t.Fatalf("stay = %q..%q", bi.CheckInDate, bi.CheckOutDate)
	}
}

func TestMergeSingleDateIgnored(t *testing.T) {
	bi := models.NewBookingIntent("s1")
	bi.CheckInDate = "December 25"
	bi.CheckOutDate = "December 27"

	merged := MergeEntities(bi, models.EntitySet{Dates: []string{"January 3"}})
	if merged.CheckInDate != "December 25" || merged.CheckOutDate != "December 27" {
		t.Fatalf("a lone date must not touch the stay, got %q..%q", merged.CheckInDate, merged.CheckOutDate)
	}
}

func TestMergeMonotonic(t *testing.T) {
	bi := models.NewBookingIntent("s1")
	full := models.EntitySet{
		Dates:     []string{"December 25", "December 27"},
		Guests:    intPtr(2),
		RoomType:  "double",
		BudgetMax: floatPtr(15000),
		Location:  "Colombo",
	}
	once := MergeEntities(bi, full)
	again := MergeEntities(once, models.EntitySet{})
	if !reflect.DeepEqual(once, again) {
		t.Fatalf("empty merge changed state:\n%+v\n%+v", once, again)
	}
}

func TestMergeLastWriteWins(t *testing.T) {
	bi := models.NewBookingIntent("s1")
	bi = MergeEntities(bi, models.EntitySet{Guests: intPtr(2), RoomType: "single"})
	bi = MergeEntities(bi, models.EntitySet{Guests: intPtr(4)})
	if bi.Guests != 4 {
		t.Fatalf("guests = %d, want 4", bi.Guests)
	}
	if bi.RoomTypePreference != "single" {
		t.Fatalf("room type cleared: %q", bi.RoomTypePreference)
	}
}

func TestMergeDoesNotTouchStatus(t *testing.T) {
	bi := models.NewBookingIntent("s1")
	bi.Status = models.StatusShowingOptions
	bi = MergeEntities(bi, models.EntitySet{Guests: intPtr(2)})
	if bi.Status != models.StatusShowingOptions {
		t.Fatalf("status = %q", bi.Status)
	}
}
