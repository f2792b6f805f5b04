package chatbot

import "hotelbot/internal/domain/models"

// MergeEntities folds a turn's extraction into the accumulated intent.
// Pure, by value: present fields overwrite (last write wins), absent fields
// never clear prior state. A lone date entry is ignored; it is not treated
// as a check-in without a check-out.
func MergeEntities(intent models.BookingIntent, e models.EntitySet) models.BookingIntent {
	if len(e.Dates) >= 2 {
		intent.CheckInDate = e.Dates[0]
		intent.CheckOutDate = e.Dates[1]
	}
	if e.Guests != nil {
		intent.Guests = *e.Guests
	}
	if e.RoomType != "" {
		intent.RoomTypePreference = e.RoomType
	}
	if e.BudgetMax != nil {
		v := *e.BudgetMax
		intent.BudgetMax = &v
	}
	if e.Location != "" {
		intent.Location = e.Location
	}
	return intent
}
