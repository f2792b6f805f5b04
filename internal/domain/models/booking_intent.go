package models

// Booking intent lifecycle. Transitions only move forward; terminal states
// are COMPLETED and CANCELLED.
const (
	StatusCollectingInfo = "COLLECTING_INFO"
	StatusShowingOptions = "SHOWING_OPTIONS"
	StatusReadyToBook    = "READY_TO_BOOK"
	StatusCompleted      = "COMPLETED"
	StatusCancelled      = "CANCELLED"
)

// BookingIntent is the accumulated reservation request for one chat session.
// Fields move from unset to set or are replaced by a newer extraction of the
// same kind; a turn never clears them.
type BookingIntent struct {
	SessionID          string   `json:"session_id"`
	CheckInDate        string   `json:"check_in_date,omitempty"`
	CheckOutDate       string   `json:"check_out_date,omitempty"`
	Guests             int      `json:"number_of_guests,omitempty"`
	RoomTypePreference string   `json:"room_type_preference,omitempty"`
	BudgetMax          *float64 `json:"budget_max,omitempty"`
	Location           string   `json:"location,omitempty"`
	SpecialRequests    string   `json:"special_requests,omitempty"`
	Status             string   `json:"booking_status"`
	SuggestedRooms     []Room   `json:"suggested_rooms,omitempty"`
	SelectedRoomID     *int64   `json:"selected_room_id,omitempty"`
}

// NewBookingIntent returns a fresh intent in the collecting state.
func NewBookingIntent(sessionID string) BookingIntent {
	return BookingIntent{
		SessionID: sessionID,
		Status:    StatusCollectingInfo,
	}
}

// HasDates reports whether either stay boundary is known.
func (b BookingIntent) HasDates() bool {
	return b.CheckInDate != "" || b.CheckOutDate != ""
}

// ReadyForSearch reports whether room search has everything it needs.
func (b BookingIntent) ReadyForSearch() bool {
	return b.CheckInDate != "" && b.CheckOutDate != "" && b.Guests > 0
}
