package models

// Room is one result row from the FindRoomsForChatBooking procedure.
type Room struct {
	ID            int64    `json:"room_id"`
	Number        string   `json:"room_number"`
	PricePerNight float64  `json:"price_per_night"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	TypeName      string   `json:"type_name"`
	MaxOccupancy  int      `json:"max_occupancy"`
	Amenities     []string `json:"amenities"`
	TotalCost     float64  `json:"total_cost"`
}

// CustomerDetails completes a booking started in chat.
type CustomerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
