package chatbot

import (
	"fmt"
	"strings"

	"hotelbot/internal/domain/models"
	"hotelbot/internal/utils"
)

const (
	maxRoomBlocks    = 5
	maxAmenitiesShow = 3
)

// FormatRoomSuggestions renders the suggestion list shown after a search.
// At most five blocks, at most three amenities per block; an empty list
// always yields the canonical no-availability message.
func FormatRoomSuggestions(rooms []models.Room) string {
	if len(rooms) == 0 {
		return Template(TplNoAvailability)
	}
	if len(rooms) > maxRoomBlocks {
		rooms = rooms[:maxRoomBlocks]
	}

	var b strings.Builder
	for i, room := range rooms {
		amenities := room.Amenities
		if len(amenities) > maxAmenitiesShow {
			amenities = amenities[:maxAmenitiesShow]
		}
		fmt.Fprintf(&b, "%d. **%s - Room %s**\n", i+1, room.TypeName, room.Number)
		fmt.Fprintf(&b, "   %s/night (Total: %s)\n",
			utils.FormatLKR(room.PricePerNight), utils.FormatLKR(room.TotalCost))
		fmt.Fprintf(&b, "   Up to %d guests\n", room.MaxOccupancy)
		fmt.Fprintf(&b, "   %s\n\n", strings.Join(amenities, ", "))
	}
	b.WriteString(Template(TplRoomListFooter))
	return b.String()
}
