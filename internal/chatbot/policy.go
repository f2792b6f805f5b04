package chatbot

import "hotelbot/internal/domain/models"

// RoomSearchFunc is the room inventory collaborator. An error degrades the
// turn to the no-availability reply; it never propagates to the user.
type RoomSearchFunc func(intent models.BookingIntent) ([]models.Room, error)

// TurnResult is what one processed turn hands back to the transport.
type TurnResult struct {
	Response            string
	SuggestedRooms      []models.Room
	BookingReady        bool
	NeedsBookingDetails bool
}

// Policy maps (intent label, accumulated booking intent) to a reply and the
// next state. It holds no state of its own.
type Policy struct {
	SearchRooms RoomSearchFunc
}

var statusRank = map[string]int{
	models.StatusCollectingInfo: 0,
	models.StatusShowingOptions: 1,
	models.StatusReadyToBook:    2,
	models.StatusCompleted:      3,
	models.StatusCancelled:      3,
}

// advance moves status forward only; no rule ever moves it backward.
func advance(current, target string) string {
	if statusRank[target] > statusRank[current] {
		return target
	}
	return current
}

// Decide produces the reply for one turn and the updated booking intent.
func (p Policy) Decide(intent string, bi models.BookingIntent) (TurnResult, models.BookingIntent) {
	var out TurnResult

	switch intent {
	case IntentGreeting:
		out.Response = Template(TplGreeting)

	case IntentBookingRequest, IntentRoomInquiry:
		switch {
		case !bi.HasDates():
			out.Response = Template(TplBookingInquiry)
		case bi.Guests == 0:
			out.Response = Template(TplGuestRequest)
		default:
			rooms := p.search(bi)
			out.Response = FormatRoomSuggestions(rooms)
			if len(rooms) > 0 {
				out.SuggestedRooms = rooms
				out.BookingReady = true
				bi.SuggestedRooms = rooms
				bi.Status = advance(bi.Status, models.StatusShowingOptions)
			}
		}

	case IntentDateInquiry:
		out.Response = Template(TplDateRequest)

	case IntentGuestInquiry:
		out.Response = Template(TplGuestRequest)

	case IntentConfirmation:
		if bi.Status == models.StatusShowingOptions {
			bi.Status = advance(bi.Status, models.StatusReadyToBook)
			out.NeedsBookingDetails = true
			out.Response = Template(TplBookingDetails)
			break
		}
		// Confirmation without options on the table means nothing to
		// confirm; fall back to collecting the missing fields.
		out.Response = p.defaultGuidance(bi)

	case IntentOutOfScope:
		out.Response = Template(TplOutOfScope)

	case IntentEmergency:
		out.Response = Template(TplEmergency)

	default:
		out.Response = p.defaultGuidance(bi)
	}

	return out, bi
}

func (p Policy) defaultGuidance(bi models.BookingIntent) string {
	switch {
	case bi.CheckInDate == "" || bi.CheckOutDate == "":
		return Template(TplAskDates)
	case bi.Guests == 0:
		return Template(TplAskGuests)
	default:
		return Template(TplGenericHelp)
	}
}

func (p Policy) search(bi models.BookingIntent) []models.Room {
	if p.SearchRooms == nil || !bi.ReadyForSearch() {
		return nil
	}
	rooms, err := p.SearchRooms(bi)
	if err != nil {
		return nil
	}
	if len(rooms) > maxRoomBlocks {
		rooms = rooms[:maxRoomBlocks]
	}
	return rooms
}
