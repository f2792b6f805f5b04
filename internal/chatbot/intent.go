package chatbot

import (
	"hotelbot/internal/domain/models"
	"hotelbot/internal/utils"
)

// Intent labels, live chat mode.
const (
	IntentGreeting       = "greeting"
	IntentBookingRequest = "booking_request"
	IntentRoomInquiry    = "room_inquiry"
	IntentDateInquiry    = "date_inquiry"
	IntentGuestInquiry   = "guest_inquiry"
	IntentRequestDetails = "request_details"
	IntentConfirmation   = "confirmation"
	IntentOutOfScope     = "out_of_scope"
	IntentEmergency      = "emergency"
	IntentGeneralInquiry = "general_inquiry"
)

// Intent labels only produced in dataset-labeling mode. The two modes share
// some labels but are deliberately separate rule tables.
const (
	IntentHotelSearch           = "hotel_search"
	IntentProvideDates          = "provide_dates"
	IntentGreetingResponse      = "greeting_response"
	IntentOfferAssistance       = "offer_assistance"
	IntentBookingSummary        = "booking_summary"
	IntentHotelSuggestion       = "hotel_suggestion"
	IntentRequestBookingDetails = "request_booking_details"
	IntentInformationResponse   = "information_response"
)

// intentRule fires when any keyword appears in the text; when alsoAny is
// non-empty one of those must appear as well.
type intentRule struct {
	label    string
	keywords []string
	alsoAny  []string
}

// chatModeRules is evaluated top to bottom; the first hit wins, so order is
// part of the contract. Booking requests outrank greetings: "Hi, I need a
// hotel" is a request, not small talk.
var chatModeRules = []intentRule{
	{label: IntentBookingRequest, keywords: []string{"book", "reservation", "reserve", "need a room", "need a hotel", "looking for a room", "looking for a hotel"}},
	{label: IntentGreeting, keywords: []string{"hello", "hi", "hey", "good morning", "good evening"}},
	{label: IntentRoomInquiry, keywords: []string{"room", "rooms", "available", "availability"}},
	{label: IntentDateInquiry, keywords: []string{"check-in", "check in", "check-out", "check out", "dates"}},
	{label: IntentGuestInquiry, keywords: []string{"how many guests", "how many people", "how many"}},
	{label: IntentRequestDetails, keywords: []string{"details", "more info", "tell me more", "about"}},
	{label: IntentConfirmation, keywords: []string{"yes", "sure", "ok", "okay", "proceed", "confirm"}},
	{label: IntentOutOfScope, keywords: []string{"weather", "restaurant", "flight", "transport", "directions"}},
	{label: IntentEmergency, keywords: []string{"complaint", "problem", "issue", "emergency", "urgent"}},
}

var datasetUserRules = []intentRule{
	{label: IntentBookingRequest, keywords: []string{"book", "reserve", "want to book"}},
	{label: IntentHotelSearch, keywords: []string{"need", "looking for", "find"}},
	{label: IntentGreeting, keywords: []string{"hello", "hi", "hey"}},
	{label: IntentRequestDetails, keywords: []string{"tell me more", "details", "about"}},
	{label: IntentConfirmation, keywords: []string{"yes", "sure", "ok", "proceed"}},
	{label: IntentProvideDates, keywords: []string{"check-in", "check-out"}},
}

var datasetAssistantRules = []intentRule{
	{label: IntentGreetingResponse, keywords: []string{"hello", "welcome"}},
	{label: IntentOfferAssistance, keywords: []string{"would you like"}},
	{label: IntentBookingSummary, keywords: []string{"booking summary"}},
	{label: IntentHotelSuggestion, keywords: []string{"hotel", "options", "available"}},
	{label: IntentRequestBookingDetails, keywords: []string{"need"}, alsoAny: []string{"name", "email", "phone"}},
}

// ClassifyChatIntent labels one live user message. Pure and deterministic.
func ClassifyChatIntent(text string) string {
	return classify(text, chatModeRules, IntentGeneralInquiry)
}

// ClassifyDatasetIntent labels a message for offline dataset processing,
// with separate rule tables per role.
func ClassifyDatasetIntent(text, role string) string {
	if role == models.RoleAssistant {
		return classify(text, datasetAssistantRules, IntentInformationResponse)
	}
	return classify(text, datasetUserRules, IntentGeneralInquiry)
}

func classify(text string, rules []intentRule, fallback string) string {
	for _, rule := range rules {
		if !utils.ContainsAny(text, rule.keywords) {
			continue
		}
		if len(rule.alsoAny) > 0 && !utils.ContainsAny(text, rule.alsoAny) {
			continue
		}
		return rule.label
	}
	return fallback
}
