package chatbot

import (
	"testing"

	"hotelbot/internal/domain/models"
)

func TestClassifyChatIntent(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Hi, I need a hotel in Berlin for 2 nights", IntentBookingRequest},
		{"Hello!", IntentGreeting},
		{"good morning", IntentGreeting},
		{"I want to book a room", IntentBookingRequest},
		{"what rooms are available?", IntentRoomInquiry},
		{"Check-in December 25, check-out December 27", IntentDateInquiry},
		{"how many guests can stay?", IntentGuestInquiry},
		{"2 guests", IntentGeneralInquiry},
		{"tell me more", IntentRequestDetails},
		{"yes, proceed", IntentConfirmation},
		{"what's the weather like?", IntentOutOfScope},
		{"I have an urgent complaint", IntentEmergency},
		{"blue", IntentGeneralInquiry},
	}
	for _, tc := range cases {
		if got := ClassifyChatIntent(tc.text); got != tc.want {
			t.Fatalf("%q: intent = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyDatasetIntentUser(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Hi, I need a hotel in Berlin for 2 nights", IntentHotelSearch},
		{"I want to book it", IntentBookingRequest},
		{"hey there", IntentGreeting},
		{"tell me more about the Grand Hotel", IntentRequestDetails},
		{"sure, go ahead", IntentConfirmation},
		{"Check-in December 25, check-out December 27", IntentProvideDates},
		{"blue", IntentGeneralInquiry},
	}
	for _, tc := range cases {
		if got := ClassifyDatasetIntent(tc.text, models.RoleUser); got != tc.want {
			t.Fatalf("%q: intent = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyDatasetIntentAssistant(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Hello! Welcome to Gold Palm Hotel", IntentGreetingResponse},
		{"Would you like more details?", IntentOfferAssistance},
		{"Here is your booking summary", IntentBookingSummary},
		{"I have several hotel options for you", IntentHotelSuggestion},
		{"To complete the booking I'll need your name and email", IntentRequestBookingDetails},
		{"The pool opens at 7.", IntentInformationResponse},
	}
	for _, tc := range cases {
		if got := ClassifyDatasetIntent(tc.text, models.RoleAssistant); got != tc.want {
			t.Fatalf("%q: intent = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	text := "I want to book a double room"
	first := ClassifyChatIntent(text)
	for i := 0; i < 10; i++ {
		if got := ClassifyChatIntent(text); got != first {
			t.Fatalf("classification changed between runs: %q vs %q", first, got)
		}
	}
}
