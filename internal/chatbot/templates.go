package chatbot

// Response template keys.
const (
	TplGreeting       = "greeting"
	TplBookingInquiry = "booking_inquiry"
	TplDateRequest    = "date_request"
	TplGuestRequest   = "guest_count_request"
	TplBookingDetails = "booking_details_request"
	TplOutOfScope     = "out_of_scope"
	TplEmergency      = "emergency"
	TplAskDates       = "ask_dates"
	TplAskGuests      = "ask_guests"
	TplGenericHelp    = "generic_help"
	TplNoAvailability = "no_availability"
	TplServiceTrouble = "service_trouble"
	TplRoomListFooter = "room_list_footer"
)

var templates = map[string]string{
	TplGreeting: "Hello! Welcome to Gold Palm Hotel! I'm here to help you find the perfect room for your stay. How can I assist you today?",

	TplBookingInquiry: "I'd love to help you book a room! To find the perfect accommodation for you, I'll need a few details:\n\n1. Check-in date\n2. Check-out date\n3. Number of guests\n\nCould you please share these details?",

	TplDateRequest: "Please provide your preferred check-in and check-out dates. You can say something like:\n- 'I need a room from December 25 to December 28'\n- 'Check-in: 25 Dec, Check-out: 28 Dec'",

	TplGuestRequest: "How many guests will be staying? This helps me suggest the right room type for you.",

	TplBookingDetails: "Great! I'll help you complete the booking. To proceed, I'll need:\n\n1. Your full name\n2. Email address\n3. Phone number\n\nPlease provide these details to complete your reservation.",

	TplOutOfScope: "I apologize, but I can only assist with hotel booking and room-related inquiries.\n\nFor other matters, our customer care team will contact you soon, or you can call our hotline immediately: 011-4545678\n\nIs there anything about our hotel rooms or booking process I can help you with?",

	TplEmergency: "I understand you need immediate assistance!\n\nFor urgent matters, please call our hotline: 011-4545678\n\nOur customer care team will also contact you as soon as possible.\n\nIf this is a booking-related question, I'm here to help!",

	TplAskDates: "To help you find the perfect room, I'll need your check-in and check-out dates. When would you like to stay?",

	TplAskGuests: "How many guests will be staying?",

	TplGenericHelp: "I'm here to help with your hotel booking! Is there something specific you'd like to know about our rooms or services?",

	TplNoAvailability: "I'm sorry, no rooms are available for your selected dates and requirements. Would you like to try different dates?",

	TplServiceTrouble: "I apologize, but I'm experiencing technical difficulties.\n\nFor immediate assistance, please call our hotline: 011-4545678\n\nOur customer care team will contact you as soon as possible.",

	TplRoomListFooter: "Would you like to book any of these rooms? Just let me know the room number!",
}

// Template returns the canned text for a key, empty when unknown.
func Template(key string) string {
	return templates[key]
}
