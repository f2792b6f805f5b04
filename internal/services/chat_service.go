package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hotelbot/internal/chatbot"
	intconfig "hotelbot/internal/config"
	"hotelbot/internal/domain"
	"hotelbot/internal/domain/models"
	"hotelbot/internal/repositories"
	"hotelbot/internal/utils"
)

const roomSearchTimeout = 5 * time.Second

// ChatReply is the per-turn output handed to the transport layer.
type ChatReply struct {
	SessionID           string           `json:"session_id"`
	Response            string           `json:"response"`
	Intent              string           `json:"intent"`
	Entities            models.EntitySet `json:"entities"`
	BookingStatus       string           `json:"booking_status"`
	SuggestedRooms      []models.Room    `json:"suggested_rooms,omitempty"`
	BookingReady        bool             `json:"booking_ready"`
	NeedsBookingDetails bool             `json:"needs_booking_details"`
}

// ChatService runs the per-turn pipeline: normalize, extract, classify,
// merge, decide, render, persist. Collaborator failures degrade the turn
// instead of failing it; the caller serializes turns per session.
type ChatService struct {
	Sessions  repositories.SessionRepo
	Messages  repositories.MessageRepo
	Rooms     repositories.RoomRepo
	DB        *sql.DB
	RequestID string

	// SearchRooms overrides the repo-backed search, mainly for tests.
	SearchRooms chatbot.RoomSearchFunc
}

func (s ChatService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ChatService) sessions() repositories.SessionRepo {
	if s.Sessions.DB != nil {
		return s.Sessions
	}
	return repositories.SessionRepo{DB: s.db()}
}

func (s ChatService) messages() repositories.MessageRepo {
	if s.Messages.DB != nil {
		return s.Messages
	}
	return repositories.MessageRepo{DB: s.db()}
}

func (s ChatService) rooms() repositories.RoomRepo {
	if s.Rooms.DB != nil {
		return s.Rooms
	}
	return repositories.RoomRepo{DB: s.db()}
}

// OpenSession creates a store-backed session, falling back to a local id
// when the store is unreachable so the turn can still be answered.
func (s ChatService) OpenSession(userID *int64) string {
	sessionID, err := s.sessions().CreateSession(userID)
	if err != nil {
		utils.LogEvent(s.RequestID, "chat", "create_session_fallback", err.Error())
		return repositories.NewSessionID()
	}
	return sessionID
}

// HandleMessage processes one inbound user message and returns the reply.
func (s ChatService) HandleMessage(sessionID, message string) (ChatReply, error) {
	if sessionID == "" {
		return ChatReply{}, domain.ValidationError{Field: "session_id", Msg: "required"}
	}
	if utils.TrimOrEmpty(message) == "" {
		return ChatReply{}, domain.ValidationError{Field: "message", Msg: "required"}
	}

	clean := chatbot.CleanMessage(message)
	entities := chatbot.ExtractEntities(clean)
	intent := chatbot.ClassifyChatIntent(clean)

	bi, err := s.sessions().LoadIntent(sessionID)
	if err != nil {
		// Malformed stored payload: keep what decoded, continue. Anything
		// else: the store is down, answer from a fresh in-memory intent.
		if domain.IsMalformed(err) {
			utils.LogEvent(s.RequestID, "chat", "intent_decode", err.Error())
		} else {
			utils.LogEvent(s.RequestID, "chat", "intent_load_fallback", err.Error())
			bi = models.NewBookingIntent(sessionID)
		}
	}

	bi = chatbot.MergeEntities(bi, entities)

	policy := chatbot.Policy{SearchRooms: s.searchFunc()}
	result, bi := policy.Decide(intent, bi)

	if err := s.sessions().SaveIntent(bi); err != nil {
		utils.LogEvent(s.RequestID, "chat", "intent_save_failed", err.Error())
	}
	if err := s.messages().Append(sessionID, models.RoleUser, clean, intent, entities); err != nil {
		utils.LogEvent(s.RequestID, "chat", "log_user_failed", err.Error())
	}
	if err := s.messages().Append(sessionID, models.RoleAssistant, result.Response, "response", models.EntitySet{}); err != nil {
		utils.LogEvent(s.RequestID, "chat", "log_reply_failed", err.Error())
	}

	return ChatReply{
		SessionID:           sessionID,
		Response:            result.Response,
		Intent:              intent,
		Entities:            entities,
		BookingStatus:       bi.Status,
		SuggestedRooms:      result.SuggestedRooms,
		BookingReady:        result.BookingReady,
		NeedsBookingDetails: result.NeedsBookingDetails,
	}, nil
}

// SessionHistory returns a session's logged messages in order.
func (s ChatService) SessionHistory(sessionID string) ([]models.Message, error) {
	if sessionID == "" {
		return nil, domain.ValidationError{Field: "session_id", Msg: "required"}
	}
	return s.messages().ListBySession(sessionID)
}

// SessionStatus exposes the current accumulated intent for a session.
func (s ChatService) SessionStatus(sessionID string) (models.BookingIntent, error) {
	if sessionID == "" {
		return models.BookingIntent{}, domain.ValidationError{Field: "session_id", Msg: "required"}
	}
	bi, err := s.sessions().LoadIntent(sessionID)
	if err != nil && !domain.IsMalformed(err) {
		return models.BookingIntent{}, err
	}
	return bi, nil
}

func (s ChatService) searchFunc() chatbot.RoomSearchFunc {
	if s.SearchRooms != nil {
		return s.SearchRooms
	}
	repo := s.rooms()
	return func(bi models.BookingIntent) ([]models.Room, error) {
		ctx, cancel := context.WithTimeout(context.Background(), roomSearchTimeout)
		defer cancel()
		rooms, err := repo.FindRooms(ctx, bi.CheckInDate, bi.CheckOutDate, bi.Guests, bi.BudgetMax)
		if err != nil {
			utils.LogEvent(s.RequestID, "chat", "room_search_degraded",
				fmt.Sprintf("session=%s err=%v", bi.SessionID, err))
			return nil, err
		}
		return rooms, nil
	}
}
