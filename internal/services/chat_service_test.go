package services

import (
	"errors"
	"testing"

	"hotelbot/internal/chatbot"
	"hotelbot/internal/domain"
	"hotelbot/internal/domain/models"
	"hotelbot/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func chatServiceWith(t *testing.T) (ChatService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	mock.MatchExpectationsInOrder(false)

	return ChatService{
		Sessions: repositories.SessionRepo{DB: db},
		Messages: repositories.MessageRepo{DB: db},
		Rooms:    repositories.RoomRepo{DB: db},
		DB:       db,
	}, mock
}

func expectTurnPersistence(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema\\.tables").WithArgs("chat_sessions").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("chat_sessions"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("chat_booking_intents").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("chat_booking_intents"))
	mock.ExpectExec("INSERT INTO chat_booking_intents").
		WillReturnResult(sqlmock.NewResult(1, 1))

	for i := 0; i < 2; i++ {
		mock.ExpectQuery("information_schema\\.tables").WithArgs("chat_messages").
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("chat_messages"))
		mock.ExpectExec("INSERT INTO chat_messages").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
}

func TestHandleMessageGuestCountTurn(t *testing.T) {
	svc, mock := chatServiceWith(t)

	mock.ExpectQuery("FROM chat_booking_intents").WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"check_in_date", "check_out_date", "number_of_guests",
			"room_type_preference", "budget_max", "location", "special_requests",
			"booking_status", "suggested_rooms", "selected_room_id",
		}))
	expectTurnPersistence(mock)

	reply, err := svc.HandleMessage("sess-1", "2 guests")
	if err != nil {
		t.Fatalf("turn error: %v", err)
	}
	if reply.Intent != chatbot.IntentGeneralInquiry {
		t.Fatalf("intent = %q", reply.Intent)
	}
	if reply.Entities.Guests == nil || *reply.Entities.Guests != 2 {
		t.Fatalf("entities = %+v", reply.Entities)
	}
	if reply.Response != chatbot.Template(chatbot.TplAskDates) {
		t.Fatalf("response = %q", reply.Response)
	}
	if reply.BookingStatus != models.StatusCollectingInfo {
		t.Fatalf("status = %q", reply.BookingStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHandleMessageSearchTurn(t *testing.T) {
	svc, mock := chatServiceWith(t)
	svc.SearchRooms = func(bi models.BookingIntent) ([]models.Room, error) {
		if bi.Guests != 2 || bi.CheckInDate != "December 25" {
			t.Fatalf("search saw wrong intent: %+v", bi)
		}
		return []models.Room{{ID: 1, Number: "101", TypeName: "Double", MaxOccupancy: 2, PricePerNight: 10000, TotalCost: 20000}}, nil
	}

	mock.ExpectQuery("FROM chat_booking_intents").WithArgs("sess-2").
		WillReturnRows(sqlmock.NewRows([]string{
			"check_in_date", "check_out_date", "number_of_guests",
			"room_type_preference", "budget_max", "location", "special_requests",
			"booking_status", "suggested_rooms", "selected_room_id",
		}).AddRow("December 25", "December 27", 2, nil, nil, nil, nil,
			models.StatusCollectingInfo, nil, nil))
	expectTurnPersistence(mock)

	reply, err := svc.HandleMessage("sess-2", "I want to book a room")
	if err != nil {
		t.Fatalf("turn error: %v", err)
	}
	if !reply.BookingReady || len(reply.SuggestedRooms) != 1 {
		t.Fatalf("reply = %+v", reply)
	}
	if reply.BookingStatus != models.StatusShowingOptions {
		t.Fatalf("status = %q", reply.BookingStatus)
	}
}

func TestHandleMessageStoreDownStillAnswers(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	db.Close()

	svc := ChatService{
		Sessions: repositories.SessionRepo{DB: db},
		Messages: repositories.MessageRepo{DB: db},
		DB:       db,
		SearchRooms: func(models.BookingIntent) ([]models.Room, error) {
			return nil, errors.New("unreachable")
		},
	}

	reply, err := svc.HandleMessage("sess-3", "hello")
	if err != nil {
		t.Fatalf("turn should degrade, got error: %v", err)
	}
	if reply.Response != chatbot.Template(chatbot.TplGreeting) {
		t.Fatalf("response = %q", reply.Response)
	}
	if reply.BookingStatus != models.StatusCollectingInfo {
		t.Fatalf("status = %q", reply.BookingStatus)
	}
}

func TestHandleMessageValidation(t *testing.T) {
	svc := ChatService{}
	if _, err := svc.HandleMessage("", "hello"); !domain.IsValidation(err) {
		t.Fatalf("empty session: %v", err)
	}
	if _, err := svc.HandleMessage("sess", "   "); !domain.IsValidation(err) {
		t.Fatalf("blank message: %v", err)
	}
}
