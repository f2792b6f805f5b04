package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"hotelbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func roomColumns() []string {
	return []string{
		"room_id", "room_number", "price_per_night", "description",
		"image_url", "room_type_name", "max_occupancy", "amenities", "total_cost",
	}
}

func TestFindRoomsScansProcedureRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	budget := 20000.0
	mock.ExpectQuery("CALL FindRoomsForChatBooking").
		WithArgs("December 25", "December 27", 2, budget).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(1, "101", 12000.0, "Garden view", nil, "Deluxe", 2, `["WiFi","AC"]`, 24000.0).
			AddRow(2, "202", 18000.0, nil, "img/202.jpg", "Suite", 4, nil, 36000.0))

	rooms, err := RoomRepo{DB: db}.FindRooms(context.Background(), "December 25", "December 27", 2, &budget)
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("got %d rooms", len(rooms))
	}
	first := rooms[0]
	if first.Number != "101" || first.TypeName != "Deluxe" || first.TotalCost != 24000 {
		t.Fatalf("first room wrong: %+v", first)
	}
	if len(first.Amenities) != 2 || first.Amenities[0] != "WiFi" {
		t.Fatalf("amenities wrong: %v", first.Amenities)
	}
	if len(rooms[1].Amenities) != 0 {
		t.Fatalf("null amenities should decode empty, got %v", rooms[1].Amenities)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindRoomsEmptyResultIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("CALL FindRoomsForChatBooking").
		WillReturnRows(sqlmock.NewRows(roomColumns()))

	rooms, err := RoomRepo{DB: db}.FindRooms(context.Background(), "December 25", "December 27", 2, nil)
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if rooms == nil || len(rooms) != 0 {
		t.Fatalf("want empty slice, got %v", rooms)
	}
}

func TestFindRoomsQueryFailureIsUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("CALL FindRoomsForChatBooking").
		WillReturnError(errors.New("gone away"))

	_, err = RoomRepo{DB: db}.FindRooms(context.Background(), "December 25", "December 27", 2, nil)
	if !domain.IsUnavailable(err) {
		t.Fatalf("want UnavailableError, got %v", err)
	}
}

func TestDecodeAmenitiesBadJSON(t *testing.T) {
	got := decodeAmenities(nullString("{broken"))
	if len(got) != 0 {
		t.Fatalf("bad payload should decode empty, got %v", got)
	}
}
