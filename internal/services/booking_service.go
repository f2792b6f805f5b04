package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "hotelbot/internal/config"
	intdb "hotelbot/internal/db"
	"hotelbot/internal/domain"
	"hotelbot/internal/domain/models"
	"hotelbot/internal/repositories"
	"hotelbot/internal/utils"
)

// BookingService turns a ready chat session into a confirmed booking.
type BookingService struct {
	Sessions  repositories.SessionRepo
	DB        *sql.DB
	RequestID string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) sessions() repositories.SessionRepo {
	if s.Sessions.DB != nil {
		return s.Sessions
	}
	return repositories.SessionRepo{DB: s.db()}
}

// SelectRoom records the room a guest picked from the latest suggestions.
func (s BookingService) SelectRoom(sessionID string, roomID int64) error {
	if sessionID == "" {
		return domain.ValidationError{Field: "session_id", Msg: "required"}
	}
	if roomID <= 0 {
		return domain.ValidationError{Field: "room_id", Msg: "invalid id"}
	}

	bi, err := s.sessions().LoadIntent(sessionID)
	if err != nil && !domain.IsMalformed(err) {
		return err
	}

	found := false
	for _, room := range bi.SuggestedRooms {
		if room.ID == roomID {
			found = true
			break
		}
	}
	if !found {
		return domain.NotFoundError{Resource: "suggested room"}
	}

	bi.SelectedRoomID = &roomID
	if err := s.sessions().SaveIntent(bi); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "select_room",
		fmt.Sprintf("session=%s room_id=%d", sessionID, roomID))
	return nil
}

// ChatBooking is the persisted record of a finalized chat booking.
type ChatBooking struct {
	ID            int64  `json:"id"`
	SessionID     string `json:"session_id"`
	RoomID        int64  `json:"room_id"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	Guests        int    `json:"number_of_guests"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

// Finalize completes the booking for a session. It requires a previously
// selected room; without one the request is rejected, not defaulted.
func (s BookingService) Finalize(sessionID string, details models.CustomerDetails) (ChatBooking, error) {
	if sessionID == "" {
		return ChatBooking{}, domain.ValidationError{Field: "session_id", Msg: "required"}
	}
	if strings.TrimSpace(details.Name) == "" || strings.TrimSpace(details.Email) == "" || strings.TrimSpace(details.Phone) == "" {
		return ChatBooking{}, domain.ValidationError{Field: "customer_details", Msg: "name, email and phone are required"}
	}

	bi, err := s.sessions().LoadIntent(sessionID)
	if err != nil && !domain.IsMalformed(err) {
		return ChatBooking{}, err
	}
	if bi.SelectedRoomID == nil {
		return ChatBooking{}, domain.PreconditionError{Msg: "no room selected for this session"}
	}

	booking := ChatBooking{
		SessionID:     sessionID,
		RoomID:        *bi.SelectedRoomID,
		CheckInDate:   bi.CheckInDate,
		CheckOutDate:  bi.CheckOutDate,
		Guests:        bi.Guests,
		CustomerName:  strings.TrimSpace(details.Name),
		CustomerEmail: strings.TrimSpace(details.Email),
		CustomerPhone: strings.TrimSpace(details.Phone),
	}

	if err := s.ensureBookingTable(); err != nil {
		return ChatBooking{}, domain.InternalError{Err: err}
	}
	res, err := s.db().Exec(`
		INSERT INTO chat_bookings
			(session_id, room_id, check_in_date, check_out_date,
			 number_of_guests, customer_name, customer_email, customer_phone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		booking.SessionID, booking.RoomID,
		intdb.NullIfEmpty(booking.CheckInDate), intdb.NullIfEmpty(booking.CheckOutDate),
		booking.Guests, booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
	)
	if err != nil {
		return ChatBooking{}, domain.UnavailableError{Collaborator: "booking store", Err: err}
	}
	booking.ID, _ = res.LastInsertId()

	bi.Status = models.StatusCompleted
	if err := s.sessions().SaveIntent(bi); err != nil {
		utils.LogEvent(s.RequestID, "booking", "status_save_failed", err.Error())
	}

	utils.LogEvent(s.RequestID, "booking", "finalized",
		fmt.Sprintf("session=%s booking_id=%d", sessionID, booking.ID))
	return booking, nil
}

// GetBooking fetches a finalized booking by id.
func (s BookingService) GetBooking(id int64) (ChatBooking, error) {
	if id <= 0 {
		return ChatBooking{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	db := s.db()
	if db == nil || !intdb.HasTable(db, "chat_bookings") {
		return ChatBooking{}, domain.NotFoundError{Resource: "booking"}
	}

	var (
		b                 ChatBooking
		checkIn, checkOut sql.NullString
	)
	err := db.QueryRow(`
		SELECT id, session_id, room_id, check_in_date, check_out_date,
		       number_of_guests, customer_name, customer_email, customer_phone
		FROM chat_bookings
		WHERE id = ?
		LIMIT 1
	`, id).Scan(
		&b.ID, &b.SessionID, &b.RoomID, &checkIn, &checkOut,
		&b.Guests, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ChatBooking{}, domain.NotFoundError{Resource: "booking"}
		}
		return ChatBooking{}, domain.UnavailableError{Collaborator: "booking store", Err: err}
	}
	b.CheckInDate = checkIn.String
	b.CheckOutDate = checkOut.String
	return b, nil
}

func (s BookingService) ensureBookingTable() error {
	db := s.db()
	if db == nil {
		return errors.New("db not available")
	}
	if intdb.HasTable(db, "chat_bookings") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS chat_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	session_id VARCHAR(64) NOT NULL,
	room_id BIGINT NOT NULL,
	check_in_date VARCHAR(50) NULL,
	check_out_date VARCHAR(50) NULL,
	number_of_guests INT NOT NULL DEFAULT 0,
	customer_name VARCHAR(255) NOT NULL,
	customer_email VARCHAR(255) NOT NULL,
	customer_phone VARCHAR(100) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_session (session_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}
