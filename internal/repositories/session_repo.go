package repositories

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"

	intconfig "hotelbot/internal/config"
	intdb "hotelbot/internal/db"
	"hotelbot/internal/domain"
	"hotelbot/internal/domain/models"
)

// SessionRepo persists chat sessions and their single booking intent.
type SessionRepo struct {
	DB *sql.DB
}

func (r SessionRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// NewSessionID returns a random hex session key.
func NewSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "session-fallback"
	}
	return hex.EncodeToString(buf)
}

// CreateSession registers a new session and its initial collecting-info
// intent. Returns the generated session id.
func (r SessionRepo) CreateSession(userID *int64) (string, error) {
	db := r.db()
	if db == nil {
		return "", domain.UnavailableError{Collaborator: "session store"}
	}
	if err := r.ensureTables(); err != nil {
		return "", domain.UnavailableError{Collaborator: "session store", Err: err}
	}

	sessionID := NewSessionID()
	var uid any
	if userID != nil {
		uid = *userID
	}
	if _, err := db.Exec(`
		INSERT INTO chat_sessions (session_id, user_id, session_status)
		VALUES (?, ?, 'ACTIVE')
	`, sessionID, uid); err != nil {
		return "", domain.UnavailableError{Collaborator: "session store", Err: err}
	}
	if _, err := db.Exec(`
		INSERT INTO chat_booking_intents (session_id, booking_status)
		VALUES (?, ?)
	`, sessionID, models.StatusCollectingInfo); err != nil {
		return "", domain.UnavailableError{Collaborator: "session store", Err: err}
	}
	return sessionID, nil
}

// LoadIntent returns the accumulated intent for a session, or a fresh
// collecting-info intent when none is stored yet. A suggested-rooms payload
// that fails to decode comes back as an empty list alongside a
// MalformedError so the caller can log it.
func (r SessionRepo) LoadIntent(sessionID string) (models.BookingIntent, error) {
	bi := models.NewBookingIntent(sessionID)
	db := r.db()
	if db == nil {
		return bi, domain.UnavailableError{Collaborator: "session store"}
	}

	var (
		checkIn, checkOut, roomType, location, special sql.NullString
		status, suggestedJSON                          sql.NullString
		guests                                         sql.NullInt64
		budget                                         sql.NullFloat64
		selectedRoom                                   sql.NullInt64
	)
	err := db.QueryRow(`
		SELECT check_in_date, check_out_date, number_of_guests,
		       room_type_preference, budget_max, location, special_requests,
		       booking_status, suggested_rooms, selected_room_id
		FROM chat_booking_intents
		WHERE session_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, sessionID).Scan(
		&checkIn, &checkOut, &guests,
		&roomType, &budget, &location, &special,
		&status, &suggestedJSON, &selectedRoom,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bi, nil
		}
		return bi, domain.UnavailableError{Collaborator: "session store", Err: err}
	}

	bi.CheckInDate = checkIn.String
	bi.CheckOutDate = checkOut.String
	bi.Guests = int(guests.Int64)
	bi.RoomTypePreference = roomType.String
	bi.Location = location.String
	bi.SpecialRequests = special.String
	if budget.Valid {
		v := budget.Float64
		bi.BudgetMax = &v
	}
	if status.String != "" {
		bi.Status = status.String
	}
	if selectedRoom.Valid {
		v := selectedRoom.Int64
		bi.SelectedRoomID = &v
	}
	if suggestedJSON.Valid && suggestedJSON.String != "" {
		var rooms []models.Room
		if err := json.Unmarshal([]byte(suggestedJSON.String), &rooms); err != nil {
			return bi, domain.MalformedError{What: "suggested_rooms", Err: err}
		}
		bi.SuggestedRooms = rooms
	}
	return bi, nil
}

// SaveIntent writes the whole intent in one statement so a turn is either
// fully persisted or not at all.
func (r SessionRepo) SaveIntent(bi models.BookingIntent) error {
	db := r.db()
	if db == nil {
		return domain.UnavailableError{Collaborator: "session store"}
	}
	if err := r.ensureTables(); err != nil {
		return domain.UnavailableError{Collaborator: "session store", Err: err}
	}

	var suggestedJSON any
	if len(bi.SuggestedRooms) > 0 {
		raw, err := json.Marshal(bi.SuggestedRooms)
		if err != nil {
			return domain.InternalError{Err: err}
		}
		suggestedJSON = string(raw)
	}
	var budget any
	if bi.BudgetMax != nil {
		budget = *bi.BudgetMax
	}
	var selected any
	if bi.SelectedRoomID != nil {
		selected = *bi.SelectedRoomID
	}

	_, err := db.Exec(`
		INSERT INTO chat_booking_intents
			(session_id, check_in_date, check_out_date, number_of_guests,
			 room_type_preference, budget_max, location, special_requests,
			 booking_status, suggested_rooms, selected_room_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			check_in_date=VALUES(check_in_date),
			check_out_date=VALUES(check_out_date),
			number_of_guests=VALUES(number_of_guests),
			room_type_preference=VALUES(room_type_preference),
			budget_max=VALUES(budget_max),
			location=VALUES(location),
			special_requests=VALUES(special_requests),
			booking_status=VALUES(booking_status),
			suggested_rooms=VALUES(suggested_rooms),
			selected_room_id=VALUES(selected_room_id),
			updated_at=NOW()
	`,
		bi.SessionID,
		intdb.NullIfEmpty(bi.CheckInDate),
		intdb.NullIfEmpty(bi.CheckOutDate),
		bi.Guests,
		intdb.NullIfEmpty(bi.RoomTypePreference),
		budget,
		intdb.NullIfEmpty(bi.Location),
		intdb.NullIfEmpty(bi.SpecialRequests),
		bi.Status,
		suggestedJSON,
		selected,
	)
	if err != nil {
		return domain.UnavailableError{Collaborator: "session store", Err: err}
	}
	return nil
}

func (r SessionRepo) ensureTables() error {
	db := r.db()
	if db == nil {
		return errors.New("db not available")
	}
	if !intdb.HasTable(db, "chat_sessions") {
		ddl := `
CREATE TABLE IF NOT EXISTS chat_sessions (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	session_id VARCHAR(64) NOT NULL,
	user_id BIGINT NULL,
	session_status VARCHAR(20) NOT NULL DEFAULT 'ACTIVE',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_session (session_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	if !intdb.HasTable(db, "chat_booking_intents") {
		ddl := `
CREATE TABLE IF NOT EXISTS chat_booking_intents (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	session_id VARCHAR(64) NOT NULL,
	check_in_date VARCHAR(50) NULL,
	check_out_date VARCHAR(50) NULL,
	number_of_guests INT NULL,
	room_type_preference VARCHAR(50) NULL,
	budget_max DECIMAL(12,2) NULL,
	location VARCHAR(100) NULL,
	special_requests TEXT NULL,
	booking_status VARCHAR(30) NOT NULL DEFAULT 'COLLECTING_INFO',
	suggested_rooms JSON NULL,
	selected_room_id BIGINT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_session (session_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
