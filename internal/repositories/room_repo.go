package repositories

import (
	"context"
	"database/sql"
	"encoding/json"

	intconfig "hotelbot/internal/config"
	"hotelbot/internal/domain"
	"hotelbot/internal/domain/models"
)

// RoomRepo wraps the FindRoomsForChatBooking stored procedure so the core
// never depends on the query engine behind room inventory.
type RoomRepo struct {
	DB *sql.DB
}

func (r RoomRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// FindRooms runs the availability procedure. No match is an empty slice,
// not an error; unreachable inventory surfaces as UnavailableError.
func (r RoomRepo) FindRooms(ctx context.Context, checkIn, checkOut string, guests int, budgetMax *float64) ([]models.Room, error) {
	db := r.db()
	if db == nil {
		return nil, domain.UnavailableError{Collaborator: "room search"}
	}

	var budget any
	if budgetMax != nil {
		budget = *budgetMax
	}

	rows, err := db.QueryContext(ctx,
		"CALL FindRoomsForChatBooking(?, ?, ?, ?)",
		checkIn, checkOut, guests, budget,
	)
	if err != nil {
		return nil, domain.UnavailableError{Collaborator: "room search", Err: err}
	}
	defer rows.Close()

	rooms := []models.Room{}
	for rows.Next() {
		var (
			room         models.Room
			description  sql.NullString
			imageURL     sql.NullString
			amenitiesRaw sql.NullString
		)
		if err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.PricePerNight,
			&description,
			&imageURL,
			&room.TypeName,
			&room.MaxOccupancy,
			&amenitiesRaw,
			&room.TotalCost,
		); err != nil {
			return nil, domain.UnavailableError{Collaborator: "room search", Err: err}
		}
		room.Description = description.String
		room.ImageURL = imageURL.String
		room.Amenities = decodeAmenities(amenitiesRaw)
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.UnavailableError{Collaborator: "room search", Err: err}
	}
	return rooms, nil
}

func decodeAmenities(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return []string{}
	}
	return out
}
