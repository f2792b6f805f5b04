package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"

	intconfig "hotelbot/internal/config"
	intdb "hotelbot/internal/db"
	"hotelbot/internal/domain"
	"hotelbot/internal/domain/models"
)

// MessageRepo is the conversation log collaborator.
type MessageRepo struct {
	DB *sql.DB
}

func (r MessageRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Append records one turn half with its intent label and extracted entities.
func (r MessageRepo) Append(sessionID, role, content, intent string, entities models.EntitySet) error {
	db := r.db()
	if db == nil {
		return domain.UnavailableError{Collaborator: "conversation log"}
	}
	if err := r.ensureTable(); err != nil {
		return domain.UnavailableError{Collaborator: "conversation log", Err: err}
	}

	raw, err := json.Marshal(entities)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if _, err := db.Exec(`
		INSERT INTO chat_messages (session_id, message_role, content, intent, entities)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, role, content, intent, string(raw)); err != nil {
		return domain.UnavailableError{Collaborator: "conversation log", Err: err}
	}
	return nil
}

// ListBySession returns a session's messages in insertion order. Entities
// that no longer decode come back empty rather than failing the whole read.
func (r MessageRepo) ListBySession(sessionID string) ([]models.Message, error) {
	db := r.db()
	if db == nil {
		return nil, domain.UnavailableError{Collaborator: "conversation log"}
	}

	rows, err := db.Query(`
		SELECT message_role, content, intent, entities
		FROM chat_messages
		WHERE session_id = ?
		ORDER BY id ASC
	`, sessionID)
	if err != nil {
		return nil, domain.UnavailableError{Collaborator: "conversation log", Err: err}
	}
	defer rows.Close()

	return scanMessages(rows)
}

// ListConversations groups all logged messages by session, ordered within
// each conversation. Used by the dataset exporter.
func (r MessageRepo) ListConversations() ([]models.Conversation, error) {
	db := r.db()
	if db == nil {
		return nil, domain.UnavailableError{Collaborator: "conversation log"}
	}

	rows, err := db.Query(`
		SELECT session_id, message_role, content, intent, entities
		FROM chat_messages
		ORDER BY session_id ASC, id ASC
	`)
	if err != nil {
		return nil, domain.UnavailableError{Collaborator: "conversation log", Err: err}
	}
	defer rows.Close()

	var (
		out     []models.Conversation
		current *models.Conversation
	)
	for rows.Next() {
		var (
			sessionID, role, content, intent string
			entitiesJSON                     sql.NullString
		)
		if err := rows.Scan(&sessionID, &role, &content, &intent, &entitiesJSON); err != nil {
			return nil, domain.UnavailableError{Collaborator: "conversation log", Err: err}
		}
		if current == nil || current.ID != sessionID {
			out = append(out, models.Conversation{ID: sessionID})
			current = &out[len(out)-1]
		}
		current.Messages = append(current.Messages, models.Message{
			Role:     role,
			Content:  content,
			Intent:   intent,
			Entities: decodeEntities(entitiesJSON),
			Position: len(current.Messages),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, domain.UnavailableError{Collaborator: "conversation log", Err: err}
	}
	return out, nil
}

func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	var out []models.Message
	for rows.Next() {
		var (
			role, content, intent string
			entitiesJSON          sql.NullString
		)
		if err := rows.Scan(&role, &content, &intent, &entitiesJSON); err != nil {
			return nil, domain.UnavailableError{Collaborator: "conversation log", Err: err}
		}
		out = append(out, models.Message{
			Role:     role,
			Content:  content,
			Intent:   intent,
			Entities: decodeEntities(entitiesJSON),
			Position: len(out),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, domain.UnavailableError{Collaborator: "conversation log", Err: err}
	}
	return out, nil
}

func decodeEntities(raw sql.NullString) models.EntitySet {
	var e models.EntitySet
	if raw.Valid && raw.String != "" {
		_ = json.Unmarshal([]byte(raw.String), &e)
	}
	return e
}

func (r MessageRepo) ensureTable() error {
	db := r.db()
	if db == nil {
		return errors.New("db not available")
	}
	if intdb.HasTable(db, "chat_messages") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS chat_messages (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	session_id VARCHAR(64) NOT NULL,
	message_role VARCHAR(20) NOT NULL,
	content TEXT NOT NULL,
	intent VARCHAR(50) NOT NULL,
	entities JSON NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_session (session_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}
