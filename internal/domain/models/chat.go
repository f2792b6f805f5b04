package models

// Message roles as stored in chat_messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// PriceMention is a price seen in text without a budget qualifier. Only the
// dataset processor records these; the live extractor ignores them.
type PriceMention struct {
	Currency string `json:"currency"`
	Amount   int    `json:"amount"`
}

// EntitySet holds fields extracted from one message. Absence is meaningful:
// nil/empty fields never overwrite accumulated state.
type EntitySet struct {
	Dates     []string      `json:"dates,omitempty"`
	Guests    *int          `json:"guests,omitempty"`
	RoomType  string        `json:"room_type,omitempty"`
	BudgetMax *float64      `json:"budget_max,omitempty"`
	Location  string        `json:"location,omitempty"`
	Price     *PriceMention `json:"price,omitempty"`
}

// IsEmpty reports whether no entity was extracted at all.
func (e EntitySet) IsEmpty() bool {
	return len(e.Dates) == 0 && e.Guests == nil && e.RoomType == "" &&
		e.BudgetMax == nil && e.Location == "" && e.Price == nil
}

// Message is one turn half inside a conversation, immutable once created.
type Message struct {
	Role     string    `json:"role"`
	Content  string    `json:"content"`
	Intent   string    `json:"intent"`
	Entities EntitySet `json:"entities"`
	Position int       `json:"timestamp"`
}

// Conversation owns its messages; the dataset processor walks it to derive
// training pairs.
type Conversation struct {
	ID       string    `json:"conversation_id"`
	Messages []Message `json:"messages"`
}

// TrainingExample is one (user message, next assistant message) pair with a
// short context window, exported to JSON and CSV.
type TrainingExample struct {
	Input          string    `json:"input"`
	Output         string    `json:"output"`
	Context        string    `json:"context"`
	Intent         string    `json:"intent"`
	Entities       EntitySet `json:"entities"`
	ConversationID string    `json:"conversation_id"`
}
