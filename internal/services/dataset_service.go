package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hotelbot/internal/chatbot"
	"hotelbot/internal/domain"
	"hotelbot/internal/domain/models"
	"hotelbot/internal/repositories"
	"hotelbot/internal/utils"
)

const contextWindow = 3

// ProcessedConversation is a conversation annotated with dataset-mode
// intents/entities plus the booking info accumulated across its turns.
type ProcessedConversation struct {
	models.Conversation
	BookingInfo models.BookingIntent `json:"booking_info"`
}

// DatasetService turns logged conversations into training pairs and exports
// them as JSON and CSV for downstream analysis.
type DatasetService struct {
	Messages  repositories.MessageRepo
	ExportDir string
	RequestID string
}

// ProcessConversation cleans each message and annotates it with the
// role-aware dataset classifier and the entity extractor.
func (s DatasetService) ProcessConversation(conv models.Conversation) ProcessedConversation {
	out := ProcessedConversation{
		Conversation: models.Conversation{ID: conv.ID},
		BookingInfo:  models.NewBookingIntent(conv.ID),
	}
	for i, msg := range conv.Messages {
		clean := chatbot.CleanMessage(msg.Content)
		entities := chatbot.ExtractDatasetEntities(clean)
		out.Messages = append(out.Messages, models.Message{
			Role:     msg.Role,
			Content:  clean,
			Intent:   chatbot.ClassifyDatasetIntent(clean, msg.Role),
			Entities: entities,
			Position: i,
		})
		out.BookingInfo = chatbot.MergeEntities(out.BookingInfo, entities)
		// A bare price mention counts as a budget hint at conversation level.
		if entities.Price != nil && out.BookingInfo.BudgetMax == nil {
			v := float64(entities.Price.Amount)
			out.BookingInfo.BudgetMax = &v
		}
	}
	return out
}

// BuildTrainingExamples pairs each user message with the following reply.
// Context is the last three prior message texts joined by single spaces.
func BuildTrainingExamples(conv ProcessedConversation) []models.TrainingExample {
	var out []models.TrainingExample
	for i, msg := range conv.Messages {
		if msg.Role != models.RoleUser || i+1 >= len(conv.Messages) {
			continue
		}
		out = append(out, models.TrainingExample{
			Input:          msg.Content,
			Output:         conv.Messages[i+1].Content,
			Context:        contextOf(conv.Messages, i),
			Intent:         msg.Intent,
			Entities:       msg.Entities,
			ConversationID: conv.ID,
		})
	}
	return out
}

func contextOf(messages []models.Message, upTo int) string {
	start := upTo - contextWindow
	if start < 0 {
		start = 0
	}
	parts := make([]string, 0, contextWindow)
	for _, m := range messages[start:upTo] {
		parts = append(parts, m.Content)
	}
	return strings.Join(parts, " ")
}

// ExportResult reports what one export run produced.
type ExportResult struct {
	Examples      int    `json:"examples"`
	Conversations int    `json:"conversations"`
	JSONPath      string `json:"json_path"`
	CSVPath       string `json:"csv_path"`
}

// ExportAll processes every logged conversation and writes the training
// data to JSON and CSV files under ExportDir.
func (s DatasetService) ExportAll() (ExportResult, error) {
	convs, err := s.Messages.ListConversations()
	if err != nil {
		return ExportResult{}, err
	}

	var examples []models.TrainingExample
	for _, conv := range convs {
		processed := s.ProcessConversation(conv)
		examples = append(examples, BuildTrainingExamples(processed)...)
	}

	dir := s.ExportDir
	if dir == "" {
		dir = "."
	}
	result := ExportResult{
		Examples:      len(examples),
		Conversations: len(convs),
		JSONPath:      filepath.Join(dir, "hotel_chatbot_training_data.json"),
		CSVPath:       filepath.Join(dir, "hotel_chatbot_training_data.csv"),
	}

	if err := writeJSON(result.JSONPath, examples); err != nil {
		return ExportResult{}, domain.InternalError{Msg: "json export failed", Err: err}
	}
	if err := writeCSV(result.CSVPath, examples); err != nil {
		return ExportResult{}, domain.InternalError{Msg: "csv export failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "dataset", "export",
		fmt.Sprintf("conversations=%d examples=%d", result.Conversations, result.Examples))
	return result, nil
}

func writeJSON(path string, examples []models.TrainingExample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if examples == nil {
		examples = []models.TrainingExample{}
	}
	return enc.Encode(examples)
}

func writeCSV(path string, examples []models.TrainingExample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"input", "output", "context", "intent", "entities", "conversation_id"}); err != nil {
		return err
	}
	for _, ex := range examples {
		entities, err := json.Marshal(ex.Entities)
		if err != nil {
			return err
		}
		if err := w.Write([]string{ex.Input, ex.Output, ex.Context, ex.Intent, string(entities), ex.ConversationID}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
