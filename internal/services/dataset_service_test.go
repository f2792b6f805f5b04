package services

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"

	"hotelbot/internal/chatbot"
	"hotelbot/internal/domain/models"
	"hotelbot/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func sampleConversation() models.Conversation {
	return models.Conversation{
		ID: "conv-1",
		Messages: []models.Message{
			{Role: models.RoleUser, Content: "Hi, I need a hotel in Berlin for 2 nights", Position: 0},
			{Role: models.RoleAssistant, Content: "Hello! Welcome to our booking service", Position: 1},
			{Role: models.RoleUser, Content: "Check-in December 25th, check-out December 27th", Position: 2},
			{Role: models.RoleAssistant, Content: "Here are some options for those dates", Position: 3},
			{Role: models.RoleUser, Content: "The room costs Rs. 8000 right?", Position: 4},
		},
	}
}

func TestProcessConversationAnnotates(t *testing.T) {
	svc := DatasetService{}
	out := svc.ProcessConversation(sampleConversation())

	if out.Messages[0].Intent != chatbot.IntentHotelSearch {
		t.Fatalf("first intent = %q", out.Messages[0].Intent)
	}
	if out.Messages[1].Intent != chatbot.IntentGreetingResponse {
		t.Fatalf("second intent = %q", out.Messages[1].Intent)
	}
	if out.Messages[2].Intent != chatbot.IntentProvideDates {
		t.Fatalf("third intent = %q", out.Messages[2].Intent)
	}

	// Dates from turn three accumulate into the conversation booking info.
	if out.BookingInfo.CheckInDate != "December 25" || out.BookingInfo.CheckOutDate != "December 27" {
		t.Fatalf("stay = %q..%q", out.BookingInfo.CheckInDate, out.BookingInfo.CheckOutDate)
	}
	if out.BookingInfo.Location != "Berlin" {
		t.Fatalf("location = %q", out.BookingInfo.Location)
	}
	// The bare price in the last turn becomes a budget hint.
	if out.BookingInfo.BudgetMax == nil || *out.BookingInfo.BudgetMax != 8000 {
		t.Fatalf("budget hint = %v", out.BookingInfo.BudgetMax)
	}
}

func TestBuildTrainingExamplesPairsAndContext(t *testing.T) {
	svc := DatasetService{}
	processed := svc.ProcessConversation(sampleConversation())

	examples := BuildTrainingExamples(processed)
	// The trailing user message has no reply and produces no pair.
	if len(examples) != 2 {
		t.Fatalf("got %d examples", len(examples))
	}

	first := examples[0]
	if first.Context != "" {
		t.Fatalf("first context = %q, want empty", first.Context)
	}
	if first.Output != "Hello! Welcome to our booking service" {
		t.Fatalf("first output = %q", first.Output)
	}
	if first.ConversationID != "conv-1" {
		t.Fatalf("conversation id = %q", first.ConversationID)
	}

	second := examples[1]
	want := "Hi, I need a hotel in Berlin for 2 nights Hello! Welcome to our booking service"
	if second.Context != want {
		t.Fatalf("second context = %q", second.Context)
	}
}

func TestContextWindowCapsAtThree(t *testing.T) {
	msgs := []models.Message{
		{Content: "one"}, {Content: "two"}, {Content: "three"}, {Content: "four"},
	}
	if got := contextOf(msgs, 4); got != "two three four" {
		t.Fatalf("context = %q", got)
	}
}

func TestExportAllWritesJSONAndCSV(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"session_id", "message_role", "content", "intent", "entities"}).
		AddRow("conv-1", models.RoleUser, "Hi, I need a hotel in Berlin", "", nil).
		AddRow("conv-1", models.RoleAssistant, "Hello! Welcome", "", nil)
	mock.ExpectQuery("FROM chat_messages").WillReturnRows(rows)

	dir := t.TempDir()
	svc := DatasetService{
		Messages:  repositories.MessageRepo{DB: db},
		ExportDir: dir,
	}

	result, err := svc.ExportAll()
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if result.Conversations != 1 || result.Examples != 1 {
		t.Fatalf("result = %+v", result)
	}

	raw, err := os.ReadFile(result.JSONPath)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var examples []models.TrainingExample
	if err := json.Unmarshal(raw, &examples); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(examples) != 1 || examples[0].Intent != chatbot.IntentHotelSearch {
		t.Fatalf("examples = %+v", examples)
	}

	f, err := os.Open(result.CSVPath)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("csv rows = %d", len(records))
	}
	if records[0][0] != "input" || records[0][5] != "conversation_id" {
		t.Fatalf("csv header = %v", records[0])
	}
}
