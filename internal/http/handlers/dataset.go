package handlers

import (
	"net/http"
	"os"
	"strings"

	"hotelbot/internal/http/middleware"
	"hotelbot/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/dataset/process
// Walks every logged conversation, labels it with the dataset-mode rules and
// exports training pairs to JSON and CSV.
func ProcessDataset(c *gin.Context) {
	dir := strings.TrimSpace(os.Getenv("DATASET_EXPORT_DIR"))
	if dir == "" {
		dir = "."
	}

	svc := services.DatasetService{
		ExportDir: dir,
		RequestID: middleware.GetRequestID(c),
	}
	result, err := svc.ExportAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
