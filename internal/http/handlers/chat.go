package handlers

import (
	"net/http"
	"strconv"

	"hotelbot/internal/domain/models"
	"hotelbot/internal/http/middleware"
	"hotelbot/internal/services"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	UserID    *int64 `json:"user_id"`
}

// POST /api/chat
func Chat(c *gin.Context) {
	var req chatRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Message == "" {
		RespondError(c, http.StatusBadRequest, "message is required", nil)
		return
	}

	svc := services.ChatService{RequestID: middleware.GetRequestID(c)}

	sessionID := req.SessionID
	if sessionID == "" {
		userID := req.UserID
		if uid, ok := middleware.GetUserID(c); ok && userID == nil {
			userID = &uid
		}
		sessionID = svc.OpenSession(userID)
	}

	reply, err := svc.HandleMessage(sessionID, req.Message)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

type bookRequest struct {
	SessionID       string                 `json:"session_id"`
	CustomerDetails models.CustomerDetails `json:"customer_details"`
}

// POST /api/chat/book
func BookFromChat(c *gin.Context) {
	var req bookRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Finalize(req.SessionID, req.CustomerDetails)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking completed successfully!",
		"booking": booking,
	})
}

type selectRoomRequest struct {
	RoomID int64 `json:"room_id"`
}

// POST /api/chat/sessions/:id/select-room
func SelectRoom(c *gin.Context) {
	var req selectRoomRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	if err := svc.SelectRoom(c.Param("id"), req.RoomID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/chat/sessions/:id
func SessionStatus(c *gin.Context) {
	svc := services.ChatService{RequestID: middleware.GetRequestID(c)}
	bi, err := svc.SessionStatus(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bi)
}

// GET /api/chat/sessions/:id/messages
func SessionHistory(c *gin.Context) {
	svc := services.ChatService{RequestID: middleware.GetRequestID(c)}
	messages, err := svc.SessionHistory(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": c.Param("id"),
		"messages":   messages,
	})
}

// GET /api/bookings/:id/confirmation
func BookingConfirmationPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", nil)
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateConfirmation(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
