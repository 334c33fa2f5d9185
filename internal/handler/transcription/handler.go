package transcription

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medscribe/notetaker-api/internal/handler"
	"github.com/medscribe/notetaker-api/internal/model"
	"github.com/medscribe/notetaker-api/internal/service/transcription"
)

type Handler struct {
	service transcription.TranscriptionService
}

func NewHandler(service transcription.TranscriptionService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	t := r.Group("/transcription")
	{
		t.POST("/process", h.ProcessTranscript)
	}
	conversations := r.Group("/conversations")
	{
		conversations.GET("/:id", h.GetConversation)
		conversations.GET("/:id/report", h.GetReport)
		conversations.GET("/:id/soap", h.GetSOAPNote)
		conversations.GET("/:id/sentiment", h.GetSentiment)
	}
}

func (h *Handler) ProcessTranscript(c *gin.Context) {
	var req model.ProcessTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.Process(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(result))
}

func (h *Handler) GetConversation(c *gin.Context) {
	id, ok := h.conversationID(c)
	if !ok {
		return
	}
	conversation, err := h.service.GetConversation(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("conversation not found"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(conversation))
}

func (h *Handler) GetReport(c *gin.Context) {
	id, ok := h.conversationID(c)
	if !ok {
		return
	}
	report, err := h.service.GetReport(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("report not found"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(report))
}

func (h *Handler) GetSOAPNote(c *gin.Context) {
	id, ok := h.conversationID(c)
	if !ok {
		return
	}
	record, err := h.service.GetSOAPNote(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("SOAP note not found"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) GetSentiment(c *gin.Context) {
	id, ok := h.conversationID(c)
	if !ok {
		return
	}
	record, err := h.service.GetSentiment(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("sentiment not found"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) conversationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid conversation ID"))
		return uuid.Nil, false
	}
	return id, true
}
