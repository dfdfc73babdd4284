package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimonio/internal/errors"
	"patrimonio/internal/services"
)

// ChatHandler handles AI chat proxy requests.
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the request payload for a chat exchange.
// Context is free text prepended to the message before it reaches the
// generative API; mode is a display label stored with the history rows.
type ChatRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
	Context string `json:"context"`
}

// Chat handles forwarding a message to the generative API.
// @Summary     Chat with the assistant
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       request body ChatRequest true "Message, mode, and context"
// @Success     200 {object} services.ChatReply
// @Failure     400 {object} ErrorResponse "Message is required"
// @Failure     500 {object} ErrorResponse "Missing key or upstream error"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reply, err := h.chatService.SendMessage(c.Request.Context(), req.Message, req.Mode, req.Context)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// GetHistory handles listing the chat log, oldest first.
// @Summary     Chat history
// @Tags        chat
// @Produce     json
// @Success     200 {array} models.ChatHistory
// @Router      /chat/history [get]
func (h *ChatHandler) GetHistory(c *gin.Context) {
	entries, err := h.chatService.GetHistory()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ClearHistory handles wiping the chat log.
// @Summary     Clear chat history
// @Tags        chat
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /chat/history [delete]
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	if err := h.chatService.ClearHistory(); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}
