package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/squadup-app/squadup-backend/internal/usecase/chat"
)

// Subscriber streams raw payloads published to a realtime channel.
type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (<-chan []byte, func() error)
}

type ChatHandler struct {
	chatUseCase *chat.UseCase
	subscriber  Subscriber
	upgrader    websocket.Upgrader
}

func NewChatHandler(chatUseCase *chat.UseCase, subscriber Subscriber) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
		subscriber:  subscriber,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// SendMessageRequest represents an outgoing direct message
type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// SendMessage handles POST /messages
// @Summary Send a message
// @Description Send a direct message to a matched user
// @Tags chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	message, err := h.chatUseCase.Send(c.Request.Context(), userID, req.ReceiverID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// GetConversation handles GET /messages/:user_id
// @Summary Get conversation
// @Description Message history with one user, oldest first
// @Tags chat
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "Other user ID"
// @Param limit query int false "Max messages (default 100)"
// @Success 200 {array} domain.Message
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /messages/{user_id} [get]
func (h *ChatHandler) GetConversation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	messages, err := h.chatUseCase.Conversation(c.Request.Context(), userID, c.Param("user_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// StreamMessages handles GET /messages/stream. It upgrades to a
// websocket and forwards every message published to the caller's
// channel until either side disconnects.
func (h *ChatHandler) StreamMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	payloads, closeSub := h.subscriber.Subscribe(ctx, chat.ChannelFor(userID))
	defer closeSub()

	// Reader goroutine only detects close; clients do not send over
	// this socket.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case payload, open := <-payloads:
			if !open {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
