package repository

import (
	"context"

	"github.com/squadup-app/squadup-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	// ListConversation returns messages exchanged between two users in
	// ascending creation order, up to limit (0 means no cap).
	ListConversation(ctx context.Context, userID, otherID string, limit int) ([]*domain.Message, error)
}
