package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, message.SenderID, message.ReceiverID, message.Content).
		Scan(&message.ID, &message.CreatedAt)
}

func (r *messageRepository) ListConversation(ctx context.Context, userID, otherID string, limit int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at, id
	`
	args := []interface{}{userID, otherID}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}
	err := r.db.SelectContext(ctx, &messages, query, args...)
	return messages, err
}
