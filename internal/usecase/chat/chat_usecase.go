package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/squadup-app/squadup-backend/internal/domain"
	"github.com/squadup-app/squadup-backend/internal/repository"
)

// Publisher pushes a payload onto a realtime channel. Backed by redis
// pub/sub in production.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

type UseCase struct {
	messageRepo repository.MessageRepository
	swipeRepo   repository.SwipeRepository
	publisher   Publisher
	logger      *slog.Logger
}

func NewUseCase(
	messageRepo repository.MessageRepository,
	swipeRepo repository.SwipeRepository,
	publisher Publisher,
	logger *slog.Logger,
) *UseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &UseCase{
		messageRepo: messageRepo,
		swipeRepo:   swipeRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// ChannelFor names the realtime channel a user receives messages on.
func ChannelFor(userID string) string {
	return "chat:" + userID
}

// Send persists a direct message and publishes it to the receiver's
// channel. Messaging requires a mutual match. Publish failures are
// logged but do not fail the send; the message is already durable.
func (uc *UseCase) Send(ctx context.Context, senderID, receiverID, content string) (*domain.Message, error) {
	if senderID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if senderID == receiverID {
		return nil, domain.ErrInvalidInput
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}

	matched, err := uc.areMatched(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotMatched
	}

	message := &domain.Message{SenderID: senderID, ReceiverID: receiverID, Content: content}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("persist message: %w", err)
	}

	payload, err := json.Marshal(message)
	if err == nil {
		err = uc.publisher.Publish(ctx, ChannelFor(receiverID), payload)
	}
	if err != nil {
		uc.logger.Error("publish message", "receiver_id", receiverID, "error", err)
	}

	return message, nil
}

// Conversation returns the message history between two users in
// ascending order.
func (uc *UseCase) Conversation(ctx context.Context, userID, otherID string, limit int) ([]*domain.Message, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	messages, err := uc.messageRepo.ListConversation(ctx, userID, otherID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list conversation: %v", domain.ErrFetchFailed, err)
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	return messages, nil
}

func (uc *UseCase) areMatched(ctx context.Context, a, b string) (bool, error) {
	if _, err := uc.swipeRepo.FindLike(ctx, a, b); err != nil {
		if errors.Is(err, domain.ErrSwipeNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: match check: %v", domain.ErrFetchFailed, err)
	}
	if _, err := uc.swipeRepo.FindLike(ctx, b, a); err != nil {
		if errors.Is(err, domain.ErrSwipeNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: match check: %v", domain.ErrFetchFailed, err)
	}
	return true, nil
}
