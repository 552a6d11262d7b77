package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchadwick/parley/internal/domain"
)

// MessageStore implements domain.MessageRepository over GORM.
type MessageStore struct {
	db *gorm.DB
}

var _ domain.MessageRepository = (*MessageStore)(nil)

// NewMessageStore creates a new MessageStore.
func NewMessageStore(db *gorm.DB) *MessageStore {
	return &MessageStore{db: db}
}

// Create persists a new message.
func (s *MessageStore) Create(ctx context.Context, msg *domain.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Omit("Room", "User").Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetByID retrieves a message with its author and room.
func (s *MessageStore) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	var msg domain.Message
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		First(&msg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find message: %w", err)
	}
	return &msg, nil
}

// Delete removes a message.
func (s *MessageStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&domain.Message{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ByRoom returns the room's messages, newest first.
func (s *MessageStore) ByRoom(ctx context.Context, roomID string) ([]domain.Message, error) {
	var msgs []domain.Message
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list room messages: %w", err)
	}
	return msgs, nil
}

// ByUser returns the user's messages, newest first.
func (s *MessageStore) ByUser(ctx context.Context, userID string) ([]domain.Message, error) {
	var msgs []domain.Message
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user messages: %w", err)
	}
	return msgs, nil
}

// ByTopicQuery returns messages whose room's topic name contains q,
// case-insensitively.
func (s *MessageStore) ByTopicQuery(ctx context.Context, q string) ([]domain.Message, error) {
	var msgs []domain.Message
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Joins("JOIN rooms ON rooms.id = messages.room_id").
		Joins("JOIN topics ON topics.id = rooms.topic_id").
		Where("topics.name LIKE ? COLLATE NOCASE", "%"+q+"%").
		Order("messages.created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages by topic: %w", err)
	}
	return msgs, nil
}

// All returns every message, newest first.
func (s *MessageStore) All(ctx context.Context) ([]domain.Message, error) {
	var msgs []domain.Message
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}
