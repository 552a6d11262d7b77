package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchadwick/parley/internal/domain"
)

// TopicStore implements domain.TopicRepository over GORM.
type TopicStore struct {
	db *gorm.DB
}

var _ domain.TopicRepository = (*TopicStore)(nil)

// NewTopicStore creates a new TopicStore.
func NewTopicStore(db *gorm.DB) *TopicStore {
	return &TopicStore{db: db}
}

// GetOrCreate returns the topic with the given name, creating it if it
// does not exist. Name matching is exact; topics are reused by name.
func (s *TopicStore) GetOrCreate(ctx context.Context, name string) (*domain.Topic, error) {
	var topic domain.Topic
	err := s.db.WithContext(ctx).First(&topic, "name = ?", name).Error
	if err == nil {
		return &topic, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find topic: %w", err)
	}

	topic = domain.Topic{ID: uuid.NewString(), Name: name}
	if err := s.db.WithContext(ctx).Create(&topic).Error; err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	return &topic, nil
}

// Search returns topics whose name contains q, case-insensitively.
func (s *TopicStore) Search(ctx context.Context, q string) ([]domain.Topic, error) {
	var topics []domain.Topic
	err := s.db.WithContext(ctx).
		Where("name LIKE ? COLLATE NOCASE", "%"+q+"%").
		Order("created_at DESC").
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search topics: %w", err)
	}
	return topics, nil
}

// Recent returns up to limit topics, newest first.
func (s *TopicStore) Recent(ctx context.Context, limit int) ([]domain.Topic, error) {
	var topics []domain.Topic
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}
